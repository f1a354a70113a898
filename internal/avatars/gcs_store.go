package avatars

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/tracing"

	"cloud.google.com/go/storage"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const gcsObjectPrefix = "avatars/"

// GCSStore keeps avatars in a Google Cloud Storage bucket that is publicly readable.
type GCSStore struct {
	client    *storage.Client
	bucket    string
	publicURL string
	now       func() time.Time
}

// NewGCSStore uses application default credentials. publicURL defaults to the
// storage.googleapis.com URL of the bucket.
func NewGCSStore(ctx context.Context, bucket, publicURL string) (*GCSStore, error) {
	if bucket == "" {
		return nil, errors.New("avatars bucket not set")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return newGCSStore(client, bucket, publicURL), nil
}

func newGCSStore(client *storage.Client, bucket, publicURL string) *GCSStore {
	if publicURL == "" {
		publicURL = "https://storage.googleapis.com/" + bucket
	}
	return &GCSStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		now:       time.Now,
	}
}

func (s *GCSStore) Save(ctx context.Context, upload Upload) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "avatars.gcs.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("file.name", upload.Filename))

	if err := Validate(upload); err != nil {
		return "", err
	}

	object := gcsObjectPrefix + objectName(upload.Filename, s.now())

	// cancelling the context aborts the upload
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wc := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	wc.ContentType = strings.ToLower(upload.ContentType)
	wc.CacheControl = "public, max-age=86400"

	written, err := copyLimited(wc, upload.File)
	if err != nil {
		cancel()
		_ = wc.Close()
		if errors.Is(err, ErrTooLarge) {
			return "", err
		}
		return "", fmt.Errorf("upload avatar: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("finish avatar upload: %w", err)
	}

	log.Debugf("avatars: uploaded gs://%s/%s [%d bytes]", s.bucket, object, written)
	return s.objectURL(object), nil
}

func (s *GCSStore) objectURL(object string) string {
	return s.publicURL + "/" + object
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
