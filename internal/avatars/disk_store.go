package avatars

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/tracing"
	"github.com/JustRob12/HomeWorkoutGenerator/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// DiskStore keeps avatars in a local directory and serves them under URLPrefix.
type DiskStore struct {
	dir string
	now func() time.Time
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if dir == "" {
		return nil, errors.New("avatars dir not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatars dir: %w", err)
	}
	if _, err := pkg.PathExists(dir, true); err != nil {
		return nil, err
	}

	return &DiskStore{
		dir: dir,
		now: time.Now,
	}, nil
}

func (s *DiskStore) Save(ctx context.Context, upload Upload) (_ string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "avatars.disk.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("file.name", upload.Filename))
	span.SetAttributes(attribute.Int64("file.size", upload.Size))

	if err := Validate(upload); err != nil {
		return "", err
	}

	name := objectName(upload.Filename, s.now())
	filePath := filepath.Join(s.dir, name)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}

	written, copyErr := copyLimited(dst, upload.File)
	closeErr := dst.Close()
	if copyErr != nil || closeErr != nil {
		if removeErr := os.Remove(filePath); removeErr != nil {
			log.Errorf("avatars: failed to remove partial file %s: %s", filePath, removeErr)
		}
		if copyErr != nil {
			if errors.Is(copyErr, ErrTooLarge) {
				return "", copyErr
			}
			return "", fmt.Errorf("write avatar file: %w", copyErr)
		}
		return "", fmt.Errorf("close avatar file: %w", closeErr)
	}

	log.Debugf("avatars: saved %s [%d bytes]", name, written)
	return URLPrefix + name, nil
}

// ServeHTTP serves a stored avatar; expects the file name in the {name} route var.
func (s *DiskStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		http.NotFound(w, r)
		return
	}

	filePath := filepath.Join(s.dir, name)
	if exists, err := pkg.PathExists(filePath, false); err != nil || !exists {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, filePath)
}
