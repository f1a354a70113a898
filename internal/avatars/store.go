package avatars

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxSize is the largest accepted avatar, in bytes.
	MaxSize = 5_000_000
	// URLPrefix is where disk stored avatars are served from.
	URLPrefix = "/uploads/avatars/"
)

var (
	ErrRejectedType = errors.New("only jpeg and png images are allowed")
	ErrTooLarge     = fmt.Errorf("avatar larger than %d bytes", MaxSize)
)

var (
	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	}
	allowedContentTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
	}
)

// Upload is an avatar image as received from the client.
type Upload struct {
	Filename    string
	ContentType string
	// Size as declared by the client, -1 if unknown.
	Size int64
	File io.Reader
}

// Store persists avatars and returns the URL they are reachable at.
type Store interface {
	Save(ctx context.Context, upload Upload) (string, error)
}

// Validate checks the declared type and size. Both the file extension and the
// content type have to name a jpeg or png image.
func Validate(upload Upload) error {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
	if !allowedExtensions[ext] || !allowedContentTypes[contentType] {
		return fmt.Errorf("%w: [%s] [%s]", ErrRejectedType, upload.Filename, upload.ContentType)
	}
	if upload.Size > MaxSize {
		return ErrTooLarge
	}
	return nil
}

// objectName builds a unique name, keeping the original extension.
func objectName(filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.NewString(), ext)
}

// copyLimited copies at most MaxSize bytes, failing with ErrTooLarge if src holds more.
func copyLimited(dst io.Writer, src io.Reader) (int64, error) {
	written, err := io.Copy(dst, io.LimitReader(src, MaxSize+1))
	if err != nil {
		return written, err
	}
	if written > MaxSize {
		return written, ErrTooLarge
	}
	return written, nil
}
