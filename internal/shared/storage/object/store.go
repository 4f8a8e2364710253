package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary artifacts
// by storage key. Keys are slash-separated relative paths such as
// "acme_corp/staff_engineer/resume.docx".
type ObjectStore interface {
	Save(ctx context.Context, storageKey string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
