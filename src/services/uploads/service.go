package uploads

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// BlobStore is the opaque file storage collaborator: bytes in under a key,
// the stored key (or an error) out.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

var (
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
	dottedDash  = regexp.MustCompile(`-*\.-*`)
)

// SanitizeFilename reduces an uploaded filename to a storage-safe form.
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "-")
	name = dottedDash.ReplaceAllString(name, ".")
	name = strings.Trim(name, "-.")
	if name == "" {
		name = "file"
	}
	return name
}

// ObjectKey builds the storage path for one uploaded source document:
// namespaced by service type, collision-resistant via timestamp plus a short
// random salt, original name preserved (sanitized) for staff readability.
func ObjectKey(serviceType, originalName string) string {
	salt := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("quotes/%s/%d-%s-%s",
		SanitizeFilename(serviceType), time.Now().Unix(), salt, SanitizeFilename(originalName))
}

// DetectContentType sniffs the real content type, falling back to the
// client-declared one when sniffing is inconclusive.
func DetectContentType(data []byte, declared string) string {
	mt := mimetype.Detect(data)
	if mt != nil && mt.String() != "application/octet-stream" {
		return mt.String()
	}
	if declared != "" {
		return declared
	}
	return "application/octet-stream"
}

// DiskStore keeps blobs on the local filesystem under Root. It stands in for
// the hosted object store in development and in tests.
type DiskStore struct {
	Root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{Root: root}
}

func (d *DiskStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	full := filepath.Join(d.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return key, nil
}
