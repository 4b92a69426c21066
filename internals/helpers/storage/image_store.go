// file: internals/helpers/storage/image_store.go
package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"neudev_backend/internals/configs"
)

const maxEdge = 1024 // px; larger uploads get scaled down

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SaveImage decodes the uploaded image, caps it to maxEdge and stores it as webp
// under <UploadRoot>/<folder>/. Returns the relative path to keep in the DB.
func SaveImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > maxEdge || b.Dy() > maxEdge {
		img = imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
	}

	relPath := filepath.Join(folder, uniqueFilename(fileHeader.Filename))
	absPath := filepath.Join(configs.UploadRoot, relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	out, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 85}); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("encode webp: %w", err)
	}
	return filepath.ToSlash(relPath), nil
}

// DeleteImage removes a stored image. Deleting a missing path is a no-op.
func DeleteImage(relPath string) error {
	if strings.TrimSpace(relPath) == "" {
		return nil
	}
	absPath := filepath.Join(configs.UploadRoot, filepath.FromSlash(relPath))
	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PublicURL converts a stored relative path into an absolute URL for responses.
func PublicURL(relPath string) *string {
	if strings.TrimSpace(relPath) == "" {
		return nil
	}
	// segments are sanitized at save time, no escaping needed
	u := fmt.Sprintf("%s/storage/%s", strings.TrimRight(configs.AppBaseURL, "/"), relPath)
	return &u
}

func uniqueFilename(original string) string {
	base := strings.TrimSuffix(original, filepath.Ext(original))
	safe := unsafeChars.ReplaceAllString(base, "_")
	return fmt.Sprintf("%s-%s-%s.webp", time.Now().Format("20060102"), uuid.New().String(), safe)
}
