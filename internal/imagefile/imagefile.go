// Package imagefile validates plant images before they are allowed
// anywhere near the network.
package imagefile

import (
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/Toup95/AgriDetec-test/internal/api"
)

// MaxSizeBytes is the upload ceiling, matching the backend's 10 MB
// default.
const MaxSizeBytes = 10 << 20

// allowedTypes is the fixed accept list for uploads.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var extensionTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// Preview describes a validated image, ready to display before the
// user confirms the upload.
type Preview struct {
	Path        string
	Name        string
	SizeBytes   int64
	ContentType string
	Width       int
	Height      int
}

// HumanSize formats the byte count the way the UI shows it.
func (p *Preview) HumanSize() string {
	const mb = 1 << 20
	if p.SizeBytes >= mb {
		return fmt.Sprintf("%.1f MB", float64(p.SizeBytes)/mb)
	}
	return fmt.Sprintf("%.0f KB", float64(p.SizeBytes)/(1<<10))
}

// Validate checks type and size constraints and returns a Preview on
// success. Failures are *api.ValidationError and never touch the
// network.
func Validate(path string) (*Preview, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &api.ValidationError{Field: "image", Reason: fmt.Sprintf("fichier introuvable: %s", path)}
	}
	if info.IsDir() {
		return nil, &api.ValidationError{Field: "image", Reason: fmt.Sprintf("%s est un répertoire", path)}
	}
	if info.Size() > MaxSizeBytes {
		return nil, &api.ValidationError{
			Field:  "image",
			Reason: fmt.Sprintf("fichier trop volumineux (%.1f MB, maximum 10 MB)", float64(info.Size())/(1<<20)),
		}
	}
	if info.Size() == 0 {
		return nil, &api.ValidationError{Field: "image", Reason: "fichier vide"}
	}

	contentType, err := sniffType(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if !allowedTypes[contentType] {
		// Some tools write images without a recognizable magic number;
		// fall back to the extension the way the backend does.
		ext := strings.ToLower(filepath.Ext(path))
		byExt, ok := extensionTypes[ext]
		if !ok {
			return nil, &api.ValidationError{
				Field:  "image",
				Reason: "format non pris en charge (JPEG, PNG ou WebP attendu)",
			}
		}
		contentType = byExt
	}

	preview := &Preview{
		Path:        path,
		Name:        filepath.Base(path),
		SizeBytes:   info.Size(),
		ContentType: contentType,
	}
	if width, height, err := dimensions(path); err == nil {
		preview.Width = width
		preview.Height = height
	}
	return preview, nil
}

// sniffType reads the first 512 bytes and lets net/http classify them.
func sniffType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	contentType := http.DetectContentType(buf[:n])
	// DetectContentType appends charset info for text; strip parameters.
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	return contentType, nil
}

// dimensions decodes only the image header. Dimension lookup is best
// effort; a broken header does not fail validation.
func dimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
