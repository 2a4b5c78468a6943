package imagefile

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Toup95/AgriDetec-test/internal/api"
)

func writePNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write test png: %v", err)
	}
	return path
}

func TestValidatePNG(t *testing.T) {
	path := writePNG(t, t.TempDir(), "leaf.png", 64, 48)

	preview, err := Validate(path)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if preview.ContentType != "image/png" {
		t.Errorf("ContentType = %q, want image/png", preview.ContentType)
	}
	if preview.Width != 64 || preview.Height != 48 {
		t.Errorf("dimensions = %dx%d, want 64x48", preview.Width, preview.Height)
	}
	if preview.Name != "leaf.png" {
		t.Errorf("Name = %q, want leaf.png", preview.Name)
	}
}

func TestValidateRejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("just text"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Validate(path)
	var vErr *api.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidateRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "huge.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	// Sparse file one byte over the limit; nothing should read it.
	if err := f.Truncate(MaxSizeBytes + 1); err != nil {
		t.Fatal(err)
	}
	f.Close()

	_, err = Validate(path)
	var vErr *api.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for oversized file, got %v", err)
	}
}

func TestValidateRejectsMissingFile(t *testing.T) {
	_, err := Validate(filepath.Join(t.TempDir(), "nope.jpg"))
	var vErr *api.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for missing file, got %v", err)
	}
}

func TestValidateExtensionFallback(t *testing.T) {
	// Body the sniffer cannot classify, but the extension is on the
	// allow list.
	dir := t.TempDir()
	path := filepath.Join(dir, "leaf.webp")
	if err := os.WriteFile(path, []byte{0x00, 0x01, 0x02, 0x03}, 0o644); err != nil {
		t.Fatal(err)
	}

	preview, err := Validate(path)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if preview.ContentType != "image/webp" {
		t.Errorf("ContentType = %q, want image/webp", preview.ContentType)
	}
}

func TestHumanSize(t *testing.T) {
	p := Preview{SizeBytes: 3 << 20}
	if got := p.HumanSize(); got != "3.0 MB" {
		t.Errorf("HumanSize = %q, want 3.0 MB", got)
	}
	p = Preview{SizeBytes: 512 << 10}
	if got := p.HumanSize(); got != "512 KB" {
		t.Errorf("HumanSize = %q, want 512 KB", got)
	}
}
