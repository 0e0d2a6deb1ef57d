// Package assets resolves the logo and signature images used by the
// renderer: per-request uploads, configured defaults, and generated
// placeholders when no default exists on disk.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"

	"github.com/opygoal/nextride-api/pkg/renderer"
)

// Store manages uploaded and default image assets.
type Store struct {
	uploadDir        string
	defaultLogo      string
	defaultSignature string
}

// NewStore creates the upload directory and returns a store. Missing default
// assets are replaced with generated placeholders.
func NewStore(uploadDir, defaultLogo, defaultSignature string) (*Store, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	s := &Store{
		uploadDir:        uploadDir,
		defaultLogo:      defaultLogo,
		defaultSignature: defaultSignature,
	}
	s.ensurePlaceholders()
	return s, nil
}

// SaveUpload stores an uploaded file under a per-request unique name so
// concurrent requests never collide, and returns its path.
func (s *Store) SaveUpload(fh *multipart.FileHeader, prefix string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%s_%s%s", prefix, uuid.New().String()[:8], filepath.Ext(fh.Filename))
	path := filepath.Join(s.uploadDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// Remove deletes an uploaded file after its render completes.
func (s *Store) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: could not remove upload %s: %v", path, err)
	}
}

// ResolveLogo returns the uploaded logo when given, the default logo when it
// exists, or nil so the header falls back to a text-only company block. Load
// problems are logged and recovered, never surfaced as a failure.
func (s *Store) ResolveLogo(uploadedPath string) *renderer.ImageAsset {
	return s.resolve(uploadedPath, s.defaultLogo, "logo")
}

// ResolveSignature behaves like ResolveLogo; a nil result omits the
// signature block entirely.
func (s *Store) ResolveSignature(uploadedPath string) *renderer.ImageAsset {
	return s.resolve(uploadedPath, s.defaultSignature, "signature")
}

func (s *Store) resolve(uploadedPath, defaultPath, name string) *renderer.ImageAsset {
	if uploadedPath != "" {
		if a, err := loadImage(uploadedPath, name); err == nil {
			return a
		} else {
			log.Printf("WARNING: unreadable %s upload %s, using default: %v", name, uploadedPath, err)
		}
	}
	if defaultPath == "" {
		return nil
	}
	a, err := loadImage(defaultPath, name)
	if err != nil {
		log.Printf("WARNING: no usable %s asset, omitting: %v", name, err)
		return nil
	}
	return a
}

// loadImage reads and decodes an image file into a render-ready asset.
func loadImage(path, name string) (*renderer.ImageAsset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	pdfFormat, ok := pdfImageFormat(format)
	if !ok {
		return nil, fmt.Errorf("unsupported image format %q in %s", format, path)
	}
	return &renderer.ImageAsset{
		Name:     name,
		Data:     data,
		Format:   pdfFormat,
		WidthPx:  cfg.Width,
		HeightPx: cfg.Height,
	}, nil
}

func pdfImageFormat(format string) (string, bool) {
	switch format {
	case "png":
		return "PNG", true
	case "jpeg":
		return "JPG", true
	case "gif":
		return "GIF", true
	}
	return "", false
}
