// Package storage saves uploaded files under the static/ tree served by the
// HTTP server and returns the public URL paths stored alongside records.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	imagesDir  = "static/images"
	galleryDir = "static/images/gallery"
	resumesDir = "static/resumes"
)

// SaveImage stores a general-purpose image upload (branch photos, menu
// items, testimonial pictures, online-order logos) under static/images and
// returns its URL path.
func SaveImage(fh *multipart.FileHeader) (string, error) {
	return save(fh, imagesDir, uuid.NewString()+ext(fh.Filename))
}

// SaveGalleryImage stores a gallery upload under static/images/gallery.
func SaveGalleryImage(fh *multipart.FileHeader) (string, error) {
	return save(fh, galleryDir, uuid.NewString()+ext(fh.Filename))
}

// SaveResume stores a job-application resume under static/resumes.  The
// original filename is kept, prefixed with a uuid to avoid collisions.
func SaveResume(fh *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + "_" + filepath.Base(fh.Filename)
	return save(fh, resumesDir, name)
}

func save(fh *multipart.FileHeader, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write %s: %w", dstPath, err)
	}
	// URL path uses forward slashes regardless of platform.
	return "/" + filepath.ToSlash(dstPath), nil
}

func ext(filename string) string {
	e := strings.ToLower(filepath.Ext(filename))
	if e == "" {
		e = ".bin"
	}
	return e
}
