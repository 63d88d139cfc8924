// Package types holds special field value types that carry their own JSON
// representation.
package types

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var imageMIMETypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// IsImagePath reports whether value names an existing local file with a
// recognized image extension.
//
// The field encoder consults this before treating a string as an accessor
// expression, so a plain accessor like "icon" is never misread: it has no
// image extension and no file behind it.
func IsImagePath(value string) bool {
	ext := strings.ToLower(filepath.Ext(value))
	if _, ok := imageMIMETypes[ext]; !ok {
		return false
	}

	info, err := os.Stat(value)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// Image is a local-image field value. It renders as a base64 data URL so
// the receiving engine needs no filesystem access.
type Image struct {
	// Path is the local filesystem path of the image.
	Path string
}

// NewImage wraps a local image path.
func NewImage(path string) Image {
	return Image{Path: path}
}

// DataURL reads the image file and returns its data-URL form.
func (img Image) DataURL() (string, error) {
	mime, ok := imageMIMETypes[strings.ToLower(filepath.Ext(img.Path))]
	if !ok {
		return "", fmt.Errorf("unrecognized image extension: %s", img.Path)
	}

	data, err := os.ReadFile(img.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", img.Path, err)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// MarshalJSON renders the image as a JSON string holding its data URL.
func (img Image) MarshalJSON() ([]byte, error) {
	url, err := img.DataURL()
	if err != nil {
		return nil, err
	}

	// A data URL contains no characters that need JSON escaping.
	return []byte(`"` + url + `"`), nil
}
