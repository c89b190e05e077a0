package resources

import (
	"fmt"
	"image"
	"os"

	// Formats understood by Image.Decode besides the standard library's.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image references image contents displayed by an image view. The zero
// value is the empty image.
type Image struct {
	path string
}

// ImageFromFile references the image stored at path. The file is not read
// until the image is decoded or handed to a backend.
func ImageFromFile(path string) Image {
	return Image{path: path}
}

// Path returns the file path, or "" for the empty image.
func (i Image) Path() string {
	return i.path
}

// IsEmpty reports whether the image has no contents.
func (i Image) IsEmpty() bool {
	return i.path == ""
}

// ImageInfo describes a decoded image header.
type ImageInfo struct {
	Format string
	Width  int
	Height int
}

// Decode reads the image header, returning its format and pixel size.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func (i Image) Decode() (ImageInfo, error) {
	if i.IsEmpty() {
		return ImageInfo{}, fmt.Errorf("resources: decode empty image")
	}
	f, err := os.Open(i.path)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("resources: open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("resources: decode %s: %w", i.path, err)
	}
	return ImageInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
