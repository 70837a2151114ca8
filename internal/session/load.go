package session

import (
	"fmt"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/walkoncross/color-transfer/internal/transfer"
)

// LoadImage reads and decodes an image file into the native pixmap
// representation. Unreadable files and images with fewer than 3 color
// channels are errors; both are fatal at startup.
func LoadImage(path string) (*transfer.Pixmap, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	pm, err := transfer.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pm, nil
}

// SaveImage encodes a pixmap to the given path; the format is chosen
// from the file extension.
func SaveImage(pm *transfer.Pixmap, path string) error {
	if err := imaging.Save(pm.ToImage(), path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}
