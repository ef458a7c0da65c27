package deck

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"shltmc-be/internal/domain"
)

// defaultAvatarFile is the last-resort image under the static root.
const defaultAvatarFile = "default_avatar.jpg"

// resolveAvatarPath maps a contact to the image file that fills its
// shape: the contact's avatar relative to the static root, the bundled
// default when that is missing, or empty when neither exists.
func resolveAvatarPath(staticRoot string, c *domain.Contact) string {
	if c != nil && c.AvatarURL != "" {
		path := filepath.Join(staticRoot, filepath.FromSlash(strings.TrimPrefix(c.AvatarURL, "/")))
		if fileExists(path) {
			return path
		}
	}
	fallback := filepath.Join(staticRoot, defaultAvatarFile)
	if fileExists(fallback) {
		return fallback
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// cropToAspect center-crops the source image to the given pixel
// dimensions, flattens any alpha over a white background and writes
// the result to a temp JPEG. The caller deletes the file once the fill
// is injected.
func cropToAspect(srcPath string, widthPx, heightPx int) (string, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return "", fmt.Errorf("invalid crop size %dx%d", widthPx, heightPx)
	}

	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to open image %s: %w", srcPath, err)
	}

	cropped := imaging.Fill(img, widthPx, heightPx, imaging.Center, imaging.Lanczos)

	// JPEG has no alpha channel; composite over white first.
	flat := imaging.New(widthPx, heightPx, color.White)
	flat = imaging.Overlay(flat, cropped, image.Pt(0, 0), 1.0)

	tmpPath := filepath.Join(os.TempDir(), "avatar_"+uuid.NewString()+".jpg")
	if err := imaging.Save(flat, tmpPath, imaging.JPEGQuality(90)); err != nil {
		return "", fmt.Errorf("failed to save cropped image: %w", err)
	}
	return tmpPath, nil
}
