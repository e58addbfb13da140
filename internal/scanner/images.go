package scanner

import (
	"bytes"
	"image"
	"io/fs"
	"path/filepath"
	"strings"

	// Preview images come as png/jpg bundles on the descriptor side and
	// occasionally as bmp/webp exports
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// previewWidth is the pixel width that marks an image as a platform
// preview asset
const previewWidth = 750

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".bmp":  {},
	".webp": {},
}

// findPreviewImages collects images in the project tree whose width is
// exactly the preview width. Decode failures are skipped silently; a
// broken asset is not this tool's problem.
func (s *Scanner) findPreviewImages(projectRoot string) []string {
	var previews []string

	_ = s.fs.WalkDir(projectRoot, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil || entry.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := imageExtensions[ext]; !ok {
			return nil
		}

		data, err := s.fs.ReadFile(path)
		if err != nil {
			return nil
		}

		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil
		}

		if cfg.Width == previewWidth {
			previews = append(previews, path)
		}
		return nil
	})

	return previews
}
