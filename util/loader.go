package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nvr-ai/go-duotone/images"
	"github.com/pkg/errors"
)

// ImageFile represents an image file.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Name is the file name without its extension.
	Name string
	// Image is the encoded image read from Path.
	Image *images.Image
}

// LoadDirectoryImageFiles reads all image files from a directory, skipping
// subdirectories and files without a supported image extension.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []ImageFile: Slice of ImageFile sorted by path.
// - error: Error if loading fails.
func LoadDirectoryImageFiles(dir string) ([]ImageFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	var loaded []ImageFile
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if images.FormatFromPath(file.Name()) == images.FormatUnknown {
			continue
		}

		imgPath := filepath.Join(dir, file.Name())
		img, err := images.Load(imgPath)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, ImageFile{
			Path:  imgPath,
			Name:  strings.TrimSuffix(file.Name(), filepath.Ext(file.Name())),
			Image: img,
		})
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].Path < loaded[j].Path
	})

	return loaded, nil
}
