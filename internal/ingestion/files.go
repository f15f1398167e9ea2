package ingestion

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	measurementExtensions = map[string]bool{".json": true}
	imageExtensions       = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
)

// IsMeasurementFile reports whether path looks like a measurement file.
func IsMeasurementFile(path string) bool {
	return measurementExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsImageFile reports whether path has an accepted image extension.
func IsImageFile(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// ImageIdentifier returns the identifier of a submitted photo: its base file
// name.
func ImageIdentifier(path string) (string, error) {
	if !IsImageFile(path) {
		return "", &ImageError{Path: path}
	}
	return filepath.Base(path), nil
}

// ListFiles walks root recursively and returns every regular file in lexical
// order, together with the files that were skipped for their extension.
func ListFiles(root string) (accepted []string, skipped []string, err error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, &DirectoryError{Path: root, Cause: err}
	}
	if !info.IsDir() {
		return nil, nil, &DirectoryError{Path: root}
	}

	total := 0
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		total++
		if IsMeasurementFile(path) || IsImageFile(path) {
			accepted = append(accepted, path)
		} else {
			skipped = append(skipped, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, nil, &FilesError{Path: root, Cause: walkErr}
	}
	if total == 0 {
		return nil, nil, &FilesError{Path: root}
	}

	return accepted, skipped, nil
}
