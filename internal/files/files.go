// Package files manages the contents of the downloads directory.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tubegrab/internal/domain/consts"
	"tubegrab/internal/errs"
	"tubegrab/internal/logging"
	"tubegrab/internal/models"
)

// IsMediaFile reports whether the name carries a recognized media
// extension and is not a partial download.
func IsMediaFile(name string) bool {
	lower := strings.ToLower(name)
	for _, skip := range consts.SkippedExtensions {
		if strings.HasSuffix(lower, skip) {
			return false
		}
	}
	for _, ext := range consts.AllMediaExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// List returns the media files directly inside dir, sorted by name.
// A missing directory yields an empty list, not an error.
func List(dir string) ([]models.DownloadedFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: cannot read directory %q: %v", errs.ErrFilesystem, dir, err)
	}

	var out []models.DownloadedFile
	for _, entry := range entries {
		if entry.IsDir() || !IsMediaFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logging.D(1, "Skipping unreadable entry %q: %v", entry.Name(), err)
			continue
		}
		out = append(out, models.DownloadedFile{
			Name:      entry.Name(),
			SizeBytes: info.Size(),
			ModTime:   info.ModTime(),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Clear deletes the media files directly inside dir, the same set List
// reports. Subdirectories are left untouched. Clearing a missing or
// empty directory is a no-op. Returns the number of files removed.
func Clear(dir string) (int, error) {
	listed, err := List(dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, f := range listed {
		path := filepath.Join(dir, f.Name)
		if err := os.Remove(path); err != nil {
			logging.E("Failed to delete %q: %v", path, err)
			continue
		}
		removed++
	}
	return removed, nil
}

// NewestMedia returns the most recently modified media file in dir.
func NewestMedia(dir string) (models.DownloadedFile, bool) {
	listed, err := List(dir)
	if err != nil || len(listed) == 0 {
		return models.DownloadedFile{}, false
	}

	newest := listed[0]
	for _, f := range listed[1:] {
		if f.ModTime.After(newest.ModTime) {
			newest = f
		}
	}
	return newest, true
}
