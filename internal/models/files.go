package models

import "time"

// DownloadedFile is a media file found in the destination directory.
// Derived on demand, never stored.
type DownloadedFile struct {
	Name      string
	SizeBytes int64
	ModTime   time.Time
}
