package models

import (
	"time"
	"tubegrab/internal/domain/consts"
)

// DownloadRecord is one row of the persisted download history.
type DownloadRecord struct {
	ID         int64
	URL        string
	Title      string
	FormatSpec string
	Path       string
	SizeBytes  int64
	Status     consts.DownloadStatus
	CreatedAt  time.Time
}
