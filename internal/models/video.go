package models

import "time"

// VideoMetadata holds the extractor's metadata for a single video.
// Produced per download session, never persisted.
type VideoMetadata struct {
	Title           string
	Uploader        string
	UploadDate      time.Time
	DurationSeconds int64
	ViewCount       int64
	LikeCount       int64
	Formats         []FormatInfo // Extractor order preserved
}

// FormatInfo describes one encoded stream offered by the extractor.
type FormatInfo struct {
	ID              string
	ResolutionLabel string
	Height          int
	FPS             float64
	ApproxFilesize  int64
	HasAudio        bool
	HasVideo        bool
}
