// Package downloads talks to the external yt-dlp executable: metadata
// queries, format selection, and the download itself.
package downloads

import (
	"context"
	"os/exec"

	"tubegrab/internal/domain/consts"
	"tubegrab/internal/models"
)

const defaultRetries = 5

// Extractor is the narrow surface of the external extractor/downloader
// collaborator. FetchMetadata has no side effects; Download writes one
// file into the request's destination directory.
type Extractor interface {
	FetchMetadata(ctx context.Context, rawURL string) (*models.VideoMetadata, error)
	Download(ctx context.Context, req models.DownloadRequest, progress func(models.StatusUpdate)) (*models.DownloadResult, error)
}

// YTDLP runs the yt-dlp executable.
type YTDLP struct {
	Bin        string
	Retries    int
	CookieFile string // optional Netscape cookie file passed via --cookies
}

// NewYTDLP returns an extractor using the yt-dlp binary from PATH.
func NewYTDLP() *YTDLP {
	return &YTDLP{
		Bin:     consts.YTDLP,
		Retries: defaultRetries,
	}
}

// CheckTools reports whether the downloader and the muxing tool are
// present on PATH. Absence is not fatal; downloads fail per-attempt.
func (y *YTDLP) CheckTools() (ytdlpFound, ffmpegFound bool) {
	_, ytErr := exec.LookPath(y.Bin)
	_, ffErr := exec.LookPath(consts.FFmpeg)
	return ytErr == nil, ffErr == nil
}
