// Package errs defines the error taxonomy every collaborator failure
// is translated into before it reaches the menu loop.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidURL indicates the URL does not match a recognized YouTube host.
	ErrInvalidURL = errors.New("not a recognized YouTube URL")
	// ErrNetwork indicates a connectivity or timeout failure.
	ErrNetwork = errors.New("network failure")
	// ErrExtraction indicates the extractor could not produce usable metadata
	// (video removed, private, age-restricted, region-locked, or site changed).
	ErrExtraction = errors.New("extraction failed")
	// ErrDownload indicates the transfer failed or was interrupted.
	ErrDownload = errors.New("download failed")
	// ErrMuxerMissing indicates the external media-muxing tool is absent.
	ErrMuxerMissing = errors.New("media-muxing tool (ffmpeg) not found")
	// ErrToolMissing indicates the external downloader itself is absent.
	ErrToolMissing = errors.New("downloader tool (yt-dlp) not found")
	// ErrFormatUnavailable indicates the requested format cannot be served.
	ErrFormatUnavailable = errors.New("requested format is not available")
	// ErrFilesystem indicates a local filesystem failure.
	ErrFilesystem = errors.New("filesystem error")
	// ErrSettingsCorrupt indicates an unreadable settings file. Non-fatal;
	// callers fall back to defaults.
	ErrSettingsCorrupt = errors.New("settings file corrupt")
)

// classifications maps substrings of yt-dlp output to taxonomy kinds.
// Checked in order; first match wins.
var classifications = []struct {
	needle string
	kind   error
}{
	{"ffprobe and ffmpeg not found", ErrMuxerMissing},
	{"ffmpeg not found", ErrMuxerMissing},
	{"ffmpeg is not installed", ErrMuxerMissing},
	{"requested format is not available", ErrFormatUnavailable},
	{"video unavailable", ErrExtraction},
	{"private video", ErrExtraction},
	{"this video is unavailable", ErrExtraction},
	{"sign in to confirm your age", ErrExtraction},
	{"sign in to confirm", ErrExtraction},
	{"not available in your country", ErrExtraction},
	{"unsupported url", ErrInvalidURL},
	{"giving up after", ErrNetwork},
	{"unable to download webpage", ErrNetwork},
	{"temporary failure in name resolution", ErrNetwork},
	{"connection refused", ErrNetwork},
	{"connection reset", ErrNetwork},
	{"timed out", ErrNetwork},
	{"network is unreachable", ErrNetwork},
}

// Classify translates raw collaborator output into a taxonomy error,
// keeping the first matched line as diagnostic detail. Returns fallback
// when no known pattern matches.
func Classify(output string, fallback error) error {
	low := strings.ToLower(output)
	for _, c := range classifications {
		if strings.Contains(low, c.needle) {
			if detail := firstErrorLine(output); detail != "" {
				return fmt.Errorf("%w: %s", c.kind, detail)
			}
			return c.kind
		}
	}
	return fallback
}

// firstErrorLine returns the first "ERROR:" line of the output, or the
// first non-empty line when none is tagged.
func firstErrorLine(output string) string {
	var first string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if first == "" {
			first = line
		}
		if strings.HasPrefix(line, "ERROR:") {
			return line
		}
	}
	return first
}
