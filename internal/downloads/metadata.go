package downloads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"

	"tubegrab/internal/errs"
	"tubegrab/internal/logging"
	"tubegrab/internal/models"
	"tubegrab/internal/parsing"
)

// rawInfo mirrors the fields of yt-dlp's -J output this program reads.
type rawInfo struct {
	Title      string      `json:"title"`
	Uploader   string      `json:"uploader"`
	Channel    string      `json:"channel"`
	UploadDate string      `json:"upload_date"`
	Duration   float64     `json:"duration"`
	ViewCount  int64       `json:"view_count"`
	LikeCount  int64       `json:"like_count"`
	Formats    []rawFormat `json:"formats"`
}

type rawFormat struct {
	FormatID       string  `json:"format_id"`
	FormatNote     string  `json:"format_note"`
	Height         int     `json:"height"`
	FPS            float64 `json:"fps"`
	VCodec         string  `json:"vcodec"`
	ACodec         string  `json:"acodec"`
	Filesize       int64   `json:"filesize"`
	FilesizeApprox int64   `json:"filesize_approx"`
}

// buildMetadataCommand builds the metadata-only query. No media bytes
// are transferred.
func (y *YTDLP) buildMetadataCommand(ctx context.Context, rawURL string) *exec.Cmd {
	args := make([]string, 0, 8)
	args = append(args, "-J", "--no-playlist", "--skip-download")

	if y.CookieFile != "" {
		args = append(args, "--cookies", y.CookieFile)
	}
	args = append(args, rawURL)

	cmd := exec.CommandContext(ctx, y.Bin, args...)
	logging.D(2, "Built metadata command for URL %q:\n%v", rawURL, cmd.String())
	return cmd
}

// FetchMetadata validates the URL, queries the extractor for metadata,
// and maps the result. Guarantee: on success the format list is
// non-empty.
func (y *YTDLP) FetchMetadata(ctx context.Context, rawURL string) (*models.VideoMetadata, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	cmd := y.buildMetadataCommand(ctx, rawURL)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: install yt-dlp and retry", errs.ErrToolMissing)
		}
		return nil, errs.Classify(stderr.String(),
			fmt.Errorf("%w: %v", errs.ErrExtraction, err))
	}

	return parseMetadata(stdout.Bytes())
}

// parseMetadata maps the extractor's JSON into VideoMetadata, keeping
// only usable formats (streams that carry audio or video). Zero usable
// formats is an extraction failure.
func parseMetadata(data []byte) (*models.VideoMetadata, error) {
	var raw rawInfo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: unreadable metadata: %v", errs.ErrExtraction, err)
	}

	meta := &models.VideoMetadata{
		Title:           raw.Title,
		Uploader:        raw.Uploader,
		DurationSeconds: int64(raw.Duration),
		ViewCount:       raw.ViewCount,
		LikeCount:       raw.LikeCount,
	}
	if meta.Uploader == "" {
		meta.Uploader = raw.Channel
	}
	if raw.UploadDate != "" {
		if t, err := parsing.ParseUploadDate(raw.UploadDate); err == nil {
			meta.UploadDate = t
		} else {
			logging.D(1, "Could not parse upload date %q: %v", raw.UploadDate, err)
		}
	}

	for _, f := range raw.Formats {
		info, ok := mapFormat(f)
		if !ok {
			continue
		}
		meta.Formats = append(meta.Formats, info)
	}

	if len(meta.Formats) == 0 {
		return nil, fmt.Errorf("%w: extractor returned no usable formats", errs.ErrExtraction)
	}
	return meta, nil
}

// mapFormat converts one raw format row. Storyboard/image tracks carry
// neither audio nor video and are dropped.
func mapFormat(f rawFormat) (models.FormatInfo, bool) {
	hasVideo := f.VCodec != "" && f.VCodec != "none"
	hasAudio := f.ACodec != "" && f.ACodec != "none"
	if !hasVideo && !hasAudio {
		return models.FormatInfo{}, false
	}

	size := f.Filesize
	if size == 0 {
		size = f.FilesizeApprox
	}

	return models.FormatInfo{
		ID:              f.FormatID,
		ResolutionLabel: resolutionLabel(f.Height, f.FPS, hasVideo),
		Height:          f.Height,
		FPS:             f.FPS,
		ApproxFilesize:  size,
		HasAudio:        hasAudio,
		HasVideo:        hasVideo,
	}, true
}

func resolutionLabel(height int, fps float64, hasVideo bool) string {
	if !hasVideo {
		return "audio only"
	}
	if height <= 0 {
		return "video"
	}
	if fps > 30 {
		return fmt.Sprintf("%dp%d", height, int(fps))
	}
	return fmt.Sprintf("%dp", height)
}
