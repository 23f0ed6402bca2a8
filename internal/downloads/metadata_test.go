package downloads

import (
	"context"
	"errors"
	"testing"

	"tubegrab/internal/errs"
)

const sampleInfoJSON = `{
	"title": "Test",
	"uploader": "Test Channel",
	"upload_date": "20240101",
	"duration": 120,
	"view_count": 1500000,
	"like_count": 42000,
	"formats": [
		{"format_id": "sb0", "format_note": "storyboard", "vcodec": "none", "acodec": "none"},
		{"format_id": "140", "vcodec": "none", "acodec": "mp4a.40.2", "filesize": 1843200},
		{"format_id": "137", "height": 1080, "fps": 30, "vcodec": "avc1.640028", "acodec": "none", "filesize_approx": 262144000},
		{"format_id": "299", "height": 1080, "fps": 60, "vcodec": "avc1.64002a", "acodec": "none"}
	]
}`

// TestParseMetadata checks JSON mapping and storyboard filtering.
func TestParseMetadata(t *testing.T) {
	t.Parallel()

	meta, err := parseMetadata([]byte(sampleInfoJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if meta.Title != "Test" {
		t.Errorf("title = %q", meta.Title)
	}
	if meta.Uploader != "Test Channel" {
		t.Errorf("uploader = %q", meta.Uploader)
	}
	if meta.DurationSeconds != 120 {
		t.Errorf("duration = %d", meta.DurationSeconds)
	}
	if meta.ViewCount != 1500000 || meta.LikeCount != 42000 {
		t.Errorf("counts = %d / %d", meta.ViewCount, meta.LikeCount)
	}
	if meta.UploadDate.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("upload date = %v", meta.UploadDate)
	}

	if len(meta.Formats) != 3 {
		t.Fatalf("expected 3 usable formats (storyboard dropped), got %d", len(meta.Formats))
	}

	audio := meta.Formats[0]
	if audio.ID != "140" || audio.HasVideo || !audio.HasAudio {
		t.Errorf("format 140 mapping wrong: %+v", audio)
	}
	if audio.ResolutionLabel != "audio only" {
		t.Errorf("audio label = %q", audio.ResolutionLabel)
	}
	if audio.ApproxFilesize != 1843200 {
		t.Errorf("audio filesize = %d", audio.ApproxFilesize)
	}

	video := meta.Formats[1]
	if video.ID != "137" || !video.HasVideo || video.HasAudio {
		t.Errorf("format 137 mapping wrong: %+v", video)
	}
	if video.ResolutionLabel != "1080p" {
		t.Errorf("1080p label = %q", video.ResolutionLabel)
	}
	if video.ApproxFilesize != 262144000 {
		t.Errorf("approx filesize not used: %d", video.ApproxFilesize)
	}

	hfr := meta.Formats[2]
	if hfr.ResolutionLabel != "1080p60" {
		t.Errorf("high-fps label = %q", hfr.ResolutionLabel)
	}
}

// TestParseMetadataNoUsableFormats checks zero usable formats is an
// extraction failure.
func TestParseMetadataNoUsableFormats(t *testing.T) {
	t.Parallel()

	onlyStoryboards := `{"title": "x", "formats": [{"format_id": "sb0", "vcodec": "none", "acodec": "none"}]}`
	if _, err := parseMetadata([]byte(onlyStoryboards)); !errors.Is(err, errs.ErrExtraction) {
		t.Errorf("expected ErrExtraction, got %v", err)
	}

	empty := `{"title": "x", "formats": []}`
	if _, err := parseMetadata([]byte(empty)); !errors.Is(err, errs.ErrExtraction) {
		t.Errorf("expected ErrExtraction for empty formats, got %v", err)
	}
}

// TestParseMetadataGarbage checks undecodable output maps to the
// extraction kind.
func TestParseMetadataGarbage(t *testing.T) {
	t.Parallel()

	if _, err := parseMetadata([]byte("<html>not json</html>")); !errors.Is(err, errs.ErrExtraction) {
		t.Errorf("expected ErrExtraction, got %v", err)
	}
}

// TestFetchMetadataRejectsInvalidURL checks validation happens before
// any command is run.
func TestFetchMetadataRejectsInvalidURL(t *testing.T) {
	t.Parallel()

	y := &YTDLP{Bin: "/nonexistent/definitely-not-a-binary"}
	_, err := y.FetchMetadata(context.Background(), "https://example.com/video")
	if !errors.Is(err, errs.ErrInvalidURL) {
		t.Errorf("expected ErrInvalidURL, got %v", err)
	}
}
