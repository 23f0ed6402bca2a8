package errs

import (
	"errors"
	"strings"
	"testing"
)

// TestClassify tests the mapping of yt-dlp output to taxonomy kinds.
func TestClassify(t *testing.T) {
	t.Parallel()

	fallback := errors.New("fallback")

	tests := []struct {
		name   string
		output string
		want   error
	}{
		{
			name:   "ffmpeg missing",
			output: "ERROR: ffprobe and ffmpeg not found. Please install or provide the path",
			want:   ErrMuxerMissing,
		},
		{
			name:   "format unavailable",
			output: "ERROR: [youtube] abc123: Requested format is not available",
			want:   ErrFormatUnavailable,
		},
		{
			name:   "private video",
			output: "ERROR: [youtube] abc123: Private video. Sign in if you've been granted access",
			want:   ErrExtraction,
		},
		{
			name:   "removed video",
			output: "ERROR: [youtube] abc123: Video unavailable",
			want:   ErrExtraction,
		},
		{
			name:   "age restricted",
			output: "ERROR: Sign in to confirm your age. This video may be inappropriate",
			want:   ErrExtraction,
		},
		{
			name:   "dns failure",
			output: "ERROR: Unable to download webpage: <urlopen error [Errno -3] Temporary failure in name resolution>",
			want:   ErrNetwork,
		},
		{
			name:   "retries exhausted",
			output: "ERROR: giving up after 10 retries",
			want:   ErrNetwork,
		},
		{
			name:   "unknown output falls back",
			output: "something entirely unexpected",
			want:   fallback,
		},
		{
			name:   "empty output falls back",
			output: "",
			want:   fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tt.output, fallback)
			if !errors.Is(got, tt.want) {
				t.Errorf("Classify(%q) = %v, want kind %v", tt.output, got, tt.want)
			}
		})
	}
}

// TestClassifyKeepsDetail checks the matched ERROR line survives as detail.
func TestClassifyKeepsDetail(t *testing.T) {
	t.Parallel()

	out := "[download] something\nERROR: [youtube] xyz: Video unavailable"
	err := Classify(out, errors.New("fallback"))
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
	if want := "Video unavailable"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should contain %q", err.Error(), want)
	}
}
