package downloads

import (
	"strings"
	"testing"

	"tubegrab/internal/models"
)

func sampleFormats() []models.FormatInfo {
	return []models.FormatInfo{
		{ID: "137", ResolutionLabel: "1080p", Height: 1080, HasVideo: true, HasAudio: false, ApproxFilesize: 250 << 20},
		{ID: "22", ResolutionLabel: "720p", Height: 720, HasVideo: true, HasAudio: true},
		{ID: "140", ResolutionLabel: "audio only", HasVideo: false, HasAudio: true, ApproxFilesize: 3 << 20},
	}
}

// TestBuildFormatOptions checks list shape: synthetic best first,
// extractor rows in order, synthetic audio last.
func TestBuildFormatOptions(t *testing.T) {
	t.Parallel()

	opts := BuildFormatOptions(sampleFormats())
	if len(opts) != 5 {
		t.Fatalf("expected 5 options, got %d", len(opts))
	}

	if opts[0].Spec != SpecBest || opts[0].Kind != models.OptionVideoAudio {
		t.Errorf("first option should be synthetic best, got %+v", opts[0])
	}
	if opts[1].Spec != "137" || opts[1].Kind != models.OptionVideoOnly {
		t.Errorf("second option should be format 137 video-only, got %+v", opts[1])
	}
	if opts[2].Spec != "22" || opts[2].Kind != models.OptionVideoAudio {
		t.Errorf("third option should be format 22, got %+v", opts[2])
	}
	if opts[3].Spec != "140" || opts[3].Kind != models.OptionAudioOnly {
		t.Errorf("fourth option should be format 140 audio-only, got %+v", opts[3])
	}
	if opts[4].Spec != SpecBestAudio || opts[4].Kind != models.OptionAudioOnly {
		t.Errorf("last option should be synthetic audio, got %+v", opts[4])
	}

	if opts[1].SizeLabel == "~" || opts[1].SizeLabel == "" {
		t.Errorf("format 137 should carry a size label, got %q", opts[1].SizeLabel)
	}
	if opts[2].SizeLabel != "~" {
		t.Errorf("unknown size should render as ~, got %q", opts[2].SizeLabel)
	}
}

// TestChooseFormat tests selection parsing and rejection.
func TestChooseFormat(t *testing.T) {
	t.Parallel()

	opts := BuildFormatOptions(sampleFormats())

	tests := []struct {
		name     string
		input    string
		wantSpec string
		wantErr  bool
	}{
		{name: "first", input: "1", wantSpec: SpecBest},
		{name: "whitespace tolerated", input: " 2 ", wantSpec: "137"},
		{name: "last", input: "5", wantSpec: SpecBestAudio},
		{name: "zero", input: "0", wantErr: true},
		{name: "out of range", input: "6", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ChooseFormat(opts, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Spec != tt.wantSpec {
				t.Errorf("spec = %q, want %q", got.Spec, tt.wantSpec)
			}
		})
	}
}

// TestResolveFormatSpec checks the merge rules: the synthetic best
// token and video-only tracks must resolve to combination specifiers.
func TestResolveFormatSpec(t *testing.T) {
	t.Parallel()

	formats := sampleFormats()

	spec, audioOnly := ResolveFormatSpec(models.FormatOption{Spec: SpecBest}, formats)
	if !strings.Contains(spec, "+") {
		t.Errorf("best must resolve to a combination specifier, got %q", spec)
	}
	if audioOnly {
		t.Error("best must not be audio-only")
	}

	spec, audioOnly = ResolveFormatSpec(models.FormatOption{Spec: "137"}, formats)
	if spec != "137+bestaudio/137" {
		t.Errorf("video-only track must gain an audio stream, got %q", spec)
	}
	if audioOnly {
		t.Error("video-only selection must not be audio-only")
	}

	spec, audioOnly = ResolveFormatSpec(models.FormatOption{Spec: "22"}, formats)
	if spec != "22" {
		t.Errorf("muxed track passes through unchanged, got %q", spec)
	}
	if audioOnly {
		t.Error("muxed track is not audio-only")
	}

	spec, audioOnly = ResolveFormatSpec(models.FormatOption{Spec: "140"}, formats)
	if spec != "140" || !audioOnly {
		t.Errorf("audio track: got spec %q audioOnly %v", spec, audioOnly)
	}

	spec, audioOnly = ResolveFormatSpec(models.FormatOption{Spec: SpecBestAudio, Kind: models.OptionAudioOnly}, formats)
	if spec != SpecBestAudio || !audioOnly {
		t.Errorf("synthetic audio: got spec %q audioOnly %v", spec, audioOnly)
	}
}
