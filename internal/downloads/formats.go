package downloads

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"tubegrab/internal/models"
)

// Format specifiers understood by yt-dlp.
const (
	// SpecBest is the synthetic "best quality" token shown to the user.
	// The orchestrator resolves it to SpecBestCombined.
	SpecBest = "best"
	// SpecBestCombined requests the best video and audio streams merged
	// into one playable file.
	SpecBestCombined = "bestvideo+bestaudio/best"
	// SpecBestAudio requests the best audio-only stream.
	SpecBestAudio = "bestaudio/best"
)

// BuildFormatOptions assembles the numbered quality list: the synthetic
// best option first, one row per extractor format, and a synthetic
// audio-only option last. Extractor ordering is preserved.
func BuildFormatOptions(formats []models.FormatInfo) []models.FormatOption {
	opts := make([]models.FormatOption, 0, len(formats)+2)

	opts = append(opts, models.FormatOption{
		Spec:  SpecBest,
		Label: "Best quality (video + audio)",
		Kind:  models.OptionVideoAudio,
	})

	for _, f := range formats {
		opts = append(opts, models.FormatOption{
			Spec:      f.ID,
			Label:     f.ResolutionLabel,
			SizeLabel: sizeLabel(f.ApproxFilesize),
			Kind:      optionKind(f),
		})
	}

	opts = append(opts, models.FormatOption{
		Spec:  SpecBestAudio,
		Label: "Audio only (best quality)",
		Kind:  models.OptionAudioOnly,
	})

	return opts
}

// ChooseFormat maps the user's 1-based selection onto an option.
// Non-numeric or out-of-range input is an error; the caller re-prompts.
func ChooseFormat(opts []models.FormatOption, input string) (models.FormatOption, error) {
	input = strings.TrimSpace(input)
	idx, err := strconv.Atoi(input)
	if err != nil {
		return models.FormatOption{}, fmt.Errorf("invalid choice %q: enter a number between 1 and %d", input, len(opts))
	}
	if idx < 1 || idx > len(opts) {
		return models.FormatOption{}, fmt.Errorf("choice %d out of range: enter a number between 1 and %d", idx, len(opts))
	}
	return opts[idx-1], nil
}

// ResolveFormatSpec turns a chosen option into the specifier passed to
// the downloader. The synthetic best token becomes a combined
// video+audio selection, and a video-only track gains the best audio
// stream so the output stays playable. Reports whether the result is
// audio-only.
func ResolveFormatSpec(opt models.FormatOption, formats []models.FormatInfo) (spec string, audioOnly bool) {
	switch opt.Spec {
	case SpecBest:
		return SpecBestCombined, false
	case SpecBestAudio:
		return SpecBestAudio, true
	}

	for _, f := range formats {
		if f.ID != opt.Spec {
			continue
		}
		if f.HasVideo && !f.HasAudio {
			return fmt.Sprintf("%s+bestaudio/%s", f.ID, f.ID), false
		}
		return f.ID, !f.HasVideo
	}
	return opt.Spec, opt.Kind == models.OptionAudioOnly
}

func optionKind(f models.FormatInfo) models.FormatOptionKind {
	switch {
	case f.HasVideo && f.HasAudio:
		return models.OptionVideoAudio
	case f.HasVideo:
		return models.OptionVideoOnly
	default:
		return models.OptionAudioOnly
	}
}

func sizeLabel(bytes int64) string {
	if bytes <= 0 {
		return "~"
	}
	return humanize.Bytes(uint64(bytes))
}
