package models

// FormatOptionKind marks what a presented format row contains.
type FormatOptionKind string

const (
	OptionVideoAudio FormatOptionKind = "video+audio"
	OptionVideoOnly  FormatOptionKind = "video only"
	OptionAudioOnly  FormatOptionKind = "audio only"
)

// FormatOption is one row of the user-facing quality list. Spec is
// either the synthetic "best" token, a raw format ID, or a yt-dlp
// selector expression.
type FormatOption struct {
	Spec      string
	Label     string
	SizeLabel string
	Kind      FormatOptionKind
}

// DownloadRequest is the ephemeral value handed to the orchestrator.
type DownloadRequest struct {
	URL        string
	FormatSpec string
	DestDir    string
	AudioOnly  bool
}

// DownloadResult reports the outcome of a successful download.
type DownloadResult struct {
	Path      string
	SizeBytes int64
}

// StatusUpdate models download progress passed through from the
// external downloader.
type StatusUpdate struct {
	URL     string
	Percent float64
	Stage   string
}
