package consts

// External programs.
const (
	YTDLP  = "yt-dlp"
	FFmpeg = "ffmpeg"
)

// Media file extensions recognized in the downloads directory.
var AllMediaExtensions = []string{".mp4", ".webm", ".mkv", ".m4a", ".mp3"}

// Partial-download extensions to skip when listing.
var SkippedExtensions = []string{".part", ".ytdl", ".temp"}

// DownloadStatus values recorded in the download history.
type DownloadStatus string

const (
	DLStatusPending     DownloadStatus = "Pending"
	DLStatusDownloading DownloadStatus = "Downloading"
	DLStatusCompleted   DownloadStatus = "Completed"
	DLStatusFailed      DownloadStatus = "Failed"
)

// File permissions.
const (
	PermsDir  = 0o755
	PermsFile = 0o644
)
