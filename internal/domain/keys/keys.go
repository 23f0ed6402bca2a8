package keys

// Logging
const (
	DebugLevel string = "debug"
)

// Program flags
const (
	SettingsFile  string = "settings-file"
	CookieBrowser string = "cookie-browser"
	YTDLPPath     string = "ytdlp-path"
	Retries       string = "download-retries"
	DownloadDir   string = "download-dir"
)
