package consts

// Tables
const (
	DBDownloads = "downloads"
)

// Download table columns
const (
	QDLID         = "id"
	QDLURL        = "url"
	QDLTitle      = "title"
	QDLFormatSpec = "format_spec"
	QDLPath       = "path"
	QDLSizeBytes  = "size_bytes"
	QDLStatus     = "status"
	QDLCreatedAt  = "created_at"
)
