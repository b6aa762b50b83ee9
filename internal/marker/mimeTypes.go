package marker

const defaultMIMEType = "application/octet-stream"

var mimeByExtension = map[string]string{
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"txt":  "text/plain",
	"md":   "text/markdown",
	"csv":  "text/csv",
	"html": "text/html",
	"xml":  "application/xml",
	"json": "application/json",
	"rtf":  "application/rtf",
	"odt":  "application/vnd.oasis.opendocument.text",
	"ods":  "application/vnd.oasis.opendocument.spreadsheet",
	"odp":  "application/vnd.oasis.opendocument.presentation",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"svg":  "image/svg+xml",
	"webp": "image/webp",
	"zip":  "application/zip",
	"mp3":  "audio/mpeg",
	"mp4":  "video/mp4",
}

// MIMEForExtension maps a bare file extension (no dot, any case) onto a
// MIME type, defaulting to application/octet-stream.
func MIMEForExtension(ext string) string {
	if m, ok := mimeByExtension[normalizeExtension(ext)]; ok {
		return m
	}
	return defaultMIMEType
}
