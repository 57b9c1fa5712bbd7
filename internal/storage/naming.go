package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxBaseNameLength = 50

// TaskObjectName builds tasks/<task_id>/<sanitized base>_<uuid><ext>
func TaskObjectName(taskID uuid.UUID, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := SanitizeFileName(strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName)))
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("tasks/%s/%s_%s%s", taskID, base, uuid.NewString(), SanitizeFileName(ext))
}

// SanitizeFileName drops path separators and characters that are unsafe in object keys
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")

	for _, char := range []string{"/", "\\", "..", "<", ">", ":", "\"", "|", "?", "*", "\x00"} {
		name = strings.ReplaceAll(name, char, "")
	}

	if len(name) > maxBaseNameLength {
		name = name[:maxBaseNameLength]
	}
	return name
}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".zip":  "application/zip",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".json": "application/json",
	".xml":  "application/xml",
	".csv":  "text/csv",
}

// ContentType guesses a MIME type from a file name's extension
func ContentType(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}
