package uploadkit

import (
	"path"
	"strings"
)

// Sanitizer strips unsafe characters and path segments from a candidate
// filename.
type Sanitizer interface {
	Sanitize(filename string) string
}

// SanitizerFunc adapts a plain function to the Sanitizer interface.
type SanitizerFunc func(string) string

// Sanitize calls f(filename).
func (f SanitizerFunc) Sanitize(filename string) string {
	return f(filename)
}

// MaxFilenameLength is the default cap applied to sanitized filenames.
const MaxFilenameLength = 255

// Characters considered dangerous in filenames
const dangerousFilenameRunes = "/\\;&|><$`!*\"'?:"

// DefaultSanitizer returns the sanitizer used by the package-level factory
// functions.
func DefaultSanitizer() Sanitizer {
	return SanitizerFunc(SanitizeFilename)
}

// LimitedSanitizer returns a sanitizer with a custom filename length cap.
// Non-positive limits fall back to MaxFilenameLength.
func LimitedSanitizer(maxLength int) Sanitizer {
	if maxLength <= 0 {
		maxLength = MaxFilenameLength
	}
	return SanitizerFunc(func(name string) string {
		return sanitizeFilename(name, maxLength)
	})
}

// SanitizeFilename strips directory components, control characters and shell
// metacharacters from a candidate filename. Dot-dot runs are collapsed so no
// path traversal segment survives. An empty result sanitizes to "file".
func SanitizeFilename(name string) string {
	return sanitizeFilename(name, MaxFilenameLength)
}

func sanitizeFilename(name string, maxLength int) string {
	// Client-supplied names use either separator style
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(strings.TrimSpace(name))
	if name == "/" || name == "." || name == ".." {
		name = ""
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r < 0x20 || r == 0x7f:
			// control characters are dropped outright
		case strings.ContainsRune(dangerousFilenameRunes, r):
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	name = b.String()

	for strings.Contains(name, "..") {
		name = strings.ReplaceAll(name, "..", ".")
	}
	name = strings.Trim(name, ". ")

	if len(name) > maxLength {
		name = truncateFilename(name, maxLength)
	}
	if name == "" {
		name = "file"
	}
	return name
}

// truncateFilename shortens a name to the limit, keeping the extension when
// it fits.
func truncateFilename(name string, limit int) string {
	ext := path.Ext(name)
	if ext == "" || len(ext) >= limit {
		return name[:limit]
	}
	return name[:limit-len(ext)] + ext
}
