package uploadkit

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
)

const (
	dataURIScheme = "data:"
	base64Marker  = ";base64,"

	// Stem used when a data URI arrives without a target filename
	defaultFilenameStem = "data_uri_file"
)

// MIMETypeFromDataURI extracts the media type declared in a data URI prefix
// of the form "data:<type>;...". Returns "" when the prefix is malformed;
// this is a degraded state, not an error.
func MIMETypeFromDataURI(dataURI string) string {
	if !strings.HasPrefix(dataURI, dataURIScheme) {
		return ""
	}
	rest := dataURI[len(dataURIScheme):]
	end := strings.IndexByte(rest, ';')
	if end <= 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(rest[:end]))
}

// decodeDataURIPayload decodes the base64 payload after the first ";base64,"
// marker. The second return value is false when the marker is missing or the
// payload is not valid padded base64.
func decodeDataURIPayload(dataURI string) ([]byte, bool) {
	marker := strings.Index(dataURI, base64Marker)
	if marker < 0 {
		return nil, false
	}
	payload, err := base64.StdEncoding.DecodeString(dataURI[marker+len(base64Marker):])
	if err != nil {
		return nil, false
	}
	return payload, true
}

// DataURIInfo is the normalized result of parsing a base64 data URI without
// a resolver: filename and extension are derived locally and the payload is
// decoded eagerly to compute the size. Contrast [FromDataURI], which defers
// sizing and consults a [TypeResolver].
type DataURIInfo struct {
	filename  string
	mimeType  string
	extension string
	size      *int64
	payload   []byte
}

// ParseDataURI parses a data URI into a DataURIInfo using the default lookup
// table and sanitizer.
//
// When targetFilename is empty a name is synthesized from the stem
// "data_uri_file" plus the table extension for the declared MIME type, when
// mapped. The name, synthesized or supplied, is sanitized before the final
// extension is derived from it, so a sanitizer that alters the suffix is
// reflected in the result. An undecodable payload leaves the size unknown;
// decode errors are swallowed, not propagated.
func ParseDataURI(dataURI, targetFilename string) *DataURIInfo {
	return defaultIntake.ParseDataURI(dataURI, targetFilename)
}

func parseDataURI(dataURI, targetFilename string, table *Table, s Sanitizer, stem string) *DataURIInfo {
	info := &DataURIInfo{}

	marker := strings.Index(dataURI, base64Marker)
	if strings.HasPrefix(dataURI, dataURIScheme) && marker >= len(dataURIScheme) {
		meta := dataURI[len(dataURIScheme):marker]
		if i := strings.IndexByte(meta, ';'); i >= 0 {
			meta = meta[:i]
		}
		info.mimeType = strings.ToLower(strings.TrimSpace(meta))
	}

	if payload, ok := decodeDataURIPayload(dataURI); ok {
		size := int64(len(payload))
		info.payload = payload
		info.size = &size
	}

	if targetFilename == "" {
		targetFilename = stem
		if ext := table.ExtensionForMIME(info.mimeType); ext != "" {
			targetFilename += "." + ext
		}
	}
	// Sanitization runs after name synthesis; the extension comes from the
	// sanitized name, not from the table lookup.
	info.filename = s.Sanitize(targetFilename)
	info.extension = extensionOf(info.filename)

	return info
}

// Filename returns the sanitized (possibly synthesized) filename.
func (i *DataURIInfo) Filename() string { return i.filename }

// MIMEType returns the declared MIME type, or "" when the URI carried no
// well-formed "data:<type>;base64," prefix.
func (i *DataURIInfo) MIMEType() string { return i.mimeType }

// Extension returns the extension of the sanitized filename, lowercase
// without the dot.
func (i *DataURIInfo) Extension() string { return i.extension }

// Size returns the decoded payload size in bytes. The second return value is
// false when the payload did not decode.
func (i *DataURIInfo) Size() (int64, bool) {
	if i.size == nil {
		return 0, false
	}
	return *i.size, true
}

// Payload returns the decoded payload bytes, nil when the URI did not
// decode. The slice is owned by the DataURIInfo and must not be modified.
func (i *DataURIInfo) Payload() []byte { return i.payload }

// FormattedSize returns the payload size as a human-readable string, or
// "Unknown size" when the payload did not decode.
func (i *DataURIInfo) FormattedSize() string {
	if i.size == nil {
		return "Unknown size"
	}
	return FormatSize(*i.size)
}

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count using the largest binary (1024-based) unit
// that keeps the scaled value under 1024, capped at terabytes. The value is
// rounded to two decimal places and printed without trailing zeros.
func FormatSize(size int64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[unit]
}
