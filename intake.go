package uploadkit

import "strings"

// Intake normalizes upload input into FileRecord values with a fixed set of
// collaborators: a filename sanitizer, a type resolver, a lookup table, the
// synthesized-filename stem and the conversion extension set. An Intake is
// immutable after construction and safe for concurrent use.
type Intake struct {
	sanitizer      Sanitizer
	resolver       TypeResolver
	table          *Table
	stem           string
	conversionExts map[string]struct{}
	sniff          bool
}

// IntakeOption configures an Intake.
type IntakeOption func(*Intake)

// WithSanitizer sets the filename sanitizer.
func WithSanitizer(s Sanitizer) IntakeOption {
	return func(in *Intake) {
		if s != nil {
			in.sanitizer = s
		}
	}
}

// WithResolver sets the type resolver used for extension and category
// resolution on the data URI path.
func WithResolver(r TypeResolver) IntakeOption {
	return func(in *Intake) {
		if r != nil {
			in.resolver = r
		}
	}
}

// WithTable sets the lookup table used by ParseDataURI filename synthesis.
// It does not replace an explicitly configured resolver.
func WithTable(t *Table) IntakeOption {
	return func(in *Intake) {
		if t != nil {
			in.table = t
		}
	}
}

// WithFilenameStem sets the stem used when synthesizing a filename for a
// data URI that arrives without one.
func WithFilenameStem(stem string) IntakeOption {
	return func(in *Intake) {
		if stem != "" {
			in.stem = stem
		}
	}
}

// WithConversionExtensions replaces the set of image extensions reported as
// needing format conversion.
func WithConversionExtensions(exts ...string) IntakeOption {
	return func(in *Intake) {
		set := make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
			if ext != "" {
				set[ext] = struct{}{}
			}
		}
		in.conversionExts = set
	}
}

// WithSniffing enables MIME sniffing of the decoded payload for data URIs
// that declare no type. Off by default: the default behavior for a malformed
// prefix is an empty MIME type.
func WithSniffing(enabled bool) IntakeOption {
	return func(in *Intake) {
		in.sniff = enabled
	}
}

// NewIntake creates an Intake. Without options it uses the default
// sanitizer, the built-in lookup table and a table-backed resolver.
func NewIntake(opts ...IntakeOption) *Intake {
	in := &Intake{
		sanitizer:      DefaultSanitizer(),
		table:          DefaultTable(),
		stem:           defaultFilenameStem,
		conversionExts: defaultConversionExtensions,
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.resolver == nil {
		in.resolver = NewTableResolver(in.table)
	}
	return in
}

var defaultIntake = NewIntake()

// FromMultipart maps a multipart upload descriptor into a FileRecord using
// the intake's sanitizer. Semantics match the package-level [FromMultipart].
func (in *Intake) FromMultipart(d MultipartDescriptor, targetFilename string, category ...Category) FileRecord {
	return fromMultipart(d, targetFilename, in.sanitizer, category...)
}

// FromDataURI builds a FileRecord from a base64 data URI using the intake's
// sanitizer and resolver. Semantics match the package-level [FromDataURI],
// plus optional payload sniffing when enabled via [WithSniffing].
func (in *Intake) FromDataURI(dataURI, targetFilename string, category ...Category) FileRecord {
	return fromDataURI(dataURI, targetFilename, in.resolver, in.sanitizer, in.sniff, category...)
}

// ParseDataURI parses a data URI into a DataURIInfo using the intake's
// lookup table, sanitizer and filename stem. Semantics match the
// package-level [ParseDataURI].
func (in *Intake) ParseDataURI(dataURI, targetFilename string) *DataURIInfo {
	return parseDataURI(dataURI, targetFilename, in.table, in.sanitizer, in.stem)
}

// NeedsConversion reports whether the record requires format conversion
// under the intake's configured extension set. The package-level
// [FileRecord.NeedsFormatConversion] uses the fixed default set.
func (in *Intake) NeedsConversion(r FileRecord) bool {
	if r.Category().Kind() != FileTypeImage {
		return false
	}
	_, ok := in.conversionExts[r.Extension()]
	return ok
}
