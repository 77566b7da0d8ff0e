package uploadkit

// TypeResolver resolves MIME types to canonical extensions and file type
// categories. Implementations never fail: unmapped input yields the empty
// string or the unknown category.
type TypeResolver interface {
	// ExtensionForMIMEType returns the canonical extension for a MIME type,
	// lowercase without the dot, or "" when the type is unmapped
	ExtensionForMIMEType(mimeType string) string

	// CategoryForDataURI inspects the MIME type embedded in a data URI and
	// maps it to a category, defaulting to unknown
	CategoryForDataURI(dataURI string) Category
}

// TableResolver implements TypeResolver over a lookup [Table].
type TableResolver struct {
	table *Table
}

// NewTableResolver creates a resolver backed by the given table. A nil table
// selects the built-in default table.
func NewTableResolver(table *Table) *TableResolver {
	if table == nil {
		table = DefaultTable()
	}
	return &TableResolver{table: table}
}

// ExtensionForMIMEType returns the canonical extension for a MIME type, or
// "" when the type is unmapped.
func (r *TableResolver) ExtensionForMIMEType(mimeType string) string {
	return r.table.ExtensionForMIME(mimeType)
}

// CategoryForDataURI extracts the MIME type declared in the data URI and
// maps it to a category. Malformed URIs and unmapped types resolve to the
// unknown category.
func (r *TableResolver) CategoryForDataURI(dataURI string) Category {
	mimeType := MIMETypeFromDataURI(dataURI)
	if mimeType == "" {
		return Category{}
	}
	return KnownCategory(r.table.KindForMIME(mimeType))
}
