package uploadkit

// Upload transport error codes. The values mirror the conventional multipart
// upload error numbering and are treated as opaque integers: 0 means the
// transfer succeeded, anything else is a transport-level failure the caller
// branches on.
const (
	UploadErrOK            = 0
	UploadErrSizeExceeded  = 1
	UploadErrFormSize      = 2
	UploadErrPartial       = 3
	UploadErrNoFile        = 4
	UploadErrNoTmpDir      = 6
	UploadErrCantWrite     = 7
	UploadErrExtensionStop = 8
)

// MultipartDescriptor is the raw upload shape handed over by the multipart
// transport layer. All fields are client-controlled or transport-controlled
// and untrusted; normalization happens in [FromMultipart].
type MultipartDescriptor struct {
	// Name is the client-supplied filename, unsanitized
	Name string

	// TmpPath is the temporary path the transport wrote the body to
	TmpPath string

	// Size is the upload size in bytes as reported by the transport
	Size int64

	// Error is the transport error code, 0 on success
	Error int

	// Type is the client-declared MIME type, untrusted and optional
	Type string
}
