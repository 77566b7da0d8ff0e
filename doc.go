// Package uploadkit normalizes file uploads from two intake sources into a
// single immutable record shape.
//
// Multipart form uploads and base64 data URIs arrive with different raw
// shapes; both converge on [FileRecord], a value object carrying the
// sanitized filename, lowercase extension, MIME type, file type category and
// upload source. Downstream collaborators (storage, image conversion,
// presentation) branch on the record instead of re-inspecting raw input.
//
// # Basic Usage
//
//	// Multipart form upload
//	rec := uploadkit.FromMultipart(uploadkit.MultipartDescriptor{
//	    Name:    "Photo.JPG",
//	    TmpPath: "/tmp/upload-182734",
//	    Size:    482013,
//	    Error:   0,
//	}, "")
//
//	if !rec.IsUploadSuccessful() {
//	    // branch on rec.UploadError()
//	}
//
//	// Base64 data URI
//	rec = uploadkit.FromDataURI("data:image/png;base64,iVBORw0KGgo=", "avatar",
//	    uploadkit.NewTableResolver(nil))
//
//	rec.Extension()     // "png"
//	rec.CategoryLabel() // "Image"
//
// The standalone [ParseDataURI] entry point additionally decodes the payload
// and computes its size; use it when a record is not needed yet:
//
//	info := uploadkit.ParseDataURI("data:image/png;base64,iVBORw0KGgo=", "")
//	info.Filename()      // "data_uri_file.png"
//	info.FormattedSize() // "8 B"
//
// # Degradation Policy
//
// Malformed input never produces an error. A data URI without a well-formed
// prefix yields an empty MIME type, an undecodable payload yields an unknown
// size, an unmapped MIME type resolves to the unknown category, and a
// transport failure is surfaced as data through [FileRecord.UploadError].
// Callers decide what to reject.
//
// # Configuration
//
// Intake behavior can be tuned per [Intake] instance via functional options,
// or loaded from the environment with the UPLOADKIT_ prefix:
//
//	cfg, err := uploadkit.GetConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	in := uploadkit.NewIntakeFromConfig(cfg)
//	rec := in.FromDataURI(uri, "avatar")
package uploadkit
