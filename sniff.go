package uploadkit

import "github.com/gabriel-vasile/mimetype"

// DetectMIME sniffs the MIME type from raw content. Unrecognized content
// reports "application/octet-stream".
func DetectMIME(data []byte) string {
	return mimetype.Detect(data).String()
}

// DetectMIMEFromFile sniffs the MIME type of a file on disk. Intended for
// multipart uploads whose client-declared type is missing or not to be
// trusted; the record itself never reads the file.
func DetectMIMEFromFile(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	return mt.String(), nil
}
