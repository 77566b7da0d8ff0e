package uploadkit_test

import (
	"fmt"

	"github.com/gobeaver/uploadkit"
)

func ExampleFromMultipart() {
	rec := uploadkit.FromMultipart(uploadkit.MultipartDescriptor{
		Name:    "../../Vacation Photo.JPG",
		TmpPath: "/tmp/upload-182734",
		Size:    482013,
		Error:   0,
		Type:    "image/jpeg",
	}, "", uploadkit.KnownCategory(uploadkit.FileTypeImage))

	fmt.Println(rec.Filename())
	fmt.Println(rec.Extension())
	fmt.Println(rec.CategoryLabel())
	fmt.Println(rec.IsUploadSuccessful())
	// Output:
	// Vacation Photo.JPG
	// jpg
	// Image
	// true
}

func ExampleFromDataURI() {
	resolver := uploadkit.NewTableResolver(nil)
	rec := uploadkit.FromDataURI("data:image/png;base64,iVBORw0KGgo=", "avatar", resolver)

	fmt.Println(rec.Filename())
	fmt.Println(rec.Extension())
	fmt.Println(rec.MIMEType())
	// Output:
	// avatar
	// png
	// image/png
}

func ExampleParseDataURI() {
	info := uploadkit.ParseDataURI("data:image/png;base64,iVBORw0KGgo=", "")

	fmt.Println(info.Filename())
	fmt.Println(info.FormattedSize())
	// Output:
	// data_uri_file.png
	// 8 B
}

func ExampleFileRecord_WithFilename() {
	rec := uploadkit.FromMultipart(uploadkit.MultipartDescriptor{
		Name:    "report.pdf",
		TmpPath: "/tmp/upload-1",
		Size:    2048,
	}, "")

	// Collision resolution downstream: derive a renamed copy
	renamed := rec.WithFilename("report-2.pdf")

	fmt.Println(rec.Filename())
	fmt.Println(renamed.Filename())
	// Output:
	// report.pdf
	// report-2.pdf
}
