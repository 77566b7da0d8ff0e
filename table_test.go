package uploadkit

import "testing"

func TestDefaultTableLookups(t *testing.T) {
	table := DefaultTable()

	t.Run("extension for MIME", func(t *testing.T) {
		tests := []struct {
			mimeType string
			want     string
		}{
			{"image/jpeg", "jpg"},
			{"image/png", "png"},
			{"application/pdf", "pdf"},
			{"audio/mpeg", "mp3"},
			{"video/quicktime", "mov"},
			{"application/zip", "zip"},
			{"image/PNG", "png"},
			{"image/png; charset=binary", "png"},
			{"application/x-unmapped", ""},
			{"", ""},
		}
		for _, tt := range tests {
			if got := table.ExtensionForMIME(tt.mimeType); got != tt.want {
				t.Errorf("ExtensionForMIME(%q) = %q, want %q", tt.mimeType, got, tt.want)
			}
		}
	})

	t.Run("MIME for extension", func(t *testing.T) {
		tests := []struct {
			ext  string
			want string
		}{
			{"png", "image/png"},
			{".png", "image/png"},
			{"PDF", "application/pdf"},
			{"heic", "image/heic"},
			{"xyz", ""},
		}
		for _, tt := range tests {
			if got := table.MIMEForExtension(tt.ext); got != tt.want {
				t.Errorf("MIMEForExtension(%q) = %q, want %q", tt.ext, got, tt.want)
			}
		}
	})

	t.Run("kind for MIME", func(t *testing.T) {
		tests := []struct {
			mimeType string
			want     FileType
		}{
			{"image/heic", FileTypeImage},
			{"application/pdf", FileTypeDocument},
			{"video/mp4", FileTypeVideo},
			{"audio/flac", FileTypeAudio},
			{"application/gzip", FileTypeArchive},
			{"application/x-unmapped", FileTypeUnknown},
		}
		for _, tt := range tests {
			if got := table.KindForMIME(tt.mimeType); got != tt.want {
				t.Errorf("KindForMIME(%q) = %v, want %v", tt.mimeType, got, tt.want)
			}
		}
	})
}

func TestNewTable(t *testing.T) {
	table := NewTable(map[string]TypeInfo{
		"Application/X-Custom": {Extension: ".CST", Kind: FileTypeArchive},
	})

	if got := table.ExtensionForMIME("application/x-custom"); got != "cst" {
		t.Errorf("ExtensionForMIME() = %q, want normalized %q", got, "cst")
	}
	if got := table.MIMEForExtension("cst"); got != "application/x-custom" {
		t.Errorf("MIMEForExtension() = %q, want %q", got, "application/x-custom")
	}
	if got := table.KindForMIME("application/x-custom"); got != FileTypeArchive {
		t.Errorf("KindForMIME() = %v, want archive", got)
	}

	t.Run("unmapped entries degrade to zero values", func(t *testing.T) {
		if _, ok := table.Lookup("image/png"); ok {
			t.Error("Lookup() found an entry that was never registered")
		}
		if got := table.KindForMIME("image/png"); got != FileTypeUnknown {
			t.Errorf("KindForMIME() = %v, want unknown", got)
		}
	})
}

func TestTableResolver(t *testing.T) {
	resolver := NewTableResolver(nil)

	if got := resolver.ExtensionForMIMEType("image/webp"); got != "webp" {
		t.Errorf("ExtensionForMIMEType() = %q, want %q", got, "webp")
	}
	if got := resolver.ExtensionForMIMEType("application/x-unmapped"); got != "" {
		t.Errorf("ExtensionForMIMEType() = %q, want empty", got)
	}

	t.Run("category from data URI", func(t *testing.T) {
		tests := []struct {
			name string
			uri  string
			want FileType
		}{
			{"image", pngDataURI, FileTypeImage},
			{"document", "data:application/pdf;base64,AAAA", FileTypeDocument},
			{"unmapped MIME", "data:application/x-blob;base64,AAAA", FileTypeUnknown},
			{"malformed", "garbage", FileTypeUnknown},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := resolver.CategoryForDataURI(tt.uri).Kind(); got != tt.want {
					t.Errorf("CategoryForDataURI(%q).Kind() = %v, want %v", tt.uri, got, tt.want)
				}
			})
		}
	})
}
