package uploadkit

import (
	"errors"
	"testing"
)

func TestChecksumBytes(t *testing.T) {
	// The decoded payload of pngDataURI: the 8-byte PNG signature
	payload := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	tests := []struct {
		algorithm ChecksumAlgorithm
		want      string
	}{
		{ChecksumMD5, "e9dd2797018cad79186e03e8c5aec8dc"},
		{ChecksumSHA1, "4caece539b039b16e16206ea2478f8c5ffb2ca05"},
		{ChecksumSHA256, "4c4b6a3be1314ab86138bef4314dde022e600960d8689a2c8f8631802d20dab6"},
		{ChecksumCRC32, "7a0709a4"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			got, err := ChecksumBytes(payload, tt.algorithm)
			if err != nil {
				t.Fatalf("ChecksumBytes() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ChecksumBytes() = %s, want %s", got, tt.want)
			}
		})
	}

	t.Run("xxhash is deterministic", func(t *testing.T) {
		first, err := ChecksumBytes(payload, ChecksumXXHash)
		if err != nil {
			t.Fatalf("ChecksumBytes() error = %v", err)
		}
		if len(first) != 16 {
			t.Errorf("xxhash digest length = %d, want 16 hex chars", len(first))
		}
		second, _ := ChecksumBytes(payload, ChecksumXXHash)
		if first != second {
			t.Errorf("xxhash not deterministic: %s != %s", first, second)
		}
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		_, err := ChecksumBytes(payload, ChecksumAlgorithm("whirlpool"))
		if !errors.Is(err, ErrNotSupported) {
			t.Errorf("error = %v, want ErrNotSupported", err)
		}
	})
}

func TestDataURIInfoChecksum(t *testing.T) {
	t.Run("digest of decoded payload", func(t *testing.T) {
		info := ParseDataURI(pngDataURI, "")

		got, err := info.Checksum(ChecksumSHA256)
		if err != nil {
			t.Fatalf("Checksum() error = %v", err)
		}
		want := "4c4b6a3be1314ab86138bef4314dde022e600960d8689a2c8f8631802d20dab6"
		if got != want {
			t.Errorf("Checksum() = %s, want %s", got, want)
		}
	})

	t.Run("undecoded payload", func(t *testing.T) {
		info := ParseDataURI("data:image/png;base64,!!!", "")

		_, err := info.Checksum(ChecksumSHA256)
		if !errors.Is(err, ErrNoPayload) {
			t.Errorf("error = %v, want ErrNoPayload", err)
		}
	})
}
