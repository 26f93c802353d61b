package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlobsText(t *testing.T) {
	got := formatAll(t, BlobsText{}, 2,
		"0", "1", "5.5", "11", "12.7", "121", "1000", "1234", "1e100", "1e1000",
		"1e-400", "-5", "-0.5", "-1e-400", "1e9000000000000000", "-1e9000000000000000")
	want := []string{
		":blob:", ":blobthink:", ":blobsad:", ":bigblob:", ":bigblobthink:", ":blob-2:",
		":largeblobsleep-9:", ":hugeblobsad-10:", ":bigblobsleep-154:", ":greatblobyes-249:",
		":blob:", ":notlikeblobnom:", ":notlikeblob:", ":notlikeblob:",
		":blobfinity:", ":notlikeblobfinity:",
	}
	assert.Equal(t, want, got)
}

func TestBlobsShortText(t *testing.T) {
	got := formatAll(t, BlobsShortText{}, 2,
		"0", "5", "11", "1000", "1234", "1e100", "1e1000", "-5",
		"1e9000000000000000", "-1e9000000000000000")
	want := []string{
		":blob:", ":blobsad:", ":blob-2:", ":blobsleep-91:", ":blobsad-105:",
		":blobsleep-1685:", ":blobyes-2732:", ":unblobnom:",
		":blobfinity:", ":unblobfinity:",
	}
	assert.Equal(t, want, got)
}
