package utils

import "testing"

func TestUploadBase64ImageRejectsMalformedPayloads(t *testing.T) {
	payloads := []string{
		"",
		"no-comma-at-all",
		"junk,AAAA",              // comma present but no data: metadata
		"image/png;base64,AAAA",  // missing the data: scheme
		"data:image/png;base64",  // no comma
	}
	for _, payload := range payloads {
		if _, err := UploadBase64ImageToS3(payload, "meal-photos"); err == nil {
			t.Errorf("payload %q should be rejected", payload)
		}
	}
}
