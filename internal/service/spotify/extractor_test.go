package spotify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractPreviewURL tests the extractPreviewURL function.
func TestExtractPreviewURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		expected string
		found    bool
	}{
		{
			name:     "compact fragment",
			document: `{"audioPreview":{"url":"https://p.scdn.co/mp3-preview/abc"}}`,
			expected: "https://p.scdn.co/mp3-preview/abc",
			found:    true,
		},
		{
			name:     "fragment with whitespace",
			document: `{"audioPreview": { "url" : "https://p.scdn.co/mp3-preview/abc" }}`,
			expected: "https://p.scdn.co/mp3-preview/abc",
			found:    true,
		},
		{
			name: "fragment buried in page markup",
			document: `<html><script id="resource" type="application/json">` +
				`{"entity":{"audioPreview":{"url":"https://p.scdn.co/mp3-preview/xyz?cid=1"}}}` +
				`</script></html>`,
			expected: "https://p.scdn.co/mp3-preview/xyz?cid=1",
			found:    true,
		},
		{
			name:     "no audioPreview fragment",
			document: `{"someOtherData": "value"}`,
			found:    false,
		},
		{
			name:     "audioPreview with empty url",
			document: `{"audioPreview":{"url":""}}`,
			found:    false,
		},
		{
			name:     "audioPreview with relative url",
			document: `{"audioPreview":{"url":"/mp3-preview/abc"}}`,
			found:    false,
		},
		{
			name:     "audioPreview with http url",
			document: `{"audioPreview":{"url":"http://p.scdn.co/mp3-preview/abc"}}`,
			found:    false,
		},
		{
			name:     "empty document",
			document: "",
			found:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, found := extractPreviewURL(tt.document)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, result)
		})
	}
}
