package transform

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// DetectCharset returns the most likely charset label of data, defaulting to utf-8.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// decodeContent converts non-UTF-8 content to UTF-8 using the detected charset.
// Valid UTF-8 is returned untouched; undecodable input falls back to the raw string.
func decodeContent(content string, detect bool) string {
	if !detect || utf8.ValidString(content) {
		return content
	}

	label := DetectCharset([]byte(content))
	reader, err := charset.NewReaderLabel(label, strings.NewReader(content))
	if err != nil {
		return content
	}

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return content
	}
	return string(decoded)
}
