package transform

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// invisibleSelector matches elements whose content is never rendered as text.
const invisibleSelector = "script, style, noscript, template"

// TextExtractor strips markup down to visible text.
type TextExtractor struct {
	opts viewOptions
}

// NewTextExtractor creates an extractor sharing the views' size and charset settings.
func NewTextExtractor(opts ...ViewOption) *TextExtractor {
	return &TextExtractor{opts: buildViewOptions(opts)}
}

// Text accepts a string or a list of strings (joined without separator) and
// returns its visible text, one trimmed non-empty line per line.
func (e *TextExtractor) Text(input any) (string, error) {
	markup, err := joinMarkup(input)
	if err != nil {
		return "", &ExtractionError{Err: err}
	}
	if err := e.opts.checkSize(markup); err != nil {
		return "", &ExtractionError{Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decodeContent(markup, e.opts.detectCharset)))
	if err != nil {
		return "", &ExtractionError{Err: err}
	}
	doc.Find(invisibleSelector).Remove()

	return compactLines(doc.Text()), nil
}

// ExtractText is Text with default options.
func ExtractText(input any) (string, error) {
	return NewTextExtractor().Text(input)
}

func joinMarkup(input any) (string, error) {
	switch v := input.(type) {
	case string:
		return v, nil
	case []string:
		return strings.Join(v, ""), nil
	case []any:
		var b strings.Builder
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return "", fmt.Errorf("%w: item %d is %T, not a string", ErrUnsupportedInput, i, item)
			}
			b.WriteString(s)
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedInput, input)
	}
}

// compactLines trims every line and drops the blank ones.
func compactLines(text string) string {
	lines := SplitLines(text)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, "\n")
}
