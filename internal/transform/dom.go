package transform

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// DOMView parses content as HTML on first CSS query.
type DOMView struct {
	content string
	opts    viewOptions
	doc     *lazy[*goquery.Document]
}

// NewDOMView wraps content without parsing it.
func NewDOMView(content string, opts ...ViewOption) *DOMView {
	v := &DOMView{content: content, opts: buildViewOptions(opts)}
	v.doc = newLazy(v.parse)
	return v
}

func (v *DOMView) parse() (*goquery.Document, error) {
	v.opts.hook.fire("css", len(v.content))

	if err := v.opts.checkSize(v.content); err != nil {
		return nil, &ViewError{View: "css", Op: "parse", Err: err}
	}

	html := decodeContent(v.content, v.opts.detectCharset)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ViewError{View: "css", Op: "parse", Err: err}
	}
	return doc, nil
}

// CSS returns the outer HTML of every node matching selector, in document order.
func (v *DOMView) CSS(selector string) ([]string, error) {
	var fragments []string
	err := v.opts.guard.Do(func() error {
		doc, err := v.doc.get()
		if err != nil {
			return err
		}

		// goquery alone treats an invalid selector as matching nothing
		matcher, err := cascadia.Compile(selector)
		if err != nil {
			return &ViewError{View: "css", Op: "select", Err: err}
		}

		selection := doc.FindMatcher(matcher)
		fragments = make([]string, 0, selection.Length())
		var renderErr error
		selection.EachWithBreak(func(_ int, s *goquery.Selection) bool {
			html, err := goquery.OuterHtml(s)
			if err != nil {
				renderErr = &ViewError{View: "css", Op: "render", Err: err}
				return false
			}
			fragments = append(fragments, html)
			return true
		})
		return renderErr
	})
	if err != nil {
		return nil, err
	}
	return fragments, nil
}
