package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// TreeView parses content with an HTML-tolerant parser on first XPath query.
type TreeView struct {
	content string
	opts    viewOptions
	root    *lazy[*html.Node]
}

// NewTreeView wraps content without parsing it.
func NewTreeView(content string, opts ...ViewOption) *TreeView {
	v := &TreeView{content: content, opts: buildViewOptions(opts)}
	v.root = newLazy(v.parse)
	return v
}

func (v *TreeView) parse() (*html.Node, error) {
	v.opts.hook.fire("xpath", len(v.content))

	if err := v.opts.checkSize(v.content); err != nil {
		return nil, &ViewError{View: "xpath", Op: "parse", Err: err}
	}

	root, err := htmlquery.Parse(strings.NewReader(decodeContent(v.content, v.opts.detectCharset)))
	if err != nil {
		return nil, &ViewError{View: "xpath", Op: "parse", Err: err}
	}
	return root, nil
}

// XPath evaluates expr and returns each matching node as pretty-printed HTML.
// Attribute and text nodes yield their string value; scalar expressions
// yield a single formatted value.
func (v *TreeView) XPath(expr string) (result []string, err error) {
	root, err := v.root.get()
	if err != nil {
		return nil, err
	}

	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, &ViewError{View: "xpath", Op: "compile", Err: err}
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &ViewError{View: "xpath", Op: "evaluate", Err: fmt.Errorf("%v", r)}
		}
	}()

	switch value := compiled.Evaluate(htmlquery.CreateXPathNavigator(root)).(type) {
	case *xpath.NodeIterator:
		result = []string{}
		for value.MoveNext() {
			result = append(result, serializeMatch(value.Current()))
		}
		return result, nil
	case float64:
		return []string{strconv.FormatFloat(value, 'f', -1, 64)}, nil
	case bool:
		return []string{strconv.FormatBool(value)}, nil
	case string:
		return []string{value}, nil
	default:
		return nil, &ViewError{View: "xpath", Op: "evaluate", Err: fmt.Errorf("unexpected result %T", value)}
	}
}

func serializeMatch(nav xpath.NodeNavigator) string {
	switch nav.NodeType() {
	case xpath.AttributeNode, xpath.TextNode:
		return nav.Value()
	}

	node, ok := nav.(*htmlquery.NodeNavigator)
	if !ok {
		return nav.Value()
	}
	return PrettyHTML(node.Current())
}
