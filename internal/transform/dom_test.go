package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDOMViewCSS(t *testing.T) {
	view := NewDOMView("<p>A</p><p>B</p>")

	fragments, err := view.CSS("p")
	require.NoError(t, err)
	assert.Equal(t, []string{"<p>A</p>", "<p>B</p>"}, fragments)
}

func TestDOMViewCSSDocumentOrder(t *testing.T) {
	view := NewDOMView(`<ul><li class="x">1</li><li>2</li><li class="x">3</li></ul><div class="x">4</div>`)

	fragments, err := view.CSS(".x")
	require.NoError(t, err)
	assert.Equal(t, []string{
		`<li class="x">1</li>`,
		`<li class="x">3</li>`,
		`<div class="x">4</div>`,
	}, fragments)
}

func TestDOMViewCSSNoMatch(t *testing.T) {
	view := NewDOMView("<p>A</p>")

	fragments, err := view.CSS("table")
	require.NoError(t, err)
	assert.Empty(t, fragments)
}

func TestDOMViewInvalidSelector(t *testing.T) {
	view := NewDOMView("<p>A</p>")

	_, err := view.CSS("p[")
	require.Error(t, err)

	var viewErr *ViewError
	require.True(t, errors.As(err, &viewErr))
	assert.Equal(t, "css", viewErr.View)
	assert.Equal(t, "select", viewErr.Op)
}

func TestDOMViewParsesOnce(t *testing.T) {
	counter := newParseCounter()
	view := NewDOMView("<p>A</p><b>B</b>", WithParseHook(counter.hook))

	assert.Equal(t, 0, counter.count("css"))

	_, err := view.CSS("p")
	require.NoError(t, err)
	_, err = view.CSS("b")
	require.NoError(t, err)

	assert.Equal(t, 1, counter.count("css"))
}

func TestDOMViewSizeLimit(t *testing.T) {
	view := NewDOMView("<p>"+strings.Repeat("x", 100)+"</p>", WithMaxContentBytes(10))

	_, err := view.CSS("p")
	assert.ErrorIs(t, err, ErrContentTooLarge)
	assert.True(t, IsFault(err))
}

func TestDOMViewDeepNesting(t *testing.T) {
	const depth = 5000
	// unclosed tags, as in broken real-world pages
	content := strings.Repeat("<div>", depth) + "deep"

	before := currentMaxStack()
	view := NewDOMView(content)

	fragments, err := view.CSS("body > div")
	require.NoError(t, err)
	require.Len(t, fragments, 1)
	assert.Equal(t, depth, strings.Count(fragments[0], "<div>"))
	assert.Contains(t, fragments[0], "deep")

	assert.Equal(t, before, currentMaxStack())
}

func TestDOMViewRestoresStackOnError(t *testing.T) {
	before := currentMaxStack()
	view := NewDOMView(strings.Repeat("<div>", 100))

	_, err := view.CSS("div[")
	require.Error(t, err)

	assert.Equal(t, before, currentMaxStack())
}

func TestDOMViewLatin1Content(t *testing.T) {
	// "café" with é encoded as a single ISO-8859-1 byte
	content := "<p>Le caf\xe9 est tr\xe8s bon et le th\xe9 aussi, nous buvons du caf\xe9 chaque matin.</p>"
	view := NewDOMView(content)

	fragments, err := view.CSS("p")
	require.NoError(t, err)
	require.Len(t, fragments, 1)
	assert.Contains(t, fragments[0], "caf")
	assert.NotContains(t, fragments[0], "\xe9")
}
