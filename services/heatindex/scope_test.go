package heatindex

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestSelectScopePrefersDenseContainer(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<div class="content"><p>One stray paragraph of site chrome text.</p></div>
<article>
<h2>1. Foo</h2><p>First blurb paragraph with a reasonable amount of text.</p>
<h2>2. Bar</h2><p>Second blurb paragraph with a reasonable amount of text.</p>
<h2>3. Baz</h2><p>Third blurb paragraph with a reasonable amount of text.</p>
</article>
</body></html>`))
	require.NoError(t, err)

	scope := SelectScope(doc)
	require.Len(t, scope.Nodes, 1)
	require.Equal(t, "article", goquery.NodeName(scope))
}

func TestSelectScopeFallsBackToBody(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body>
<h2>1. Foo</h2><p>A page with none of the usual content containers at all.</p>
</body></html>`))
	require.NoError(t, err)

	scope := SelectScope(doc)
	require.Len(t, scope.Nodes, 1)
	require.Equal(t, "body", goquery.NodeName(scope))
}
