package htmlutil

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// Text returns the visible text of a node's subtree, with text chunks
// joined by single spaces and surrounding whitespace stripped.
func Text(node *html.Node) string {
	var chunks []string
	textRecursive(node, &chunks)
	joined := strings.Join(chunks, " ")
	joined = removeNonPrintable(joined)
	joined = strings.Trim(joined, " \t\n")
	return innerWhitespace.ReplaceAllString(joined, " ")
}

func textRecursive(node *html.Node, chunks *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		trimmed := strings.TrimSpace(node.Data)
		if trimmed != "" {
			*chunks = append(*chunks, trimmed)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		textRecursive(child, chunks)
	}
}

// Attr returns the value of the named attribute, or "" when absent.
func Attr(node *html.Node, key string) string {
	if node == nil {
		return ""
	}
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Next returns the node that follows in document order (pre-order),
// crossing subtree boundaries the way a reader walks the page.
func Next(node *html.Node) *html.Node {
	if node.FirstChild != nil {
		return node.FirstChild
	}
	for n := node; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// Contains reports whether node is root or a descendant of root.
func Contains(root, node *html.Node) bool {
	for n := node; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// CollectBetween gathers element nodes in document order strictly after
// start, up to but not including end. The walk never leaves the scope
// subtree. A nil end collects to the end of the scope. The next entry's
// content frequently sits at a different tree depth than its heading,
// so this deliberately ignores sibling structure.
func CollectBetween(scope, start, end *html.Node) []*html.Node {
	var nodes []*html.Node
	for n := Next(start); n != nil; n = Next(n) {
		if n == end {
			break
		}
		if !Contains(scope, n) {
			break
		}
		if n.Type == html.ElementNode {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// SrcsetURL picks the last (largest) candidate URL out of a srcset
// attribute value.
func SrcsetURL(srcset string) string {
	last := ""
	for _, part := range strings.Split(srcset, ",") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) > 0 && fields[0] != "" {
			last = fields[0]
		}
	}
	return last
}

// ImgSrc resolves the best-effort source URL of an <img>, checking the
// lazy-loading attribute variants editorial sites use before falling
// back to srcset.
func ImgSrc(node *html.Node) string {
	for _, key := range []string{"src", "data-src", "data-lazy-src", "data-original", "data-url"} {
		if v := strings.TrimSpace(Attr(node, key)); v != "" {
			return v
		}
	}
	if srcset := Attr(node, "srcset"); srcset != "" {
		return SrcsetURL(srcset)
	}
	return SrcsetURL(Attr(node, "data-srcset"))
}

// SourceSrc resolves the URL of a <source> element inside <picture>.
func SourceSrc(node *html.Node) string {
	if srcset := Attr(node, "srcset"); srcset != "" {
		return SrcsetURL(srcset)
	}
	return SrcsetURL(Attr(node, "data-srcset"))
}

// AbsURL resolves href against base, returning "" when href is empty
// or unparseable.
func AbsURL(base *url.URL, href string) string {
	if href == "" || base == nil {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
