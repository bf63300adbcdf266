// Package render wraps the HTML→Markdown rendering capability behind a fixed
// configuration so that every conversion in a run produces comparable output.
package render

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"golang.org/x/net/html"
)

// Renderer converts an HTML node (element or whole document) to Markdown.
// Implementations must be deterministic for identical structural input.
type Renderer interface {
	RenderNode(n *html.Node) (string, error)
}

// MarkdownRenderer renders HTML to Markdown with ATX headings and "-" bullet
// markers. Script and style subtrees are excluded from the output.
type MarkdownRenderer struct {
	conv *converter.Converter
}

// NewMarkdownRenderer creates a renderer with the fixed conversion config.
// The returned renderer is safe for concurrent use.
func NewMarkdownRenderer() *MarkdownRenderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithBulletListMarker("-"),
			),
		),
	)
	return &MarkdownRenderer{conv: conv}
}

// RenderNode renders n to Markdown. The node's script and style subtrees are
// detached for the duration of the render and restored before returning, so
// the caller's tree is unchanged when RenderNode completes. A node that is
// itself a stripped tag renders as empty.
func (r *MarkdownRenderer) RenderNode(n *html.Node) (string, error) {
	// ConvertNode's DOM preprocessing deletes script/style nodes from the
	// tree it is handed; a stripped root is answered without entering it so
	// the node stays attached for the caller.
	if n.Type == html.ElementNode && strippedTags[n.Data] {
		return "", nil
	}

	detached := detachStripped(n)
	defer reattach(detached)

	out, err := r.conv.ConvertNode(n)
	if err != nil {
		return "", fmt.Errorf("convert node to markdown: %w", err)
	}
	// Surrounding blank lines carry no content and would shift every line
	// coordinate; the output starts and ends on a content line.
	return strings.TrimSpace(string(out)), nil
}

// strippedTags are rendered as nothing: the whole subtree, text included, is
// removed before conversion.
var strippedTags = map[string]bool{
	"script": true,
	"style":  true,
}

// detachedNode remembers where a stripped node was, so reattach can restore it
// at the exact original position.
type detachedNode struct {
	node   *html.Node
	parent *html.Node
	next   *html.Node
}

func detachStripped(root *html.Node) []detachedNode {
	var detached []detachedNode
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		c := n.FirstChild
		for c != nil {
			next := c.NextSibling
			if c.Type == html.ElementNode && strippedTags[c.Data] {
				detached = append(detached, detachedNode{node: c, parent: n, next: next})
				n.RemoveChild(c)
			} else {
				walk(c)
			}
			c = next
		}
	}
	// The root itself is never stripped; only descendants are candidates.
	walk(root)
	return detached
}

// reattach restores nodes in reverse removal order so that a node whose
// recorded sibling was itself detached is reinserted after that sibling is
// back in the tree.
func reattach(detached []detachedNode) {
	for i := len(detached) - 1; i >= 0; i-- {
		d := detached[i]
		d.parent.InsertBefore(d.node, d.next)
	}
}
