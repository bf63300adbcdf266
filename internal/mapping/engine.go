// Package mapping implements the conversion core: it turns HTML into Markdown
// while recording, per top-level element, the range of output lines that
// element produced.
package mapping

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"html2md-mapper/internal/render"
)

// Engine performs conversions. It holds no per-document state;
// ConvertWithMapping is a pure function of its input and is safe to call
// from concurrent goroutines.
type Engine struct {
	renderer render.Renderer
}

// NewEngine creates an Engine that renders through the given renderer.
func NewEngine(renderer render.Renderer) *Engine {
	return &Engine{renderer: renderer}
}

// ConvertWithMapping converts htmlText to Markdown and reconciles each
// top-level element's individually rendered fragment against the full output
// to recover its line range.
//
// Any parse or render failure is reported through Result.Status/Result.Error;
// the method never panics on bad input.
func (e *Engine) ConvertWithMapping(htmlText string) Result {
	root, err := parseHTML(htmlText)
	if err != nil {
		return errorResult(htmlText, fmt.Errorf("parse html: %w", err))
	}

	elements := annotateTopLevel(root)

	rawMarkdown, err := e.renderer.RenderNode(root)
	if err != nil {
		return errorResult(htmlText, fmt.Errorf("render document: %w", err))
	}

	mappings, err := e.buildMappings(elements, rawMarkdown)
	if err != nil {
		return errorResult(htmlText, err)
	}

	htmlWithIDs, err := serializeTree(root)
	if err != nil {
		return errorResult(htmlText, fmt.Errorf("serialize annotated html: %w", err))
	}

	return Result{
		MarkdownResult:     strings.TrimSpace(addLineNumbers(rawMarkdown)),
		HTMLWithIDs:        htmlWithIDs,
		Mappings:           mappings,
		OriginalHTMLLength: utf8.RuneCountInString(htmlText),
		Status:             StatusConverted,
	}
}

// FindByLine returns the first mapping whose inclusive line range contains
// lineNumber (1-based, in the unnumbered Markdown coordinate space). Absence
// is reported through the bool, not an error.
func FindByLine(mappings []Mapping, lineNumber int) (Mapping, bool) {
	for _, m := range mappings {
		if m.MarkdownLineStart <= lineNumber && lineNumber <= m.MarkdownLineEnd {
			return m, true
		}
	}
	return Mapping{}, false
}

func errorResult(htmlText string, err error) Result {
	return Result{
		OriginalHTMLLength: utf8.RuneCountInString(htmlText),
		Status:             StatusError,
		Error:              err.Error(),
	}
}

// parseHTML parses full documents with html.Parse and everything else as a
// body fragment, so that fragment input is not wrapped in html/head/body and
// its nodes stay the direct children of the returned root.
func parseHTML(content string) (*html.Node, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		return html.Parse(strings.NewReader(content))
	}

	bodyContext := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), bodyContext)
	if err != nil {
		return nil, err
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// annotateTopLevel attaches a fresh mapping identifier to every element-node
// child of root (text, comment and doctype children are skipped) and returns
// the annotated elements in document order.
func annotateTopLevel(root *html.Node) []*html.Node {
	var elements []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		setAttr(c, MappingIDAttr, uuid.NewString())
		elements = append(elements, c)
	}
	return elements
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// buildMappings renders each annotated element on its own and locates the
// rendered fragment as a contiguous line run inside rawMarkdown. The search
// cursor parks on the last matched line, so later fragments only match at or
// after it; a single-line fragment identical to its predecessor re-matches
// that line. Elements whose fragment is empty, or cannot be found from the
// cursor on, yield no record.
func (e *Engine) buildMappings(elements []*html.Node, rawMarkdown string) ([]Mapping, error) {
	rawLines := strings.Split(rawMarkdown, "\n")
	cursor := 0

	var mappings []Mapping
	for _, el := range elements {
		fragment, err := e.renderer.RenderNode(el)
		if err != nil {
			return nil, fmt.Errorf("render element <%s>: %w", el.Data, err)
		}
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		start, end := findContentLines(rawLines, fragment, cursor)
		if start == -1 {
			// Renderer output differs in isolation vs in context; drop the
			// record rather than misattribute lines.
			continue
		}

		serialized, err := serializeNode(el)
		if err != nil {
			return nil, fmt.Errorf("serialize element <%s>: %w", el.Data, err)
		}

		mappings = append(mappings, Mapping{
			HTMLElementID:     getAttr(el, MappingIDAttr),
			HTMLTag:           el.Data,
			HTMLContent:       serialized,
			MarkdownLineStart: start + 1,
			MarkdownLineEnd:   end + 1,
			MarkdownContent:   fragment,
		})
		cursor = end
	}
	return mappings, nil
}

// findContentLines scans lines from startFrom for the first position where
// every line of content matches the corresponding line, compared with
// surrounding whitespace trimmed. Returns 0-based inclusive bounds, or
// (-1, -1) when the content does not occur at or after startFrom.
func findContentLines(lines []string, content string, startFrom int) (int, int) {
	contentLines := strings.Split(content, "\n")

	for i := startFrom; i < len(lines); i++ {
		matched := true
		for j, contentLine := range contentLines {
			if i+j >= len(lines) || strings.TrimSpace(lines[i+j]) != strings.TrimSpace(contentLine) {
				matched = false
				break
			}
		}
		if matched {
			return i, i + len(contentLines) - 1
		}
	}
	return -1, -1
}

// addLineNumbers prefixes each line with a 1-based bracketed index, zero
// padded to three digits. Wider documents keep their natural width.
func addLineNumbers(markdown string) string {
	lines := strings.Split(markdown, "\n")
	numbered := make([]string, len(lines))
	for i, line := range lines {
		numbered[i] = fmt.Sprintf("[%03d] %s", i+1, line)
	}
	return strings.Join(numbered, "\n")
}

func serializeNode(n *html.Node) (string, error) {
	var buf strings.Builder
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// serializeTree renders the whole annotated tree. For fragment roots the
// children are rendered directly so no html/body wrapper is invented.
func serializeTree(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
