package mapping

// Statuses reported in Result.Status.
const (
	StatusConverted = "converted"
	StatusError     = "error"
)

// MappingIDAttr is the attribute injected into each top-level element so the
// serialized HTML can be traced back to its mapping record.
const MappingIDAttr = "data-mapping-id"

// Mapping links one top-level HTML element to the inclusive 1-based range of
// lines it produced in the unnumbered Markdown output.
type Mapping struct {
	HTMLElementID     string `json:"html_element_id"`
	HTMLTag           string `json:"html_tag"`
	HTMLContent       string `json:"html_content"`
	MarkdownLineStart int    `json:"markdown_line_start"`
	MarkdownLineEnd   int    `json:"markdown_line_end"`
	MarkdownContent   string `json:"markdown_content"`
}

// Result is the outcome of one conversion run. It is constructed fresh per
// call and never mutated afterwards. OriginalHTMLLength counts characters
// (runes), not bytes.
type Result struct {
	MarkdownResult     string    `json:"markdown_result"`
	HTMLWithIDs        string    `json:"html_with_ids"`
	Mappings           []Mapping `json:"mappings"`
	OriginalHTMLLength int       `json:"original_html_length"`
	Status             string    `json:"status"`
	Error              string    `json:"error,omitempty"`
}
