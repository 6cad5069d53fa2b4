package shoplens

// ProseResult holds the extracted main content of an HTML page.
type ProseResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ProseExtractor reduces an HTML page to its main textual content,
// stripping navigation and boilerplate.
type ProseExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ProseResult, error)
}

// Converter converts clean HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from a ProseExtractor).
	Convert(html string) (string, error)
}
