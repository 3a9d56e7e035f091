package page

import _ "embed"

//go:embed asset/page.html
var pageTemplate string

//go:embed asset/portal.css
var portalCSS string

//go:embed asset/workflow.md
var workflowMarkdown []byte

// WorkflowMarkdown returns the built-in explanation of how the modules work
// together, as Markdown.
func WorkflowMarkdown() []byte { return workflowMarkdown }
