package cmd

import (
	"fmt"

	"github.com/viant/designsuite/portal/page"
	"github.com/viant/designsuite/portal/terminal"
)

// PreviewCmd prints the landing page styled for the terminal.
type PreviewCmd struct {
	Width int    `short:"w" long:"width" description:"render width in cells" default:"100"`
	Style string `long:"style" description:"glamour style for the explanation (dark, light, notty)" default:"dark"`
}

func (c *PreviewCmd) Execute(_ []string) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	previewer := terminal.New(terminal.WithWidth(c.Width), terminal.WithStyle(c.Style))
	text, err := previewer.Render(page.New(cfg))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, text)
	return err
}
