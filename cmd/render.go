package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/viant/designsuite/portal/page"
)

// RenderCmd writes the landing page HTML to stdout or a file.
type RenderCmd struct {
	Output string `short:"o" long:"output" description:"destination file (stdout when omitted)"`
}

func (c *RenderCmd) Execute(_ []string) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	ctx := context.Background()
	renderer, err := newRenderer(ctx, cfg)
	if err != nil {
		return err
	}
	buf := new(bytes.Buffer)
	if err := renderer.Render(buf, page.New(cfg)); err != nil {
		return err
	}
	if c.Output == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(c.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", c.Output, err)
	}
	return nil
}
