package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ExecCmd executes a published tool from the CLI. Arguments are supplied
// either inline via -i/--input or loaded from a JSON file via --file.
type ExecCmd struct {
	Name       string `short:"n" long:"name" description:"tool name (portal-status or portal/status)" required:"yes"`
	Inline     string `short:"i" long:"input" description:"inline JSON arguments (object)"`
	File       string `long:"file" description:"path to JSON file with arguments (use - for stdin)"`
	TimeoutSec int    `long:"timeout" description:"seconds to wait for completion" default:"30"`
	JSON       bool   `long:"json" description:"print result as JSON"`
}

func (c *ExecCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	args, err := c.arguments()
	if err != nil {
		return err
	}

	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	out, err := svc.ExecuteTool(context.Background(), c.Name, args, timeout)
	if err != nil {
		return err
	}

	switch v := out.(type) {
	case string:
		if !c.JSON {
			fmt.Fprintln(stdout, v)
			return nil
		}
	case []byte:
		if !c.JSON {
			fmt.Fprintln(stdout, string(v))
			return nil
		}
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(stdout, string(data))
	return nil
}

func (c *ExecCmd) arguments() (map[string]interface{}, error) {
	args := map[string]interface{}{}
	switch {
	case c.Inline != "":
		if err := json.Unmarshal([]byte(c.Inline), &args); err != nil {
			return nil, fmt.Errorf("invalid inline JSON: %w", err)
		}
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return nil, fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if err := json.Unmarshal(data, &args); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	}
	return args, nil
}
