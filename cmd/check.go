package cmd

import (
	"encoding/json"
	"fmt"
)

// CheckCmd reports the link gate of every module. It fails when any module is
// not configured, which makes it usable as a deployment check.
type CheckCmd struct {
	JSON bool `long:"json" description:"print result as JSON"`
}

func (c *CheckCmd) Execute(_ []string) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	statuses := cfg.Registry().Statuses()
	if c.JSON {
		data, _ := json.MarshalIndent(statuses, "", "  ")
		fmt.Fprintln(stdout, string(data))
	}
	missing := 0
	for _, status := range statuses {
		if !status.Configured {
			missing++
		}
		if c.JSON {
			continue
		}
		if status.Configured {
			fmt.Fprintf(stdout, "ok\t%s\t%s\n", status.ID, status.URL)
		} else {
			fmt.Fprintf(stdout, "missing\t%s\t%s\n", status.ID, status.Warning)
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d module(s) not configured", missing)
	}
	return nil
}
