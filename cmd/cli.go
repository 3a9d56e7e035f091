package cmd

import (
	"log"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Run is the entry point for the CLI. It lives outside the main package so
// that commands stay usable from tests.
func Run(args []string) {
	if err := run(args); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(args []string) error {
	setConfigPath(extractOption(args, "-f", "--config"))
	setEnvPath(extractOption(args, "-e", "--env"))

	opts := &Options{}
	opts.Init(firstCommand(args))

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}

// firstCommand returns the first argument that is not a global option, so
// that "designsuite -f portal.yaml serve" selects serve.
func firstCommand(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-f" || a == "--config" || a == "-e" || a == "--env":
			i++
		case strings.HasPrefix(a, "-"):
		default:
			return a
		}
	}
	return ""
}

// extractOption searches the raw argument list for a global option before the
// full flags parsing is performed so that sub-commands can load the config
// early from a deterministic location.
func extractOption(args []string, short, long string) string {
	for i, a := range args {
		switch a {
		case short, long:
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, long+"=") {
				return strings.TrimPrefix(a, long+"=")
			}
		}
	}
	return ""
}
