package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"portal configuration YAML path or URL"`
	Env    string `short:"e" long:"env" description:"dotenv file loaded before the configuration" default:".env"`

	Serve       *ServeCmd       `command:"serve"        description:"Serve the landing page (and optionally the MCP tools)"`
	Render      *RenderCmd      `command:"render"       description:"Render the landing page HTML"`
	Preview     *PreviewCmd     `command:"preview"      description:"Preview the landing page in the terminal"`
	Check       *CheckCmd       `command:"check"        description:"Report which modules are configured"`
	ListTools   *ListToolsCmd   `command:"list-tools"   description:"List all registered tools"`
	ListActions *ListActionsCmd `command:"list-actions" description:"List Fluxor services and their actions"`
	Tool        *ToolCmd        `command:"tool"         description:"Show detailed info about one MCP tool"`
	Exec        *ExecCmd        `command:"exec"         description:"Execute one MCP tool"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "render":
		o.Render = &RenderCmd{}
	case "preview":
		o.Preview = &PreviewCmd{}
	case "check":
		o.Check = &CheckCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "list-actions":
		o.ListActions = &ListActionsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	}
}
