package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/viant/afs"
	"github.com/viant/designsuite/portal/module"
	mcp "github.com/viant/mcp"
	"gopkg.in/yaml.v3"
)

// Defaults applied by Init and the environment variables read by ApplyEnv.
const (
	DefaultTitle     = "AI Architectural Design Suite"
	DefaultPageTitle = "AI Design Suite Portal"
	DefaultCaption   = "Select a module above to begin your design exploration or analysis."
	DefaultAddr      = ":8080"

	// Environment variables applied on top of the configuration file.
	EnvInterviewerURL = "DESIGNSUITE_INTERVIEWER_URL"
	EnvAnalyzerURL    = "DESIGNSUITE_ANALYZER_URL"
	EnvAddr           = "DESIGNSUITE_ADDR"
	EnvLogLevel       = "DESIGNSUITE_LOG_LEVEL"
)

// HTTP controls the portal web server.
type HTTP struct {
	Addr            string        `yaml:"addr,omitempty" json:"addr,omitempty"`
	ReadTimeout     time.Duration `yaml:"readTimeout,omitempty" json:"readTimeout,omitempty"`
	WriteTimeout    time.Duration `yaml:"writeTimeout,omitempty" json:"writeTimeout,omitempty"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout,omitempty" json:"shutdownTimeout,omitempty"`
}

// Log controls structured logging.
type Log struct {
	Level       string `yaml:"level,omitempty" json:"level,omitempty"`
	Development bool   `yaml:"development,omitempty" json:"development,omitempty"`
}

// Config is the portal configuration: page copy, HTTP and logging settings,
// module overrides, the MCP server section and the published tool patterns.
type Config struct {
	Title       string                    `yaml:"title,omitempty" json:"title,omitempty"`
	PageTitle   string                    `yaml:"pageTitle,omitempty" json:"pageTitle,omitempty"`
	Caption     string                    `yaml:"caption,omitempty" json:"caption,omitempty"`
	TemplateURL string                    `yaml:"templateURL,omitempty" json:"templateURL,omitempty"`
	HTTP        *HTTP                     `yaml:"http,omitempty" json:"http,omitempty"`
	Log         *Log                      `yaml:"log,omitempty" json:"log,omitempty"`
	Modules     map[string]*module.Override `yaml:"modules,omitempty" json:"modules,omitempty"`
	Server      *mcp.ServerOptions        `yaml:"mcp,omitempty" json:"mcp,omitempty"`
	Tools       []string                  `yaml:"tools,omitempty" json:"tools,omitempty"`

	// urls set through the environment; an empty value unconfigures a module.
	urls map[string]string
}

// New returns a configuration holding only defaults.
func New() *Config {
	cfg := &Config{}
	cfg.Init()
	return cfg
}

// Load reads a YAML configuration from a local path or any afs supported URL.
func Load(ctx context.Context, location string) (*Config, error) {
	URL := location
	if !strings.Contains(URL, "://") {
		if abs, err := filepath.Abs(URL); err == nil {
			URL = abs
		}
	}
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", location, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", location, err)
	}
	cfg.Init()
	return &cfg, nil
}

// LoadDotEnv loads .env style files into the process environment. Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load env file %q: %w", p, err)
		}
	}
	return nil
}

// Init applies defaults for every unset field.
func (c *Config) Init() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.PageTitle == "" {
		c.PageTitle = DefaultPageTitle
	}
	if c.Caption == "" {
		c.Caption = DefaultCaption
	}
	if c.HTTP == nil {
		c.HTTP = &HTTP{}
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = DefaultAddr
	}
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 10 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 10 * time.Second
	}
	if c.HTTP.ShutdownTimeout == 0 {
		c.HTTP.ShutdownTimeout = 5 * time.Second
	}
	if c.Log == nil {
		c.Log = &Log{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if len(c.Tools) == 0 {
		c.Tools = []string{"portal/"}
	}
}

// ApplyEnv overlays environment settings read through lookup, typically
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvInterviewerURL); ok {
		c.setURL(module.InterviewerID, v)
	}
	if v, ok := lookup(EnvAnalyzerURL); ok {
		c.setURL(module.AnalyzerID, v)
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.HTTP.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
}

func (c *Config) setURL(id, URL string) {
	if c.urls == nil {
		c.urls = map[string]string{}
	}
	c.urls[id] = URL
}

// Validate checks module overrides that do not extend a built-in module.
func (c *Config) Validate() error {
	for id, m := range c.Modules {
		if m == nil || isBuiltin(id) {
			continue
		}
		if m.Title == "" {
			return fmt.Errorf("module %q: title is required", id)
		}
		if m.Label == "" {
			return fmt.Errorf("module %q: label is required", id)
		}
	}
	return nil
}

// Registry resolves built-in modules, file overrides and environment URLs into
// the ordered module registry. Additional modules follow the built-in ones in
// id order.
func (c *Config) Registry() *module.Registry {
	var modules []module.Module
	for _, m := range module.Defaults() {
		modules = append(modules, c.resolve(m))
	}
	var extra []string
	for id := range c.Modules {
		if !isBuiltin(id) {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		modules = append(modules, c.resolve(module.Module{ID: id}))
	}
	return module.NewRegistry(modules...)
}

func (c *Config) resolve(m module.Module) module.Module {
	m = m.Merge(c.Modules[m.ID])
	if URL, ok := c.urls[m.ID]; ok {
		m.URL = URL
	}
	return m
}

func isBuiltin(id string) bool {
	return id == module.InterviewerID || id == module.AnalyzerID
}
