package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/viant/designsuite/internal/logging"
	"github.com/viant/designsuite/mcp"
	"github.com/viant/designsuite/portal/config"
	"github.com/viant/designsuite/portal/page"
	"go.uber.org/zap"
)

var (
	cfgPath string
	envPath string

	// stdout receives command output; tests replace it.
	stdout io.Writer = os.Stdout

	cfgOnce sync.Once
	cfgInst *config.Config
	cfgErr  error

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// configuration can be loaded lazily by whichever sub-command runs.
func setConfigPath(p string) { cfgPath = p }

func setEnvPath(p string) { envPath = p }

// configSingleton loads the dotenv file, the configuration file (when given)
// and the environment overrides once per CLI invocation.
func configSingleton() (*config.Config, error) {
	cfgOnce.Do(func() {
		var envFiles []string
		if envPath != "" {
			envFiles = append(envFiles, envPath)
		}
		if cfgErr = config.LoadDotEnv(envFiles...); cfgErr != nil {
			return
		}
		if cfgPath != "" {
			cfgInst, cfgErr = config.Load(context.Background(), cfgPath)
		} else {
			cfgInst = config.New()
		}
		if cfgErr != nil {
			return
		}
		cfgInst.ApplyEnv(os.LookupEnv)
		cfgErr = cfgInst.Validate()
	})
	return cfgInst, cfgErr
}

// serviceSingleton initialises an mcp.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		cfg, err := configSingleton()
		if err != nil {
			svcErr = err
			return
		}
		svcInst, svcErr = mcp.New(context.Background(), mcp.WithConfig(cfg))
	})
	return svcInst, svcErr
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log.Level, cfg.Log.Development)
}

// newRenderer builds the page renderer, honouring a custom template location.
func newRenderer(ctx context.Context, cfg *config.Config) (*page.Renderer, error) {
	var opts []page.Option
	if cfg.TemplateURL != "" {
		text, err := page.LoadTemplate(ctx, cfg.TemplateURL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, page.WithTemplate(text))
	}
	renderer, err := page.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build page renderer: %w", err)
	}
	return renderer, nil
}

// reset drops the cached configuration and service.
func reset() {
	if svcInst != nil {
		_ = svcInst.Shutdown(context.Background())
	}
	cfgPath, envPath = "", ""
	cfgOnce, svcOnce = sync.Once{}, sync.Once{}
	cfgInst, cfgErr = nil, nil
	svcInst, svcErr = nil, nil
}
