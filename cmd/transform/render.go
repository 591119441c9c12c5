package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sudoguy/kibitzr/internal/infrastructure/config"
	"github.com/sudoguy/kibitzr/internal/infrastructure/monitoring"
	"github.com/sudoguy/kibitzr/internal/logging"
	provider "github.com/sudoguy/kibitzr/internal/providers/transform"
	"github.com/sudoguy/kibitzr/internal/service"
	"github.com/sudoguy/kibitzr/internal/shared/id"
	"github.com/sudoguy/kibitzr/internal/transform"
	"github.com/sudoguy/kibitzr/internal/types"
)

type renderOptions struct {
	templateFile string
	expr         string
	contentFile  string
	confFile     string
	engine       string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template against content",
		Long: `Render a template against content read from a file or stdin.

Content files ending in .gz or .zst are decompressed. Exit status is 0 on
success, 1 when the template fails and 2 on malformed content, a bad
selector or any other error.`,
		Example: `  curl -s https://example.com | transform render -e '{{ css "h1" | text }}'
  transform render -t price.tmpl -c page.html.gz --conf watch.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.templateFile, "template", "t", "", "Template file")
	cmd.Flags().StringVarP(&opts.expr, "expr", "e", "", "Template source (instead of --template)")
	cmd.Flags().StringVarP(&opts.contentFile, "content", "c", "-", "Content file, - for stdin")
	cmd.Flags().StringVar(&opts.confFile, "conf", "", "YAML or TOML conf passed to the template")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "Template engine (overrides TRANSFORM_ENGINE)")
	cmd.MarkFlagsMutuallyExclusive("template", "expr")
	cmd.MarkFlagsOneRequired("template", "expr")

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return &exitError{code: exitFault, err: err}
	}
	if opts.engine != "" {
		cfg.Transform.Engine = opts.engine
	}

	logCfg := logging.DefaultConfig()
	if cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	logCfg.Level = cfg.Logging.Level

	logger, err := logging.New(logCfg)
	if err != nil {
		return &exitError{code: exitFault, err: fmt.Errorf("failed to create logger: %w", err)}
	}
	defer func() { _ = logger.Sync() }()

	metrics := monitoring.NewMetrics()
	defer writeMetrics(cfg.Metrics.Textfile, metrics, logger)
	defer logSummary(metrics, logger)

	toolID, ok := provider.ToolFor(cfg.Transform.Engine)
	if !ok {
		return &exitError{code: exitFault, err: fmt.Errorf("unknown template engine %q", cfg.Transform.Engine)}
	}

	params, err := loadParams(cmd, opts)
	if err != nil {
		return &exitError{code: exitFault, err: err}
	}

	p, err := provider.NewProvider(logger, metrics,
		transform.WithMaxContentBytes(cfg.Transform.MaxContentBytes),
		transform.WithCharsetDetection(cfg.Transform.DetectCharset),
		transform.WithStackLimit(transform.StackBytes(cfg.Transform.MaxStackMB)),
	)
	if err != nil {
		return &exitError{code: exitFault, err: err}
	}

	registry, err := newRegistry(p)
	if err != nil {
		return &exitError{code: exitFault, err: err}
	}
	logger.Debug("registry ready", zap.Any("stats", registry.Stats()))

	requestID := id.NewRequestID().String()
	result, err := registry.Execute(context.Background(), toolID, params, &types.Context{RequestID: &requestID})
	if err != nil {
		return &exitError{code: exitFault, err: err}
	}
	if !result.Success {
		return &exitError{code: exitSoftFailure}
	}

	fmt.Fprint(cmd.OutOrStdout(), result.Data["value"])
	return nil
}

// loadParams reads the template, content and conf named by opts.
func loadParams(cmd *cobra.Command, opts *renderOptions) (map[string]interface{}, error) {
	code := opts.expr
	if opts.templateFile != "" {
		data, err := os.ReadFile(opts.templateFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read template: %w", err)
		}
		code = string(data)
	}

	content, err := readContent(opts.contentFile, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}

	params := map[string]interface{}{
		"code":    code,
		"content": content,
	}

	if opts.confFile != "" {
		conf, err := config.LoadConf(opts.confFile)
		if err != nil {
			return nil, err
		}
		params["conf"] = conf
	}

	return params, nil
}

// newRegistry registers the transform provider.
func newRegistry(p *provider.Provider) (*service.Registry, error) {
	registry := service.NewRegistry()
	if err := registry.Register(p); err != nil {
		return nil, err
	}
	return registry, nil
}

func logSummary(metrics *monitoring.Metrics, logger *logging.Logger) {
	snap := metrics.Snapshot()
	logger.Debug("render summary",
		zap.Int64("renders", snap.Renders),
		zap.Int64("failures", snap.Failures),
		zap.Int64("faults", snap.Faults),
		zap.Int64("parses", snap.Parses),
	)
}

func writeMetrics(path string, metrics *monitoring.Metrics, logger *logging.Logger) {
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		logger.Warn("failed to write metrics textfile", zap.String("path", path), zap.Error(err))
	}
}
