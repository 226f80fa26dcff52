package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotsvg/pkg/observability"
	"github.com/matzehuels/plotsvg/pkg/server"
)

type serveOpts struct {
	transport string
	port      int
	outputDir string
	noCache   bool
}

func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart tools over stdio or HTTP",
		Long: `Serve the chart tools.

With --transport stdio (the default) requests are read from stdin, one JSON
object per line: {"id": ..., "tool": "plot_bar", "params": {...}}. Each
response is written to stdout as one line.

With --transport http the tools are served under /v1/tools on --port.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("transport") {
				c.cfg.Transport = opts.transport
			}
			if cmd.Flags().Changed("port") {
				c.cfg.Port = opts.port
			}
			if err := c.cfg.validate(); err != nil {
				return err
			}
			return c.runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.transport, "transport", transportStdio, "transport: stdio or http")
	cmd.Flags().IntVar(&opts.port, "port", defaultPort, "HTTP port")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "save charts under generated names in this directory")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")
	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	hooks := observability.NewLogHooks(logger)
	observability.SetRenderHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	runner, err := c.newRunner(ctx, opts.outputDir, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := server.New(runner, logger)
	switch c.cfg.Transport {
	case transportHTTP:
		addr := fmt.Sprintf(":%d", c.cfg.Port)
		logger.Info("Serving", "transport", transportHTTP, "addr", addr)
		return srv.ListenAndServe(ctx, addr)
	default:
		logger.Debug("Serving", "transport", transportStdio)
		return srv.ServeStdio(ctx, os.Stdin, os.Stdout)
	}
}
