package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotsvg/pkg/pipeline"
	"github.com/matzehuels/plotsvg/pkg/tools"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output    string // write the SVG to this file
	outputDir string // save under generated names in this directory
	batch     bool   // arguments are request files
	noCache   bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <tool> [params.json|-]",
		Short: "Render a chart from JSON parameters",
		Long: `Render a chart from a JSON document of the form {"data": {...}, "config": {...}}.

Parameters are read from the given file, or from stdin when the file is
omitted or "-". Without -o or --output-dir the SVG is written to stdout.

With --batch every argument is a request file {"tool": ..., "params": ...}
and the charts are rendered in parallel.`,
		Example: `  plotsvg render plot_bar bars.json -o bars.svg
  echo '{"data":{"values":[1,1,2]}}' | plotsvg render plot_pie
  plotsvg render --batch --output-dir charts a.json b.json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.batch {
				return cobra.MinimumNArgs(1)(cmd, args)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		ValidArgsFunction: completeToolNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.batch {
				return c.runBatch(cmd.Context(), args, opts)
			}
			src := "-"
			if len(args) == 2 {
				src = args[1]
			}
			return c.runRender(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args[0], src, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "directory for generated file names")
	cmd.Flags().BoolVar(&opts.batch, "batch", false, "treat arguments as request files and render them in parallel")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")
	cmd.MarkFlagsMutuallyExclusive("output", "output-dir")
	cmd.MarkFlagsMutuallyExclusive("output", "batch")
	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdin io.Reader, stdout io.Writer, tool, src string, opts renderOpts) error {
	params, err := readSource(stdin, src)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.outputDir, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Execute(ctx, pipeline.Request{Tool: tool, Params: params})
	if err != nil {
		return err
	}

	switch {
	case opts.output != "":
		if err := os.WriteFile(opts.output, res.Document.SVG, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		printSuccess("Rendered %s", res.Tool)
		printFile(opts.output)
		printStats(res.Stats.Bytes, res.Stats.RenderTime, res.CacheHit)
	case res.Output.SVGPath != "":
		printSuccess("Rendered %s", res.Tool)
		printFile(res.Output.SVGPath)
		printStats(res.Stats.Bytes, res.Stats.RenderTime, res.CacheHit)
	default:
		if _, err := stdout.Write(res.Document.SVG); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) runBatch(ctx context.Context, files []string, opts renderOpts) error {
	reqs := make([]pipeline.Request, len(files))
	for i, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, &reqs[i]); err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}

	outputDir := opts.outputDir
	if outputDir == "" && c.cfg.OutputDir == "" {
		outputDir = "."
	}
	runner, err := c.newRunner(ctx, outputDir, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	results, err := runner.RenderBatch(ctx, reqs)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d charts", len(results)))

	for i, res := range results {
		printSuccess("%s: %s", files[i], res.Tool)
		printFile(res.Output.SVGPath)
	}
	return nil
}

// readSource reads a parameter document from a file, or from stdin for "-".
func readSource(stdin io.Reader, src string) (json.RawMessage, error) {
	var data []byte
	var err error
	if src == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return nil, fmt.Errorf("read parameters: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("read parameters: %s is empty", src)
	}
	return data, nil
}

// completeToolNames completes the first argument with registered tools.
func completeToolNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	var names []string
	for _, t := range tools.NewRegistry().List() {
		names = append(names, t.Name+"\t"+t.Description)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
