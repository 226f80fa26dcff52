package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotsvg/pkg/errors"
	"github.com/matzehuels/plotsvg/pkg/pipeline"
	"github.com/matzehuels/plotsvg/pkg/tools"
)

type demoOpts struct {
	output    string
	all       bool
	outputDir string
}

func (c *CLI) demoCommand() *cobra.Command {
	var opts demoOpts

	cmd := &cobra.Command{
		Use:   "demo [tool]",
		Short: "Render a bundled example chart",
		Long: `Render the example parameters of a tool.

Without a tool argument an interactive picker is shown when running in a
terminal. With --all every example is rendered into --output-dir.`,
		Example: `  plotsvg demo
  plotsvg demo plot_contour -o contour.svg
  plotsvg demo --all --output-dir charts`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeToolNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.all {
				return c.runDemoAll(cmd, opts)
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return c.runDemo(cmd, name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file name (default <tool>.svg)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "render every example")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", ".", "directory for --all")
	cmd.MarkFlagsMutuallyExclusive("output", "all")
	return cmd
}

func (c *CLI) runDemo(cmd *cobra.Command, name string, opts demoOpts) error {
	reg := tools.NewRegistry()
	if name == "" {
		if !interactive() {
			return fmt.Errorf("no tool given; pass one of the names from 'plotsvg tools'")
		}
		t, err := pickTool(reg.List())
		if err != nil {
			return err
		}
		if t == nil {
			printInfo("No chart selected")
			return nil
		}
		name = t.Name
	}

	out := opts.output
	if out == "" {
		out = name + ".svg"
	}
	if err := errors.ValidatePath(out); err != nil {
		return err
	}

	example, err := reg.Example(name)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	runner, err := c.newRunner(ctx, "", true)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Execute(ctx, pipeline.Request{Tool: name, Params: example})
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, res.Document.SVG, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	printSuccess("Rendered %s example", name)
	printFile(out)
	printStats(res.Stats.Bytes, res.Stats.RenderTime, false)
	printNextStep("Parameters", "plotsvg tools "+name)
	return nil
}

func (c *CLI) runDemoAll(cmd *cobra.Command, opts demoOpts) error {
	reg := tools.NewRegistry()
	var reqs []pipeline.Request
	for _, t := range reg.List() {
		example, err := reg.Example(t.Name)
		if err != nil {
			return err
		}
		reqs = append(reqs, pipeline.Request{Tool: t.Name, Params: example})
	}

	ctx := cmd.Context()
	runner, err := c.newRunner(ctx, opts.outputDir, true)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	results, err := runner.RenderBatch(ctx, reqs)
	if err != nil {
		printError("Demo failed")
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d examples", len(results)))
	for _, res := range results {
		printFile(res.Output.SVGPath)
	}
	return nil
}

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}
