package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/retrowire/termframe/internal/config"
	"github.com/retrowire/termframe/internal/render"
	"github.com/retrowire/termframe/pkg/diff"
)

const fallbackWidth = 80

type renderOptions struct {
	ConfigPath string
	ScreenID   string
	Vars       []string
	Target     string
	Width      int
	NoValidate bool
	OutputPath string
	CheckPath  string
	Verbose    bool
}

var renderCmdRunner = runRender

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a screen from a screens file",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}
			return renderCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the screens file")
	cmd.Flags().StringVarP(&opts.ScreenID, "screen", "s", "", "Screen id to render")
	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, "Template variable as name=value (repeatable)")
	cmd.Flags().StringVarP(&opts.Target, "target", "t", "terminal", "Render target: terminal, telnet, or web")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Context width budget (default: terminal width, else 80)")
	cmd.Flags().BoolVar(&opts.NoValidate, "no-validate", false, "Skip the post-build alignment self-check")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVar(&opts.CheckPath, "check", "", "Compare output against a golden file and fail on mismatch")
	cmd.MarkFlagRequired("config") //nolint:errcheck
	cmd.MarkFlagRequired("screen") //nolint:errcheck
	cmd.MarkFlagsMutuallyExclusive("output", "check")

	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	log, err := newLogger(&rootFlags{verbose: opts.Verbose})
	if err != nil {
		return err
	}

	doc, err := config.ParseScreens(opts.ConfigPath)
	if err != nil {
		return err
	}

	screen, ok := doc.Screen(opts.ScreenID)
	if !ok {
		return fmt.Errorf("screen %q not found in %s", opts.ScreenID, opts.ConfigPath)
	}

	tpl, err := screen.Template()
	if err != nil {
		return err
	}

	values, err := parseVars(opts.Vars)
	if err != nil {
		return err
	}

	kind, err := render.ParseKind(opts.Target)
	if err != nil {
		return err
	}

	ctx := render.Context{Kind: kind, Width: contextWidth(opts.Width)}
	svc := render.NewService(render.Options{Logger: log, SkipSelfCheck: opts.NoValidate})

	out, err := svc.RenderTemplate(tpl, values, ctx)
	if err != nil {
		log.Error(err, "render failed")
		return err
	}

	// Terminate the final line with the context's own ending so the byte
	// stream never mixes conventions.
	data := []byte(out + ctx.LineEnding())

	if opts.CheckPath != "" {
		return checkGolden(cmd, opts.CheckPath, data)
	}
	if opts.OutputPath != "" {
		return os.WriteFile(opts.OutputPath, data, 0o644)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// checkGolden compares a fresh render against a previously written golden
// file. On mismatch the visible unified diff goes to stdout and the command
// fails.
func checkGolden(cmd *cobra.Command, goldenPath string, rendered []byte) error {
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		return fmt.Errorf("reading golden file: %w", err)
	}

	d := diff.Screens(golden, rendered, goldenPath, "rendered")
	if d == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "output matches %s\n", goldenPath)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), d)
	return fmt.Errorf("output differs from %s", goldenPath)
}

// contextWidth resolves the width budget: an explicit flag wins, then the
// attached terminal, then the conventional 80 columns.
func contextWidth(flagWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}
