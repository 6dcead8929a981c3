package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retrowire/termframe/internal/config"
)

type listOptions struct {
	ConfigPath string
}

func newListCmd() *cobra.Command {
	opts := listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the screens declared in a screens file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}

			doc, err := config.ParseScreens(opts.ConfigPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headingStyle.Render(doc.Name))
			for _, screen := range doc.Screens {
				title := screen.Title
				if title == "" {
					title = mutedStyle.Render("(untitled)")
				}
				fmt.Fprintf(out, "  %-20s %3d wide  %-6s pad %d  %s\n",
					screen.ID, screen.Width, styleName(screen.Style), screen.Padding, title)
				if len(screen.Variables) > 0 {
					fmt.Fprintf(out, "  %20s %s\n", "",
						mutedStyle.Render(fmt.Sprintf("variables: %v", screen.Variables)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the screens file")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func styleName(s string) string {
	if s == "" {
		return "single"
	}
	return s
}
