package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/retrowire/termframe/internal/config"
	"github.com/retrowire/termframe/internal/render"
	"github.com/retrowire/termframe/internal/tui"
)

type previewOptions struct {
	ConfigPath string
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview the screens in a screens file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}

			log, err := newLogger(root)
			if err != nil {
				return err
			}

			doc, err := config.ParseScreens(opts.ConfigPath)
			if err != nil {
				return err
			}

			svc := render.NewService(render.Options{Logger: log})
			program := tea.NewProgram(tui.NewModel(doc, svc), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the screens file")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}
