package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/listadapter/internal/catalog"
	"github.com/charmbracelet/listadapter/internal/config"
	"github.com/charmbracelet/listadapter/internal/tui"
	"github.com/charmbracelet/listadapter/internal/tui/styles"
	"github.com/charmbracelet/listadapter/internal/version"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.PersistentFlags().StringP("cwd", "c", "", "Current working directory")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.PersistentFlags().StringP("filter", "f", "", "Only show rows fuzzily matching the query")

	rootCmd.Flags().BoolP("help", "h", false, "Help")
	rootCmd.Flags().BoolP("watch", "w", false, "Reload the catalog when the file changes")

	rootCmd.AddCommand(renderCmd)
}

var rootCmd = &cobra.Command{
	Use:   "listadapter [catalog.yaml]",
	Short: "Browse a sectioned list in the terminal",
	Long: heredoc.Doc(`
		listadapter shows a catalog of sections and rows in a scrollable list.
		Rows are described in YAML and rebuilt wholesale on every reload, while the
		list reuses its row views and fills them again once scrolling settles.
		Without a catalog file a built-in sample is shown.
	`),
	Example: heredoc.Doc(`
		# Browse the built-in sample
		listadapter

		# Browse a catalog with debug logging
		listadapter -d catalog.yaml

		# Reload whenever the catalog is saved
		listadapter --watch catalog.yaml

		# Only show rows matching "code"
		listadapter -f code catalog.yaml

		# Print the catalog once without starting the interface
		listadapter render --width 60 catalog.yaml
	`),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := setup(cmd, args)
		if err != nil {
			return err
		}

		watch, _ := cmd.Flags().GetBool("watch")
		if watch && len(args) == 0 {
			return fmt.Errorf("--watch needs a catalog file")
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		program := tea.NewProgram(
			tui.New(opts),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithMouseCellMotion(),
		)

		if watch {
			watcher, err := catalog.NewWatcher(args[0])
			if err != nil {
				return err
			}
			go watcher.Run(ctx, func() {
				program.Send(tui.ReloadMsg{})
			})
		}

		if _, err := program.Run(); err != nil {
			slog.Error("TUI run error", "error", err)
			return fmt.Errorf("TUI error: %v", err)
		}
		return nil
	},
}

func Execute(ctx context.Context) {
	if err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Version),
	); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and the catalog shared by every command.
func setup(cmd *cobra.Command, args []string) (tui.Options, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	query, _ := cmd.Flags().GetString("filter")

	cwd, err := ResolveCwd(cmd)
	if err != nil {
		return tui.Options{}, err
	}

	cfg, err := config.Load(cwd, debug)
	if err != nil {
		return tui.Options{}, err
	}

	if err := styles.DefaultManager().SetTheme(cfg.Options.Theme); err != nil {
		return tui.Options{}, err
	}

	read := func() (*catalog.Document, error) {
		return catalog.Sample(), nil
	}
	if len(args) > 0 {
		path := args[0]
		read = func() (*catalog.Document, error) {
			return catalog.LoadFile(path)
		}
	}
	load := func() (*catalog.Document, error) {
		doc, err := read()
		if err != nil {
			return nil, err
		}
		return catalog.Filter(doc, query), nil
	}

	doc, err := load()
	if err != nil {
		return tui.Options{}, err
	}
	slog.Info("Loaded catalog", "sections", len(doc.Sections), "rows", doc.RowCount())

	return tui.Options{
		Config:  cfg,
		Catalog: doc,
		Reload:  load,
	}, nil
}

func ResolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		err := os.Chdir(cwd)
		if err != nil {
			return "", fmt.Errorf("failed to change directory: %v", err)
		}
		return cwd, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %v", err)
	}
	return cwd, nil
}
