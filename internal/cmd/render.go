package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/listadapter/internal/tui"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [catalog.yaml]",
	Short: "Print the list once and exit",
	Long: heredoc.Doc(`
		Render the catalog through the same list and adapter used by the
		interactive mode and print the visible part of it.
	`),
	Example: heredoc.Doc(`
		# Print the first 20 lines of the sample at 60 columns
		listadapter render -W 60 -H 20
	`),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		if width <= 0 || height <= 0 {
			return fmt.Errorf("width and height must be positive, got %dx%d", width, height)
		}

		opts, err := setup(cmd, args)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.Snapshot(opts, width, height))
		return err
	},
}

func init() {
	renderCmd.Flags().IntP("width", "W", 80, "Width in columns")
	renderCmd.Flags().IntP("height", "H", 24, "Height in lines")
}
