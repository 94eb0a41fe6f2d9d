package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zhubert/facade/internal/app"
	"github.com/zhubert/facade/internal/palette"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the command palette entries and keyboard shortcuts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCommands(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}

// writeCommands prints the palette catalog followed by the global
// shortcuts grouped by category.
func writeCommands(out io.Writer) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tLABEL\tSHORTCUT")
	for _, c := range palette.DefaultCatalog {
		shortcut := c.Shortcut
		if shortcut == "" {
			shortcut = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", c.ID, c.Label, shortcut)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	writer = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KEY\tACTION\tCATEGORY")
	for _, s := range app.ShortcutRegistry {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", s.Display(), s.Description, s.Category)
	}
	return writer.Flush()
}
