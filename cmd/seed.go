package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/facade/internal/seed"
	"github.com/zhubert/facade/internal/workspace"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print the built-in workspace seed",
	Long: `Prints the YAML document facade seeds its workspace from when no
--seed flag or workbench.seedFile setting is given. Use it as a starting
point for a custom seed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(seed.DefaultYAML())
		return err
	},
}

var seedValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a seed file and summarize its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := seed.Load(args[0])
		if err != nil {
			return err
		}
		writeSeedSummary(cmd.OutOrStdout(), args[0], data)
		return nil
	},
}

func init() {
	seedCmd.AddCommand(seedValidateCmd)
	rootCmd.AddCommand(seedCmd)
}

func writeSeedSummary(out io.Writer, path string, data *seed.Data) {
	errs, warnings := workspace.CountProblems(data.ProblemList())
	fmt.Fprintf(out, "%s: ok\n", path)
	fmt.Fprintf(out, "  branch:     %s\n", data.Branch)
	fmt.Fprintf(out, "  files:      %d\n", len(data.Tree().Files()))
	fmt.Fprintf(out, "  extensions: %d\n", len(data.Extensions))
	fmt.Fprintf(out, "  problems:   %d errors, %d warnings\n", errs, warnings)
	fmt.Fprintf(out, "  menus:      %d\n", len(data.Menus))
}
