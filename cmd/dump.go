package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HullComputing/uisnap/internal/model"
	"github.com/HullComputing/uisnap/internal/output"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Decode a snapshot stream and print the element tree",
	Long: `Decode a binary snapshot stream written by "uisnap capture" and print
the reconstructed tree. The default tree format mirrors the traversal
order; yaml and json render the full decoded structure.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().Bool("pretty", false, "Pretty-print JSON")
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	snap, err := model.DecodeSnapshot(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}
	log.Debug().
		Int("bytes", len(data)).
		Int("windows", snap.WindowCount()).
		Int("elements", snap.ElementCount()).
		Msg("decoded snapshot")

	if output.OutputFormat == output.FormatTree {
		snap.Dump(os.Stdout)
		return nil
	}
	return output.Print(snap)
}
