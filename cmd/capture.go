package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HullComputing/uisnap/internal/capture"
	"github.com/HullComputing/uisnap/internal/platform"
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture the live element tree and write the encoded snapshot",
	Long: `Capture an immutable snapshot of the live UI element tree through the
registered platform backend and flatten it to the binary stream format.

The walk runs synchronously on the tree's own thread and completes in a
single pass; the result can be decoded later with "uisnap dump".`,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().String("component", "", "Owning component identity to capture")
	captureCmd.Flags().StringP("out", "o", "ui.snapshot", "File to write the encoded stream to")
	captureCmd.MarkFlagRequired("component")
}

func runCapture(cmd *cobra.Command, args []string) error {
	component, _ := cmd.Flags().GetString("component")
	out, _ := cmd.Flags().GetString("out")

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	snap, err := capture.Capture(provider, component)
	if err != nil {
		return fmt.Errorf("capture %q: %w", component, err)
	}
	data, err := snap.Encode()
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	log.Debug().
		Int("bytes", len(data)).
		Int("windows", snap.WindowCount()).
		Int("elements", snap.ElementCount()).
		Msg("flattened snapshot")

	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	log.Info().Str("file", out).Msg("snapshot written")
	return nil
}
