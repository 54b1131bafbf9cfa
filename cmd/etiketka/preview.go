package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var output string
	var dpmm float64

	cmd := &cobra.Command{
		Use:   "preview <sku>",
		Short: "Render the first label page of one SKU as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := ctx.ensure()
			if err != nil {
				return err
			}

			result, r, err := buildResult(cmd.Context(), cfg, log, args)
			if err != nil {
				return err
			}

			data, err := r.RenderPNG(result, 0, dpmm)
			if err != nil {
				return fmt.Errorf("render preview: %w", err)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			log.Info("preview written", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "preview.png", "Output PNG path")
	cmd.Flags().Float64Var(&dpmm, "dpmm", 10, "Raster resolution in dots per millimetre")
	return cmd
}
