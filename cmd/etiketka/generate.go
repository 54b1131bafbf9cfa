package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"etiketka/careimage"
	"etiketka/catalog"
	"etiketka/config"
	"etiketka/extract"
	"etiketka/label"
	"etiketka/layout"
	canvasrenderer "etiketka/renderer/canvas"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var skusFile string
	var output string
	var debugLayout string

	cmd := &cobra.Command{
		Use:   "generate [sku...]",
		Short: "Generate a PDF of labels for the given SKUs",
		Long: `Fetches the product variations for the given SKUs, expands them by
stock quantity and writes one label per unit into a PDF.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := ctx.ensure()
			if err != nil {
				return err
			}

			skus := args
			if skusFile != "" {
				fromFile, err := readSKUFile(skusFile)
				if err != nil {
					return err
				}
				skus = append(skus, fromFile...)
			}
			if len(skus) == 0 {
				return errors.New("no SKUs given: pass them as arguments or via --skus-file")
			}

			result, r, err := buildResult(cmd.Context(), cfg, log, skus)
			if err != nil {
				return err
			}

			if debugLayout != "" {
				if err := layout.WriteDebugJSON(result, debugLayout); err != nil {
					return fmt.Errorf("write layout debug: %w", err)
				}
				log.Info("layout debug written", "path", debugLayout)
			}

			data, err := r.Render(result)
			if err != nil {
				return fmt.Errorf("render pdf: %w", err)
			}

			out := output
			if out == "" {
				out = cfg.Label.OutputFile
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			log.Info("labels written", "path", out, "pages", len(result.Pages))
			return nil
		},
	}

	cmd.Flags().StringVar(&skusFile, "skus-file", "", "File with one SKU per line")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PDF path (default from config)")
	cmd.Flags().StringVar(&debugLayout, "debug-layout", "", "Dump the computed layout as JSON to this path")
	return cmd
}

// buildResult runs the shared pipeline: fetch products, expand by stock,
// build the label layout. The returned renderer doubles as typesetter
// and output backend.
func buildResult(ctx context.Context, cfg config.Config, log *slog.Logger, skus []string) (*layout.Result, *canvasrenderer.Renderer, error) {
	svc, err := catalog.Open(cfg.DSN(), log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to shop database: %w", err)
	}
	defer svc.Close()

	products, err := svc.ProductsBySKUs(ctx, skus)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch products: %w", err)
	}
	if len(products) == 0 {
		return nil, nil, fmt.Errorf("no products found for SKUs %v", skus)
	}

	slugLabels, err := svc.TermLabels(ctx, catalog.AttributeSlugs(products))
	if err != nil {
		return nil, nil, fmt.Errorf("resolve attribute labels: %w", err)
	}

	expanded := catalog.Expand(products, cfg.Label.UseStockQuantity)
	log.Info("products expanded", "variations", len(products), "labels", len(expanded))

	r, err := canvasrenderer.NewRenderer()
	if err != nil {
		return nil, nil, fmt.Errorf("init renderer: %w", err)
	}

	engine, err := label.NewEngine(cfg.Geometry(), label.Options{
		Typesetter:      r,
		Resolver:        extract.NewMeasurementResolver(cfg.KeywordTable(), log),
		Templates:       cfg.TemplateSet(),
		CareImage:       careimage.Load(ctx, cfg.Label.CareImage, log),
		CareImageSource: cfg.Label.CareImage,
		Logger:          log,
	})
	if err != nil {
		return nil, nil, err
	}

	result, err := engine.Generate(expanded, slugLabels)
	if err != nil {
		return nil, nil, fmt.Errorf("build layout: %w", err)
	}
	return result, r, nil
}
