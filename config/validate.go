package config

import (
	"errors"
	"fmt"
	"slices"

	"etiketka/binding"
)

// templateFields are the placeholders a boilerplate template may use.
var templateFields = []string{"title", "sku", "price"}

// Validate ensures the configuration is usable before any database or
// rendering work starts.
func (c *Config) Validate() error {
	if err := c.validateLabel(); err != nil {
		return err
	}
	if err := c.validateTemplates(); err != nil {
		return err
	}
	if err := c.validateMeasurements(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateLabel() error {
	l := c.Label
	switch {
	case l.PageWidthMM <= 0 || l.PageHeightMM <= 0:
		return errors.New("label.page_width_mm and label.page_height_mm must be positive")
	case l.LabelWidthMM <= 0:
		return errors.New("label.label_width_mm must be positive")
	case l.FontSizePt <= 0:
		return errors.New("label.font_size_pt must be positive")
	case l.MinLineHeightMM <= 0 || l.MaxLineHeightMM < l.MinLineHeightMM:
		return errors.New("label line height range must satisfy 0 < min <= max")
	case l.BarcodeHeightMM < 0 || l.TopMarginMM < 0 || l.BottomMarginMM < 0:
		return errors.New("label barcode height and margins must not be negative")
	case l.LabelsPerPage < 1:
		return errors.New("label.labels_per_page must be at least 1")
	case float64(l.LabelsPerPage)*l.LabelWidthMM > l.PageWidthMM+1e-9:
		return fmt.Errorf("%d labels of %gmm do not fit on a %gmm page",
			l.LabelsPerPage, l.LabelWidthMM, l.PageWidthMM)
	case l.OutputFile == "":
		return errors.New("label.output_file must be set")
	}
	return nil
}

func (c *Config) validateTemplates() error {
	for name, tpl := range map[string]string{
		"templates.title":    c.Templates.Title,
		"templates.importer": c.Templates.Importer,
		"templates.date":     c.Templates.Date,
		"templates.price":    c.Templates.Price,
	} {
		if tpl == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		for _, field := range binding.Fields(tpl) {
			if !slices.Contains(templateFields, field) {
				return fmt.Errorf("%s references unknown placeholder ${%s}", name, field)
			}
		}
	}
	return nil
}

func (c *Config) validateMeasurements() error {
	for i, kw := range c.Measurements.Keywords {
		if kw.Phrase == "" || kw.Label == "" {
			return fmt.Errorf("measurements.keywords[%d]: phrase and label must both be set", i)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	if !slices.Contains([]string{"text", "json"}, c.Logging.Format) {
		return fmt.Errorf("logging.format %q is not one of text, json", c.Logging.Format)
	}
	return nil
}
