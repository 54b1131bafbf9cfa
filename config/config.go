// Package config loads and validates the TOML configuration that drives
// label generation: sheet geometry, boilerplate templates, the measurement
// keyword table and the shop database connection.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"etiketka/extract"
	"etiketka/label"
)

//go:embed sample_config.toml
var sampleConfig string

// Label contains sheet and label geometry plus output settings.
type Label struct {
	PageWidthMM      float64 `toml:"page_width_mm"`
	PageHeightMM     float64 `toml:"page_height_mm"`
	LabelWidthMM     float64 `toml:"label_width_mm"`
	FontSizePt       float64 `toml:"font_size_pt"`
	MinLineHeightMM  float64 `toml:"min_line_height_mm"`
	MaxLineHeightMM  float64 `toml:"max_line_height_mm"`
	BarcodeHeightMM  float64 `toml:"barcode_height_mm"`
	TopMarginMM      float64 `toml:"top_margin_mm"`
	BottomMarginMM   float64 `toml:"bottom_margin_mm"`
	LabelsPerPage    int     `toml:"labels_per_page"`
	OutputFile       string  `toml:"output_file"`
	CareImage        string  `toml:"care_image"`
	UseStockQuantity bool    `toml:"use_stock_quantity"`
}

// Templates contains the boilerplate line formats. ${title}, ${sku} and
// ${price} are interpolated per product.
type Templates struct {
	Title    string `toml:"title"`
	Importer string `toml:"importer"`
	Date     string `toml:"date"`
	Price    string `toml:"price"`
}

// Keyword maps a search phrase in the measurements block to the caption
// printed on the label.
type Keyword struct {
	Phrase string `toml:"phrase"`
	Label  string `toml:"label"`
}

// Measurements contains the keyword table override. An empty list keeps
// the built-in table.
type Measurements struct {
	Keywords []Keyword `toml:"keywords"`
}

// Database contains the WooCommerce MySQL connection settings. A non-empty
// DSN wins over the individual fields; the DATABASE_DSN environment
// variable wins over both.
type Database struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
	DSN      string `toml:"dsn"`
}

// Logging contains log output settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values.
type Config struct {
	Label        Label        `toml:"label"`
	Templates    Templates    `toml:"templates"`
	Measurements Measurements `toml:"measurements"`
	Database     Database     `toml:"database"`
	Logging      Logging      `toml:"logging"`
}

// Load reads the configuration file at path, overlaying it on the
// defaults, and validates the result. A missing file at the default
// location is not an error; an explicitly requested file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults only
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Sample returns the embedded annotated sample configuration.
func Sample() string { return sampleConfig }

// Geometry copies the label geometry into the shape the layout engine takes.
func (c Config) Geometry() label.Geometry {
	return label.Geometry{
		PageWidth:     c.Label.PageWidthMM,
		PageHeight:    c.Label.PageHeightMM,
		LabelWidth:    c.Label.LabelWidthMM,
		FontSizePt:    c.Label.FontSizePt,
		MinLineHeight: c.Label.MinLineHeightMM,
		MaxLineHeight: c.Label.MaxLineHeightMM,
		BarcodeHeight: c.Label.BarcodeHeightMM,
		TopMargin:     c.Label.TopMarginMM,
		BottomMargin:  c.Label.BottomMarginMM,
		LabelsPerPage: c.Label.LabelsPerPage,
	}
}

// TemplateSet returns the boilerplate templates for the layout engine.
func (c Config) TemplateSet() label.Templates {
	return label.Templates{
		Title:    c.Templates.Title,
		Importer: c.Templates.Importer,
		Date:     c.Templates.Date,
		Price:    c.Templates.Price,
	}
}

// KeywordTable returns the configured measurement keyword table, or the
// built-in table when no override is configured.
func (c Config) KeywordTable() []extract.KeywordMapping {
	if len(c.Measurements.Keywords) == 0 {
		return extract.DefaultKeywordTable()
	}
	table := make([]extract.KeywordMapping, 0, len(c.Measurements.Keywords))
	for _, kw := range c.Measurements.Keywords {
		table = append(table, extract.KeywordMapping{Phrase: kw.Phrase, Label: kw.Label})
	}
	return table
}

// DSN returns the MySQL connection string.
func (c Config) DSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}
