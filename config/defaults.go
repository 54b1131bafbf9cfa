package config

// DefaultPath is where the configuration is looked up when no --config
// flag is given.
const DefaultPath = "etiketka.toml"

const (
	defaultPageWidthMM     = 120.0
	defaultPageHeightMM    = 70.0
	defaultLabelWidthMM    = 40.0
	defaultFontSizePt      = 6.0
	defaultMinLineHeightMM = 2.0
	defaultMaxLineHeightMM = 4.0
	defaultBarcodeHeightMM = 6.0
	defaultTopMarginMM     = 2.0
	defaultBottomMarginMM  = 0.0
	defaultLabelsPerPage   = 3
	defaultOutputFile      = "labels.pdf"
	defaultCareImage       = "care.png"

	defaultTitleTemplate    = "EAC ${title}"
	defaultImporterTemplate = "Импортер: ИП Анисимов Д.В., г. Брест, ул. Московская 247 кв. 68, УНП 291760554"
	defaultDateTemplate     = "Дата изготовления:______202_г."
	defaultPriceTemplate    = "ЦЕНА: ${price} руб"

	defaultDatabaseHost = "127.0.0.1"
	defaultDatabasePort = 3306
	defaultDatabaseUser = "wordpress"
	defaultDatabaseName = "wordpress"

	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Label: Label{
			PageWidthMM:      defaultPageWidthMM,
			PageHeightMM:     defaultPageHeightMM,
			LabelWidthMM:     defaultLabelWidthMM,
			FontSizePt:       defaultFontSizePt,
			MinLineHeightMM:  defaultMinLineHeightMM,
			MaxLineHeightMM:  defaultMaxLineHeightMM,
			BarcodeHeightMM:  defaultBarcodeHeightMM,
			TopMarginMM:      defaultTopMarginMM,
			BottomMarginMM:   defaultBottomMarginMM,
			LabelsPerPage:    defaultLabelsPerPage,
			OutputFile:       defaultOutputFile,
			CareImage:        defaultCareImage,
			UseStockQuantity: true,
		},
		Templates: Templates{
			Title:    defaultTitleTemplate,
			Importer: defaultImporterTemplate,
			Date:     defaultDateTemplate,
			Price:    defaultPriceTemplate,
		},
		Database: Database{
			Host: defaultDatabaseHost,
			Port: defaultDatabasePort,
			User: defaultDatabaseUser,
			Name: defaultDatabaseName,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
