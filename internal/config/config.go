package config

import (
	"fmt"
	"os"
	"path/filepath"

	"macswap/internal/logger"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Workbook WorkbookConfig `toml:"workbook"`
	Filter   FilterConfig   `toml:"filter"`
	Layout   LayoutConfig   `toml:"layout"`
}

// WorkbookConfig locates the workbook and its sheets by 0-based position.
// The three sheet positions must be distinct.
type WorkbookConfig struct {
	Path         string `toml:"path" validate:"required"`
	PreworkSheet *int   `toml:"prework_sheet" validate:"required,gte=0"`
	TechSheet    *int   `toml:"tech_sheet" validate:"required,gte=0"`
	OutputSheet  *int   `toml:"output_sheet" validate:"required,gte=0"`
	OutputTitle  string `toml:"output_title" validate:"required,max=31"`
}

type FilterConfig struct {
	Partner string `toml:"partner" validate:"required"`
}

// LayoutConfig holds the 0-based source column of every extracted field.
// Pointers distinguish an omitted key from column 0.
type LayoutConfig struct {
	PreworkBuilding *int `toml:"prework_building" validate:"required,gte=0"`
	PreworkOldMac   *int `toml:"prework_old_mac" validate:"required,gte=0"`
	PreworkNewMac   *int `toml:"prework_new_mac" validate:"required,gte=0"`

	TechBuilding    *int `toml:"tech_building" validate:"required,gte=0"`
	TechInstallDate *int `toml:"tech_install_date" validate:"required,gte=0"`
	TechPartner     *int `toml:"tech_partner" validate:"required,gte=0"`
	TechBridge      *int `toml:"tech_bridge" validate:"required,gte=0"`
	TechTech        *int `toml:"tech_tech" validate:"required,gte=0"`
}

func intPtr(v int) *int { return &v }

// Default returns the fixed layout of the swap workbook
func Default() *Config {
	return &Config{
		Workbook: WorkbookConfig{
			Path:         "file.xlsx",
			PreworkSheet: intPtr(0),
			TechSheet:    intPtr(1),
			OutputSheet:  intPtr(4),
			OutputTitle:  "Output tables",
		},
		Filter: FilterConfig{
			Partner: "WWT FS",
		},
		Layout: LayoutConfig{
			PreworkBuilding: intPtr(0),
			PreworkOldMac:   intPtr(2),
			PreworkNewMac:   intPtr(3),
			TechBuilding:    intPtr(1),
			TechInstallDate: intPtr(5),
			TechPartner:     intPtr(12),
			TechBridge:      intPtr(18),
			TechTech:        intPtr(23),
		},
	}
}

// LoadConfig loads configuration from the specified config file path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		defaultConfig := Default()
		if err := SaveConfig(configPath, defaultConfig); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

// applyDefaults fills every key the file left out
func applyDefaults(config *Config) {
	def := Default()

	fill := func(dst **int, src *int) {
		if *dst == nil {
			*dst = src
		}
	}

	w := &config.Workbook
	fill(&w.PreworkSheet, def.Workbook.PreworkSheet)
	fill(&w.TechSheet, def.Workbook.TechSheet)
	fill(&w.OutputSheet, def.Workbook.OutputSheet)
	if config.Workbook.Path == "" {
		config.Workbook.Path = def.Workbook.Path
	}
	if config.Workbook.OutputTitle == "" {
		config.Workbook.OutputTitle = def.Workbook.OutputTitle
	}
	if config.Filter.Partner == "" {
		config.Filter.Partner = def.Filter.Partner
	}

	l, d := &config.Layout, def.Layout
	fill(&l.PreworkBuilding, d.PreworkBuilding)
	fill(&l.PreworkOldMac, d.PreworkOldMac)
	fill(&l.PreworkNewMac, d.PreworkNewMac)
	fill(&l.TechBuilding, d.TechBuilding)
	fill(&l.TechInstallDate, d.TechInstallDate)
	fill(&l.TechPartner, d.TechPartner)
	fill(&l.TechBridge, d.TechBridge)
	fill(&l.TechTech, d.TechTech)
}

// Validate checks the struct tags on a loaded config
func Validate(config *Config) error {
	validate := validator.New()
	validate.RegisterStructValidation(distinctSheets, WorkbookConfig{})
	return validate.Struct(config)
}

// distinctSheets rejects a workbook config that reads or writes one sheet twice
func distinctSheets(sl validator.StructLevel) {
	w := sl.Current().Interface().(WorkbookConfig)
	if w.PreworkSheet == nil || w.TechSheet == nil || w.OutputSheet == nil {
		return
	}
	if *w.TechSheet == *w.PreworkSheet {
		sl.ReportError(w.TechSheet, "TechSheet", "TechSheet", "distinct_sheet", "")
	}
	if *w.OutputSheet == *w.PreworkSheet || *w.OutputSheet == *w.TechSheet {
		sl.ReportError(w.OutputSheet, "OutputSheet", "OutputSheet", "distinct_sheet", "")
	}
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
