// Package config loads the optional polifin.toml file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/pelletier/go-toml/v2"

	polifin "github.com/manimanu0017-bot/Proyecto-finanzas"
)

// ErrUnknownCurrency is returned for a currency code without an ISO 4217
// definition.
var ErrUnknownCurrency = errors.New("unknown currency")

// DefaultPath is read when no --config flag is given.
const DefaultPath = "polifin.toml"

type Config struct {
	Company              string       `toml:"company"`
	Currency             string       `toml:"currency"`
	DoubleCountSuppliers bool         `toml:"double_count_suppliers"`
	Export               ExportConfig `toml:"export"`
	Input                InputConfig  `toml:"input"`
}

type ExportConfig struct {
	Title string `toml:"title"`
	Color string `toml:"color"`
}

type InputConfig struct {
	Encoding string `toml:"encoding"`
}

func DefaultConfig() *Config {
	return &Config{
		Currency: "MXN",
		Export: ExportConfig{
			Title: "PoliFin - Reporte Financiero",
			Color: "#7A003C",
		},
		Input: InputConfig{
			Encoding: "utf-8",
		},
	}
}

// Load overlays the file at path on the defaults. A missing file yields
// the defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be caught by decoding.
func (c *Config) Validate() error {
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("%w %q", ErrUnknownCurrency, c.Currency)
	}
	return nil
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) BalanceOptions() polifin.BalanceOptions {
	return polifin.BalanceOptions{DoubleCountSuppliers: c.DoubleCountSuppliers}
}
