package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polifin.toml")
	data := `company = "Comercial del Norte"
double_count_suppliers = true

[export]
title = "Cierre anual"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Comercial del Norte", cfg.Company)
	assert.Equal(t, "MXN", cfg.Currency)
	assert.Equal(t, "Cierre anual", cfg.Export.Title)
	assert.Equal(t, "#7A003C", cfg.Export.Color)
	assert.Equal(t, "utf-8", cfg.Input.Encoding)
	assert.True(t, cfg.BalanceOptions().DoubleCountSuppliers)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polifin.toml")
	require.NoError(t, os.WriteFile(path, []byte("company = \n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polifin.toml")
	cfg := DefaultConfig()
	cfg.Company = "Papelería La Esperanza"
	cfg.Input.Encoding = "cp850"
	require.NoError(t, Save(path, cfg))

	res, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, res)
}

func TestLoadUnknownCurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polifin.toml")
	require.NoError(t, os.WriteFile(path, []byte("currency = \"ABC\"\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Currency = "USD"
	assert.NoError(t, cfg.Validate())

	cfg.Currency = "ABC"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownCurrency)
}
