package loader

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"crypto-buddy/models"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for catalog files whose extension is not
// .yaml, .yml, .json or .csv.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

//go:embed default_catalog.yaml
var defaultCatalog []byte

// csvColumns is the expected column order of a catalog CSV file.
var csvColumns = []string{
	"name", "symbol", "price_trend", "market_cap", "energy_use",
	"sustainability_score", "risk_level", "description",
}

// assetRecord is the on-disk shape of one JSON or YAML record. Pointer
// fields tell an absent key apart from a zero value.
type assetRecord struct {
	Name                *string `json:"name" yaml:"name"`
	Symbol              *string `json:"symbol" yaml:"symbol"`
	PriceTrend          *string `json:"price_trend" yaml:"price_trend"`
	MarketCap           *string `json:"market_cap" yaml:"market_cap"`
	EnergyUse           *string `json:"energy_use" yaml:"energy_use"`
	SustainabilityScore *int    `json:"sustainability_score" yaml:"sustainability_score"`
	RiskLevel           *string `json:"risk_level" yaml:"risk_level"`
	Description         *string `json:"description" yaml:"description"`
}

// missing lists the keys absent from r, in csvColumns order.
func (r assetRecord) missing() []string {
	present := []bool{
		r.Name != nil, r.Symbol != nil, r.PriceTrend != nil, r.MarketCap != nil,
		r.EnergyUse != nil, r.SustainabilityScore != nil, r.RiskLevel != nil, r.Description != nil,
	}
	var out []string
	for i, ok := range present {
		if !ok {
			out = append(out, csvColumns[i])
		}
	}
	return out
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// toAssets converts decoded records, rejecting any record with a missing
// key. The error wraps models.ErrInvalidAsset.
func toAssets(records []assetRecord) ([]models.Asset, error) {
	assets := make([]models.Asset, 0, len(records))
	for i, r := range records {
		if missing := r.missing(); len(missing) > 0 {
			return nil, fmt.Errorf("%w: record %d: missing %s", models.ErrInvalidAsset, i+1, strings.Join(missing, ", "))
		}
		assets = append(assets, models.Asset{
			Name:                deref(r.Name),
			Symbol:              deref(r.Symbol),
			PriceTrend:          models.Trend(deref(r.PriceTrend)),
			MarketCap:           models.Level(deref(r.MarketCap)),
			EnergyUse:           models.Level(deref(r.EnergyUse)),
			SustainabilityScore: deref(r.SustainabilityScore),
			RiskLevel:           models.Risk(deref(r.RiskLevel)),
			Description:         deref(r.Description),
		})
	}
	return assets, nil
}

// DefaultAssets returns the built-in asset table in its declared order.
func DefaultAssets() ([]models.Asset, error) {
	assets, err := ParseYAML(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in catalog: %w", err)
	}
	return assets, nil
}

// LoadAssets reads a catalog file, picking the decoder from the extension.
// Records are returned in file order. Every key must be present; value
// checks are left to models.Asset.Validate.
func LoadAssets(filePath string) ([]models.Asset, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return LoadYAML(filePath)
	case ".json":
		return LoadJSON(filePath)
	case ".csv":
		return LoadCSV(filePath)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
	}
}

func LoadYAML(filePath string) ([]models.Asset, error) {
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a YAML list of asset records. Unknown and missing keys
// are both rejected so that a misspelled field surfaces at load time.
func ParseYAML(data []byte) ([]models.Asset, error) {
	var records []assetRecord
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	return toAssets(records)
}

func LoadJSON(filePath string) ([]models.Asset, error) {
	file, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	var records []assetRecord
	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return toAssets(records)
}

// LoadCSV reads one asset per row in csvColumns order. A header row is
// skipped if its first cell is "name" (any case).
func LoadCSV(filePath string) ([]models.Asset, error) {
	f, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(csvColumns)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog CSV: %w", err)
	}

	if len(records) > 0 && strings.EqualFold(records[0][0], csvColumns[0]) {
		records = records[1:]
	}

	assets := make([]models.Asset, 0, len(records))
	for i, record := range records {
		score, err := strconv.Atoi(strings.TrimSpace(record[5]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid sustainability_score %q: %w", i+1, record[5], err)
		}
		assets = append(assets, models.Asset{
			Name:                strings.TrimSpace(record[0]),
			Symbol:              strings.TrimSpace(record[1]),
			PriceTrend:          models.Trend(strings.ToLower(strings.TrimSpace(record[2]))),
			MarketCap:           models.Level(strings.ToLower(strings.TrimSpace(record[3]))),
			EnergyUse:           models.Level(strings.ToLower(strings.TrimSpace(record[4]))),
			SustainabilityScore: score,
			RiskLevel:           models.Risk(strings.ToLower(strings.TrimSpace(record[6]))),
			Description:         strings.TrimSpace(record[7]),
		})
	}

	return assets, nil
}
