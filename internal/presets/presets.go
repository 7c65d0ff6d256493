// Package presets loads and stores the read-only catalogue of container
// presets offered on the calculator page.
package presets

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"hydromix/internal/mixture"
	"hydromix/models"
)

//go:embed catalogue.yaml
var catalogueYAML []byte

// ErrInvalidPreset wraps every rejected catalogue entry.
var ErrInvalidPreset = errors.New("presets: invalid preset")

type catalogueFile struct {
	Presets []catalogueEntry `yaml:"presets"`
}

type catalogueEntry struct {
	Slug   string  `yaml:"slug"`
	Name   string  `yaml:"name"`
	Size   float64 `yaml:"size"`
	Unit   string  `yaml:"unit"`
	System string  `yaml:"system"`
}

// Default parses the embedded catalogue.
func Default() ([]models.ContainerPreset, error) {
	return Load(bytes.NewReader(catalogueYAML))
}

// Load parses a YAML catalogue and normalises each entry.
func Load(r io.Reader) ([]models.ContainerPreset, error) {
	var file catalogueFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}

	out := make([]models.ContainerPreset, 0, len(file.Presets))
	for i, entry := range file.Presets {
		p, err := Normalize(models.ContainerPreset{
			Slug:   entry.Slug,
			Name:   entry.Name,
			Size:   entry.Size,
			Unit:   entry.Unit,
			System: entry.System,
		})
		if err != nil {
			return nil, fmt.Errorf("preset %d: %w", i+1, err)
		}
		p.Position = i + 1
		out = append(out, p)
	}
	return out, nil
}

// ParseCSV reads presets from a CSV document with a header row naming the
// name, size and unit columns. A system column is optional.
func ParseCSV(r io.Reader) ([]models.ContainerPreset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "size", "unit"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("csv header missing %q column", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var out []models.ContainerPreset
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if strings.TrimSpace(strings.Join(record, "")) == "" {
			continue
		}

		size, err := strconv.ParseFloat(field(record, "size"), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: size %q is not a number", line, ErrInvalidPreset, field(record, "size"))
		}

		preset, err := Normalize(models.ContainerPreset{
			Slug:   field(record, "slug"),
			Name:   field(record, "name"),
			Size:   size,
			Unit:   field(record, "unit"),
			System: field(record, "system"),
		})
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		preset.Position = len(out) + 1
		out = append(out, preset)
	}
	return out, nil
}

// Normalize canonicalises the unit, system and slug of p and checks that
// the calculator would accept its size and unit.
func Normalize(p models.ContainerPreset) (models.ContainerPreset, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return p, fmt.Errorf("%w: name is required", ErrInvalidPreset)
	}
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = models.Slugify(p.Name)
	} else {
		p.Slug = models.Slugify(p.Slug)
	}

	unit := mixture.ParseUnit(p.Unit)
	result := mixture.Validate(mixture.CalculationInput{ContainerSize: p.Size, Unit: unit})
	if !result.IsValid {
		return p, fmt.Errorf("%w: %s: %s", ErrInvalidPreset, p.Name, strings.Join(result.Errors, ", "))
	}
	p.Unit = string(unit)

	system := mixture.ParseSystem(p.System)
	if system == "" {
		system = systemOf(unit)
	}
	p.System = string(system)
	return p, nil
}

func systemOf(unit mixture.Unit) mixture.System {
	for _, u := range mixture.SystemUnits(mixture.Metric) {
		if u == unit {
			return mixture.Metric
		}
	}
	return mixture.Imperial
}

// Input converts a preset into calculator input.
func Input(p models.ContainerPreset) mixture.CalculationInput {
	return mixture.CalculationInput{
		ContainerSize: p.Size,
		Unit:          mixture.ParseUnit(p.Unit),
		System:        mixture.ParseSystem(p.System),
	}
}
