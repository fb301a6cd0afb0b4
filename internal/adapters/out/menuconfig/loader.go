// Package menuconfig loads the timing preset catalog from a YAML file.
//
// The file lists tier boundaries in seconds per menu item, optionally scoped
// to a department, plus per-department and global defaults:
//
//	default:
//	  veryFast: 30
//	  fast: 48
//	  standard: 60
//	  slow: 72
//	  extremelySlow: 120
//	departments:
//	  bar:
//	    default: {veryFast: 20, fast: 35, standard: 45, slow: 60, extremelySlow: 90}
//	    items:
//	      Negroni: {veryFast: 15, fast: 25, standard: 35, slow: 50, extremelySlow: 80}
//	items:
//	  Margherita: {veryFast: 60, fast: 90, standard: 120, slow: 150, extremelySlow: 240}
//
// A missing file yields the built-in defaults; a malformed file or an invalid
// preset is an error, so a typo cannot silently reclassify the whole menu.
package menuconfig

import (
	"fmt"
	"os"
	"time"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/timing"

	"gopkg.in/yaml.v3"
)

// presetsYAML is the YAML shape of one tier boundary set, in seconds.
type presetsYAML struct {
	VeryFast      int64 `yaml:"veryFast"`
	Fast          int64 `yaml:"fast"`
	Standard      int64 `yaml:"standard"`
	Slow          int64 `yaml:"slow"`
	ExtremelySlow int64 `yaml:"extremelySlow"`
}

// departmentYAML is the YAML shape of one department section.
type departmentYAML struct {
	Default *presetsYAML           `yaml:"default"`
	Items   map[string]presetsYAML `yaml:"items"`
}

// fileYAML is the YAML shape of the whole preset file.
type fileYAML struct {
	Default     *presetsYAML              `yaml:"default"`
	Departments map[string]departmentYAML `yaml:"departments"`
	Items       map[string]presetsYAML    `yaml:"items"`
}

// DefaultPresets returns the built-in global fallback: a one-minute standard
// with proportionally spaced tiers.
func DefaultPresets() timing.ItemTiming {
	presets, err := timing.NewItemTiming(
		30*time.Second,
		48*time.Second,
		60*time.Second,
		72*time.Second,
		120*time.Second,
	)
	if err != nil {
		// Static values, validated by tests.
		panic(err)
	}
	return presets
}

// Load builds a catalog from the YAML file at path. When path is empty or
// the file does not exist, the catalog holds only the built-in defaults.
func Load(path string) (*timing.Catalog, error) {
	if path == "" {
		return timing.NewCatalog(DefaultPresets()), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return timing.NewCatalog(DefaultPresets()), nil
		}
		return nil, fmt.Errorf("read menu presets %s: %w", path, err)
	}

	return Parse(data)
}

// Parse builds a catalog from raw YAML content.
func Parse(data []byte) (*timing.Catalog, error) {
	var file fileYAML
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse menu presets: %w", err)
	}

	fallback := DefaultPresets()
	if file.Default != nil {
		converted, err := toItemTiming(*file.Default)
		if err != nil {
			return nil, fmt.Errorf("default presets: %w", err)
		}
		fallback = converted
	}

	catalog := timing.NewCatalog(fallback)

	for name, presets := range file.Items {
		converted, err := toItemTiming(presets)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", name, err)
		}
		if err := catalog.SetItemTiming(name, converted); err != nil {
			return nil, err
		}
	}

	for departmentName, section := range file.Departments {
		department, err := kernel.DepartmentFromString(departmentName)
		if err != nil {
			return nil, fmt.Errorf("department %q: %w", departmentName, err)
		}

		if section.Default != nil {
			converted, convErr := toItemTiming(*section.Default)
			if convErr != nil {
				return nil, fmt.Errorf("department %q default: %w", departmentName, convErr)
			}
			if err := catalog.SetDepartmentDefault(department, converted); err != nil {
				return nil, err
			}
		}

		for name, presets := range section.Items {
			converted, convErr := toItemTiming(presets)
			if convErr != nil {
				return nil, fmt.Errorf("department %q item %q: %w", departmentName, name, convErr)
			}
			if err := catalog.SetDepartmentItemTiming(department, name, converted); err != nil {
				return nil, err
			}
		}
	}

	return catalog, nil
}

// toItemTiming converts second counts to a validated preset set.
func toItemTiming(presets presetsYAML) (timing.ItemTiming, error) {
	return timing.NewItemTiming(
		time.Duration(presets.VeryFast)*time.Second,
		time.Duration(presets.Fast)*time.Second,
		time.Duration(presets.Standard)*time.Second,
		time.Duration(presets.Slow)*time.Second,
		time.Duration(presets.ExtremelySlow)*time.Second,
	)
}
