package request_models

import (
	"fmt"
	"math"
	"strings"
)

// CatalogImport is the document accepted by the seed command:
//
//	categories:
//	  - name: E-commerce
//	    features:
//	      - name: Cart
//	        hours: 12
type CatalogImport struct {
	Categories []CatalogCategory `yaml:"categories" json:"categories"`
}

type CatalogCategory struct {
	Name     string           `yaml:"name" json:"name"`
	Features []CatalogFeature `yaml:"features" json:"features"`
}

type CatalogFeature struct {
	Name  string  `yaml:"name" json:"name"`
	Hours float64 `yaml:"hours" json:"hours"`
}

func (c CatalogImport) Validate() error {
	var problems []string
	seen := make(map[string]bool, len(c.Categories))

	for i, cat := range c.Categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			problems = append(problems, fmt.Sprintf("category #%d: name is required", i+1))
			continue
		}
		if seen[name] {
			problems = append(problems, fmt.Sprintf("category %q: duplicated", name))
		}
		seen[name] = true

		features := make(map[string]bool, len(cat.Features))
		for j, f := range cat.Features {
			featureName := strings.TrimSpace(f.Name)
			if featureName == "" {
				problems = append(problems, fmt.Sprintf("category %q feature #%d: name is required", name, j+1))
			} else if features[featureName] {
				problems = append(problems, fmt.Sprintf("category %q feature %q: duplicated", name, featureName))
			}
			features[featureName] = true

			switch {
			case math.IsNaN(f.Hours) || math.IsInf(f.Hours, 0):
				problems = append(problems, fmt.Sprintf("category %q feature %q: hours must be a finite number", name, f.Name))
			case f.Hours < 0:
				problems = append(problems, fmt.Sprintf("category %q feature %q: hours must not be negative", name, f.Name))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid catalog:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
