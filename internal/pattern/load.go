package pattern

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileTables is the shape of a custom pattern file. Every section is
// optional and extends the builtin tables.
type fileTables struct {
	Rules        []Rule            `yaml:"rules"`
	Keywords     []Keyword         `yaml:"keywords"`
	Replacements map[string]string `yaml:"replacements"`
}

// Load reads a YAML pattern file and returns a library of the builtin
// tables extended with its entries. The merged set is validated the same
// way the builtins are, so a bad file fails here rather than mid-scan.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern file: %w", err)
	}

	var ft fileTables
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parse pattern file: %w", err)
	}

	rules := append(builtinRules(), ft.Rules...)
	keywords := append(builtinKeywords(), ft.Keywords...)
	replacements := builtinReplacements()
	for category, text := range ft.Replacements {
		replacements[category] = text
	}

	lib, err := build(rules, builtinTypeRules(), builtinMitigations(), keywords, replacements)
	if err != nil {
		return nil, fmt.Errorf("pattern file %s: %w", path, err)
	}
	return lib, nil
}
