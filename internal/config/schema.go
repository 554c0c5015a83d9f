package config

import (
	_ "embed"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed schema.yaml
var rawSchema []byte

// Schema holds the hand-authored mapping and classification tables the
// pipeline runs on. It is loaded once at process start and passed into each
// stage as an explicit parameter; stages never reach for global state.
type Schema struct {
	// ColumnMapping renames raw export headers to canonical field names.
	ColumnMapping map[string]string `yaml:"column_mapping"`

	// Domains are the substring lists for URL classification, matched in
	// maps → social → ecommerce priority order.
	Domains DomainLists `yaml:"domains"`

	// TierLabels maps reported annual sales bands to ordinal tiers 1–5.
	TierLabels map[string]int `yaml:"tier_labels"`

	// StepFlags defines the binary onboarding-step columns and the raw step
	// codes each one matches.
	StepFlags []StepFlagSpec `yaml:"step_flags"`
}

// DomainLists holds the URL classification substring tables.
type DomainLists struct {
	Maps      []string `yaml:"maps"`
	Social    []string `yaml:"social"`
	Ecommerce []string `yaml:"ecommerce"`
}

// StepFlagSpec is one binary step-flag column definition.
type StepFlagSpec struct {
	Column  string   `yaml:"column"`
	Matches []string `yaml:"matches"`
}

// LoadSchema parses the embedded schema tables.
func LoadSchema() (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(rawSchema, &s); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal schema")
	}
	return &s, nil
}
