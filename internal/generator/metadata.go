package generator

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed generator.yaml
var metadataContent []byte

// Metadata describes the languages the embedded generator can scaffold.
type Metadata struct {
	Name               string   `yaml:"name"`
	Version            string   `yaml:"version"`
	Description        string   `yaml:"description"`
	ContractLanguages  []string `yaml:"contractLanguages"`
	ChaincodeLanguages []string `yaml:"chaincodeLanguages"`
}

// LoadMetadata parses the embedded generator metadata.
func LoadMetadata() (*Metadata, error) {
	return ParseMetadata(metadataContent)
}

// ParseMetadata parses generator metadata from YAML.
func ParseMetadata(data []byte) (*Metadata, error) {
	var m Metadata
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse generator metadata: %w", err)
	}
	if len(m.ContractLanguages) == 0 && len(m.ChaincodeLanguages) == 0 {
		return nil, fmt.Errorf("generator metadata %q lists no languages", m.Name)
	}
	return &m, nil
}

// ChaincodeLanguageOptions returns the low-level chaincode languages.
func (m *Metadata) ChaincodeLanguageOptions() []string {
	return append([]string(nil), m.ChaincodeLanguages...)
}

// ContractLanguageOptions returns the contract-API languages.
func (m *Metadata) ContractLanguageOptions() []string {
	return append([]string(nil), m.ContractLanguages...)
}
