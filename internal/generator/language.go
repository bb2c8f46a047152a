package generator

import (
	"fmt"
	"strings"
)

// LanguageType is the programming model a language option is generated for.
type LanguageType string

const (
	LanguageTypeContract  LanguageType = "Contract"
	LanguageTypeChaincode LanguageType = "Chaincode"
)

const generatorNamespace = "fabric"

var languageLabels = map[string]string{
	"go":         "Go",
	"java":       "Java",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
}

// Language is one entry of the language pick list.
type Language struct {
	Label       string
	Description string
	Type        LanguageType
}

// Name is the language value handed to the generator, e.g. "typescript".
func (l Language) Name() string {
	return strings.ToLower(l.Label)
}

// GeneratorKey returns the generator to run for this language, e.g. "fabric:contract".
func (l Language) GeneratorKey() string {
	return GeneratorKey(l.Type)
}

// GeneratorKey builds "fabric:<type>" for a language type.
func GeneratorKey(t LanguageType) string {
	return fmt.Sprintf("%s:%s", generatorNamespace, strings.ToLower(string(t)))
}

// ParseGeneratorKey is the inverse of GeneratorKey.
func ParseGeneratorKey(key string) (LanguageType, error) {
	namespace, name, found := strings.Cut(key, ":")
	if !found || namespace != generatorNamespace {
		return "", fmt.Errorf("%w: %q", ErrUnknownGenerator, key)
	}
	switch name {
	case "contract":
		return LanguageTypeContract, nil
	case "chaincode":
		return LanguageTypeChaincode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGenerator, key)
	}
}

// LanguageLabel returns the display label of a language identifier.
func LanguageLabel(name string) string {
	if label, ok := languageLabels[strings.ToLower(name)]; ok {
		return label
	}
	return name
}

// BuildLanguageItems combines both option lists into one pick list, contract
// languages first.
func BuildLanguageItems(chaincodeLanguages, contractLanguages []string) []Language {
	items := make([]Language, 0, len(chaincodeLanguages)+len(contractLanguages))
	for _, lang := range contractLanguages {
		items = append(items, Language{
			Label:       LanguageLabel(lang),
			Description: "Fabric contract API",
			Type:        LanguageTypeContract,
		})
	}
	for _, lang := range chaincodeLanguages {
		items = append(items, Language{
			Label:       LanguageLabel(lang),
			Description: "Low-level chaincode shim",
			Type:        LanguageTypeChaincode,
		})
	}
	return items
}

// FindLanguage looks up a pick-list entry by language name and type.
func FindLanguage(items []Language, name string, t LanguageType) (Language, bool) {
	for _, item := range items {
		if item.Type == t && strings.EqualFold(item.Name(), name) {
			return item, true
		}
	}
	return Language{}, false
}
