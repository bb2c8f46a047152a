package wizard

import (
	"context"
	"fmt"

	"github.com/fabkit-dev/fabkit/internal/generator"
	"github.com/fabkit-dev/fabkit/internal/ui"
	"github.com/fabkit-dev/fabkit/internal/workspace"
)

// Answers pre-fill prompts. Zero fields are asked interactively.
type Answers struct {
	ContractType ContractType
	MspID        string
	Language     string
	Chaincode    bool
	Asset        string
	Destination  string
	OpenMethod   workspace.OpenMethod
}

// TerminalPrompts asks through huh forms, skipping any prompt already
// answered by a preset.
type TerminalPrompts struct {
	preset Answers
}

func NewTerminalPrompts(preset Answers) *TerminalPrompts {
	return &TerminalPrompts{preset: preset}
}

func (p *TerminalPrompts) PickContractType(_ context.Context, title string, items []ContractTypeItem) (ContractType, error) {
	if p.preset.ContractType != "" {
		return p.preset.ContractType, nil
	}
	options := make([]ui.SelectOption[ContractType], len(items))
	for i, item := range items {
		options[i] = ui.SelectOption[ContractType]{
			Label:       item.Label,
			Description: item.Description,
			Value:       item.Type,
		}
	}
	return ui.Select(title, options)
}

func (p *TerminalPrompts) InputMspID(_ context.Context, title, placeholder string) (string, error) {
	if p.preset.MspID != "" {
		return p.preset.MspID, nil
	}
	return ui.Input(title, ui.WithPlaceholder(placeholder))
}

func (p *TerminalPrompts) PickLanguage(_ context.Context, title string, chaincodeLanguages, contractLanguages []string) (generator.Language, error) {
	items := generator.BuildLanguageItems(chaincodeLanguages, contractLanguages)

	if p.preset.Language != "" {
		languageType := generator.LanguageTypeContract
		if p.preset.Chaincode {
			languageType = generator.LanguageTypeChaincode
		}
		language, ok := generator.FindLanguage(items, p.preset.Language, languageType)
		if !ok {
			return generator.Language{}, fmt.Errorf("%w: %s is not available as a %s language",
				generator.ErrUnsupportedLanguage, p.preset.Language, languageType)
		}
		return language, nil
	}

	options := make([]ui.SelectOption[generator.Language], len(items))
	for i, item := range items {
		options[i] = ui.SelectOption[generator.Language]{
			Label:       item.Label,
			Description: item.Description,
			Value:       item,
		}
	}
	return ui.Select(title, options)
}

func (p *TerminalPrompts) InputAsset(_ context.Context, title, placeholder string) (string, error) {
	if p.preset.Asset != "" {
		return p.preset.Asset, nil
	}
	return ui.Input(title, ui.WithPlaceholder(placeholder))
}

func (p *TerminalPrompts) BrowseFolder(_ context.Context, title, hint string) (string, error) {
	if p.preset.Destination != "" {
		return ui.ResolveFolder(p.preset.Destination)
	}
	return ui.BrowseFolder(title, ui.WithInputDescription(hint))
}

func (p *TerminalPrompts) PickOpenMethod(_ context.Context, title string) (workspace.OpenMethod, error) {
	if p.preset.OpenMethod != "" {
		return p.preset.OpenMethod, nil
	}
	options := make([]ui.SelectOption[workspace.OpenMethod], len(workspace.Methods))
	for i, method := range workspace.Methods {
		options[i] = ui.SelectOption[workspace.OpenMethod]{
			Label: method.Label(),
			Value: method,
		}
	}
	return ui.Select(title, options)
}
