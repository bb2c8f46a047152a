package wizard

import (
	"context"

	"github.com/fabkit-dev/fabkit/internal/generator"
	"github.com/fabkit-dev/fabkit/internal/output"
	"github.com/fabkit-dev/fabkit/internal/workspace"
)

// ContractType selects between a plain contract and one that keeps its
// assets in a private data collection.
type ContractType string

const (
	ContractTypeDefault ContractType = "default"
	ContractTypePrivate ContractType = "private"
)

func (c ContractType) Private() bool {
	return c == ContractTypePrivate
}

// infix is spliced into every user-facing message about the project.
func (c ContractType) infix() string {
	if c.Private() {
		return " Private Data "
	}
	return " "
}

func (c ContractType) telemetryEvent() string {
	if c.Private() {
		return "createPrivateDataSmartContractProject"
	}
	return "createSmartContractProject"
}

func (c ContractType) assetPlaceholder() string {
	if c.Private() {
		return "MyPrivateAsset"
	}
	return "MyAsset"
}

// ContractTypeItem is one entry of the contract type pick list.
type ContractTypeItem struct {
	Label       string
	Description string
	Type        ContractType
}

// ContractTypeItems are offered in this order.
var ContractTypeItems = []ContractTypeItem{
	{
		Label:       "Default Contract",
		Description: "Generate a smart contract that manages assets on the public ledger",
		Type:        ContractTypeDefault,
	},
	{
		Label:       "Private Data Contract",
		Description: "Generate a smart contract that keeps assets in a private data collection",
		Type:        ContractTypePrivate,
	},
}

// Outcome is how a wizard run ended.
type Outcome int

const (
	outcomeNext Outcome = iota
	// OutcomeCancelled: a prompt was dismissed or answered empty
	OutcomeCancelled
	// OutcomeInvalid: an answer failed validation
	OutcomeInvalid
	// OutcomeFailed: a prompt or the generation failed
	OutcomeFailed
	OutcomeCreated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeFailed:
		return "failed"
	case OutcomeCreated:
		return "created"
	default:
		return "unknown"
	}
}

// Logger reports to the user. long may be empty.
type Logger interface {
	Log(level output.LogType, short, long string)
}

type TelemetrySink interface {
	SendTelemetryEvent(ctx context.Context, name string, properties map[string]string)
}

// ProjectGenerator scaffolds the project described by opts into
// opts.Destination.
type ProjectGenerator interface {
	Run(ctx context.Context, key string, opts generator.Options) error
}

// UserPrompts asks the user for each answer. Every method returns
// ui.ErrCancelled or a zero value when the user backs out.
type UserPrompts interface {
	PickContractType(ctx context.Context, title string, items []ContractTypeItem) (ContractType, error)
	InputMspID(ctx context.Context, title, placeholder string) (string, error)
	PickLanguage(ctx context.Context, title string, chaincodeLanguages, contractLanguages []string) (generator.Language, error)
	InputAsset(ctx context.Context, title, placeholder string) (string, error)
	BrowseFolder(ctx context.Context, title, hint string) (string, error)
	PickOpenMethod(ctx context.Context, title string) (workspace.OpenMethod, error)
}

// Progress shows title while fn runs. fn is not interruptible.
type Progress interface {
	Run(title string, fn func() error) error
}

type ProjectOpener interface {
	Open(ctx context.Context, path string, method workspace.OpenMethod) error
	FocusExplorer(ctx context.Context, path string) error
}

// LanguageCatalog provides the languages the generator supports.
type LanguageCatalog interface {
	ChaincodeLanguageOptions() []string
	ContractLanguageOptions() []string
}
