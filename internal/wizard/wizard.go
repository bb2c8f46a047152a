// Package wizard asks the user how a new smart contract project should look
// and hands the answers to the project generator.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fabkit-dev/fabkit/internal/generator"
	"github.com/fabkit-dev/fabkit/internal/output"
	"github.com/fabkit-dev/fabkit/internal/ui"
	"github.com/fabkit-dev/fabkit/internal/validation"
	"github.com/fabkit-dev/fabkit/internal/workspace"
)

const (
	contractTypeTitle = "Choose a contract type to generate:"
	mspIDTitle        = "Please provide an mspID for the private data collection"
	mspIDPlaceholder  = "Org1MSP"
	languageTitle     = "Choose smart contract language (Esc to cancel)"
	assetTitle        = "Name the type of asset managed by this smart contract"
	folderTitle       = "Choose the location to save the smart contract."
	folderHint        = `Only use alphanumeric, "_" and "-" characters in the folder name`
	openMethodTitle   = "Choose how to open your new project"
)

// Deps are the collaborators of a Wizard.
type Deps struct {
	Log       Logger
	Telemetry TelemetrySink
	Generator ProjectGenerator
	Prompts   UserPrompts
	Progress  Progress
	Opener    ProjectOpener
	Languages LanguageCatalog

	// SkipInstall leaves dependency installation to the user.
	SkipInstall bool
}

// Wizard creates one smart contract project per Run.
type Wizard struct {
	Deps
}

func New(deps Deps) *Wizard {
	return &Wizard{Deps: deps}
}

// answers accumulates what the user chose so far.
type answers struct {
	chaincodeLanguages []string
	contractLanguages  []string

	contractType ContractType
	mspID        string
	language     generator.Language
	asset        string
	folder       string
	openMethod   workspace.OpenMethod
}

type step func(ctx context.Context, a *answers) Outcome

// Run walks the user through every prompt and generates the project. It
// never returns an error; failures are reported through Log and summarised
// by the Outcome.
func (w *Wizard) Run(ctx context.Context) Outcome {
	steps := []step{
		w.loadLanguages,
		w.pickContractType,
		w.inputMspID,
		w.pickLanguage,
		w.inputAsset,
		w.browseFolder,
		w.checkFolder,
		w.pickOpenMethod,
		w.generate,
	}

	a := &answers{}
	for _, s := range steps {
		if outcome := s(ctx, a); outcome != outcomeNext {
			return outcome
		}
	}
	return OutcomeCreated
}

func (w *Wizard) loadLanguages(_ context.Context, a *answers) Outcome {
	a.chaincodeLanguages = w.Languages.ChaincodeLanguageOptions()
	a.contractLanguages = w.Languages.ContractLanguageOptions()
	return outcomeNext
}

func (w *Wizard) pickContractType(ctx context.Context, a *answers) Outcome {
	contractType, err := w.Prompts.PickContractType(ctx, contractTypeTitle, ContractTypeItems)
	if outcome := w.answered(err, contractType == ""); outcome != outcomeNext {
		return outcome
	}
	a.contractType = contractType
	return outcomeNext
}

func (w *Wizard) inputMspID(ctx context.Context, a *answers) Outcome {
	if !a.contractType.Private() {
		return outcomeNext
	}
	mspID, err := w.Prompts.InputMspID(ctx, mspIDTitle, mspIDPlaceholder)
	if outcome := w.answered(err, mspID == ""); outcome != outcomeNext {
		return outcome
	}
	a.mspID = mspID
	return outcomeNext
}

func (w *Wizard) pickLanguage(ctx context.Context, a *answers) Outcome {
	chaincode := a.chaincodeLanguages
	if a.contractType.Private() {
		// Private data needs the contract API.
		chaincode = nil
	}
	language, err := w.Prompts.PickLanguage(ctx, languageTitle, chaincode, a.contractLanguages)
	if outcome := w.answered(err, language.Label == ""); outcome != outcomeNext {
		return outcome
	}
	a.language = language
	return outcomeNext
}

func (w *Wizard) inputAsset(ctx context.Context, a *answers) Outcome {
	if a.language.Type != generator.LanguageTypeContract {
		return outcomeNext
	}
	asset, err := w.Prompts.InputAsset(ctx, assetTitle, a.contractType.assetPlaceholder())
	if outcome := w.answered(err, asset == ""); outcome != outcomeNext {
		return outcome
	}
	if err := validation.IsValidAssetType(asset); err != nil {
		w.Log.Log(output.ERROR, validation.AssetTypeErrorMessage, "")
		return OutcomeInvalid
	}
	a.asset = asset
	return outcomeNext
}

func (w *Wizard) browseFolder(ctx context.Context, a *answers) Outcome {
	folder, err := w.Prompts.BrowseFolder(ctx, folderTitle, folderHint)
	if outcome := w.answered(err, folder == ""); outcome != outcomeNext {
		return outcome
	}
	a.folder = folder
	return outcomeNext
}

func (w *Wizard) checkFolder(_ context.Context, a *answers) Outcome {
	if err := validation.IsValidProjectFolder(a.folder); err != nil {
		w.Log.Log(output.ERROR, validation.ProjectFolderErrorMessage, "")
		return OutcomeInvalid
	}
	return outcomeNext
}

func (w *Wizard) pickOpenMethod(ctx context.Context, a *answers) Outcome {
	method, err := w.Prompts.PickOpenMethod(ctx, openMethodTitle)
	if outcome := w.answered(err, method == ""); outcome != outcomeNext {
		return outcome
	}
	a.openMethod = method
	return outcomeNext
}

func (w *Wizard) generate(ctx context.Context, a *answers) Outcome {
	infix := a.contractType.infix()

	if err := w.createProject(ctx, a); err != nil {
		prefix := fmt.Sprintf("Issue creating%sSmart Contract Project: ", infix)
		w.Log.Log(output.ERROR, prefix+err.Error(), fmt.Sprintf("%s%+v", prefix, err))
		return OutcomeFailed
	}
	return OutcomeCreated
}

func (w *Wizard) createProject(ctx context.Context, a *answers) error {
	infix := a.contractType.infix()
	opts := w.generatorOptions(a)

	// Generation runs to completion even if ctx is cancelled mid-way.
	genCtx := context.WithoutCancel(ctx)
	err := w.Progress.Run(fmt.Sprintf("Generating%sSmart Contract Project", infix), func() error {
		return w.Generator.Run(genCtx, a.language.GeneratorKey(), opts)
	})
	if err != nil {
		return err
	}

	w.Log.Log(output.SUCCESS, fmt.Sprintf("Successfully generated%sSmart Contract Project", infix), "")
	w.Telemetry.SendTelemetryEvent(ctx, a.contractType.telemetryEvent(), map[string]string{
		"contractLanguage": opts.Language,
	})

	if err := w.Opener.Open(ctx, a.folder, a.openMethod); err != nil {
		return err
	}
	return w.Opener.FocusExplorer(ctx, a.folder)
}

func (w *Wizard) generatorOptions(a *answers) generator.Options {
	opts := generator.Options{
		Destination:  a.folder,
		ContractType: string(a.contractType),
		Language:     a.language.Name(),
		Name:         filepath.Base(a.folder),
		Version:      generator.DefaultVersion,
		Description:  fmt.Sprintf("My%sSmart Contract", a.contractType.infix()),
		Author:       generator.DefaultAuthor,
		License:      generator.DefaultLicense,
		SkipInstall:  w.SkipInstall,
		Asset:        a.asset,
	}
	if a.contractType.Private() {
		opts.MspID = a.mspID
	}
	return opts
}

// answered turns a prompt result into an outcome. Dismissed and empty
// prompts end the run silently.
func (w *Wizard) answered(err error, empty bool) Outcome {
	switch {
	case errors.Is(err, ui.ErrCancelled):
		return OutcomeCancelled
	case err != nil:
		w.Log.Log(output.ERROR, err.Error(), fmt.Sprintf("%+v", err))
		return OutcomeFailed
	case empty:
		return OutcomeCancelled
	default:
		return outcomeNext
	}
}
