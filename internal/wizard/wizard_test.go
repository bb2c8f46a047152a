package wizard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabkit-dev/fabkit/internal/generator"
	"github.com/fabkit-dev/fabkit/internal/output"
	"github.com/fabkit-dev/fabkit/internal/ui"
	"github.com/fabkit-dev/fabkit/internal/validation"
	"github.com/fabkit-dev/fabkit/internal/workspace"
)

type logEntry struct {
	level output.LogType
	short string
	long  string
}

type fakeLogger struct {
	entries []logEntry
}

func (l *fakeLogger) Log(level output.LogType, short, long string) {
	l.entries = append(l.entries, logEntry{level: level, short: short, long: long})
}

type telemetryEvent struct {
	name       string
	properties map[string]string
}

type fakeTelemetry struct {
	events []telemetryEvent
}

func (f *fakeTelemetry) SendTelemetryEvent(_ context.Context, name string, properties map[string]string) {
	f.events = append(f.events, telemetryEvent{name: name, properties: properties})
}

type generatorCall struct {
	key  string
	opts generator.Options
}

type fakeGenerator struct {
	calls []generatorCall
	err   error
}

func (g *fakeGenerator) Run(_ context.Context, key string, opts generator.Options) error {
	g.calls = append(g.calls, generatorCall{key: key, opts: opts})
	return g.err
}

type fakeProgress struct {
	titles []string
}

func (p *fakeProgress) Run(title string, fn func() error) error {
	p.titles = append(p.titles, title)
	return fn()
}

type fakeOpener struct {
	opened  []string
	methods []workspace.OpenMethod
	focused []string
	err     error
}

func (o *fakeOpener) Open(_ context.Context, path string, method workspace.OpenMethod) error {
	o.opened = append(o.opened, path)
	o.methods = append(o.methods, method)
	return o.err
}

func (o *fakeOpener) FocusExplorer(_ context.Context, path string) error {
	o.focused = append(o.focused, path)
	return nil
}

type fakeCatalog struct{}

func (fakeCatalog) ChaincodeLanguageOptions() []string { return []string{"go", "javascript"} }
func (fakeCatalog) ContractLanguageOptions() []string {
	return []string{"javascript", "typescript", "java", "go"}
}

// fakePrompts answers every prompt from its fields and records what it was
// asked.
type fakePrompts struct {
	contractType    ContractType
	contractTypeErr error
	mspID           string
	mspIDErr        error
	language        generator.Language
	languageErr     error
	asset           string
	assetErr        error
	folder          string
	folderErr       error
	openMethod      workspace.OpenMethod
	openMethodErr   error

	asked             []string
	offeredChaincode  []string
	offeredContract   []string
	assetPlaceholder  string
	mspIDPlaceholder  string
	contractTypeItems []ContractTypeItem
}

func (p *fakePrompts) PickContractType(_ context.Context, _ string, items []ContractTypeItem) (ContractType, error) {
	p.asked = append(p.asked, "contractType")
	p.contractTypeItems = items
	return p.contractType, p.contractTypeErr
}

func (p *fakePrompts) InputMspID(_ context.Context, _, placeholder string) (string, error) {
	p.asked = append(p.asked, "mspID")
	p.mspIDPlaceholder = placeholder
	return p.mspID, p.mspIDErr
}

func (p *fakePrompts) PickLanguage(_ context.Context, _ string, chaincode, contract []string) (generator.Language, error) {
	p.asked = append(p.asked, "language")
	p.offeredChaincode = chaincode
	p.offeredContract = contract
	return p.language, p.languageErr
}

func (p *fakePrompts) InputAsset(_ context.Context, _, placeholder string) (string, error) {
	p.asked = append(p.asked, "asset")
	p.assetPlaceholder = placeholder
	return p.asset, p.assetErr
}

func (p *fakePrompts) BrowseFolder(context.Context, string, string) (string, error) {
	p.asked = append(p.asked, "folder")
	return p.folder, p.folderErr
}

func (p *fakePrompts) PickOpenMethod(context.Context, string) (workspace.OpenMethod, error) {
	p.asked = append(p.asked, "openMethod")
	return p.openMethod, p.openMethodErr
}

var (
	typescriptContract = generator.Language{Label: "TypeScript", Description: "Fabric contract API", Type: generator.LanguageTypeContract}
	goChaincode        = generator.Language{Label: "Go", Description: "Low-level chaincode shim", Type: generator.LanguageTypeChaincode}
)

func defaultPrompts() *fakePrompts {
	return &fakePrompts{
		contractType: ContractTypeDefault,
		language:     typescriptContract,
		asset:        "MyAsset",
		folder:       "/work/my-contract_1",
		openMethod:   workspace.OpenInNewWindow,
	}
}

func privatePrompts() *fakePrompts {
	p := defaultPrompts()
	p.contractType = ContractTypePrivate
	p.mspID = "Org1MSP"
	p.asset = "MyPrivateAsset"
	return p
}

type harness struct {
	log       *fakeLogger
	telemetry *fakeTelemetry
	generator *fakeGenerator
	progress  *fakeProgress
	opener    *fakeOpener
	prompts   *fakePrompts
}

func newHarness(prompts *fakePrompts) *harness {
	return &harness{
		log:       &fakeLogger{},
		telemetry: &fakeTelemetry{},
		generator: &fakeGenerator{},
		progress:  &fakeProgress{},
		opener:    &fakeOpener{},
		prompts:   prompts,
	}
}

func (h *harness) run(t *testing.T) Outcome {
	t.Helper()
	w := New(Deps{
		Log:         h.log,
		Telemetry:   h.telemetry,
		Generator:   h.generator,
		Prompts:     h.prompts,
		Progress:    h.progress,
		Opener:      h.opener,
		Languages:   fakeCatalog{},
		SkipInstall: true,
	})
	return w.Run(context.Background())
}

func (h *harness) assertNothingHappened(t *testing.T) {
	t.Helper()
	assert.Empty(t, h.generator.calls, "generator must not run")
	assert.Empty(t, h.log.entries, "nothing must be logged")
	assert.Empty(t, h.telemetry.events, "no telemetry must be sent")
	assert.Empty(t, h.opener.opened, "nothing must be opened")
}

func TestRunCancellation(t *testing.T) {
	tests := []struct {
		name   string
		cancel func(p *fakePrompts)
	}{
		{"contract type dismissed", func(p *fakePrompts) { p.contractTypeErr = ui.ErrCancelled }},
		{"contract type empty", func(p *fakePrompts) { p.contractType = "" }},
		{"mspID dismissed", func(p *fakePrompts) { p.mspIDErr = ui.ErrCancelled }},
		{"mspID empty", func(p *fakePrompts) { p.mspID = "" }},
		{"language dismissed", func(p *fakePrompts) { p.languageErr = ui.ErrCancelled }},
		{"language empty", func(p *fakePrompts) { p.language = generator.Language{} }},
		{"asset dismissed", func(p *fakePrompts) { p.assetErr = ui.ErrCancelled }},
		{"asset empty", func(p *fakePrompts) { p.asset = "" }},
		{"folder dismissed", func(p *fakePrompts) { p.folderErr = ui.ErrCancelled }},
		{"folder empty", func(p *fakePrompts) { p.folder = "" }},
		{"open method dismissed", func(p *fakePrompts) { p.openMethodErr = ui.ErrCancelled }},
		{"open method empty", func(p *fakePrompts) { p.openMethod = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompts := privatePrompts()
			tt.cancel(prompts)
			h := newHarness(prompts)

			assert.Equal(t, OutcomeCancelled, h.run(t))
			h.assertNothingHappened(t)
		})
	}
}

func TestRunAssetValidation(t *testing.T) {
	t.Run("letters are accepted", func(t *testing.T) {
		prompts := defaultPrompts()
		prompts.asset = "abc"
		h := newHarness(prompts)

		assert.Equal(t, OutcomeCreated, h.run(t))
		require.Len(t, h.generator.calls, 1)
		assert.Equal(t, "abc", h.generator.calls[0].opts.Asset)
	})

	t.Run("digits are rejected", func(t *testing.T) {
		prompts := defaultPrompts()
		prompts.asset = "abc1"
		h := newHarness(prompts)

		assert.Equal(t, OutcomeInvalid, h.run(t))
		require.Len(t, h.log.entries, 1)
		assert.Equal(t, output.ERROR, h.log.entries[0].level)
		assert.Equal(t, "Invalid asset name, it should only contain lowercase and uppercase letters.", h.log.entries[0].short)
		assert.Empty(t, h.generator.calls)
		assert.NotContains(t, prompts.asked, "folder")
	})

	t.Run("empty aborts silently", func(t *testing.T) {
		prompts := defaultPrompts()
		prompts.asset = ""
		h := newHarness(prompts)

		assert.Equal(t, OutcomeCancelled, h.run(t))
		h.assertNothingHappened(t)
	})

	for _, asset := range []string{"   ", " Car", "Car "} {
		t.Run(fmt.Sprintf("whitespace %q is rejected", asset), func(t *testing.T) {
			prompts := defaultPrompts()
			prompts.asset = asset
			h := newHarness(prompts)

			assert.Equal(t, OutcomeInvalid, h.run(t))
			require.Len(t, h.log.entries, 1)
			assert.Equal(t, output.ERROR, h.log.entries[0].level)
			assert.Equal(t, validation.AssetTypeErrorMessage, h.log.entries[0].short)
			assert.Empty(t, h.generator.calls)
		})
	}
}

func TestRunFolderValidation(t *testing.T) {
	t.Run("alphanumeric, dash and underscore", func(t *testing.T) {
		h := newHarness(defaultPrompts())

		assert.Equal(t, OutcomeCreated, h.run(t))
		require.Len(t, h.generator.calls, 1)
		assert.Equal(t, "my-contract_1", h.generator.calls[0].opts.Name)
		assert.Equal(t, "/work/my-contract_1", h.generator.calls[0].opts.Destination)
	})

	t.Run("space is rejected", func(t *testing.T) {
		prompts := defaultPrompts()
		prompts.folder = "/work/my contract"
		h := newHarness(prompts)

		assert.Equal(t, OutcomeInvalid, h.run(t))
		require.Len(t, h.log.entries, 1)
		assert.Equal(t, output.ERROR, h.log.entries[0].level)
		assert.Equal(t, validation.ProjectFolderErrorMessage, h.log.entries[0].short)
		assert.Equal(t, `Please choose a folder which only includes alphanumeric, "_" and "-" characters.`, h.log.entries[0].short)
		assert.Empty(t, h.generator.calls)
		assert.NotContains(t, prompts.asked, "openMethod")
	})
}

func TestRunMspID(t *testing.T) {
	t.Run("private contract", func(t *testing.T) {
		prompts := privatePrompts()
		h := newHarness(prompts)

		assert.Equal(t, OutcomeCreated, h.run(t))
		assert.Contains(t, prompts.asked, "mspID")
		assert.Equal(t, "Org1MSP", prompts.mspIDPlaceholder)
		require.Len(t, h.generator.calls, 1)

		opts := h.generator.calls[0].opts
		assert.Equal(t, "Org1MSP", opts.MspID)
		assert.Equal(t, "Org1MSP", opts.Fields()["mspId"])
		assert.Equal(t, "private", opts.ContractType)
	})

	t.Run("whitespace is kept", func(t *testing.T) {
		prompts := privatePrompts()
		prompts.mspID = "  "
		h := newHarness(prompts)

		assert.Equal(t, OutcomeCreated, h.run(t))
		require.Len(t, h.generator.calls, 1)
		assert.Equal(t, "  ", h.generator.calls[0].opts.MspID)
	})

	t.Run("default contract", func(t *testing.T) {
		prompts := defaultPrompts()
		h := newHarness(prompts)

		assert.Equal(t, OutcomeCreated, h.run(t))
		assert.NotContains(t, prompts.asked, "mspID")
		require.Len(t, h.generator.calls, 1)

		opts := h.generator.calls[0].opts
		assert.Empty(t, opts.MspID)
		assert.NotContains(t, opts.Fields(), "mspId")
		assert.Equal(t, "default", opts.ContractType)
	})
}

func TestRunLanguageOptions(t *testing.T) {
	t.Run("default contract offers chaincode languages", func(t *testing.T) {
		prompts := defaultPrompts()
		newHarness(prompts).run(t)

		assert.Equal(t, []string{"go", "javascript"}, prompts.offeredChaincode)
		assert.Equal(t, []string{"javascript", "typescript", "java", "go"}, prompts.offeredContract)
	})

	t.Run("private contract hides chaincode languages", func(t *testing.T) {
		prompts := privatePrompts()
		newHarness(prompts).run(t)

		assert.Empty(t, prompts.offeredChaincode)
		assert.Equal(t, []string{"javascript", "typescript", "java", "go"}, prompts.offeredContract)
	})
}

func TestRunAssetPrompt(t *testing.T) {
	t.Run("contract language asks for an asset", func(t *testing.T) {
		prompts := defaultPrompts()
		h := newHarness(prompts)

		assert.Equal(t, OutcomeCreated, h.run(t))
		assert.Equal(t, []string{"contractType", "language", "asset", "folder", "openMethod"}, prompts.asked)
		assert.Equal(t, "MyAsset", prompts.assetPlaceholder)
		assert.Equal(t, "fabric:contract", h.generator.calls[0].key)
	})

	t.Run("private contract placeholder", func(t *testing.T) {
		prompts := privatePrompts()
		newHarness(prompts).run(t)

		assert.Equal(t, "MyPrivateAsset", prompts.assetPlaceholder)
	})

	t.Run("chaincode language skips the asset", func(t *testing.T) {
		prompts := defaultPrompts()
		prompts.language = goChaincode
		h := newHarness(prompts)

		assert.Equal(t, OutcomeCreated, h.run(t))
		assert.NotContains(t, prompts.asked, "asset")
		require.Len(t, h.generator.calls, 1)
		assert.Equal(t, "fabric:chaincode", h.generator.calls[0].key)
		assert.Equal(t, "go", h.generator.calls[0].opts.Language)
		assert.Empty(t, h.generator.calls[0].opts.Asset)
	})
}

func TestRunSuccess(t *testing.T) {
	tests := []struct {
		name        string
		prompts     func() *fakePrompts
		event       string
		success     string
		progress    string
		description string
	}{
		{
			name:        "default",
			prompts:     defaultPrompts,
			event:       "createSmartContractProject",
			success:     "Successfully generated Smart Contract Project",
			progress:    "Generating Smart Contract Project",
			description: "My Smart Contract",
		},
		{
			name:        "private",
			prompts:     privatePrompts,
			event:       "createPrivateDataSmartContractProject",
			success:     "Successfully generated Private Data Smart Contract Project",
			progress:    "Generating Private Data Smart Contract Project",
			description: "My Private Data Smart Contract",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(tt.prompts())

			assert.Equal(t, OutcomeCreated, h.run(t))

			require.Len(t, h.telemetry.events, 1)
			assert.Equal(t, tt.event, h.telemetry.events[0].name)
			assert.Equal(t, map[string]string{"contractLanguage": "typescript"}, h.telemetry.events[0].properties)

			require.Len(t, h.log.entries, 1)
			assert.Equal(t, output.SUCCESS, h.log.entries[0].level)
			assert.Equal(t, tt.success, h.log.entries[0].short)

			assert.Equal(t, []string{tt.progress}, h.progress.titles)

			opts := h.generator.calls[0].opts
			assert.Equal(t, tt.description, opts.Description)
			assert.Equal(t, "0.0.1", opts.Version)
			assert.Equal(t, "John Doe", opts.Author)
			assert.Equal(t, "Apache-2.0", opts.License)
			assert.True(t, opts.SkipInstall)
			assert.NoError(t, opts.Validate())

			assert.Equal(t, []string{"/work/my-contract_1"}, h.opener.opened)
			assert.Equal(t, []workspace.OpenMethod{workspace.OpenInNewWindow}, h.opener.methods)
			assert.Equal(t, []string{"/work/my-contract_1"}, h.opener.focused)
		})
	}
}

func TestRunGeneratorFailure(t *testing.T) {
	tests := []struct {
		name    string
		prompts func() *fakePrompts
		prefix  string
	}{
		{"default", defaultPrompts, "Issue creating Smart Contract Project: "},
		{"private", privatePrompts, "Issue creating Private Data Smart Contract Project: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(tt.prompts())
			h.generator.err = errors.New("boom")

			assert.Equal(t, OutcomeFailed, h.run(t))

			require.Len(t, h.log.entries, 1)
			entry := h.log.entries[0]
			assert.Equal(t, output.ERROR, entry.level)
			assert.Equal(t, tt.prefix+"boom", entry.short)
			assert.Equal(t, tt.prefix+"boom", entry.long)
			assert.Empty(t, h.telemetry.events)
			assert.Empty(t, h.opener.opened)
		})
	}
}

func TestRunOpenFailure(t *testing.T) {
	h := newHarness(defaultPrompts())
	h.opener.err = errors.New("editor crashed")

	assert.Equal(t, OutcomeFailed, h.run(t))

	require.Len(t, h.log.entries, 2)
	assert.Equal(t, output.SUCCESS, h.log.entries[0].level)
	assert.Equal(t, output.ERROR, h.log.entries[1].level)
	assert.Contains(t, h.log.entries[1].short, "editor crashed")
	assert.Len(t, h.telemetry.events, 1)
	assert.Empty(t, h.opener.focused)
}

func TestRunPromptFailure(t *testing.T) {
	prompts := defaultPrompts()
	prompts.folderErr = errors.New("could not open a new TTY")
	h := newHarness(prompts)

	assert.Equal(t, OutcomeFailed, h.run(t))
	require.Len(t, h.log.entries, 1)
	assert.Equal(t, output.ERROR, h.log.entries[0].level)
	assert.Contains(t, h.log.entries[0].short, "could not open a new TTY")
	assert.Empty(t, h.generator.calls)
}

func TestContractTypeItems(t *testing.T) {
	prompts := defaultPrompts()
	newHarness(prompts).run(t)

	require.Len(t, prompts.contractTypeItems, 2)
	assert.Equal(t, ContractTypeDefault, prompts.contractTypeItems[0].Type)
	assert.Equal(t, ContractTypePrivate, prompts.contractTypeItems[1].Type)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "cancelled", OutcomeCancelled.String())
	assert.Equal(t, "invalid", OutcomeInvalid.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "created", OutcomeCreated.String())
}
