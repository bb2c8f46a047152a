package create

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fabkit-dev/fabkit/cmd/version"
	"github.com/fabkit-dev/fabkit/internal/generator"
	"github.com/fabkit-dev/fabkit/internal/output"
	"github.com/fabkit-dev/fabkit/internal/runtime"
	"github.com/fabkit-dev/fabkit/internal/settings"
	"github.com/fabkit-dev/fabkit/internal/telemetry"
	"github.com/fabkit-dev/fabkit/internal/ui"
	"github.com/fabkit-dev/fabkit/internal/validation"
	"github.com/fabkit-dev/fabkit/internal/wizard"
	"github.com/fabkit-dev/fabkit/internal/workspace"
)

var ErrProjectNotCreated = errors.New("smart contract project was not created")

type Inputs struct {
	ContractType string `validate:"omitempty,oneof=default private" cli:"--contract-type"`
	MspID        string `cli:"--msp-id"`
	Language     string `validate:"omitempty,oneof=go java javascript typescript" cli:"--language"`
	Chaincode    bool
	Asset        string `validate:"omitempty,asset_type" cli:"--asset"`
	Destination  string `validate:"omitempty,project_folder" cli:"--destination"`
	OpenMethod   string `validate:"omitempty,oneof=open-in-place open-in-new-window add-to-workspace" cli:"--open"`
}

func (i Inputs) answers() wizard.Answers {
	return wizard.Answers{
		ContractType: wizard.ContractType(i.ContractType),
		MspID:        i.MspID,
		Language:     i.Language,
		Chaincode:    i.Chaincode,
		Asset:        i.Asset,
		Destination:  i.Destination,
		OpenMethod:   workspace.OpenMethod(i.OpenMethod),
	}
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	var newCmd = &cobra.Command{
		Use:     "new",
		Aliases: []string{"create"},
		Short:   "Create a new smart contract project",
		Long: `Walks through the choices for a new smart contract project (contract type,
language, asset and location) and generates it.

Every answer can be given up front with a flag; only missing answers are asked.`,
		Example: `  fabkit contract new
  fabkit contract new --contract-type private --msp-id Org1MSP --language typescript --asset Car -d ./car-contract --open open-in-place
  fabkit contract new --language go --chaincode -d ./my-chaincode`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := newHandler(runtimeContext, cmd.OutOrStdout())

			inputs, err := handler.ResolveInputs(runtimeContext.Viper)
			if err != nil {
				return err
			}
			err = handler.ValidateInputs(inputs)
			if err != nil {
				return err
			}
			err = handler.Execute(cmd.Context(), inputs)
			if errors.Is(err, ErrProjectNotCreated) {
				// already reported through the output log
				cmd.SilenceErrors = true
			}
			return err
		},
	}

	newCmd.Flags().StringP(settings.Flags.ContractType.Name, settings.Flags.ContractType.Short, "", "Contract type: default or private")
	newCmd.Flags().String(settings.Flags.MspID.Name, "", "mspID of the organization owning the private data collection")
	newCmd.Flags().StringP(settings.Flags.Language.Name, settings.Flags.Language.Short, "", "Language of the generated project")
	newCmd.Flags().Bool(settings.Flags.Chaincode.Name, false, "Use the low-level chaincode shim instead of the contract API")
	newCmd.Flags().StringP(settings.Flags.Asset.Name, settings.Flags.Asset.Short, "", "Type of asset managed by the contract")
	newCmd.Flags().StringP(settings.Flags.Destination.Name, settings.Flags.Destination.Short, "", "Folder to generate the project into")
	newCmd.Flags().StringP(settings.Flags.Open.Name, settings.Flags.Open.Short, "", "How to open the project: open-in-place, open-in-new-window or add-to-workspace")
	newCmd.Flags().Bool(settings.Flags.SkipInstall.Name, false, "Do not install the project's dependencies")
	newCmd.Flags().String(settings.Flags.Editor.Name, "", "Editor command used to open the project")

	return newCmd
}

type handler struct {
	log       *zerolog.Logger
	settings  *settings.Settings
	out       io.Writer
	validated bool
}

func newHandler(ctx *runtime.Context, out io.Writer) *handler {
	return &handler{
		log:       ctx.Logger,
		settings:  ctx.Settings,
		out:       out,
		validated: false,
	}
}

// ResolveInputs reads the flags. The destination is made absolute first so
// "." and "~" are judged by the folder they name.
func (h *handler) ResolveInputs(v *viper.Viper) (Inputs, error) {
	destination := v.GetString(settings.Flags.Destination.Name)
	if destination != "" {
		resolved, err := ui.ResolveFolder(destination)
		if err != nil {
			return Inputs{}, err
		}
		destination = resolved
	}

	return Inputs{
		ContractType: v.GetString(settings.Flags.ContractType.Name),
		MspID:        v.GetString(settings.Flags.MspID.Name),
		Language:     v.GetString(settings.Flags.Language.Name),
		Chaincode:    v.GetBool(settings.Flags.Chaincode.Name),
		Asset:        v.GetString(settings.Flags.Asset.Name),
		Destination:  destination,
		OpenMethod:   v.GetString(settings.Flags.Open.Name),
	}, nil
}

func (h *handler) ValidateInputs(inputs Inputs) error {
	validator, err := validation.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validator.Struct(inputs); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if inputs.ContractType == string(wizard.ContractTypePrivate) && inputs.Chaincode {
		return validation.NewValidationError("--chaincode", "private data contracts cannot use the low-level chaincode shim")
	}

	h.validated = true
	return nil
}

func (h *handler) Execute(ctx context.Context, inputs Inputs) error {
	if !h.validated {
		return fmt.Errorf("handler inputs not validated")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	metadata, err := generator.LoadMetadata()
	if err != nil {
		return err
	}

	w := wizard.New(wizard.Deps{
		Log:         output.NewAdapterWithOutput(h.out, h.log),
		Telemetry:   telemetry.NewReporter(h.settings.TelemetryURL, version.Version, h.log),
		Generator:   generator.NewTemplateRunner(h.log, generator.NewInstaller(h.log)),
		Prompts:     wizard.NewTerminalPrompts(inputs.answers()),
		Progress:    ui.NewSpinner(),
		Opener:      workspace.NewEditorOpener(h.settings.Editor, h.out, h.log),
		Languages:   metadata,
		SkipInstall: h.settings.SkipInstall,
	})

	outcome := w.Run(ctx)
	h.log.Debug().Stringer("outcome", outcome).Msg("Wizard finished")

	switch outcome {
	case wizard.OutcomeInvalid, wizard.OutcomeFailed:
		return fmt.Errorf("%w: %s", ErrProjectNotCreated, outcome)
	default:
		return nil
	}
}
