package contract

import (
	"github.com/spf13/cobra"

	"github.com/fabkit-dev/fabkit/cmd/contract/create"
	"github.com/fabkit-dev/fabkit/internal/runtime"
)

func New(runtimeContext *runtime.Context) *cobra.Command {
	contractCmd := &cobra.Command{
		Use:   "contract",
		Short: "Creates smart contract projects",
		Long:  `The contract command scaffolds Hyperledger Fabric smart contract and chaincode projects.`,
	}

	contractCmd.AddCommand(create.New(runtimeContext))

	return contractCmd
}
