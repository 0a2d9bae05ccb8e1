package cli

import (
	"github.com/spf13/cobra"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
)

var (
	version = "dev"
	commit  = "none"
)

// HandlerProvider supplies the use case handlers the commands run. Commands
// request a handler right before issuing service calls, which keeps handler
// construction errors (such as missing credentials) out of commands that
// never leave the machine.
type HandlerProvider interface {
	CreateCreateAddressCommandHandler() (commands.CreateAddressCommandHandler, error)
	CreateCreateParcelCommandHandler() (commands.CreateParcelCommandHandler, error)
	CreateCreateShipmentCommandHandler() (commands.CreateShipmentCommandHandler, error)
	CreateBuyShipmentCommandHandler() (commands.BuyShipmentCommandHandler, error)
	CreateCloneShipmentCommandHandler() (commands.CloneShipmentCommandHandler, error)
	CreateGetShipmentQueryHandler() (queries.GetShipmentQueryHandler, error)
}

// NewRootCmd assembles the command tree over the provider.
func NewRootCmd(provider HandlerProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shipping",
		Short:         "Buy shipping labels from the command line",
		Long:          "Shipping creates shipments with the EasyPost API, quotes their rates and purchases postage labels.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRatesCmd(provider))
	cmd.AddCommand(newBuyCmd(provider))
	cmd.AddCommand(newGetCmd(provider))
	cmd.AddCommand(newCloneCmd(provider))
	return cmd
}

func Execute(provider HandlerProvider) error {
	return NewRootCmd(provider).Execute()
}
