package cmd

import (
	"sync"

	"go.uber.org/zap"

	"shipping/internal/adapters/out/easypostapi"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/pkg/errs"
)

// CompositionRoot wires configuration, the API client and the gateways into
// use case handlers. The client is built once, on the first handler request,
// so commands that never reach the shipping service run without credentials.
type CompositionRoot struct {
	configs Config
	client  func() (*easypostapi.Client, error)
}

func NewCompositionRoot(configs Config) *CompositionRoot {
	root := &CompositionRoot{configs: configs}
	root.client = sync.OnceValues(root.buildClient)
	return root
}

func (c *CompositionRoot) buildClient() (*easypostapi.Client, error) {
	if c.configs.EasyPostAPIKey == "" {
		return nil, errs.NewValueIsRequiredError("EASYPOST_API_KEY")
	}

	baseURL := c.configs.EasyPostAPIBase
	if baseURL == "" {
		baseURL = easypostapi.DefaultBaseURL
	}

	logger, err := newLogger(c.configs.LogLevel)
	if err != nil {
		return nil, err
	}

	return easypostapi.NewClient(c.configs.EasyPostAPIKey, baseURL, c.configs.HTTPTimeout, logger)
}

// newLogger builds the process logger. Wire traffic is logged at debug, so
// the default info level keeps the CLI quiet.
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
		}
		cfg.Level = parsed
	}
	return cfg.Build()
}

func (c *CompositionRoot) CreateCreateAddressCommandHandler() (commands.CreateAddressCommandHandler, error) {
	client, err := c.client()
	if err != nil {
		return commands.CreateAddressCommandHandler{}, err
	}
	return commands.NewCreateAddressCommandHandler(client.AddressGateway()), nil
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() (commands.CreateParcelCommandHandler, error) {
	client, err := c.client()
	if err != nil {
		return commands.CreateParcelCommandHandler{}, err
	}
	return commands.NewCreateParcelCommandHandler(client.ParcelGateway()), nil
}

func (c *CompositionRoot) CreateCreateCustomsInfoCommandHandler() (commands.CreateCustomsInfoCommandHandler, error) {
	client, err := c.client()
	if err != nil {
		return commands.CreateCustomsInfoCommandHandler{}, err
	}
	return commands.NewCreateCustomsInfoCommandHandler(client.CustomsInfoGateway()), nil
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() (commands.CreateShipmentCommandHandler, error) {
	client, err := c.client()
	if err != nil {
		return commands.CreateShipmentCommandHandler{}, err
	}
	return commands.NewCreateShipmentCommandHandler(client.ShipmentGateway()), nil
}

func (c *CompositionRoot) CreateBuyShipmentCommandHandler() (commands.BuyShipmentCommandHandler, error) {
	client, err := c.client()
	if err != nil {
		return commands.BuyShipmentCommandHandler{}, err
	}
	return commands.NewBuyShipmentCommandHandler(client.ShipmentGateway()), nil
}

func (c *CompositionRoot) CreateCloneShipmentCommandHandler() (commands.CloneShipmentCommandHandler, error) {
	client, err := c.client()
	if err != nil {
		return commands.CloneShipmentCommandHandler{}, err
	}
	return commands.NewCloneShipmentCommandHandler(client.ShipmentGateway()), nil
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() (queries.GetShipmentQueryHandler, error) {
	client, err := c.client()
	if err != nil {
		return queries.GetShipmentQueryHandler{}, err
	}
	return queries.NewGetShipmentQueryHandler(client.ShipmentGateway()), nil
}
