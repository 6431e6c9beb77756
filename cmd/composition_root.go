package cmd

import (
	"log/slog"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	clock      kernel.Clock
	feePolicy  order.FeePolicy
	uowFactory ports.UnitOfWorkFactory
	reader     ports.OrderReader
}

// NewCompositionRoot wires the use cases to postgres when gormDB is set and
// to a process-local in-memory store otherwise.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	feePolicy, err := config.FeePolicy()
	if err != nil {
		return CompositionRoot{}, err
	}

	root := CompositionRoot{
		config:    config,
		clock:     kernel.SystemClock{},
		feePolicy: feePolicy,
	}

	if gormDB != nil {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		root.reader = orderrepo.NewGormOrderReader(gormDB)
	} else {
		store := memory.NewStore()
		root.uowFactory = memory.NewUnitOfWorkFactory(store)
		root.reader = store
	}

	return root, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock, c.feePolicy)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRecordPaymentFailureCommandHandler() commands.RecordPaymentFailureCommandHandler {
	return commands.NewRecordPaymentFailureCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.orderUoWFactory(), c.clock, c.config.CompletionDelay)
}

func (c *CompositionRoot) CreateRequestRevisionCommandHandler() commands.RequestRevisionCommandHandler {
	return commands.NewRequestRevisionCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateOpenDisputeCommandHandler() commands.OpenDisputeCommandHandler {
	return commands.NewOpenDisputeCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCompleteDueOrdersCommandHandler() commands.CompleteDueOrdersCommandHandler {
	return commands.NewCompleteDueOrdersCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateGetAvailableActionsQueryHandler() queries.GetAvailableActionsQueryHandler {
	return queries.NewGetAvailableActionsQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListBuyerOrdersQueryHandler() queries.ListBuyerOrdersQueryHandler {
	return queries.NewListBuyerOrdersQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListSellerOrdersQueryHandler() queries.ListSellerOrdersQueryHandler {
	return queries.NewListSellerOrdersQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		MarkOrderPaid:        c.CreateMarkOrderPaidCommandHandler(),
		RecordPaymentFailure: c.CreateRecordPaymentFailureCommandHandler(),
		DeliverOrder:         c.CreateDeliverOrderCommandHandler(),
		AcceptDelivery:       c.CreateAcceptDeliveryCommandHandler(),
		RequestRevision:      c.CreateRequestRevisionCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		OpenDispute:          c.CreateOpenDisputeCommandHandler(),
		CompleteOrder:        c.CreateCompleteOrderCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetAvailableActions:  c.CreateGetAvailableActionsQueryHandler(),
		ListBuyerOrders:      c.CreateListBuyerOrdersQueryHandler(),
		ListSellerOrders:     c.CreateListSellerOrdersQueryHandler(),
	})
}

func (c *CompositionRoot) CreateRouter(logger *slog.Logger) (*echo.Echo, error) {
	return httpadapter.NewRouter(c.CreateServer(), []byte(c.config.JWTSecret), logger)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCompleteDueOrdersCommandHandler(), jobs.CompletionConfig{
		Schedule:  c.config.CompletionSweepSchedule,
		BatchSize: c.config.CompletionBatchSize,
		Timeout:   c.config.CompletionSweepTimeout,
	}, logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
