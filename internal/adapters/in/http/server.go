package http

import (
	"net/http"
	"slices"

	"marketplace/internal/adapters/in/http/api"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ api.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateOrder          commands.CreateOrderCommandHandler
	MarkOrderPaid        commands.MarkOrderPaidCommandHandler
	RecordPaymentFailure commands.RecordPaymentFailureCommandHandler
	DeliverOrder         commands.DeliverOrderCommandHandler
	AcceptDelivery       commands.AcceptDeliveryCommandHandler
	RequestRevision      commands.RequestRevisionCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	OpenDispute          commands.OpenDisputeCommandHandler
	CompleteOrder        commands.CompleteOrderCommandHandler

	// Query handlers
	GetOrder            queries.GetOrderQueryHandler
	GetAvailableActions queries.GetAvailableActionsQueryHandler
	ListBuyerOrders     queries.ListBuyerOrdersQueryHandler
	ListSellerOrders    queries.ListSellerOrdersQueryHandler
}

// Server implements the api.ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases; every
// successful lifecycle operation answers with the order as the caller sees it.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// CreateOrder handles POST /api/v1/orders - the caller becomes the buyer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := callerOf(ctx)
	if err != nil {
		return err
	}
	if err = requireRole(caller, "orders", order.RoleBuyer); err != nil {
		return err
	}

	var body api.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	sellerID, err := toKernelID(body.SellerId)
	if err != nil {
		return err
	}
	price, err := kernel.NewMoney(body.Package.PriceCents)
	if err != nil {
		return err
	}
	pkg, err := order.NewPackage(body.Package.Name, body.Package.DeliveryDays, body.Package.Revisions, price)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, caller.ID(), sellerID, pkg, body.Requirements)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/orders/"+orderID.String())
	return s.respondWithOrder(ctx, http.StatusCreated, orderID, caller)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, err := s.request(ctx, id)
	if err != nil {
		return err
	}
	return s.respondWithOrder(ctx, http.StatusOK, orderID, caller)
}

// GetAvailableActions handles GET /api/v1/orders/{id}/actions.
func (s *Server) GetAvailableActions(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, err := s.request(ctx, id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAvailableActionsQuery(orderID, caller)
	if err != nil {
		return err
	}
	resp, err := s.handlers.GetAvailableActions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toAPIActions(resp))
}

// DeliverOrder handles POST /api/v1/orders/{id}/deliver.
func (s *Server) DeliverOrder(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, err := s.request(ctx, id)
	if err != nil {
		return err
	}

	var body api.DeliveryRequest
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, caller, body.Message, body.Files)
	if err != nil {
		return err
	}
	if err = s.handlers.DeliverOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, caller)
}

// AcceptDelivery handles POST /api/v1/orders/{id}/accept.
func (s *Server) AcceptDelivery(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, note, err := s.noteRequest(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptDeliveryCommand(orderID, caller, note)
	if err != nil {
		return err
	}
	if err = s.handlers.AcceptDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, caller)
}

// RequestRevision handles POST /api/v1/orders/{id}/revisions.
func (s *Server) RequestRevision(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, note, err := s.noteRequest(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRequestRevisionCommand(orderID, caller, note)
	if err != nil {
		return err
	}
	if err = s.handlers.RequestRevision.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, caller)
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, note, err := s.noteRequest(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, caller, note)
	if err != nil {
		return err
	}
	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, caller)
}

// OpenDispute handles POST /api/v1/orders/{id}/disputes.
func (s *Server) OpenDispute(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, note, err := s.noteRequest(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewOpenDisputeCommand(orderID, caller, note)
	if err != nil {
		return err
	}
	if err = s.handlers.OpenDispute.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, caller)
}

// CompleteOrder handles POST /api/v1/orders/{id}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, note, err := s.noteRequest(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, caller, note)
	if err != nil {
		return err
	}
	if err = s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, caller)
}

// MarkOrderPaid handles POST /api/v1/payments/{id}/completed, the payment
// completed signal. Only the payment system and admins may send it.
func (s *Server) MarkOrderPaid(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, err := s.request(ctx, id)
	if err != nil {
		return err
	}
	if err = requireRole(caller, "payments", order.RoleSystem, order.RoleAdmin); err != nil {
		return err
	}

	var body api.PaymentCompleted
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	amount, err := kernel.NewMoney(body.AmountCents)
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkOrderPaidCommand(orderID, amount)
	if err != nil {
		return err
	}
	if err = s.handlers.MarkOrderPaid.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, caller)
}

// RecordPaymentFailure handles POST /api/v1/payments/{id}/failed.
func (s *Server) RecordPaymentFailure(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, note, err := s.noteRequest(ctx, id)
	if err != nil {
		return err
	}
	if err = requireRole(caller, "payments", order.RoleSystem, order.RoleAdmin); err != nil {
		return err
	}

	cmd, err := commands.NewRecordPaymentFailureCommand(orderID, note)
	if err != nil {
		return err
	}
	if err = s.handlers.RecordPaymentFailure.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, caller)
}

// ListBuyerOrders handles GET /api/v1/buyers/{id}/orders.
func (s *Server) ListBuyerOrders(ctx echo.Context, id openapi_types.UUID, params api.ListParams) error {
	caller, buyerID, err := s.request(ctx, id)
	if err != nil {
		return err
	}

	query, err := queries.NewListBuyerOrdersQuery(buyerID, caller, pageOf(params))
	if err != nil {
		return err
	}
	orders, err := s.handlers.ListBuyerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// ListSellerOrders handles GET /api/v1/sellers/{id}/orders.
func (s *Server) ListSellerOrders(ctx echo.Context, id openapi_types.UUID, params api.ListParams) error {
	return s.listSellerOrders(ctx, id, params, false)
}

// ListActiveSellerOrders handles GET /api/v1/sellers/{id}/orders/active.
func (s *Server) ListActiveSellerOrders(ctx echo.Context, id openapi_types.UUID, params api.ListParams) error {
	return s.listSellerOrders(ctx, id, params, true)
}

func (s *Server) listSellerOrders(ctx echo.Context, id openapi_types.UUID, params api.ListParams, activeOnly bool) error {
	caller, sellerID, err := s.request(ctx, id)
	if err != nil {
		return err
	}

	query, err := queries.NewListSellerOrdersQuery(sellerID, caller, activeOnly, pageOf(params))
	if err != nil {
		return err
	}
	orders, err := s.handlers.ListSellerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

func (s *Server) request(ctx echo.Context, id openapi_types.UUID) (order.Actor, kernel.UUID, error) {
	caller, err := callerOf(ctx)
	if err != nil {
		return order.Actor{}, kernel.UUID{}, err
	}
	kid, err := toKernelID(id)
	if err != nil {
		return order.Actor{}, kernel.UUID{}, err
	}
	return caller, kid, nil
}

// noteRequest reads an optional note body.
func (s *Server) noteRequest(ctx echo.Context, id openapi_types.UUID) (order.Actor, kernel.UUID, string, error) {
	caller, orderID, err := s.request(ctx, id)
	if err != nil {
		return order.Actor{}, kernel.UUID{}, "", err
	}

	var body api.NoteRequest
	if err = ctx.Bind(&body); err != nil {
		return order.Actor{}, kernel.UUID{}, "", invalidBody(err)
	}
	return caller, orderID, body.Note, nil
}

func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID, caller order.Actor) error {
	query, err := queries.NewGetOrderQuery(orderID, caller)
	if err != nil {
		return err
	}
	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, toAPIOrder(resp))
}

func toKernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func pageOf(params api.ListParams) ports.ListOptions {
	var page ports.ListOptions
	if params.Limit != nil {
		page.Limit = *params.Limit
	}
	if params.Offset != nil {
		page.Offset = *params.Offset
	}
	return page
}

func requireRole(caller order.Actor, resource string, roles ...order.Role) error {
	if slices.Contains(roles, caller.Role()) {
		return nil
	}
	return errs.NewUnauthorizedError(caller.ID().String(), resource, "not allowed for role "+caller.Role().String())
}
