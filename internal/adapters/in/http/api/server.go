package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// (GET /orders/{id}/actions)
	GetAvailableActions(ctx echo.Context, id openapi_types.UUID) error
	// (POST /orders/{id}/deliver)
	DeliverOrder(ctx echo.Context, id openapi_types.UUID) error
	// (POST /orders/{id}/accept)
	AcceptDelivery(ctx echo.Context, id openapi_types.UUID) error
	// (POST /orders/{id}/revisions)
	RequestRevision(ctx echo.Context, id openapi_types.UUID) error
	// (POST /orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id openapi_types.UUID) error
	// (POST /orders/{id}/disputes)
	OpenDispute(ctx echo.Context, id openapi_types.UUID) error
	// (POST /orders/{id}/complete)
	CompleteOrder(ctx echo.Context, id openapi_types.UUID) error
	// (POST /payments/{id}/completed)
	MarkOrderPaid(ctx echo.Context, id openapi_types.UUID) error
	// (POST /payments/{id}/failed)
	RecordPaymentFailure(ctx echo.Context, id openapi_types.UUID) error
	// (GET /buyers/{id}/orders)
	ListBuyerOrders(ctx echo.Context, id openapi_types.UUID, params ListParams) error
	// (GET /sellers/{id}/orders)
	ListSellerOrders(ctx echo.Context, id openapi_types.UUID, params ListParams) error
	// (GET /sellers/{id}/orders/active)
	ListActiveSellerOrders(ctx echo.Context, id openapi_types.UUID, params ListParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := ServerInterfaceWrapper{Handler: si}

	router.POST("/orders", w.Handler.CreateOrder)
	router.GET("/orders/:id", w.withID(si.GetOrder))
	router.GET("/orders/:id/actions", w.withID(si.GetAvailableActions))
	router.POST("/orders/:id/deliver", w.withID(si.DeliverOrder))
	router.POST("/orders/:id/accept", w.withID(si.AcceptDelivery))
	router.POST("/orders/:id/revisions", w.withID(si.RequestRevision))
	router.POST("/orders/:id/cancel", w.withID(si.CancelOrder))
	router.POST("/orders/:id/disputes", w.withID(si.OpenDispute))
	router.POST("/orders/:id/complete", w.withID(si.CompleteOrder))
	router.POST("/payments/:id/completed", w.withID(si.MarkOrderPaid))
	router.POST("/payments/:id/failed", w.withID(si.RecordPaymentFailure))
	router.GET("/buyers/:id/orders", w.withIDAndPage(si.ListBuyerOrders))
	router.GET("/sellers/:id/orders", w.withIDAndPage(si.ListSellerOrders))
	router.GET("/sellers/:id/orders/active", w.withIDAndPage(si.ListActiveSellerOrders))
}

func (w *ServerInterfaceWrapper) withID(h func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindID(ctx)
		if err != nil {
			return err
		}
		return h(ctx, id)
	}
}

func (w *ServerInterfaceWrapper) withIDAndPage(
	h func(echo.Context, openapi_types.UUID, ListParams) error,
) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindID(ctx)
		if err != nil {
			return err
		}

		var params ListParams

		err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
		}

		err = runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
		}

		return h(ctx, id, params)
	}
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}
