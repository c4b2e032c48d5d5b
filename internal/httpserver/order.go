package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storeapi/internal/events"
	"storeapi/internal/service"
	"storeapi/internal/transport"
	"storeapi/internal/util"
	"storeapi/pkg/logging"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		he := httpError(err)
		l.Warn("create_order_error", "status", he.Code, "reason", he.Message, "error", err)
		return he
	}

	publish(c, h.Producer, order.ID.String(), map[string]any{
		"type":       "order_created",
		"orderID":    order.ID,
		"customerID": order.CustomerID,
		"items":      order.Products,
	})

	l.Info("create_order_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_order_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	order, err := h.Svc.GetOrder(ctx, id)
	if err != nil {
		he := httpError(err)
		l.Warn("get_order_error", "status", he.Code, "reason", he.Message, "error", err)
		return he
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	customerID, err := uuid.Parse(c.QueryParam("customer_id"))
	if err != nil {
		l.Warn("get_orders_error", "status", 400, "reason", "customer_id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "customer_id is not a uuid")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	orders, err := h.Svc.ListOrders(ctx, customerID, offset, limit)
	if err != nil {
		he := httpError(err)
		l.Warn("get_orders_error", "status", he.Code, "reason", he.Message, "error", err)
		return he
	}

	return c.JSON(http.StatusOK, orders)
}
