package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storeapi/internal/events"
	"storeapi/internal/service"
	"storeapi/internal/transport"
	"storeapi/pkg/logging"
)

type CustomerHTTP struct {
	Svc      *service.CustomerService
	Producer *events.Producer
}

func (h *CustomerHTTP) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.create_customer")

	var req transport.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_customer_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.Svc.CreateCustomer(ctx, req)
	if err != nil {
		he := httpError(err)
		l.Warn("create_customer_error", "status", he.Code, "reason", he.Message, "error", err)
		return he
	}

	publish(c, h.Producer, customer.ID.String(), map[string]any{
		"type":       "customer_created",
		"customerID": customer.ID,
		"email":      customer.Email,
	})

	l.Info("create_customer_success", "customer_id", customer.ID)
	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHTTP) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get_customer")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_customer_error", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	customer, err := h.Svc.GetCustomer(ctx, id)
	if err != nil {
		he := httpError(err)
		l.Warn("get_customer_error", "status", he.Code, "reason", he.Message, "error", err)
		return he
	}

	return c.JSON(http.StatusOK, customer)
}
