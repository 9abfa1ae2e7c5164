package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techchallenge/user-management/internal/metrics"
	"github.com/techchallenge/user-management/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer operations.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Create handles POST /api/customer.
//
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Client supplied key that makes the request safe to retry"
// @Param        body             body      ports.CustomerRequest  true   "Customer data"
// @Success      200              {object}  ports.CustomerResponse
// @Failure      400              {object}  Problem
// @Failure      401              {object}  Problem
// @Failure      409              {object}  Problem
// @Router       /api/customer [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req ports.CustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	if resp.Error {
		metrics.RejectionsTotal.WithLabelValues(metrics.EntityCustomer, "validation").Inc()
		return c.JSON(http.StatusBadRequest, resp)
	}

	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/customer.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.CustomerUpdate  true  "Customer data, including id"
// @Success      200   {object}  ports.CustomerResponse
// @Failure      400   {object}  ports.CustomerResponse
// @Failure      401   {object}  Problem
// @Router       /api/customer [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req ports.CustomerUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.service.Update(c.Request().Context(), req)
	if err != nil {
		return err
	}
	if resp.Error {
		metrics.RejectionsTotal.WithLabelValues(metrics.EntityCustomer, "not_found").Inc()
		return c.JSON(http.StatusBadRequest, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /api/customer/:id.
//
// @Summary      Get a customer by id
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  ports.CustomerResponse
// @Failure      400  {object}  Problem
// @Failure      404  {object}  Problem
// @Router       /api/customer/{id} [get]
func (h *CustomerHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return h.found(c, resp)
}

// GetByCPF handles GET /api/customer/cpf/:cpf.
//
// @Summary      Get a customer by CPF
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        cpf  path      string  true  "CPF, digits only or masked"
// @Success      200  {object}  ports.CustomerResponse
// @Failure      404  {object}  Problem
// @Router       /api/customer/cpf/{cpf} [get]
func (h *CustomerHandler) GetByCPF(c echo.Context) error {
	resp, err := h.service.GetByCPF(c.Request().Context(), c.Param("cpf"))
	if err != nil {
		return err
	}
	return h.found(c, resp)
}

func (h *CustomerHandler) found(c echo.Context, resp *ports.CustomerResponse) error {
	if resp == nil {
		return notFound(c, "Customer not found", "The requested customer could not be found.")
	}
	return c.JSON(http.StatusOK, resp)
}
