package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/techchallenge/user-management/internal/metrics"
	"github.com/techchallenge/user-management/internal/api/middleware"
	"github.com/techchallenge/user-management/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	service ports.EmployeeService
	logger  zerolog.Logger
}

func NewEmployeeHandler(service ports.EmployeeService, logger zerolog.Logger) *EmployeeHandler {
	return &EmployeeHandler{service: service, logger: logger}
}

type listEmployeesQuery struct {
	Skip int `query:"skip" validate:"min=0"`
	Take int `query:"take" validate:"min=0,max=100"`
}

// Create handles POST /api/employee.
//
// @Summary      Register an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Client supplied key that makes the request safe to retry"
// @Param        body             body      ports.EmployeeRequest  true   "Employee data with plaintext password"
// @Success      201              {object}  ports.EmployeeResponse
// @Failure      400              {object}  ports.EmployeeResponse
// @Failure      401              {object}  Problem
// @Failure      403              {object}  Problem
// @Failure      409              {object}  Problem
// @Router       /api/employee [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req ports.EmployeeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	if resp.Error {
		metrics.RejectionsTotal.WithLabelValues(metrics.EntityEmployee, "validation").Inc()
		return c.JSON(http.StatusBadRequest, resp)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/employee/%d", resp.ID))
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /api/employee/:id. The id in the path wins over the body.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Employee id"
// @Param        body  body      ports.EmployeeUpdate  true  "Employee data"
// @Success      200   {object}  ports.EmployeeResponse
// @Failure      400   {object}  ports.EmployeeResponse
// @Failure      401   {object}  Problem
// @Failure      403   {object}  Problem
// @Router       /api/employee/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req ports.EmployeeUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.ID = id

	resp, err := h.service.Update(c.Request().Context(), req)
	if err != nil {
		return err
	}
	if resp.Error {
		metrics.RejectionsTotal.WithLabelValues(metrics.EntityEmployee, "validation").Inc()
		return c.JSON(http.StatusBadRequest, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/employee/:id and returns the number of removed
// records (0 when the employee did not exist).
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee id"
// @Success      200  {integer}  int
// @Failure      400  {object}  Problem
// @Failure      403  {object}  Problem
// @Router       /api/employee/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	n, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	actor, _ := c.Get(middleware.CtxEmployeeID).(int64)
	h.logger.Info().Int64("employee_id", id).Int64("actor_id", actor).Int64("affected", n).Msg("employee delete requested")
	return c.JSON(http.StatusOK, n)
}

// List handles GET /api/employee.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        skip  query     int  false  "Records to skip"  default(0)
// @Param        take  query     int  false  "Page size"        default(10)  maximum(100)
// @Success      200   {array}   ports.EmployeeResponse
// @Success      204
// @Failure      400   {object}  Problem
// @Router       /api/employee [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	var q listEmployeesQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	list, err := h.service.GetAll(c.Request().Context(), q.Skip, q.Take)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, list)
}

// GetByID handles GET /api/employee/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  ports.EmployeeResponse
// @Failure      404  {object}  Problem
// @Router       /api/employee/{id} [get]
func (h *EmployeeHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if resp == nil {
		return notFound(c, "Employee not found", "The requested employee could not be found.")
	}
	return c.JSON(http.StatusOK, resp)
}
