package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/techchallenge/user-management/internal/core/ports"
)

type stubCustomerService struct {
	createFn   func(ctx context.Context, req ports.CustomerRequest) (*ports.CustomerResponse, error)
	updateFn   func(ctx context.Context, req ports.CustomerUpdate) (*ports.CustomerResponse, error)
	getByIDFn  func(ctx context.Context, id int64) (*ports.CustomerResponse, error)
	getByCPFFn func(ctx context.Context, cpf string) (*ports.CustomerResponse, error)
}

func (s *stubCustomerService) Create(ctx context.Context, req ports.CustomerRequest) (*ports.CustomerResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubCustomerService) Update(ctx context.Context, req ports.CustomerUpdate) (*ports.CustomerResponse, error) {
	return s.updateFn(ctx, req)
}

func (s *stubCustomerService) GetByID(ctx context.Context, id int64) (*ports.CustomerResponse, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCustomerService) GetByCPF(ctx context.Context, cpf string) (*ports.CustomerResponse, error) {
	return s.getByCPFFn(ctx, cpf)
}

type stubEmployeeService struct {
	createFn  func(ctx context.Context, req ports.EmployeeRequest) (*ports.EmployeeResponse, error)
	updateFn  func(ctx context.Context, req ports.EmployeeUpdate) (*ports.EmployeeResponse, error)
	deleteFn  func(ctx context.Context, id int64) (int64, error)
	getAllFn  func(ctx context.Context, skip, take int) ([]ports.EmployeeResponse, error)
	getByIDFn func(ctx context.Context, id int64) (*ports.EmployeeResponse, error)
}

func (s *stubEmployeeService) Create(ctx context.Context, req ports.EmployeeRequest) (*ports.EmployeeResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubEmployeeService) Update(ctx context.Context, req ports.EmployeeUpdate) (*ports.EmployeeResponse, error) {
	return s.updateFn(ctx, req)
}

func (s *stubEmployeeService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubEmployeeService) GetAll(ctx context.Context, skip, take int) ([]ports.EmployeeResponse, error) {
	return s.getAllFn(ctx, skip, take)
}

func (s *stubEmployeeService) GetByID(ctx context.Context, id int64) (*ports.EmployeeResponse, error) {
	return s.getByIDFn(ctx, id)
}

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, *ports.EmployeeResponse, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *ports.EmployeeResponse, error) {
	return s.loginFn(ctx, email, password)
}

// newContext builds an echo context with the validator installed. body may be
// empty for requests without payload.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// httpCode extracts the status of an *echo.HTTPError, or 0.
func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
