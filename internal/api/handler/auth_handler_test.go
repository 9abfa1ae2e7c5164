package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techchallenge/user-management/internal/core/domain"
	"github.com/techchallenge/user-management/internal/core/ports"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *ports.EmployeeResponse, error) {
			assert.Equal(t, "admin@example.com", email)
			return "tok", &ports.EmployeeResponse{ID: 1, Role: domain.RoleAdmin}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"pw"}`)

	require.NoError(t, NewAuthHandler(stub).Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)
	require.NotNil(t, resp.Employee)
	assert.Equal(t, domain.RoleAdmin, resp.Employee.Role)
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive", domain.ErrInactiveEmployee, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAuthService{
				loginFn: func(ctx context.Context, email, password string) (string, *ports.EmployeeResponse, error) {
					return "", nil, tt.err
				},
			}
			c, _ := newContext(http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"pw"}`)

			err := NewAuthHandler(stub).Login(c)
			assert.Equal(t, tt.want, httpCode(err))
		})
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/auth/login", `{"email":"a@example.com"}`)

	err := NewAuthHandler(&stubAuthService{}).Login(c)
	assert.Equal(t, http.StatusBadRequest, httpCode(err))
}
