package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEmployeeFields() EmployeeFields {
	return EmployeeFields{
		Person:   validPerson(),
		Password: "x",
		Role:     RoleAdmin,
		IsActive: true,
	}
}

func TestNewEmployee_Success(t *testing.T) {
	e, err := NewEmployee(validEmployeeFields(), 0)
	require.NoError(t, err)

	assert.Equal(t, "x", e.PasswordHash)
	assert.Equal(t, RoleAdmin, e.Role)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestNewEmployee_ValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(f *EmployeeFields)
		want    error
		message string
	}{
		{"cpf empty", func(f *EmployeeFields) { f.CPF = "" }, ErrCPFEmpty, "CPF was null or empty."},
		{"cpf blank", func(f *EmployeeFields) { f.CPF = "  " }, ErrCPFEmpty, "CPF was null or empty."},
		{"cpf invalid", func(f *EmployeeFields) { f.CPF = "12345678900" }, ErrInvalidCPF, "CPF was invalid."},
		{"name empty", func(f *EmployeeFields) { f.Name = "" }, ErrNameEmpty, "Name was null or empty."},
		{"surname empty", func(f *EmployeeFields) { f.Surname = "" }, ErrSurnameEmpty, "Surname was null or empty."},
		{"email empty", func(f *EmployeeFields) { f.Email = "" }, ErrEmailEmpty, "Email was null or empty."},
		{"email invalid", func(f *EmployeeFields) { f.Email = "invalid" }, ErrInvalidEmail, "Email was invalid."},
		{"birth date unset", func(f *EmployeeFields) { f.BirthDate = time.Time{} }, ErrBirthDateTooSmall, "BirthDay was less than 1900-01-01."},
		{"password empty", func(f *EmployeeFields) { f.Password = "" }, ErrPasswordEmpty, "Password was null or empty."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validEmployeeFields()
			tc.mutate(&f)

			_, err := NewEmployee(f, 0)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestNewEmployee_FirstFailureWins(t *testing.T) {
	f := EmployeeFields{}
	_, err := NewEmployee(f, 0)
	assert.ErrorIs(t, err, ErrCPFEmpty)

	f = validEmployeeFields()
	f.Name = ""
	f.Email = ""
	f.Password = ""
	_, err = NewEmployee(f, 0)
	assert.ErrorIs(t, err, ErrNameEmpty)

	f = validEmployeeFields()
	f.BirthDate = time.Time{}
	f.Password = ""
	_, err = NewEmployee(f, 0)
	assert.ErrorIs(t, err, ErrBirthDateTooSmall)
}

func TestNewEmployee_BirthDateSentinelAlwaysRejected(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleManager, RoleAttendant} {
		f := validEmployeeFields()
		f.Role = role
		f.BirthDate = time.Time{}

		_, err := NewEmployee(f, 3)
		assert.ErrorIs(t, err, ErrBirthDateTooSmall, fmt.Sprint(role))
	}
}

func TestEmployeeUpdate(t *testing.T) {
	original, err := NewEmployee(validEmployeeFields(), 9)
	require.NoError(t, err)
	original = original.WithPassword("hashed")

	f := validEmployeeFields()
	f.Name = "Updated"
	f.Password = "plain-new"
	f.Role = RoleManager
	f.IsActive = false

	updated, err := original.Update(f)
	require.NoError(t, err)

	assert.Equal(t, int64(9), updated.ID)
	assert.Equal(t, "Updated", updated.Name)
	assert.Equal(t, "plain-new", updated.PasswordHash)
	assert.Equal(t, RoleManager, updated.Role)
	assert.False(t, updated.IsActive)
	assert.False(t, updated.UpdatedAt.IsZero())
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)

	assert.Equal(t, "hashed", original.PasswordHash)
}

func TestEmployeeUpdate_FailureLeavesValueIntact(t *testing.T) {
	original, err := NewEmployee(validEmployeeFields(), 9)
	require.NoError(t, err)

	f := validEmployeeFields()
	f.Surname = ""

	got, err := original.Update(f)
	require.ErrorIs(t, err, ErrSurnameEmpty)
	assert.Equal(t, original, got)
}

func TestEmployeeWithPassword(t *testing.T) {
	e, err := NewEmployee(validEmployeeFields(), 0)
	require.NoError(t, err)

	hashed := e.WithPassword("abc")
	assert.Equal(t, "abc", hashed.PasswordHash)
	assert.Equal(t, "x", e.PasswordHash)

	assert.Equal(t, "", e.WithPassword("").PasswordHash)
}

func TestParseRole_TrimsAndRejects(t *testing.T) {
	r, ok := ParseRole(" manager ")
	require.True(t, ok)
	assert.Equal(t, RoleManager, r)

	_, ok = ParseRole("root")
	assert.False(t, ok)
}
