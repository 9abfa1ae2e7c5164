package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/techchallenge/user-management/internal/core/domain"
)

func TestEmployeeDoc_LowercasesEmailAndOmitsUnsetUpdate(t *testing.T) {
	e := &domain.Employee{
		Person: domain.Person{
			CPF:       "98659502000",
			Email:     " Admin@Admin.com",
			BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		ID:           4,
		PasswordHash: "hash",
		Role:         domain.RoleManager,
	}

	doc := toEmployeeDoc(e)
	assert.Equal(t, "admin@admin.com", doc.EmailLower)
	assert.Equal(t, "Manager", doc.Role)
	assert.Nil(t, doc.UpdatedAt)

	back := doc.toDomain()
	assert.Equal(t, e.Person, back.Person)
	assert.Equal(t, e.Role, back.Role)
	assert.True(t, back.UpdatedAt.IsZero())
}

func TestCustomerDoc_KeepsUpdateTimestamp(t *testing.T) {
	updated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := &domain.Customer{ID: 2, UpdatedAt: updated}

	doc := toCustomerDoc(c)
	if assert.NotNil(t, doc.UpdatedAt) {
		assert.Equal(t, updated, *doc.UpdatedAt)
	}
	assert.Equal(t, updated, doc.toDomain().UpdatedAt)
}

func TestCustomerDoc_LowercasesEmail(t *testing.T) {
	c := &domain.Customer{Person: domain.Person{Email: " Bia@Example.COM "}}
	assert.Equal(t, "bia@example.com", toCustomerDoc(c).EmailLower)
}
