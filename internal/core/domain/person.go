package domain

import (
	"strings"
	"time"
)

// Person is the field group shared by customers and employees.
type Person struct {
	CPF       string    `json:"cpf"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	BirthDate time.Time `json:"birth_date"`
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// check runs each rule in order and returns the first failure.
func check(rules ...func() error) error {
	for _, rule := range rules {
		if err := rule(); err != nil {
			return err
		}
	}
	return nil
}

func (p Person) cpfPresent() error {
	if isBlank(p.CPF) {
		return ErrCPFEmpty
	}
	return nil
}

func (p Person) cpfValid() error {
	if !IsValidCPF(p.CPF) {
		return ErrInvalidCPF
	}
	return nil
}

func (p Person) namePresent() error {
	if isBlank(p.Name) {
		return ErrNameEmpty
	}
	return nil
}

func (p Person) surnamePresent() error {
	if isBlank(p.Surname) {
		return ErrSurnameEmpty
	}
	return nil
}

func (p Person) emailPresent() error {
	if isBlank(p.Email) {
		return ErrEmailEmpty
	}
	return nil
}

func (p Person) emailValid() error {
	if !IsValidEmail(p.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// birthDateSet rejects the zero time, which stands for "never provided".
func (p Person) birthDateSet() error {
	if p.BirthDate.IsZero() {
		return ErrBirthDateTooSmall
	}
	return nil
}

var now = func() time.Time { return time.Now().UTC() }
