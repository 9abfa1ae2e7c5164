package domain

import "errors"

// ValidationKind identifies which entity invariant was violated.
type ValidationKind string

const (
	KindCPFEmpty          ValidationKind = "cpf_empty"
	KindInvalidCPF        ValidationKind = "invalid_cpf"
	KindNameEmpty         ValidationKind = "name_empty"
	KindSurnameEmpty      ValidationKind = "surname_empty"
	KindEmailEmpty        ValidationKind = "email_empty"
	KindInvalidEmail      ValidationKind = "invalid_email"
	KindBirthDateTooSmall ValidationKind = "birth_date_too_small"
	KindPasswordEmpty     ValidationKind = "password_empty"
)

var validationMessages = map[ValidationKind]string{
	KindCPFEmpty:          "CPF was null or empty.",
	KindInvalidCPF:        "CPF was invalid.",
	KindNameEmpty:         "Name was null or empty.",
	KindSurnameEmpty:      "Surname was null or empty.",
	KindEmailEmpty:        "Email was null or empty.",
	KindInvalidEmail:      "Email was invalid.",
	KindBirthDateTooSmall: "BirthDay was less than 1900-01-01.",
	KindPasswordEmpty:     "Password was null or empty.",
}

// ValidationError is returned by entity constructors and updates when an
// invariant does not hold. Each kind carries a fixed message.
type ValidationError struct {
	Kind ValidationKind
}

func (e *ValidationError) Error() string {
	if msg, ok := validationMessages[e.Kind]; ok {
		return msg
	}
	return string(e.Kind)
}

// Is lets errors.Is match a ValidationError against the sentinels below by kind.
func (e *ValidationError) Is(target error) bool {
	var other *ValidationError
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

var (
	ErrCPFEmpty          = &ValidationError{Kind: KindCPFEmpty}
	ErrInvalidCPF        = &ValidationError{Kind: KindInvalidCPF}
	ErrNameEmpty         = &ValidationError{Kind: KindNameEmpty}
	ErrSurnameEmpty      = &ValidationError{Kind: KindSurnameEmpty}
	ErrEmailEmpty        = &ValidationError{Kind: KindEmailEmpty}
	ErrInvalidEmail      = &ValidationError{Kind: KindInvalidEmail}
	ErrBirthDateTooSmall = &ValidationError{Kind: KindBirthDateTooSmall}
	ErrPasswordEmpty     = &ValidationError{Kind: KindPasswordEmpty}
)

// IsValidationError reports whether err (or anything it wraps) is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDuplicate          = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveEmployee   = errors.New("employee is inactive")
)
