package reservation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidName      = errors.New("customer name is required")
	ErrInvalidPhone     = errors.New("customer phone is required")
	ErrInvalidPartySize = errors.New("number of guests must be at least 1")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Customer struct {
	name  string
	email Email
	phone string
}

func NewCustomer(name string, email Email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrInvalidName
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return Customer{}, ErrInvalidPhone
	}
	return Customer{name: name, email: email, phone: phone}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() Email  { return c.email }
func (c Customer) Phone() string { return c.phone }
