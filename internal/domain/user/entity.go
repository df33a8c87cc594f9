package user

import (
	"errors"
	"strings"
)

var (
	ErrBlankName    = errors.New("name cannot be blank")
	ErrInvalidEmail = errors.New("invalid email address")
)

type User struct {
	id    int64
	name  string
	email string
}

func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return &User{name: name, email: email}, nil
}

func ReconstructUser(id int64, name, email string) *User {
	return &User{
		id:    id,
		name:  name,
		email: email,
	}
}

func (u *User) ID() int64     { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", ErrInvalidEmail
	}
	return email, nil
}
