package bankapp

import (
	"errors"
	"fmt"
)

var (
	ErrInternalServer = errors.New("internal server error")

	// ErrAuthentication is deliberately generic: callers must not be able
	// to tell an unknown login from a wrong password.
	ErrAuthentication = errors.New("invalid credentials")
)

type ErrBadRequest struct {
	Fields map[string]string
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}

type ErrNotFound struct {
	AcctNum string
}

func (e ErrNotFound) Error() string {
	return "record not found"
}

type ErrDuplicateAccount struct {
	AcctNum string
}

func (e ErrDuplicateAccount) Error() string {
	return fmt.Sprintf("account number `%v` already exists", e.AcctNum)
}

type ErrUnknownAccount struct {
	AcctNum string
}

func (e ErrUnknownAccount) Error() string {
	return fmt.Sprintf("account number `%v` does not exist", e.AcctNum)
}
