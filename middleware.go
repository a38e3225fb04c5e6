package bankapp

import (
	"io"

	"github.com/shopspring/decimal"
)

var (
	_ Service = (*validationMiddleware)(nil)
)

type Middleware func(Service) Service

// validationMiddleware rejects malformed input before it reaches the
// orchestration layer. Failures carry a field map naming exactly what
// was wrong; secrets never appear in the map.
type validationMiddleware struct {
	next Service
}

func NewValidationMiddleware() Middleware {
	return func(svc Service) Service {
		return &validationMiddleware{
			next: svc,
		}
	}
}

func (v *validationMiddleware) CreateAccount(req SignupReq) (*Account, error) {
	fields := make(map[string]string)
	if req.Username == "" {
		fields["username"] = "must not be empty"
	}
	if req.Password == "" {
		fields["password"] = "must not be empty"
	}
	if req.ConfirmPassword == "" {
		fields["confirm_password"] = "must not be empty"
	}
	if req.InitialDeposit == "" {
		fields["initial_deposit"] = "must not be empty"
	}
	if len(fields) > 0 {
		return nil, ErrBadRequest{Fields: fields}
	}

	if req.Password != req.ConfirmPassword {
		return nil, ErrBadRequest{Fields: map[string]string{"confirm_password": "passwords do not match"}}
	}
	dep, err := decimal.NewFromString(req.InitialDeposit)
	if err != nil || dep.IsNegative() {
		return nil, ErrBadRequest{Fields: map[string]string{"initial_deposit": "must be a non-negative number"}}
	}

	return v.next.CreateAccount(req)
}

func (v *validationMiddleware) Authenticate(login, password string) (*Account, error) {
	if login == "" || password == "" {
		// still a generic failure; empty input must not be distinguishable
		return nil, ErrAuthentication
	}
	return v.next.Authenticate(login, password)
}

func (v *validationMiddleware) AuthenticateAdmin(username, password string) error {
	if username == "" || password == "" {
		return ErrAuthentication
	}
	return v.next.AuthenticateAdmin(username, password)
}

func (v *validationMiddleware) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	if err := validateCharge(req); err != nil {
		return nil, err
	}
	return v.next.Deposit(req)
}

func (v *validationMiddleware) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	if err := validateCharge(req); err != nil {
		return nil, err
	}
	return v.next.Withdraw(req)
}

func (v *validationMiddleware) Balance(acctNum string) (*decimal.Decimal, error) {
	if acctNum == "" {
		return nil, ErrBadRequest{Fields: map[string]string{"account_number": "must not be empty"}}
	}
	return v.next.Balance(acctNum)
}

func (v *validationMiddleware) Transactions(acctNum string) ([]Transaction, error) {
	if acctNum == "" {
		return nil, ErrBadRequest{Fields: map[string]string{"account_number": "must not be empty"}}
	}
	return v.next.Transactions(acctNum)
}

func (v *validationMiddleware) Statement(w io.Writer, acctNum string) error {
	if acctNum == "" {
		return ErrBadRequest{Fields: map[string]string{"account_number": "must not be empty"}}
	}
	return v.next.Statement(w, acctNum)
}

func (v *validationMiddleware) AdminListAccounts() ([]Account, error) {
	return v.next.AdminListAccounts()
}

func (v *validationMiddleware) AdminRemoveAccount(acctNum string) (RemovalResult, error) {
	if acctNum == "" {
		return RemovalNotFound, ErrBadRequest{Fields: map[string]string{"account_number": "must not be empty"}}
	}
	return v.next.AdminRemoveAccount(acctNum)
}

func validateCharge(req ChargeReq) error {
	fields := make(map[string]string)
	if req.AcctNum == "" {
		fields["account_number"] = "must not be empty"
	}
	if !req.Amount.IsPositive() {
		fields["amount"] = "must be a positive number"
	}
	if len(fields) > 0 {
		return ErrBadRequest{Fields: fields}
	}
	return nil
}
