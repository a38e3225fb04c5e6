package bankapp

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type SignupReq struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	InitialDeposit  string `json:"initial_deposit"`
}

type ChargeReq struct {
	AcctNum     string
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type RemovalResult int

const (
	RemovalNotFound RemovalResult = iota
	RemovalRemoved
)

type Service interface {
	CreateAccount(req SignupReq) (*Account, error)
	Authenticate(login, password string) (*Account, error)
	AuthenticateAdmin(username, password string) error
	Deposit(req ChargeReq) (*decimal.Decimal, error)
	Withdraw(req ChargeReq) (*decimal.Decimal, error)
	Balance(acctNum string) (*decimal.Decimal, error)
	Transactions(acctNum string) ([]Transaction, error)
	Statement(w io.Writer, acctNum string) error
	AdminListAccounts() ([]Account, error)
	AdminRemoveAccount(acctNum string) (RemovalResult, error)
}

// maxAcctNumDraws bounds the collision retry loop on account number
// generation. With 10^10 possible numbers exhausting it means the
// store is effectively full, surfaced as a duplicate-account failure.
const maxAcctNumDraws = 5

func NewService(repo Repository, vault *Vault, gen AcctNumGen, log *zerolog.Logger) *serviceImpl {
	return &serviceImpl{
		repo:  repo,
		vault: vault,
		gen:   gen,
		log:   log,
	}
}

type serviceImpl struct {
	repo  Repository
	vault *Vault
	gen   AcctNumGen
	log   *zerolog.Logger
}

var (
	_ Service = (*serviceImpl)(nil)
)

func (s *serviceImpl) CreateAccount(req SignupReq) (*Account, error) {
	dep, err := decimal.NewFromString(req.InitialDeposit)
	if err != nil || dep.IsNegative() {
		return nil, ErrBadRequest{Fields: map[string]string{"initial_deposit": "must be a non-negative number"}}
	}

	salt, hash, err := s.vault.Hash(req.Password)
	if err != nil {
		s.log.Err(err).Msg("credential hashing failed")
		return nil, ErrInternalServer
	}

	for i := 0; i < maxAcctNumDraws; i++ {
		num, err := s.gen.Next()
		if err != nil {
			s.log.Err(err).Msg("account number generation failed")
			return nil, ErrInternalServer
		}

		if _, err = s.repo.GetAccount(num); err == nil {
			// taken, redraw
			continue
		} else if !errors.As(err, &ErrNotFound{}) {
			return nil, err
		}

		err = s.repo.CreateAccount(CreateAccountReq{
			AcctNum:        num,
			Username:       req.Username,
			Salt:           salt,
			Hash:           hash,
			InitialDeposit: dep,
		})
		if errors.As(err, &ErrDuplicateAccount{}) {
			// lost the race on the primary key, redraw
			continue
		}
		if err != nil {
			return nil, err
		}

		return &Account{
			AcctNum:  num,
			Username: req.Username,
			Salt:     salt,
			Hash:     hash,
			Balance:  dep,
		}, nil
	}

	return nil, ErrDuplicateAccount{}
}

// dummy credential compared against on unknown logins so that a failed
// lookup costs the same as a failed password check.
var (
	dummySalt = "0000000000000000"
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

func (s *serviceImpl) Authenticate(login, password string) (*Account, error) {
	acct, err := s.repo.GetAccountByLogin(login)
	if err != nil {
		if errors.As(err, &ErrNotFound{}) {
			s.vault.Verify(password, dummySalt, dummyHash)
			return nil, ErrAuthentication
		}
		return nil, err
	}
	if !s.vault.Verify(password, acct.Salt, acct.Hash) {
		return nil, ErrAuthentication
	}
	return acct, nil
}

func (s *serviceImpl) AuthenticateAdmin(username, password string) error {
	adm, err := s.repo.GetAdmin(username)
	if err != nil {
		if errors.As(err, &ErrNotFound{}) {
			s.vault.Verify(password, dummySalt, dummyHash)
			return ErrAuthentication
		}
		return err
	}
	if !s.vault.Verify(password, adm.Salt, adm.Hash) {
		return ErrAuthentication
	}
	return nil
}

func (s *serviceImpl) Deposit(req ChargeReq) (*decimal.Decimal, error) {
	desc := req.Description
	if desc == "" {
		desc = "Deposit"
	}
	if _, err := s.repo.RecordTransaction(req.AcctNum, req.Amount, desc); err != nil {
		return nil, err
	}
	return s.Balance(req.AcctNum)
}

func (s *serviceImpl) Withdraw(req ChargeReq) (*decimal.Decimal, error) {
	acct, err := s.repo.GetAccount(req.AcctNum)
	if err != nil {
		if errors.As(err, &ErrNotFound{}) {
			return nil, ErrUnknownAccount{AcctNum: req.AcctNum}
		}
		return nil, err
	}
	if acct.Balance.LessThan(req.Amount) {
		return nil, ErrBadRequest{Fields: map[string]string{"amount": "insufficient balance"}}
	}

	desc := req.Description
	if desc == "" {
		desc = "Withdrawal"
	}
	if _, err = s.repo.RecordTransaction(req.AcctNum, req.Amount.Neg(), desc); err != nil {
		return nil, err
	}
	return s.Balance(req.AcctNum)
}

func (s *serviceImpl) Balance(acctNum string) (*decimal.Decimal, error) {
	acct, err := s.repo.GetAccount(acctNum)
	if err != nil {
		return nil, err
	}
	return &acct.Balance, nil
}

func (s *serviceImpl) Transactions(acctNum string) ([]Transaction, error) {
	if _, err := s.repo.GetAccount(acctNum); err != nil {
		return nil, err
	}
	return s.repo.ListTransactions(acctNum)
}

func (s *serviceImpl) Statement(w io.Writer, acctNum string) error {
	acct, err := s.repo.GetAccount(acctNum)
	if err != nil {
		return err
	}
	txns, err := s.repo.ListTransactions(acctNum)
	if err != nil {
		return err
	}
	return renderStatement(w, acct, txns)
}

func (s *serviceImpl) AdminListAccounts() ([]Account, error) {
	return s.repo.ListAccounts()
}

func (s *serviceImpl) AdminRemoveAccount(acctNum string) (RemovalResult, error) {
	removed, err := s.repo.RemoveAccount(acctNum)
	if err != nil {
		return RemovalNotFound, err
	}
	if !removed {
		return RemovalNotFound, nil
	}
	return RemovalRemoved, nil
}
