package bankapp

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Account is a customer record. Balance is never stored; it is the sum
// of the account's ledger entries, computed by the repository at read
// time.
type Account struct {
	AcctNum  string
	Username string
	Salt     string
	Hash     string
	Balance  decimal.Decimal
}

// Transaction is one immutable ledger entry. ID is assigned by the
// store at insert and is time-ordered, so equal timestamps still sort
// deterministically by ID.
type Transaction struct {
	ID          snowflake.ID
	AcctNum     string
	Amount      decimal.Decimal
	Description string
	Timestamp   time.Time
}

type Admin struct {
	Username string
	Salt     string
	Hash     string
}

type CreateAccountReq struct {
	AcctNum        string
	Username       string
	Salt           string
	Hash           string
	InitialDeposit decimal.Decimal
}

type Repository interface {
	CreateAccount(req CreateAccountReq) error
	RecordTransaction(acctNum string, amount decimal.Decimal, description string) (snowflake.ID, error)
	GetAccount(acctNum string) (*Account, error)
	GetAccountByLogin(login string) (*Account, error)
	ListAccounts() ([]Account, error)
	RemoveAccount(acctNum string) (bool, error)
	ListTransactions(acctNum string) ([]Transaction, error)
	CreateAdmin(username, salt, hash string) error
	GetAdmin(username string) (*Admin, error)
}
