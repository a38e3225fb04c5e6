package bankapp

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Amounts are stored as TEXT holding exact decimal strings; summing
// happens in Go so SQLite never coerces them to float.
var (
	sqlSchema = `
		CREATE TABLE IF NOT EXISTS accounts (
			account_number TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			salt TEXT NOT NULL,
			hashed_password TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE TABLE IF NOT EXISTS transactions (
			transaction_id INTEGER PRIMARY KEY,
			account_number TEXT NOT NULL REFERENCES accounts (account_number),
			amount TEXT NOT NULL,
			description TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_transactions_account
			ON transactions (account_number);
		CREATE TABLE IF NOT EXISTS admins (
			username TEXT PRIMARY KEY,
			salt TEXT NOT NULL,
			hashed_password TEXT NOT NULL
		);
	`

	sqlInsertAcct = `
		INSERT INTO accounts (account_number, username, salt, hashed_password, created_at)
		VALUES (?, ?, ?, ?, ?);
	`

	sqlInsertTxn = `
		INSERT INTO transactions (transaction_id, account_number, amount, description, timestamp)
		VALUES (?, ?, ?, ?, ?);
	`

	sqlSelectAcct = `
		SELECT account_number, username, salt, hashed_password
		FROM accounts
		WHERE account_number = ?;
	`

	sqlSelectAcctByUsername = `
		SELECT account_number, username, salt, hashed_password
		FROM accounts
		WHERE username = ?
		ORDER BY rowid ASC
		LIMIT 1;
	`

	sqlSelectAmounts = `
		SELECT amount
		FROM transactions
		WHERE account_number = ?;
	`

	sqlSelectTxns = `
		SELECT transaction_id, account_number, amount, description, timestamp
		FROM transactions
		WHERE account_number = ?
		ORDER BY timestamp ASC, transaction_id ASC;
	`

	sqlListAccts = `
		SELECT account_number, username, salt, hashed_password
		FROM accounts
		ORDER BY rowid ASC;
	`

	sqlDeleteTxns = `
		DELETE FROM transactions WHERE account_number = ?;
	`

	sqlDeleteAcct = `
		DELETE FROM accounts WHERE account_number = ?;
	`

	sqlUpsertAdmin = `
		INSERT INTO admins (username, salt, hashed_password)
		VALUES (?, ?, ?)
		ON CONFLICT (username) DO UPDATE
		SET salt = excluded.salt, hashed_password = excluded.hashed_password;
	`

	sqlSelectAdmin = `
		SELECT username, salt, hashed_password
		FROM admins
		WHERE username = ?;
	`
)

const initialDepositDesc = "Initial Deposit"

type SQLiteEndpoint struct {
	db   *sql.DB
	node *snowflake.Node
	log  *zerolog.Logger
}

var (
	_ Repository = (*SQLiteEndpoint)(nil)
)

func NewSQLiteEndpoint(path string, log *zerolog.Logger) (*SQLiteEndpoint, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_loc=UTC", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// single-writer model; one connection also keeps the schema init
	// and subsequent writes on the same handle
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}

	endpt := &SQLiteEndpoint{
		db:   db,
		node: node,
		log:  log,
	}
	if err = endpt.InitDB(); err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Msg("sqlite store ready")
	return endpt, nil
}

// InitDB creates the schema if absent. Safe to call repeatedly; an
// existing store is never altered or dropped.
func (s *SQLiteEndpoint) InitDB() error {
	_, err := s.db.Exec(sqlSchema)
	return err
}

func (s *SQLiteEndpoint) Close() error {
	return s.db.Close()
}

func (s *SQLiteEndpoint) CreateAccount(req CreateAccountReq) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	if _, err = tx.Exec(sqlInsertAcct, req.AcctNum, req.Username, req.Salt, req.Hash, now); err != nil {
		if isConstraintErr(err) {
			return ErrDuplicateAccount{AcctNum: req.AcctNum}
		}
		return err
	}

	// the account and its seeding ledger entry commit together or not at all
	id := s.node.Generate()
	if _, err = tx.Exec(sqlInsertTxn, int64(id), req.AcctNum, req.InitialDeposit.String(), initialDepositDesc, now); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteEndpoint) RecordTransaction(acctNum string, amount decimal.Decimal, description string) (snowflake.ID, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var one int
	if err = tx.QueryRow(`SELECT 1 FROM accounts WHERE account_number = ?;`, acctNum).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUnknownAccount{AcctNum: acctNum}
		}
		return 0, err
	}

	id := s.node.Generate()
	if _, err = tx.Exec(sqlInsertTxn, int64(id), acctNum, amount.String(), description, time.Now().UTC()); err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *SQLiteEndpoint) GetAccount(acctNum string) (*Account, error) {
	acct, err := s.scanAccount(s.db.QueryRow(sqlSelectAcct, acctNum))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound{AcctNum: acctNum}
		}
		return nil, err
	}
	if acct.Balance, err = s.ledgerBalance(acct.AcctNum); err != nil {
		return nil, err
	}
	return acct, nil
}

// GetAccountByLogin resolves a login that may be either an account
// number or a username. Account numbers win; usernames are not unique,
// so the earliest-created match is returned.
func (s *SQLiteEndpoint) GetAccountByLogin(login string) (*Account, error) {
	acct, err := s.GetAccount(login)
	if err == nil {
		return acct, nil
	}
	if !errors.As(err, &ErrNotFound{}) {
		return nil, err
	}

	acct, err = s.scanAccount(s.db.QueryRow(sqlSelectAcctByUsername, login))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound{AcctNum: login}
		}
		return nil, err
	}
	if acct.Balance, err = s.ledgerBalance(acct.AcctNum); err != nil {
		return nil, err
	}
	return acct, nil
}

func (s *SQLiteEndpoint) ListAccounts() ([]Account, error) {
	rows, err := s.db.Query(sqlListAccts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accts []Account
	for rows.Next() {
		var a Account
		if err = rows.Scan(&a.AcctNum, &a.Username, &a.Salt, &a.Hash); err != nil {
			return nil, err
		}
		accts = append(accts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range accts {
		if accts[i].Balance, err = s.ledgerBalance(accts[i].AcctNum); err != nil {
			return nil, err
		}
	}
	return accts, nil
}

func (s *SQLiteEndpoint) RemoveAccount(acctNum string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err = tx.Exec(sqlDeleteTxns, acctNum); err != nil {
		return false, err
	}
	res, err := tx.Exec(sqlDeleteAcct, acctNum)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if err = tx.Commit(); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLiteEndpoint) ListTransactions(acctNum string) ([]Transaction, error) {
	rows, err := s.db.Query(sqlSelectTxns, acctNum)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []Transaction
	for rows.Next() {
		var (
			t   Transaction
			id  int64
			amt string
		)
		if err = rows.Scan(&id, &t.AcctNum, &amt, &t.Description, &t.Timestamp); err != nil {
			return nil, err
		}
		t.ID = snowflake.ID(id)
		if t.Amount, err = decimal.NewFromString(amt); err != nil {
			return nil, fmt.Errorf("corrupt amount on transaction %d: %w", id, err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (s *SQLiteEndpoint) CreateAdmin(username, salt, hash string) error {
	_, err := s.db.Exec(sqlUpsertAdmin, username, salt, hash)
	return err
}

func (s *SQLiteEndpoint) GetAdmin(username string) (*Admin, error) {
	var adm Admin
	err := s.db.QueryRow(sqlSelectAdmin, username).Scan(&adm.Username, &adm.Salt, &adm.Hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound{}
		}
		return nil, err
	}
	return &adm, nil
}

func (s *SQLiteEndpoint) scanAccount(row *sql.Row) (*Account, error) {
	var a Account
	if err := row.Scan(&a.AcctNum, &a.Username, &a.Salt, &a.Hash); err != nil {
		return nil, err
	}
	return &a, nil
}

// ledgerBalance derives the balance from the transaction log. Keeping
// no balance column means no write path can ever leave the two out of
// sync.
func (s *SQLiteEndpoint) ledgerBalance(acctNum string) (decimal.Decimal, error) {
	rows, err := s.db.Query(sqlSelectAmounts, acctNum)
	if err != nil {
		return decimal.Zero, err
	}
	defer rows.Close()

	bal := decimal.Zero
	for rows.Next() {
		var amt string
		if err = rows.Scan(&amt); err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(amt)
		if err != nil {
			return decimal.Zero, fmt.Errorf("corrupt amount for account %s: %w", acctNum, err)
		}
		bal = bal.Add(d)
	}
	return bal, rows.Err()
}

func isConstraintErr(err error) bool {
	var serr sqlite3.Error
	return errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint
}
