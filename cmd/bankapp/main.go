package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fivestars/bankapp"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Thin local front-end over the account service, one subcommand per
// screen of the desktop app it replaces. All business rules live in the
// service; this binary only collects input and prints results.

const usage = `usage: bankapp [-config config.yml] <command> [flags]

commands:
  create        open an account (username, password, initial deposit)
  login         verify account credentials
  deposit       deposit into an account
  withdraw      withdraw from an account
  balance       show an account balance
  transactions  list an account's ledger entries
  statement     write an account's PDF statement to a file
  admin-list    list all accounts (admin credentials required)
  admin-remove  remove an account (admin credentials required)
`

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	var cfg bankapp.Config
	cfgfl, err := os.Open(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening config file")
	}
	if err = yaml.NewDecoder(cfgfl).Decode(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("error decoding config file")
	}

	endpt, err := bankapp.NewSQLiteEndpoint(cfg.Database.Path, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening database")
	}
	defer endpt.Close()

	vault := bankapp.NewVault(cfg.Vault.BcryptCost)
	var svc bankapp.Service = bankapp.NewService(endpt, vault, bankapp.NewAcctNumGen(), &logger)
	svc = bankapp.NewValidationMiddleware()(svc)

	cli := &cli{svc: svc, log: &logger}
	args := flag.Args()[1:]
	switch flag.Arg(0) {
	case "create":
		cli.create(args)
	case "login":
		cli.login(args)
	case "deposit":
		cli.charge(args, false)
	case "withdraw":
		cli.charge(args, true)
	case "balance":
		cli.balance(args)
	case "transactions":
		cli.transactions(args)
	case "statement":
		cli.statement(args)
	case "admin-list":
		cli.adminList(args)
	case "admin-remove":
		cli.adminRemove(args)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

type cli struct {
	svc bankapp.Service
	log *zerolog.Logger
}

func (c *cli) create(args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	user := fs.String("username", "", "account holder name")
	pass := fs.String("password", "", "account password")
	confirm := fs.String("confirm", "", "password confirmation")
	deposit := fs.String("deposit", "", "initial deposit amount")
	fs.Parse(args)

	acct, err := c.svc.CreateAccount(bankapp.SignupReq{
		Username:        *user,
		Password:        *pass,
		ConfirmPassword: *confirm,
		InitialDeposit:  *deposit,
	})
	if err != nil {
		c.fail(err)
	}
	fmt.Printf("account created: %s (balance %s)\n", acct.AcctNum, acct.Balance)
}

func (c *cli) login(args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	login := fs.String("login", "", "account number or username")
	pass := fs.String("password", "", "account password")
	fs.Parse(args)

	acct, err := c.svc.Authenticate(*login, *pass)
	if err != nil {
		c.fail(err)
	}
	fmt.Printf("welcome, %s (account %s)\n", acct.Username, acct.AcctNum)
}

func (c *cli) charge(args []string, withdraw bool) {
	fs := flag.NewFlagSet("charge", flag.ExitOnError)
	acctNum := fs.String("account", "", "account number")
	pass := fs.String("password", "", "account password")
	amount := fs.String("amount", "", "amount")
	fs.Parse(args)

	if _, err := c.svc.Authenticate(*acctNum, *pass); err != nil {
		c.fail(err)
	}
	amt, err := decimal.NewFromString(*amount)
	if err != nil {
		c.fail(bankapp.ErrBadRequest{Fields: map[string]string{"amount": "must be a number"}})
	}
	req := bankapp.ChargeReq{AcctNum: *acctNum, Amount: amt}
	var bal *decimal.Decimal
	if withdraw {
		bal, err = c.svc.Withdraw(req)
	} else {
		bal, err = c.svc.Deposit(req)
	}
	if err != nil {
		c.fail(err)
	}
	fmt.Printf("new balance: %s\n", bal)
}

func (c *cli) balance(args []string) {
	fs := flag.NewFlagSet("balance", flag.ExitOnError)
	acctNum := fs.String("account", "", "account number")
	pass := fs.String("password", "", "account password")
	fs.Parse(args)

	if _, err := c.svc.Authenticate(*acctNum, *pass); err != nil {
		c.fail(err)
	}
	bal, err := c.svc.Balance(*acctNum)
	if err != nil {
		c.fail(err)
	}
	fmt.Printf("balance: %s\n", bal)
}

func (c *cli) transactions(args []string) {
	fs := flag.NewFlagSet("transactions", flag.ExitOnError)
	acctNum := fs.String("account", "", "account number")
	pass := fs.String("password", "", "account password")
	fs.Parse(args)

	if _, err := c.svc.Authenticate(*acctNum, *pass); err != nil {
		c.fail(err)
	}
	txns, err := c.svc.Transactions(*acctNum)
	if err != nil {
		c.fail(err)
	}
	for _, t := range txns {
		fmt.Printf("%s  %12s  %s\n", t.Timestamp.Format("2006-01-02 15:04:05"), t.Amount, t.Description)
	}
}

func (c *cli) statement(args []string) {
	fs := flag.NewFlagSet("statement", flag.ExitOnError)
	acctNum := fs.String("account", "", "account number")
	pass := fs.String("password", "", "account password")
	out := fs.String("out", "statement.pdf", "output file")
	fs.Parse(args)

	if _, err := c.svc.Authenticate(*acctNum, *pass); err != nil {
		c.fail(err)
	}
	f, err := os.Create(*out)
	if err != nil {
		c.log.Fatal().Err(err).Msg("error creating statement file")
	}
	defer f.Close()
	if err = c.svc.Statement(f, *acctNum); err != nil {
		c.fail(err)
	}
	fmt.Printf("statement written to %s\n", *out)
}

func (c *cli) adminList(args []string) {
	fs := flag.NewFlagSet("admin-list", flag.ExitOnError)
	user := fs.String("admin-user", "", "admin username")
	pass := fs.String("admin-pass", "", "admin password")
	fs.Parse(args)

	if err := c.svc.AuthenticateAdmin(*user, *pass); err != nil {
		c.fail(err)
	}
	accts, err := c.svc.AdminListAccounts()
	if err != nil {
		c.fail(err)
	}
	for _, a := range accts {
		fmt.Printf("%s  %-20s  %12s\n", a.AcctNum, a.Username, a.Balance)
	}
}

func (c *cli) adminRemove(args []string) {
	fs := flag.NewFlagSet("admin-remove", flag.ExitOnError)
	user := fs.String("admin-user", "", "admin username")
	pass := fs.String("admin-pass", "", "admin password")
	acctNum := fs.String("account", "", "account number to remove")
	fs.Parse(args)

	if err := c.svc.AuthenticateAdmin(*user, *pass); err != nil {
		c.fail(err)
	}
	res, err := c.svc.AdminRemoveAccount(*acctNum)
	if err != nil {
		c.fail(err)
	}
	if res == bankapp.RemovalRemoved {
		fmt.Printf("account %s removed\n", *acctNum)
	} else {
		fmt.Printf("account %s not found\n", *acctNum)
	}
}

// fail prints a caller-facing message and exits. Validation failures
// show their field details; everything else stays generic so internal
// error text never reaches the terminal.
func (c *cli) fail(err error) {
	var (
		br bankapp.ErrBadRequest
		nf bankapp.ErrNotFound
		ua bankapp.ErrUnknownAccount
	)
	switch {
	case errors.As(err, &br):
		fmt.Fprintf(os.Stderr, "invalid input: %v\n", br.Fields)
	case errors.Is(err, bankapp.ErrAuthentication):
		fmt.Fprintln(os.Stderr, "invalid username or password")
	case errors.As(err, &nf), errors.As(err, &ua):
		fmt.Fprintln(os.Stderr, "account not found")
	default:
		c.log.Error().Err(err).Msg("operation failed")
		fmt.Fprintln(os.Stderr, "internal error")
	}
	os.Exit(1)
}
