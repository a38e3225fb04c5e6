package bankapp_test

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/fivestars/bankapp"
	"github.com/fivestars/bankapp/mocks"
)

func TestCreateAccount(t *testing.T) {
	nooplog := zerolog.Nop()
	vault := bankapp.NewVault(bcrypt.MinCost)

	t.Run("retries the generator on an identifier collision", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		gomock.InOrder(
			gen.EXPECT().Next().Return("1111111111", nil),
			gen.EXPECT().Next().Return("2222222222", nil),
		)
		repo.EXPECT().
			GetAccount("1111111111").
			Return(&bankapp.Account{AcctNum: "1111111111"}, nil)
		repo.EXPECT().
			GetAccount("2222222222").
			Return(nil, bankapp.ErrNotFound{AcctNum: "2222222222"})
		repo.EXPECT().
			CreateAccount(gomock.AssignableToTypeOf(bankapp.CreateAccountReq{})).
			Return(nil)

		acct, err := svc.CreateAccount(bankapp.SignupReq{
			Username:        "alice",
			Password:        "pw123",
			ConfirmPassword: "pw123",
			InitialDeposit:  "100.0",
		})
		reqrd.Nil(err)
		as.Equal("2222222222", acct.AcctNum)
		as.True(acct.Balance.Equal(decimal.RequireFromString("100.0")))
	})

	t.Run("retries when the store loses the uniqueness race", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		gomock.InOrder(
			gen.EXPECT().Next().Return("1111111111", nil),
			gen.EXPECT().Next().Return("2222222222", nil),
		)
		repo.EXPECT().
			GetAccount(gomock.Any()).
			Return(nil, bankapp.ErrNotFound{}).
			Times(2)
		gomock.InOrder(
			repo.EXPECT().
				CreateAccount(gomock.Any()).
				Return(bankapp.ErrDuplicateAccount{AcctNum: "1111111111"}),
			repo.EXPECT().
				CreateAccount(gomock.Any()).
				Return(nil),
		)

		acct, err := svc.CreateAccount(bankapp.SignupReq{
			Username:        "alice",
			Password:        "pw123",
			ConfirmPassword: "pw123",
			InitialDeposit:  "100.0",
		})
		reqrd.Nil(err)
		as.Equal("2222222222", acct.AcctNum)
	})

	t.Run("surfaces a duplicate failure only once retries are exhausted", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		gen.EXPECT().Next().Return("1111111111", nil).Times(5)
		repo.EXPECT().
			GetAccount("1111111111").
			Return(&bankapp.Account{AcctNum: "1111111111"}, nil).
			Times(5)

		acct, err := svc.CreateAccount(bankapp.SignupReq{
			Username:        "alice",
			Password:        "pw123",
			ConfirmPassword: "pw123",
			InitialDeposit:  "100.0",
		})
		as.Nil(acct)
		as.ErrorAs(err, &bankapp.ErrDuplicateAccount{})
	})

	t.Run("never returns or logs the raw password", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		gen.EXPECT().Next().Return("1111111111", nil)
		repo.EXPECT().GetAccount("1111111111").Return(nil, bankapp.ErrNotFound{})
		var persisted bankapp.CreateAccountReq
		repo.EXPECT().
			CreateAccount(gomock.AssignableToTypeOf(bankapp.CreateAccountReq{})).
			DoAndReturn(func(r bankapp.CreateAccountReq) error {
				persisted = r
				return nil
			})

		acct, err := svc.CreateAccount(bankapp.SignupReq{
			Username:        "alice",
			Password:        "sup3rsecret",
			ConfirmPassword: "sup3rsecret",
			InitialDeposit:  "100.0",
		})
		reqrd.Nil(err)
		as.NotContains(persisted.Hash, "sup3rsecret")
		as.NotContains(persisted.Salt, "sup3rsecret")
		as.NotContains(acct.Hash, "sup3rsecret")
	})
}

func TestAuthenticate(t *testing.T) {
	nooplog := zerolog.Nop()
	vault := bankapp.NewVault(bcrypt.MinCost)

	t.Run("unknown login and wrong password are indistinguishable", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		salt, hash, err := vault.Hash("rightpass")
		reqrd.Nil(err)

		repo.EXPECT().
			GetAccountByLogin("ghost").
			Return(nil, bankapp.ErrNotFound{AcctNum: "ghost"})
		_, errUnknown := svc.Authenticate("ghost", "whatever")

		repo.EXPECT().
			GetAccountByLogin("alice").
			Return(&bankapp.Account{AcctNum: "1234567890", Username: "alice", Salt: salt, Hash: hash}, nil)
		_, errWrongPass := svc.Authenticate("alice", "wrongpass")

		as.ErrorIs(errUnknown, bankapp.ErrAuthentication)
		as.ErrorIs(errWrongPass, bankapp.ErrAuthentication)
		as.Equal(errUnknown.Error(), errWrongPass.Error())
		as.NotContains(errWrongPass.Error(), "wrongpass")
	})

	t.Run("returns the account on a correct password", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		salt, hash, err := vault.Hash("rightpass")
		reqrd.Nil(err)
		repo.EXPECT().
			GetAccountByLogin("alice").
			Return(&bankapp.Account{AcctNum: "1234567890", Username: "alice", Salt: salt, Hash: hash}, nil)

		acct, err := svc.Authenticate("alice", "rightpass")
		reqrd.Nil(err)
		as.Equal("1234567890", acct.AcctNum)
	})

	t.Run("admin auth fails generically too", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		repo.EXPECT().
			GetAdmin("root").
			Return(nil, bankapp.ErrNotFound{})
		err := svc.AuthenticateAdmin("root", "whatever")
		as.ErrorIs(err, bankapp.ErrAuthentication)
	})
}

func TestWithdraw(t *testing.T) {
	nooplog := zerolog.Nop()
	vault := bankapp.NewVault(bcrypt.MinCost)

	t.Run("rejects a withdrawal beyond the balance", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		repo.EXPECT().
			GetAccount("1234567890").
			Return(&bankapp.Account{AcctNum: "1234567890", Balance: decimal.NewFromInt(10)}, nil)

		bal, err := svc.Withdraw(bankapp.ChargeReq{
			AcctNum: "1234567890",
			Amount:  decimal.NewFromInt(30),
		})
		as.Nil(bal)
		as.ErrorAs(err, &bankapp.ErrBadRequest{})
	})

	t.Run("appends a negative ledger entry and returns the new balance", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		gomock.InOrder(
			repo.EXPECT().
				GetAccount("1234567890").
				Return(&bankapp.Account{AcctNum: "1234567890", Balance: decimal.NewFromInt(100)}, nil),
			repo.EXPECT().
				RecordTransaction("1234567890", decimal.NewFromInt(-30), "Withdrawal").
				Return(snowflake.ID(1), nil),
			repo.EXPECT().
				GetAccount("1234567890").
				Return(&bankapp.Account{AcctNum: "1234567890", Balance: decimal.NewFromInt(70)}, nil),
		)

		bal, err := svc.Withdraw(bankapp.ChargeReq{
			AcctNum: "1234567890",
			Amount:  decimal.NewFromInt(30),
		})
		reqrd.Nil(err)
		as.True(bal.Equal(decimal.NewFromInt(70)))
	})
}

func TestAdminRemoveAccount(t *testing.T) {
	nooplog := zerolog.Nop()
	vault := bankapp.NewVault(bcrypt.MinCost)

	t.Run("reports not-found without an error", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		repo.EXPECT().RemoveAccount("0000000000").Return(false, nil)
		res, err := svc.AdminRemoveAccount("0000000000")
		as.Nil(err)
		as.Equal(bankapp.RemovalNotFound, res)
	})

	t.Run("reports removal", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		repo.EXPECT().RemoveAccount("1234567890").Return(true, nil)
		res, err := svc.AdminRemoveAccount("1234567890")
		as.Nil(err)
		as.Equal(bankapp.RemovalRemoved, res)
	})
}
