package bankapp_test

import (
	"bytes"
	"testing"
	"time"

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

func TestStatement(t *testing.T) {
	nooplog := zerolog.Nop()
	vault := bankapp.NewVault(bcrypt.MinCost)

	t.Run("writes a PDF of the ledger", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		now := time.Now().UTC()
		repo.EXPECT().
			GetAccount("1234567890").
			Return(&bankapp.Account{
				AcctNum:  "1234567890",
				Username: "alice",
				Balance:  decimal.RequireFromString("70"),
			}, nil)
		repo.EXPECT().
			ListTransactions("1234567890").
			Return([]bankapp.Transaction{
				{ID: snowflake.ID(1), AcctNum: "1234567890", Amount: decimal.RequireFromString("100"), Description: "Initial Deposit", Timestamp: now},
				{ID: snowflake.ID(2), AcctNum: "1234567890", Amount: decimal.RequireFromString("-30"), Description: "Withdrawal", Timestamp: now.Add(time.Second)},
			}, nil)

		buf := new(bytes.Buffer)
		err := svc.Statement(buf, "1234567890")
		reqrd.Nil(err)
		as.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output is not a PDF")
		as.Greater(buf.Len(), 500)
	})

	t.Run("propagates not-found for a missing account", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		gen := mocks.NewMockAcctNumGen(ctrl)
		svc := bankapp.NewService(repo, vault, gen, &nooplog)

		repo.EXPECT().
			GetAccount("0000000000").
			Return(nil, bankapp.ErrNotFound{AcctNum: "0000000000"})

		err := svc.Statement(new(bytes.Buffer), "0000000000")
		as.ErrorAs(err, &bankapp.ErrNotFound{})
	})
}
