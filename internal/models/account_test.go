package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	testCases := []struct {
		testName string
		number   int64
		balance  float64
		wantErr  bool
	}{
		{
			testName: "Should open account with positive number and balance",
			number:   281207,
			balance:  27000,
		},
		{
			testName: "Should open account with zero balance",
			number:   5,
			balance:  0,
		},
		{
			testName: "Should reject negative account number",
			number:   -1,
			balance:  0,
			wantErr:  true,
		},
		{
			testName: "Should reject zero account number",
			number:   0,
			balance:  100,
			wantErr:  true,
		},
		{
			testName: "Should reject negative initial balance",
			number:   5,
			balance:  -10,
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			account, err := NewAccount(tc.number, tc.balance)

			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				assert.Nil(t, account)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.number, account.Number())
			assert.Equal(t, tc.balance, account.Balance())
		})
	}
}

func TestDeposit(t *testing.T) {
	testCases := []struct {
		testName    string
		amount      float64
		wantOK      bool
		wantBalance float64
		wantMessage string
	}{
		{
			testName:    "Should deposit positive amount",
			amount:      5000,
			wantOK:      true,
			wantBalance: 32000,
			wantMessage: "successfully deposited: 5000.00",
		},
		{
			testName:    "Should reject zero amount",
			amount:      0,
			wantBalance: 27000,
			wantMessage: "deposit amount must be positive",
		},
		{
			testName:    "Should reject negative amount",
			amount:      -20,
			wantBalance: 27000,
			wantMessage: "deposit amount must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			account, err := NewAccount(281207, 27000)
			require.NoError(t, err)

			outcome := account.Deposit(tc.amount)

			assert.Equal(t, tc.wantOK, outcome.OK)
			assert.Equal(t, tc.wantMessage, outcome.Message)
			assert.Equal(t, tc.wantBalance, account.Balance())
		})
	}
}

func TestWithdraw(t *testing.T) {
	testCases := []struct {
		testName    string
		amount      float64
		wantOK      bool
		wantBalance float64
		wantMessage string
	}{
		{
			testName:    "Should withdraw amount within balance",
			amount:      2000,
			wantOK:      true,
			wantBalance: 25000,
			wantMessage: "successfully withdrew: 2000.00",
		},
		{
			testName:    "Should withdraw the whole balance",
			amount:      27000,
			wantOK:      true,
			wantBalance: 0,
			wantMessage: "successfully withdrew: 27000.00",
		},
		{
			testName:    "Should reject zero amount",
			amount:      0,
			wantBalance: 27000,
			wantMessage: "withdrawal amount must be positive",
		},
		{
			testName:    "Should reject negative amount",
			amount:      -5,
			wantBalance: 27000,
			wantMessage: "withdrawal amount must be positive",
		},
		{
			testName:    "Should reject amount above balance and report it",
			amount:      1000000,
			wantBalance: 27000,
			wantMessage: "insufficient funds: available balance is 27000.00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			account, err := NewAccount(281207, 27000)
			require.NoError(t, err)

			outcome := account.Withdraw(tc.amount)

			assert.Equal(t, tc.wantOK, outcome.OK)
			assert.Equal(t, tc.wantMessage, outcome.Message)
			assert.Equal(t, tc.wantBalance, account.Balance())
		})
	}
}

func TestAccountWalkthrough(t *testing.T) {
	account, err := NewAccount(281207, 27000)
	require.NoError(t, err)

	assert.Equal(t, 27000.0, account.Balance())

	assert.True(t, account.Deposit(5000).OK)
	assert.Equal(t, 32000.0, account.Balance())

	assert.True(t, account.Withdraw(2000).OK)
	assert.Equal(t, 30000.0, account.Balance())

	failed := account.Withdraw(1000000)
	assert.False(t, failed.OK)
	assert.Equal(t, "insufficient funds: available balance is 30000.00", failed.Message)
	assert.Equal(t, 30000.0, account.Balance())

	assert.Equal(t, int64(281207), account.Number())
}

func TestInquiriesDoNotMutate(t *testing.T) {
	account, err := NewAccount(281207, 27000)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		outcome := account.CheckBalance()
		assert.True(t, outcome.OK)
		assert.Equal(t, "account 281207 has available balance 27000.00", outcome.Message)

		assert.Equal(t, int64(281207), account.Number())
		assert.Equal(t, 27000.0, account.Balance())
		assert.Equal(t, "Account(number=281207, balance=27000.00)", account.String())
		assert.Equal(t, "Account(number=281207, balance=27000.00)", fmt.Sprint(account))
	}
}

func TestView(t *testing.T) {
	account, err := NewAccount(42, 10.5)
	require.NoError(t, err)

	view := account.View()
	assert.Equal(t, AccountView{Number: 42, Balance: 10.5}, view)
	assert.Equal(t, "account 42 has available balance 10.50", view.CheckBalance().Message)
}
