package models

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports that an account could not be constructed
// from the given arguments.
var ErrInvalidArgument = errors.New("invalid argument")

// Outcome is the result of a balance operation. Failed deposits and
// withdrawals are expected, recoverable conditions, so they are reported
// through Outcome instead of an error.
type Outcome struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Account holds a balance under an immutable positive account number.
// Both fields are unexported: the balance changes only through Deposit
// and Withdraw.
type Account struct {
	number  int64
	balance float64
}

// NewAccount validates the arguments and returns a new account. No
// account exists when an error is returned.
func NewAccount(number int64, balance float64) (*Account, error) {
	if number <= 0 {
		return nil, fmt.Errorf("%w: account number must be a positive integer", ErrInvalidArgument)
	}

	if balance < 0 {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", ErrInvalidArgument)
	}

	return &Account{number: number, balance: balance}, nil
}

func (a *Account) Number() int64 {
	return a.number
}

func (a *Account) Balance() float64 {
	return a.balance
}

// Deposit adds amount to the balance. Non-positive amounts fail and
// leave the balance untouched.
func (a *Account) Deposit(amount float64) Outcome {
	if amount <= 0 {
		return Outcome{Message: "deposit amount must be positive"}
	}

	a.balance += amount

	return Outcome{OK: true, Message: fmt.Sprintf("successfully deposited: %.2f", amount)}
}

// Withdraw subtracts amount from the balance. Non-positive amounts and
// amounts above the current balance fail and leave the balance
// untouched.
func (a *Account) Withdraw(amount float64) Outcome {
	if amount <= 0 {
		return Outcome{Message: "withdrawal amount must be positive"}
	}

	if amount > a.balance {
		return Outcome{Message: fmt.Sprintf("insufficient funds: available balance is %.2f", a.balance)}
	}

	a.balance -= amount

	return Outcome{OK: true, Message: fmt.Sprintf("successfully withdrew: %.2f", amount)}
}

// CheckBalance reports the account number and the current balance. It
// never mutates state and always succeeds.
func (a *Account) CheckBalance() Outcome {
	return a.View().CheckBalance()
}

// View returns the serializable projection of the account.
func (a *Account) View() AccountView {
	return AccountView{Number: a.number, Balance: a.balance}
}

func (a *Account) String() string {
	return fmt.Sprintf("Account(number=%d, balance=%.2f)", a.number, a.balance)
}
