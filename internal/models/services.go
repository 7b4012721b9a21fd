package models

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_account.go . AccountService
type AccountService interface {
	OpenAccount(ctx context.Context, number int64, balance float64) (AccountView, error)

	GetAccount(ctx context.Context, number int64) (AccountView, error)

	GetBalance(ctx context.Context, number int64) (BalanceInquiry, error)

	Deposit(ctx context.Context, number int64, amount float64) (Receipt, error)

	Withdraw(ctx context.Context, number int64, amount float64) (Receipt, error)
}
