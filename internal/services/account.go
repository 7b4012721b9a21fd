package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Renal37/go-bank-account/internal/models"
	"github.com/Renal37/go-bank-account/internal/storage"
	"github.com/Renal37/go-bank-account/internal/utils"
	"github.com/google/uuid"
)

// Определяем ошибки, связанные с операциями над счетами
var (
	ErrAccountExists     = errors.New("account number is already taken")
	ErrAccountNotFound   = errors.New("account is not found")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// operationError сохраняет сообщение счета как текст ошибки и
// сопоставляется с сигнальной ошибкой через errors.Is.
type operationError struct {
	sentinel error
	message  string
}

func (e *operationError) Error() string {
	return e.message
}

func (e *operationError) Unwrap() error {
	return e.sentinel
}

// AccountService предоставляет операции над банковскими счетами
type AccountService struct {
	storage accountStorage
}

// Интерфейс хранилища для работы со счетами
type accountStorage interface {
	SaveAccount(ctx context.Context, account *models.Account) error
	FindAccount(ctx context.Context, number int64) (models.AccountView, error)
	UpdateAccount(ctx context.Context, number int64, fn func(account *models.Account) models.Outcome) (models.Outcome, error)
}

// NewAccountService создает новый экземпляр AccountService
func NewAccountService(storage accountStorage) *AccountService {
	return &AccountService{storage: storage}
}

// OpenAccount создает счет с заданным номером и начальным балансом.
// Ошибки конструирования (models.ErrInvalidArgument) передаются наверх
// без изменений.
func (s *AccountService) OpenAccount(ctx context.Context, number int64, balance float64) (models.AccountView, error) {
	account, err := models.NewAccount(number, balance)
	if err != nil {
		return models.AccountView{}, err
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.AccountView{}, ErrAccountExists
		}

		return models.AccountView{}, fmt.Errorf("failed to save account: %w", err)
	}

	return account.View(), nil
}

// GetAccount возвращает текущее состояние счета
func (s *AccountService) GetAccount(ctx context.Context, number int64) (models.AccountView, error) {
	view, err := s.storage.FindAccount(ctx, number)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.AccountView{}, ErrAccountNotFound
		}

		return models.AccountView{}, fmt.Errorf("failed to find account: %w", err)
	}

	return view, nil
}

// GetBalance возвращает баланс счета вместе с текстовым сообщением
func (s *AccountService) GetBalance(ctx context.Context, number int64) (models.BalanceInquiry, error) {
	view, err := s.GetAccount(ctx, number)
	if err != nil {
		return models.BalanceInquiry{}, err
	}

	return models.BalanceInquiry{
		Account: view.Number,
		Balance: view.Balance,
		Message: view.CheckBalance().Message,
	}, nil
}

// Deposit зачисляет сумму на счет и возвращает квитанцию
func (s *AccountService) Deposit(ctx context.Context, number int64, amount float64) (models.Receipt, error) {
	return s.apply(ctx, number, amount, func(account *models.Account) models.Outcome {
		return account.Deposit(amount)
	})
}

// Withdraw списывает сумму со счета и возвращает квитанцию
func (s *AccountService) Withdraw(ctx context.Context, number int64, amount float64) (models.Receipt, error) {
	return s.apply(ctx, number, amount, func(account *models.Account) models.Outcome {
		return account.Withdraw(amount)
	})
}

// apply выполняет операцию атомарно внутри хранилища и переводит
// неуспешный Outcome в сигнальную ошибку с сообщением счета.
func (s *AccountService) apply(ctx context.Context, number int64, amount float64, op func(account *models.Account) models.Outcome) (models.Receipt, error) {
	var balance float64

	outcome, err := s.storage.UpdateAccount(ctx, number, func(account *models.Account) models.Outcome {
		out := op(account)
		balance = account.Balance()
		return out
	})

	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Receipt{}, ErrAccountNotFound
		}

		return models.Receipt{}, fmt.Errorf("failed to update account: %w", err)
	}

	if !outcome.OK {
		// Операция с положительной суммой отклоняется только из-за
		// нехватки средств.
		if amount <= 0 {
			return models.Receipt{}, &operationError{sentinel: ErrNonPositiveAmount, message: outcome.Message}
		}

		return models.Receipt{}, &operationError{sentinel: ErrInsufficientFunds, message: outcome.Message}
	}

	return models.Receipt{
		ID:          uuid.NewString(),
		Account:     number,
		Amount:      amount,
		Balance:     balance,
		Message:     outcome.Message,
		ProcessedAt: utils.RFC3339Date{Time: time.Now().UTC()},
	}, nil
}
