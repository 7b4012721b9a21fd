package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/Renal37/go-bank-account/internal/models"
)

// Ошибки хранилища. Сервисный слой переводит их в свои сигнальные ошибки.
var (
	ErrAlreadyExists = errors.New("account already exists in storage")
	ErrNotFound      = errors.New("account not found in storage")
)

// MemoryStore хранит счета в памяти. Все операции сериализуются
// мьютексом, так как HTTP-слой обращается к хранилищу из нескольких
// горутин одновременно.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[int64]*models.Account
}

// NewMemoryStore создает пустое хранилище счетов.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[int64]*models.Account)}
}

// SaveAccount сохраняет новый счет. Номер счета должен быть свободен.
func (s *MemoryStore) SaveAccount(ctx context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.Number()]; ok {
		return ErrAlreadyExists
	}

	s.accounts[account.Number()] = account

	return nil
}

// FindAccount возвращает проекцию счета. Наружу отдается только копия,
// чтобы состояние счета нельзя было изменить вне хранилища.
func (s *MemoryStore) FindAccount(ctx context.Context, number int64) (models.AccountView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[number]
	if !ok {
		return models.AccountView{}, ErrNotFound
	}

	return account.View(), nil
}

// UpdateAccount применяет fn к счету под write-lock, поэтому изменение
// баланса атомарно по отношению к другим операциям.
func (s *MemoryStore) UpdateAccount(ctx context.Context, number int64, fn func(account *models.Account) models.Outcome) (models.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[number]
	if !ok {
		return models.Outcome{}, ErrNotFound
	}

	return fn(account), nil
}
