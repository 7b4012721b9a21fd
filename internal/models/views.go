package models

import (
	"fmt"

	"github.com/Renal37/go-bank-account/internal/utils"
)

// AccountView is the serializable projection of an Account.
type AccountView struct {
	Number  int64   `json:"number"`
	Balance float64 `json:"balance"`
}

// CheckBalance builds the balance inquiry outcome for the projection.
// The account entity delegates here so the wording lives in one place.
func (v AccountView) CheckBalance() Outcome {
	return Outcome{OK: true, Message: fmt.Sprintf("account %d has available balance %.2f", v.Number, v.Balance)}
}

// BalanceInquiry is the response of the balance endpoint.
type BalanceInquiry struct {
	Account int64   `json:"account"`
	Balance float64 `json:"balance"`
	Message string  `json:"message"`
}

// Receipt confirms a successful deposit or withdrawal. Receipts are
// response payloads only, nothing is stored.
type Receipt struct {
	ID          string            `json:"id"`
	Account     int64             `json:"account"`
	Amount      float64           `json:"amount"`
	Balance     float64           `json:"balance"`
	Message     string            `json:"message"`
	ProcessedAt utils.RFC3339Date `json:"processed_at"`
}

// AccountRequest is the body of the open-account endpoint. Pointer
// fields distinguish missing values from zero values.
type AccountRequest struct {
	Number  *int64   `json:"number"`
	Balance *float64 `json:"balance"`
}

// OperationRequest is the body of the deposit and withdraw endpoints.
type OperationRequest struct {
	Amount *float64 `json:"amount"`
}
