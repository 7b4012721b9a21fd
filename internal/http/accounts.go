package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Renal37/go-bank-account/internal/middlewares"
	"github.com/Renal37/go-bank-account/internal/models"
	"github.com/Renal37/go-bank-account/internal/services"
	"github.com/go-chi/chi/v5"
)

func accountNumber(w http.ResponseWriter, r *http.Request) (int64, bool) {
	number, err := strconv.ParseInt(chi.URLParam(r, "number"), 10, 64)

	if err != nil {
		http.Error(w, "Account number is invalid", http.StatusUnprocessableEntity)
		return 0, false
	}

	return number, true
}

func OpenAccount(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.AccountRequest](w, r)

	if data.Number == nil {
		http.Error(w, "Request doesn't contain account number", http.StatusBadRequest)
		return
	}

	var balance float64
	if data.Balance != nil {
		balance = *data.Balance
	}

	accountService := middlewares.GetServiceFromContext[models.AccountService](w, r, middlewares.AccountServiceKey)

	account, err := (*accountService).OpenAccount(r.Context(), *data.Number, balance)

	if err != nil {
		if errors.Is(err, models.ErrInvalidArgument) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if errors.Is(err, services.ErrAccountExists) {
			http.Error(w, "Account number is already taken", http.StatusConflict)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during opening account: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusCreated, account)
}

func GetAccount(w http.ResponseWriter, r *http.Request) {
	number, ok := accountNumber(w, r)
	if !ok {
		return
	}

	accountService := middlewares.GetServiceFromContext[models.AccountService](w, r, middlewares.AccountServiceKey)

	account, err := (*accountService).GetAccount(r.Context(), number)

	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			http.Error(w, "Account is not found", http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during getting account: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, account)
}

func GetBalance(w http.ResponseWriter, r *http.Request) {
	number, ok := accountNumber(w, r)
	if !ok {
		return
	}

	accountService := middlewares.GetServiceFromContext[models.AccountService](w, r, middlewares.AccountServiceKey)

	balance, err := (*accountService).GetBalance(r.Context(), number)

	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			http.Error(w, "Account is not found", http.StatusNotFound)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during getting balance: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, balance)
}

func Deposit(w http.ResponseWriter, r *http.Request) {
	applyOperation(w, r, models.AccountService.Deposit)
}

func Withdraw(w http.ResponseWriter, r *http.Request) {
	applyOperation(w, r, models.AccountService.Withdraw)
}

// applyOperation является общим обработчиком для deposit и withdraw:
// оба принимают одинаковое тело запроса и отвечают квитанцией.
func applyOperation(
	w http.ResponseWriter,
	r *http.Request,
	operation func(service models.AccountService, ctx context.Context, number int64, amount float64) (models.Receipt, error),
) {
	number, ok := accountNumber(w, r)
	if !ok {
		return
	}

	data := middlewares.GetParsedJSONData[models.OperationRequest](w, r)

	if data.Amount == nil {
		http.Error(w, "Request doesn't contain amount", http.StatusBadRequest)
		return
	}

	accountService := middlewares.GetServiceFromContext[models.AccountService](w, r, middlewares.AccountServiceKey)

	receipt, err := operation(*accountService, r.Context(), number, *data.Amount)

	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			http.Error(w, "Account is not found", http.StatusNotFound)
			return
		}

		if errors.Is(err, services.ErrNonPositiveAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if errors.Is(err, services.ErrInsufficientFunds) {
			http.Error(w, err.Error(), http.StatusPaymentRequired)
			return
		}

		http.Error(w, fmt.Sprintf("Error occurred during applying operation: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, receipt)
}
