package main

import (
	"fmt"
	"log"

	"github.com/Renal37/go-bank-account/internal/models"
)

// runDemo воспроизводит классический сценарий: открыть счет, проверить
// баланс, внести и снять деньги, напечатать итоговое состояние.
func runDemo() {
	account, err := models.NewAccount(281207, 27000)
	if err != nil {
		log.Fatalf("Account wasn't opened due to %s", err)
	}

	fmt.Println(account.CheckBalance().Message)
	fmt.Println(account.Deposit(5000).Message)
	fmt.Println(account.Withdraw(2000).Message)
	fmt.Println(account.CheckBalance().Message)
	fmt.Println(account)
}
