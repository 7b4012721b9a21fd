package main

import (
	"log"

	router "github.com/Renal37/go-bank-account/internal/http"
	"github.com/Renal37/go-bank-account/internal/logger"
	"github.com/Renal37/go-bank-account/internal/services"
	"github.com/Renal37/go-bank-account/internal/storage"
	"github.com/Renal37/go-bank-account/internal/utils"
)

func main() {
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	if config.demo {
		runDemo()
		return
	}

	accountService := services.NewAccountService(storage.NewMemoryStore())

	utils.HandleTerminationProcess(func() {
		_ = logger.Log.Sync()
	})

	log.Printf("Running server on %s\n", config.endpoint)

	router.New(
		router.Config{Endpoint: config.endpoint},
		accountService,
	).Run()
}
