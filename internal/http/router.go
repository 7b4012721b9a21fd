package router

import (
	"log"
	"net/http"

	"github.com/Renal37/go-bank-account/internal/logger"
	"github.com/Renal37/go-bank-account/internal/middlewares"
	"github.com/Renal37/go-bank-account/internal/models"
	"github.com/go-chi/chi/v5"
)

type Config struct {
	Endpoint string
}

type Router struct {
	config         Config
	accountService models.AccountService
}

func New(config Config, accountService models.AccountService) *Router {
	return &Router{
		config,
		accountService,
	}
}

func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewares.ServiceInjectorMiddleware(router.accountService),
		logger.RequestLogger,
	)

	r.Route("/api/accounts", func(r chi.Router) {
		r.With(middlewares.JSONMiddleware[models.AccountRequest]).Post("/", OpenAccount)

		r.Get("/{number}", GetAccount)
		r.Get("/{number}/balance", GetBalance)

		r.With(middlewares.JSONMiddleware[models.OperationRequest]).Post("/{number}/deposit", Deposit)
		r.With(middlewares.JSONMiddleware[models.OperationRequest]).Post("/{number}/withdraw", Withdraw)
	})

	return r
}

func (router *Router) Run() {
	log.Fatal(http.ListenAndServe(router.config.Endpoint, router.get()))
}
