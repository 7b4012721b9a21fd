package main

import (
	"flag"
	"os"
)

type Config struct {
	endpoint string
	logLevel string
	env      string
	demo     bool
}

func NewConfig() Config {
	var (
		endpoint string
		demo     bool
	)

	flag.StringVar(&endpoint, "a", "localhost:8080", "address and port to run server")
	flag.BoolVar(&demo, "demo", false, "run the demonstration scenario and exit")
	flag.Parse()

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		endpoint = address
	}

	logLevel := "error"
	if l := os.Getenv("LOG_LEVEL"); l != "" {
		logLevel = l
	}

	env := "production"
	if e := os.Getenv("ENV"); e != "" {
		env = e
	}

	return Config{
		endpoint,
		logLevel,
		env,
		demo,
	}
}
