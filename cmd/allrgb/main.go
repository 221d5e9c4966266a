package main

import (
	"flag"
	"log"
	"os"

	"allrgb/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "allrgb: ", log.LstdFlags)

	res, err := app.Generate(cfg, logger)
	if err != nil {
		logger.Fatalf("generate: %v", err)
	}

	if !cfg.Preview {
		return
	}
	if err := app.Preview(res.Image, app.Title(cfg)); err != nil {
		logger.Fatal(err)
	}
}
