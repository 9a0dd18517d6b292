package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/avstrong/hotelres/internal/cli"
	"github.com/avstrong/hotelres/internal/config"
)

func main() {
	_ = godotenv.Load()

	var exitCode int

	if err := cli.NewRootCmd(config.NewViper()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hotelres: %v\n", err)

		exitCode = 1
	}

	os.Exit(exitCode)
}
