package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/hanguiano/activador/cmd"
)

func main() {
	// A .env next to the binary may carry GEMINI_API_KEY; a missing file
	// is the normal case.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
