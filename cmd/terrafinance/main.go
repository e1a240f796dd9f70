package main

import (
	"log"

	"terrafinance/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("terrafinance: %v", err)
	}
}
