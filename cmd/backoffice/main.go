package main

import (
	"log"

	"github.com/SscSPs/backoffice_app/internal/commands"
)

// @title Back Office API
// @version 1.0
// @description Orders, invoices and the collections ledger of the back office dashboard.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
