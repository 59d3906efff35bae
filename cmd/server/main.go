// Command server runs the inventory backend HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables.
package main

import (
	"context"
	"log"

	"github.com/wholestock/inventory-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
