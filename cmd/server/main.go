// Command server runs the vocabulary knowledge base HTTP API.
//
// Configuration comes from environment variables and an optional YAML file
// (CONFIG_PATH). Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/wordmemo/wordmemo-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
