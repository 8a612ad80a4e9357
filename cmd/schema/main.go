// Command schema writes the JSON schema for the application config.
// Run via go:generate in pkg/config to refresh the embedded schema.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/yuji-sgs/news-summary-agent/pkg/config"
)

func main() {
	schema, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("failed to generate schema: %v", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}

	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := os.WriteFile(outputPath, append(data, '\n'), 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("failed to write schema file: %v", err)
	}

	log.Printf("schema written to %s", outputPath)
}
