// Command symptomctl inspects the reference data and advisory table and runs
// one-off predictions without starting the web server.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
