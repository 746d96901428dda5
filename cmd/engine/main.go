package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/subosito/gotenv"

	"internship-engine/internal/cli"
)

var version = "dev"

func main() {
	// .env is optional; real environment variables win over it.
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[env] load .env: %v", err)
	}

	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
