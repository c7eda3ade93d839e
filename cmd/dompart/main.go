// cmd/dompart/main.go
package main

import (
	"os"

	"dompart/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
