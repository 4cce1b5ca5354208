package main

import (
	"os"

	"github.com/passgen/passgen/internal/cli"
)

func main() {
	cli.Run(os.Args[1:], os.Stdout)
}
