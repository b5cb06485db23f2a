package main

import (
	"os"

	"github.com/nahidreza/folio/cmd/folio/commands"
)

func main() {
	os.Exit(commands.Execute())
}
