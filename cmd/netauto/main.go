package main

import (
	"github.com/rheard/netauto/internal/cli"

	// Registers the Windows UI Automation backend.
	_ "github.com/rheard/netauto/internal/native/uiawindows"
)

func main() {
	cli.Execute()
}
