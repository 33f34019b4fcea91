// Package cli wires the gedgen commands against the service layer.
package cli

import (
	"github.com/alexanderramin/gedgen/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Generate service.GenerateService
	Names    service.NameBankService

	// IsInteractive reports whether stdin is a terminal; the wizard refuses
	// to start without one. Nil means assume a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "gedgen" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gedgen",
		Short: "Random family tree generator producing GEDCOM files",
	}

	root.AddCommand(
		newGenerateCmd(app),
		newNamesCmd(app),
	)

	return root
}
