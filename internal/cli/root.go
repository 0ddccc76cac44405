// Package cli is the studiodesk command line: the interactive dashboard
// plus plain listing and export commands over the same screen states.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/studiodesk/internal/auth"
	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

// App holds what the commands need.
type App struct {
	Catalog  *store.Catalog
	Auth     *auth.Service
	Logger   *log.Logger
	PageSize int

	// IsInteractive reports whether stdout is a terminal. The root command
	// only starts the dashboard when it is.
	IsInteractive func() bool
	// RunTUI starts the interactive dashboard.
	RunTUI func(ctx context.Context) error
}

func (a *App) logger() *log.Logger {
	if a.Logger == nil {
		return log.Discard()
	}
	return a.Logger.WithComponent(log.ComponentCLI)
}

func (a *App) pageSize() int {
	if a.PageSize < 1 {
		return view.DefaultPageSize
	}
	return a.PageSize
}

// NewRootCmd creates the top-level "studiodesk" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studiodesk",
		Short:         "Studio operations dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.RunTUI != nil && app.IsInteractive != nil && app.IsInteractive() {
				return app.RunTUI(cmd.Context())
			}
			return writeOverview(cmd.OutOrStdout(), app.Catalog)
		},
	}

	root.AddCommand(
		newClientsCmd(app),
		newProjectsCmd(app),
		newTeamCmd(app),
		newInvoicesCmd(app),
		newEntriesCmd(app),
		newFinanceCmd(app),
		newExportCmd(app),
		newLoginCmd(app),
	)

	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, app *App, args []string) error {
	root := NewRootCmd(app)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("studiodesk: %w", err)
	}
	return nil
}
