package cli

import (
	"bufio"
	"context"

	"github.com/dmitrijs2005/virtualgarden/internal/client/config"
	"github.com/spf13/cobra"
)

// newAppFn is swapped out in tests.
var newAppFn = NewApp

// Execute runs the garden command tree with args.
func Execute(ctx context.Context, args []string) error {
	var app *App
	root := NewRootCommand(&app)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if app != nil {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// NewRootCommand builds the command tree. The App created before a command
// runs is stored in *app so the caller can close it.
func NewRootCommand(app **App) *cobra.Command {
	root := &cobra.Command{
		Use:           "garden",
		Short:         "Tend a virtual garden from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		a, err := newAppFn(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		*app = a
		a.out = cmd.OutOrStdout()
		a.ticking = cmd == root
		return a.Start(cmd.Context())
	}

	root.RunE = func(cmd *cobra.Command, _ []string) error {
		a := *app
		a.println("Welcome to your garden (type 'help' for commands)")
		if !a.isLoggedIn() {
			a.println("You are not signed in: use 'register' or 'login'.")
		}
		runREPL(cmd.Context(), a, a.getStatus, bufio.NewScanner(a.reader))
		return nil
	}

	noArg := func(use, short string, run func(*App, context.Context) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(*app, cmd.Context())
			},
		}
	}
	oneArg := func(use, short string, run func(*App, context.Context, string) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(*app, cmd.Context(), args[0])
			},
		}
	}

	root.AddCommand(
		noArg("register", "Create an account and sign in", (*App).Register),
		noArg("login", "Sign in", (*App).Login),
		noArg("logout", "Sign out and forget the local session", (*App).Logout),
		noArg("list", "List the plants in your garden", (*App).List),
		noArg("tick", "Advance the simulation now", (*App).Tick),
		oneArg("show <id>", "Show one plant", (*App).Show),
		oneArg("plant <flower|tree|succulent|mushroom>", "Plant something new", (*App).Plant),
		oneArg("water <id>", "Water a plant", (*App).Water),
		oneArg("care <id>", "Care for a plant", (*App).Care),
		oneArg("remove <id>", "Remove a plant", (*App).Remove),
	)
	return root
}
