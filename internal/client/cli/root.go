package cli

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/contactbook/internal/client/services"
	"github.com/dmitrijs2005/contactbook/internal/logging"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "text" | "json"
}

// NewRootCommand creates the command tree. The root command runs the
// interactive REPL; subcommands run a single action and exit.
func NewRootCommand(svc services.ContactService, log logging.Logger) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "contacts",
		Short:         "contactbook - a local contact list",
		Long:          "Keep a list of contacts in a local store. Run without a subcommand for the interactive shell.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			newCommandApp(cmd, svc, log, opts, false).Run(cmd.Context())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "list output format (text|json)")

	cmd.AddCommand(newListCommand(svc, log, opts))
	cmd.AddCommand(newShowCommand(svc, log, opts))
	cmd.AddCommand(newAddCommand(svc, log, opts))
	cmd.AddCommand(newEditCommand(svc, log, opts))
	cmd.AddCommand(newDeleteCommand(svc, log, opts))
	cmd.AddCommand(newClearCommand(svc, log, opts))

	return cmd
}

func newCommandApp(cmd *cobra.Command, svc services.ContactService, log logging.Logger, opts *RootOptions, yes bool) *App {
	app := NewApp(svc, cmd.InOrStdin(), cmd.OutOrStdout(), log)
	app.format = opts.Format
	if yes {
		app.confirmer = AutoConfirmer{}
	}
	return app
}

func newListCommand(svc services.ContactService, log logging.Logger, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List contacts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newCommandApp(cmd, svc, log, opts, false).List(cmd.Context())
		},
	}
}

func newShowCommand(svc services.ContactService, log logging.Logger, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show all fields of a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newCommandApp(cmd, svc, log, opts, false).Show(cmd.Context(), args[0])
		},
	}
}

func newAddCommand(svc services.ContactService, log logging.Logger, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add a contact interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newCommandApp(cmd, svc, log, opts, false).Add(cmd.Context())
		},
	}
}

func newEditCommand(svc services.ContactService, log logging.Logger, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a contact interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newCommandApp(cmd, svc, log, opts, false).Edit(cmd.Context(), args[0])
		},
	}
}

func newDeleteCommand(svc services.ContactService, log logging.Logger, opts *RootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newCommandApp(cmd, svc, log, opts, yes).Delete(cmd.Context(), args[0])
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newClearCommand(svc services.ContactService, log logging.Logger, opts *RootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newCommandApp(cmd, svc, log, opts, yes).Clear(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
