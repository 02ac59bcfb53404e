package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"pagecast/config"
	"pagecast/internal/domain/lifecycle"
	"pagecast/internal/errors"
	"pagecast/internal/infra/cache"
	logs "pagecast/internal/infra/log"
	"pagecast/internal/infra/persistence/postgres"
	"pagecast/internal/infra/render"
	"pagecast/internal/infra/storage"
	"pagecast/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Format string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pagectl",
		Short: "Maintenance jobs for generated pages",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains([]string{formatText, formatJSON}, opts.Format) {
				return errors.Errorf("invalid format %q: must be text or json", opts.Format)
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", formatText, "output format (json|text)")

	cmd.AddCommand(newExpireAllCommand(opts))
	cmd.AddCommand(newExpireSingleCommand(opts))
	cmd.AddCommand(newExtendCommand(opts))
	cmd.AddCommand(newCheckUpcomingCommand(opts))
	cmd.AddCommand(newTokenCommand())
	cmd.AddCommand(newMigrateCommand())

	return cmd
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
	)
}

// injectPipeline provides what the expiration engine needs to touch the
// database, the object store and the caches.
func injectPipeline() fx.Option {
	return fx.Provide(
		storage.New,
		cache.NewResponseCache,
		cache.NewTagInvalidator,
		render.NewPageRenderer,
		postgres.NewTransactionManager,
		postgres.NewPageRepository,
		impl.NewSiteWriter,
		impl.NewExpirationService,
	)
}

// runApp starts a short-lived fx app, calls fn, then stops the app so
// pending cache invalidations drain before the process exits.
func runApp(ctx context.Context, fn func(ctx context.Context) error, opts ...fx.Option) error {
	app := fx.New(append([]fx.Option{fx.NopLogger}, opts...)...)

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start")
	}

	runErr := fn(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop")
	}

	return runErr
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}

func writeLine(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
