package main

import (
	"context"
	"io"
	"time"

	"pagecast/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type expirationAction func(ctx context.Context, expirationUC usecase.ExpirationUsecase) (*usecase.ExpirationResult, error)

func newExpireAllCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "expire-all",
		Short: "Expire every page whose expiry has passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExpiration(cmd, opts, func(ctx context.Context, expirationUC usecase.ExpirationUsecase) (*usecase.ExpirationResult, error) {
				return expirationUC.ExpireAll(ctx)
			})
		},
	}
}

func newExpireSingleCommand(opts *rootOptions) *cobra.Command {
	var pageID string

	cmd := &cobra.Command{
		Use:   "expire-single",
		Short: "Expire one page now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(pageID)
			if err != nil {
				return err
			}

			return runExpiration(cmd, opts, func(ctx context.Context, expirationUC usecase.ExpirationUsecase) (*usecase.ExpirationResult, error) {
				return expirationUC.ExpireSingle(ctx, id)
			})
		},
	}

	cmd.Flags().StringVar(&pageID, "page-id", "", "page to expire (required)")
	_ = cmd.MarkFlagRequired("page-id")

	return cmd
}

func newExtendCommand(opts *rootOptions) *cobra.Command {
	var (
		pageID string
		hours  float64
	)

	cmd := &cobra.Command{
		Use:   "extend",
		Short: "Push a page's expiry to now plus the given hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(pageID)
			if err != nil {
				return err
			}

			return runExpiration(cmd, opts, func(ctx context.Context, expirationUC usecase.ExpirationUsecase) (*usecase.ExpirationResult, error) {
				return expirationUC.Extend(ctx, id, hours)
			})
		},
	}

	cmd.Flags().StringVar(&pageID, "page-id", "", "page to extend (required)")
	cmd.Flags().Float64Var(&hours, "hours", 24, "hours from now")
	_ = cmd.MarkFlagRequired("page-id")

	return cmd
}

func newCheckUpcomingCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check-upcoming",
		Short: "List pages expiring within the next hour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExpiration(cmd, opts, func(ctx context.Context, expirationUC usecase.ExpirationUsecase) (*usecase.ExpirationResult, error) {
				return expirationUC.CheckUpcoming(ctx)
			})
		},
	}
}

func runExpiration(cmd *cobra.Command, opts *rootOptions, action expirationAction) error {
	var expirationUC usecase.ExpirationUsecase

	return runApp(cmd.Context(), func(ctx context.Context) error {
		result, err := action(ctx, expirationUC)
		if err != nil {
			return err
		}

		return printExpiration(cmd.OutOrStdout(), opts.Format, result)
	}, injectInfra(), injectPipeline(), fx.Populate(&expirationUC))
}

func printExpiration(w io.Writer, format string, result *usecase.ExpirationResult) error {
	if format == formatJSON {
		return writeJSON(w, result)
	}

	writeLine(w, "%s", result.Message)
	for _, page := range result.ExpiredPages {
		writeLine(w, "  expired   %s  %s", page.ID, page.FilePath)
	}
	for _, page := range result.UpcomingPages {
		writeLine(w, "  upcoming  %s  %s  %s (in %s)", page.ID, page.FilePath, page.ExpiresAt.Format(time.RFC3339), page.ExpiresIn)
	}
	if result.Page != nil {
		expiry := "never"
		if result.Page.ExpiresAt != nil {
			expiry = result.Page.ExpiresAt.Format(time.RFC3339)
		}
		writeLine(w, "  page      %s  %s  expires %s", result.Page.ID, result.Page.FilePath, expiry)
	}

	return nil
}
