package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pagecast/internal/errors"
	"pagecast/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newMigrateCommand() *cobra.Command {
	var (
		dir  string
		auto bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the SQL files in a migrations directory in name order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				db     *gorm.DB
				logger *slog.Logger
			)

			if auto {
				return runApp(cmd.Context(), func(ctx context.Context) error {
					return postgres.Migrate(db.WithContext(ctx))
				}, injectInfra(), fx.Populate(&db))
			}

			files, err := migrationFiles(dir)
			if err != nil {
				return err
			}

			return runApp(cmd.Context(), func(ctx context.Context) error {
				for _, file := range files {
					sql, err := os.ReadFile(file)
					if err != nil {
						return errors.WithStack(err)
					}

					if err := db.WithContext(ctx).Exec(string(sql)).Error; err != nil {
						return errors.Wrapf(err, "apply %s", filepath.Base(file))
					}
					logger.Info("Migration applied", slog.String("file", filepath.Base(file)))
				}

				return nil
			}, injectInfra(), fx.Populate(&db, &logger))
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory holding *.sql files")
	cmd.Flags().BoolVar(&auto, "auto", false, "derive the schema from the models instead of SQL files")

	return cmd
}

// migrationFiles lists dir's .sql files; os.ReadDir returns them sorted.
func migrationFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read migrations dir %s", dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no migrations in %s", dir)
	}

	return files, nil
}
