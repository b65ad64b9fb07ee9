package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tracktm/internal/service/timesheet"
	"tracktm/internal/storage/mysql"
)

func importCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a daily entry from a JSON timesheet file",
		Long: `Imports one daily entry keyed by catalog names. Re-importing the same
job and date replaces the prior entry. Lines with unknown catalog names
are skipped; malformed numeric fields degrade to zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := mustSetup()

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read timesheet file: %w", err)
			}

			spec, err := timesheet.ParseImportSpec(data)
			if err != nil {
				return err
			}

			db, err := mysql.New(*cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			service := timesheet.NewService(db)

			ctx, cancel := context.WithTimeout(cmd.Context(), operationTimeout)
			defer cancel()

			id, err := service.ImportEntry(ctx, log, spec)
			if err != nil {
				log.Error("import failed", slog.String("error", err.Error()))
				return err
			}

			log.Info("entry imported",
				slog.Int64("id", id),
				slog.String("job", spec.JobNumber),
				slog.String("date", spec.EntryDate))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Timesheet JSON file")
	cmd.MarkFlagRequired("file")
	return cmd
}
