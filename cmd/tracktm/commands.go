package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"tracktm/internal/service/billing"
	"tracktm/internal/service/export"
	"tracktm/internal/service/timesheet"
	"tracktm/internal/storage"
	"tracktm/internal/storage/mysql"
)

const operationTimeout = 10 * time.Second

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := mustSetup()

			db, err := mysql.New(*cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), operationTimeout)
			defer cancel()

			if err := db.InitSchema(ctx); err != nil {
				log.Error("failed to init schema", slog.String("error", err.Error()))
				return err
			}

			log.Info("database schema ready")
			return nil
		},
	}
}

// seedFile is the catalog payload for the seed command.
type seedFile struct {
	Materials      []storage.Material      `json:"materials"`
	LaborRoles     []storage.LaborRole     `json:"labor_roles"`
	EquipmentRates []storage.EquipmentRate `json:"equipment_rates"`
	Employees      []storage.Employee      `json:"employees"`
}

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load catalog reference data from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := mustSetup()

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}

			var seed seedFile
			if err := json.Unmarshal(data, &seed); err != nil {
				return fmt.Errorf("parse seed file: %w", err)
			}

			db, err := mysql.New(*cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), operationTimeout)
			defer cancel()

			if err := db.SeedMaterials(ctx, seed.Materials); err != nil {
				return err
			}
			if err := db.SeedLaborRoles(ctx, seed.LaborRoles); err != nil {
				return err
			}
			if err := db.SeedEquipmentRates(ctx, seed.EquipmentRates); err != nil {
				return err
			}
			if err := db.SeedEmployees(ctx, seed.Employees); err != nil {
				return err
			}

			log.Info("catalogs seeded",
				slog.Int("materials", len(seed.Materials)),
				slog.Int("labor_roles", len(seed.LaborRoles)),
				slog.Int("equipment_rates", len(seed.EquipmentRates)),
				slog.Int("employees", len(seed.Employees)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Catalog JSON file")
	cmd.MarkFlagRequired("file")
	return cmd
}

func dayTotalCmd() *cobra.Command {
	var job, date string

	cmd := &cobra.Command{
		Use:   "day-total",
		Short: "Print the computed totals for one job day",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := mustSetup()

			db, err := mysql.New(*cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			service := timesheet.NewService(db)

			ctx, cancel := context.WithTimeout(cmd.Context(), operationTimeout)
			defer cancel()

			total, err := service.DayTotal(ctx, job, date)
			if err != nil {
				log.Error("failed to compute day total", slog.String("error", err.Error()))
				return err
			}
			if total == nil {
				fmt.Printf("no entry for job %s on %s\n", job, date)
				return nil
			}

			return printJSON(total)
		},
	}

	cmd.Flags().StringVar(&job, "job", "", "Job number")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("job")
	cmd.MarkFlagRequired("date")
	return cmd
}

func markupReportCmd() *cobra.Command {
	var job, date string

	cmd := &cobra.Command{
		Use:   "markup-report",
		Short: "Print the daily report totals with markup applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := mustSetup()

			db, err := mysql.New(*cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), operationTimeout)
			defer cancel()

			entry, err := db.GetEntry(ctx, job, date)
			if err != nil {
				log.Error("failed to load entry", slog.String("error", err.Error()))
				return err
			}
			if entry == nil {
				fmt.Printf("no entry for job %s on %s\n", job, date)
				return nil
			}

			return printJSON(billing.ComputeMarkupTotals(*entry))
		},
	}

	cmd.Flags().StringVar(&job, "job", "", "Job number")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("job")
	cmd.MarkFlagRequired("date")
	return cmd
}

func exportCmd() *cobra.Command {
	var job, jobName, start, end, date string

	cmd := &cobra.Command{
		Use:   "export [summary|detailed|excel|invoice|con9]",
		Short: "Export reports to the output directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := mustSetup()

			db, err := mysql.New(*cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			service := timesheet.NewService(db)

			ctx, cancel := context.WithTimeout(cmd.Context(), operationTimeout)
			defer cancel()

			if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			var (
				name    string
				content []byte
			)

			switch args[0] {
			case "summary":
				summary, err := service.SummaryReport(ctx, job, start, end)
				if err != nil {
					return err
				}
				if summary.TotalDays == 0 {
					fmt.Printf("no entries for job %s in the given range\n", job)
					return nil
				}
				entries, err := service.Entries(ctx, job)
				if err != nil {
					return err
				}
				name = export.Filename(job, "summary", start, end, entries) + ".csv"
				content = []byte(export.SummaryCSV(summary, cfg.Company.Name, jobName))

			case "detailed":
				report, err := service.DetailedReport(ctx, job, start, end)
				if err != nil {
					return err
				}
				if report.TotalDays == 0 {
					fmt.Printf("no entries for job %s in the given range\n", job)
					return nil
				}
				entries, err := service.Entries(ctx, job)
				if err != nil {
					return err
				}
				name = export.Filename(job, "detailed", start, end, entries) + ".csv"
				content = []byte(export.DetailedCSV(report, cfg.Company.Name, jobName))

			case "excel":
				report, err := service.DetailedReport(ctx, job, start, end)
				if err != nil {
					return err
				}
				if report.TotalDays == 0 {
					fmt.Printf("no entries for job %s in the given range\n", job)
					return nil
				}
				entries, err := service.Entries(ctx, job)
				if err != nil {
					return err
				}
				name = export.Filename(job, "detailed", start, end, entries) + ".xlsx"
				content, err = export.DetailedReportXLSX(report, cfg.Company.Name, jobName)
				if err != nil {
					return err
				}

			case "invoice":
				report, err := service.DetailedReport(ctx, job, start, end)
				if err != nil {
					return err
				}
				if report.TotalDays == 0 {
					fmt.Printf("no entries for job %s in the given range\n", job)
					return nil
				}
				req := export.BuildInvoiceRequest(report, date)
				content, err = json.MarshalIndent(req, "", "  ")
				if err != nil {
					return err
				}
				name = fmt.Sprintf("Invoice_%s.json", req.InvoiceNumber)

			case "con9":
				if date == "" {
					return fmt.Errorf("con9 export needs --date")
				}
				entry, err := db.GetEntry(ctx, job, date)
				if err != nil {
					return err
				}
				if entry == nil {
					fmt.Printf("no entry for job %s on %s\n", job, date)
					return nil
				}
				name = export.Con9Filename(job, date)
				content = []byte(export.Con9CSV(*entry, cfg.Company.Name, jobName))

			default:
				return fmt.Errorf("unknown export type: %s", args[0])
			}

			path := filepath.Join(cfg.OutputDir, name)
			if err := os.WriteFile(path, content, 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			log.Info("export written", slog.String("path", path))
			return nil
		},
	}

	cmd.Flags().StringVar(&job, "job", "", "Job number")
	cmd.Flags().StringVar(&jobName, "job-name", "", "Job display name for report headers")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&date, "date", "", "Single entry date (con9, invoice)")
	cmd.MarkFlagRequired("job")
	return cmd
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
