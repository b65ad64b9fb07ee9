package timesheet

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"tracktm/internal/service/billing"
	"tracktm/internal/storage"
)

// Storage is the persistence collaborator. Catalogs are reference data;
// entries are keyed by (job_number, entry_date).
type Storage interface {
	GetMaterials(ctx context.Context) ([]storage.Material, error)
	GetLaborRoles(ctx context.Context) ([]storage.LaborRole, error)
	GetEquipmentRates(ctx context.Context) ([]storage.EquipmentRate, error)
	GetEmployees(ctx context.Context) ([]storage.Employee, error)
	GetEntry(ctx context.Context, jobNumber, entryDate string) (*storage.DailyEntry, error)
	GetEntries(ctx context.Context, jobNumber string) ([]storage.DailyEntry, error)
	SaveEntry(ctx context.Context, entry storage.DailyEntry) (int64, error)
}

type Service struct {
	storage Storage
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// Catalogs is an immutable snapshot of the reference data. It is fetched
// once per operation and passed around by value; the core never reads
// ambient global state.
type Catalogs struct {
	Materials      []storage.Material
	LaborRoles     []storage.LaborRole
	EquipmentRates []storage.EquipmentRate
	Employees      []storage.Employee
}

// FetchCatalogs loads all four catalogs concurrently.
func (s *Service) FetchCatalogs(ctx context.Context) (Catalogs, error) {
	var cat Catalogs

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cat.Materials, err = s.storage.GetMaterials(gCtx)
		if err != nil {
			return fmt.Errorf("materials: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cat.LaborRoles, err = s.storage.GetLaborRoles(gCtx)
		if err != nil {
			return fmt.Errorf("labor roles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cat.EquipmentRates, err = s.storage.GetEquipmentRates(gCtx)
		if err != nil {
			return fmt.Errorf("equipment rates: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cat.Employees, err = s.storage.GetEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("employees: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Catalogs{}, err
	}

	return cat, nil
}

// SaveEntry validates the natural key, drops zero-quantity lines and
// upserts. Saving twice for the same (job, date) replaces the prior entry.
func (s *Service) SaveEntry(ctx context.Context, entry storage.DailyEntry) (int64, error) {
	const op = "timesheet.SaveEntry"

	if entry.JobNumber == "" {
		return 0, fmt.Errorf("%s: job number: %w", op, billing.ErrMissingRequiredField)
	}
	if entry.EntryDate == "" {
		return 0, fmt.Errorf("%s: entry date: %w", op, billing.ErrMissingRequiredField)
	}

	entry = dropEmptyLines(entry)

	id, err := s.storage.SaveEntry(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// DayTotal loads one entry and collapses it. A nil result means no entry
// exists for that day.
func (s *Service) DayTotal(ctx context.Context, jobNumber, entryDate string) (*billing.DayTotal, error) {
	const op = "timesheet.DayTotal"

	if jobNumber == "" {
		return nil, fmt.Errorf("%s: job number: %w", op, billing.ErrMissingRequiredField)
	}
	if entryDate == "" {
		return nil, fmt.Errorf("%s: entry date: %w", op, billing.ErrMissingRequiredField)
	}

	entry, err := s.storage.GetEntry(ctx, jobNumber, entryDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if entry == nil {
		return nil, nil
	}

	total := billing.ComputeDayTotal(*entry)
	return &total, nil
}

// SummaryReport fetches all entries for a job and rolls them up over the
// optional inclusive date range.
func (s *Service) SummaryReport(ctx context.Context, jobNumber, startDate, endDate string) (*billing.ReportSummary, error) {
	const op = "timesheet.SummaryReport"

	entries, err := s.storage.GetEntries(ctx, jobNumber)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summary, err := billing.BuildReportSummary(jobNumber, entries, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return summary, nil
}

// DetailedReport fetches all entries for a job and builds the category and
// labor breakdown over the optional inclusive date range.
func (s *Service) DetailedReport(ctx context.Context, jobNumber, startDate, endDate string) (*billing.DetailedReport, error) {
	const op = "timesheet.DetailedReport"

	entries, err := s.storage.GetEntries(ctx, jobNumber)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	report, err := billing.BuildDetailedReport(jobNumber, entries, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return report, nil
}

// Entries exposes the raw entry list for exporters that need it, e.g.
// filename generation from the latest entry date.
func (s *Service) Entries(ctx context.Context, jobNumber string) ([]storage.DailyEntry, error) {
	const op = "timesheet.Entries"

	entries, err := s.storage.GetEntries(ctx, jobNumber)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}

func dropEmptyLines(entry storage.DailyEntry) storage.DailyEntry {
	var materials []storage.MaterialLineItem
	for _, item := range entry.Materials {
		if billing.IncludableMaterial(item) {
			materials = append(materials, item)
		}
	}
	entry.Materials = materials

	var equipment []storage.EquipmentLineItem
	for _, item := range entry.Equipment {
		if billing.IncludableEquipment(item) {
			equipment = append(equipment, item)
		}
	}
	entry.Equipment = equipment

	var labor []storage.LaborLineItem
	for _, item := range entry.Labor {
		if billing.IncludableLabor(item.RegularHours, item.OvertimeHours) {
			labor = append(labor, item)
		}
	}
	entry.Labor = labor

	var employees []storage.EmployeeLaborLineItem
	for _, item := range entry.Employees {
		if billing.IncludableLabor(item.RegularHours, item.OvertimeHours) {
			employees = append(employees, item)
		}
	}
	entry.Employees = employees

	return entry
}
