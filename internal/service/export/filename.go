package export

import (
	"fmt"

	"tracktm/internal/service/billing"
	"tracktm/internal/storage"
)

// Filename builds a deterministic export name (without extension) from the
// job number, report type and date bounds. With no bounds the latest entry
// date in the filtered set is used instead.
func Filename(jobNumber, reportType, startDate, endDate string, entries []storage.DailyEntry) string {
	base := fmt.Sprintf("TSI_%s_%s", reportType, jobNumber)

	switch {
	case startDate != "" && endDate != "":
		return fmt.Sprintf("%s_%s_to_%s", base, startDate, endDate)
	case startDate != "":
		return fmt.Sprintf("%s_from_%s", base, startDate)
	case endDate != "":
		return fmt.Sprintf("%s_to_%s", base, endDate)
	}

	latest := ""
	for _, e := range billing.FilterEntries(entries, startDate, endDate) {
		if e.EntryDate > latest {
			latest = e.EntryDate
		}
	}
	if latest == "" {
		return base
	}
	return fmt.Sprintf("%s_%s", base, latest)
}
