package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tracktm/internal/service/billing"
)

func TestBuildInvoiceRequest_KnownJob(t *testing.T) {
	report := &billing.DetailedReport{
		JobNumber:      "2507",
		MaterialsTotal: 500.00,
		LaborTotal:     1500.00,
		GrandTotal:     2000.00,
	}

	inv := BuildInvoiceRequest(report, "2024-06-15")

	assert.Equal(t, "2507-0615", inv.InvoiceNumber)
	assert.Equal(t, "2024-06-15", inv.InvoiceDate)
	assert.Equal(t, "PNSY DD #2 Stairwells T&M", inv.JobName)
	assert.Equal(t, "Cianbro Corporation", inv.BillToName)
	assert.Equal(t, "Portsmouth Naval Shipyard, Kittery Maine", inv.ShipToLocation)

	assert.Len(t, inv.Lines, 2)
	assert.Equal(t, "TSI Labor", inv.Lines[0].Description)
	assert.InDelta(t, 1500.00, inv.Lines[0].Amount, 1e-9)
	assert.Equal(t, "Equipment and Materials", inv.Lines[1].Description)
	assert.InDelta(t, 500.00, inv.Lines[1].Amount, 1e-9)
	assert.InDelta(t, 2000.00, inv.Total, 1e-9)
}

func TestBuildInvoiceRequest_UnknownJobGetsGenericName(t *testing.T) {
	report := &billing.DetailedReport{JobNumber: "9999"}

	inv := BuildInvoiceRequest(report, "2024-01-02")

	assert.Equal(t, "9999-0102", inv.InvoiceNumber)
	assert.Equal(t, "Job 9999", inv.JobName)
	assert.Empty(t, inv.BillToName)
}

func TestBuildInvoiceRequest_EmptyDateDefaultsToToday(t *testing.T) {
	report := &billing.DetailedReport{JobNumber: "2317"}

	inv := BuildInvoiceRequest(report, "")

	assert.NotEmpty(t, inv.InvoiceDate)
	assert.Equal(t, "2317-"+inv.InvoiceDate[5:7]+inv.InvoiceDate[8:10], inv.InvoiceNumber)
}
