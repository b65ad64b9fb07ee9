package export

import (
	"fmt"
	"strings"
	"time"

	"tracktm/internal/constants"
	"tracktm/internal/service/billing"
)

// InvoiceRequest is the typed payload handed to the external invoice
// renderer. Layout is the renderer's problem; this side owns the numbers
// and the bill-to defaults.
type InvoiceRequest struct {
	InvoiceNumber  string        `json:"invoice_number"`
	InvoiceDate    string        `json:"invoice_date"`
	JobNumber      string        `json:"job_number"`
	JobName        string        `json:"job_name"`
	ContractNumber string        `json:"contract_number"`
	ShipToLocation string        `json:"ship_to_location"`
	BillToName     string        `json:"bill_to_name"`
	BillToAddress1 string        `json:"bill_to_address1"`
	BillToAddress2 string        `json:"bill_to_address2"`
	Notes          string        `json:"notes"`
	Lines          []InvoiceLine `json:"lines"`
	Total          float64       `json:"total"`
}

type InvoiceLine struct {
	Item        string  `json:"item"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// BuildInvoiceRequest assembles the invoice payload from a detailed report:
// one labor line, one equipment-and-materials line, job defaults filled in
// from the per-job table. The invoice number is the job number plus an
// MMDD suffix of the invoice date.
func BuildInvoiceRequest(report *billing.DetailedReport, invoiceDate string) InvoiceRequest {
	defaults := constants.JobDefaults(report.JobNumber)

	if invoiceDate == "" {
		invoiceDate = time.Now().Format("2006-01-02")
	}
	suffix := strings.ReplaceAll(invoiceDate, "-", "")
	if len(suffix) == 8 {
		suffix = suffix[4:]
	}

	return InvoiceRequest{
		InvoiceNumber:  fmt.Sprintf("%s-%s", report.JobNumber, suffix),
		InvoiceDate:    invoiceDate,
		JobNumber:      report.JobNumber,
		JobName:        defaults.JobName,
		ContractNumber: defaults.ContractNumber,
		ShipToLocation: defaults.ShipToLocation,
		BillToName:     defaults.BillToName,
		BillToAddress1: defaults.BillToAddress1,
		BillToAddress2: defaults.BillToAddress2,
		Notes:          defaults.Notes,
		Lines: []InvoiceLine{
			{Item: "1.0", Description: "TSI Labor", Amount: report.LaborTotal},
			{Item: "2.0", Description: "Equipment and Materials", Amount: report.MaterialsTotal},
		},
		Total: report.LaborTotal + report.MaterialsTotal,
	}
}
