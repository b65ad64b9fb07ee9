package constants

// InvoiceDefaults is the bill-to block auto-populated on an invoice for a
// known job number.
type InvoiceDefaults struct {
	JobName        string `json:"job_name"`
	ContractNumber string `json:"contract_number"`
	ShipToLocation string `json:"ship_to_location"`
	BillToName     string `json:"bill_to_name"`
	BillToAddress1 string `json:"bill_to_address1"`
	BillToAddress2 string `json:"bill_to_address2"`
	Notes          string `json:"notes"`
}

var jobInvoiceDefaults = map[string]InvoiceDefaults{
	"2507": {
		JobName:        "PNSY DD #2 Stairwells T&M",
		ContractNumber: "Contract #2083-S-018",
		ShipToLocation: "Portsmouth Naval Shipyard, Kittery Maine",
		BillToName:     "Cianbro Corporation",
		BillToAddress1: "60 Cassidy Drive",
		BillToAddress2: "Portland, ME 04102",
		Notes:          "Subcontract 312550016 - T&M Work on Fuel Building Fireproofing",
	},
	"2317": {
		JobName:        "Project 2317",
		ShipToLocation: "Newport, RI",
		BillToName:     "Reagan Marine Construction LLC",
		BillToAddress1: "221 Third St, 5th Floor Suite 513",
		BillToAddress2: "Newport, RI 02840",
	},
}

// JobDefaults returns the invoice defaults for a job number, or a generic
// block when the job is not configured.
func JobDefaults(jobNumber string) InvoiceDefaults {
	if d, ok := jobInvoiceDefaults[jobNumber]; ok {
		return d
	}
	return InvoiceDefaults{JobName: "Job " + jobNumber}
}
