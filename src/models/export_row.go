package models

// ExportRow is one transaction joined with its category for CSV export.
// CategoryName is nil when the join produced no category row.
type ExportRow struct {
	Date         Date
	Description  *string
	CategoryName *string
	Amount       float64
	Type         string
}
