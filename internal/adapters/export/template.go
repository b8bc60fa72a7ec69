package export

import (
	"fmt"
	"io"

	"github.com/mikey/lead-triage/internal/core"
	"github.com/xuri/excelize/v2"
)

// SheetTemplate is the sheet holding the sample leads
const SheetTemplate = "Leads"

var templateColumns = []string{
	core.ColumnName,
	core.ColumnEmail,
	core.ColumnPhone,
	core.ColumnCompany,
	core.ColumnRemarks,
	core.ColumnLanguage,
	core.ColumnAssignedOn,
}

var templateRows = [][]any{
	{"John Doe", "john@example.com", "60123456789", "ABC Corp", "call back next Monday for demo", "ENG", "2025-03-03"},
	{"Jane Smith", "jane@example.com", "60129876543", "XYZ Ltd", "no need", "CHI", "2025-03-03"},
}

var templateNotes = []string{
	"Column Descriptions:",
	"",
	"Remarks - Required for categorization. Free-text notes from the call",
	"Name, Email address, Phone number, Company Name - Optional contact details",
	"Language - Optional. Short code such as ENG or CHI",
	"Assigned on - Optional. Date the lead was assigned",
	"",
	"Column names are matched exactly, including case.",
}

// WriteTemplate writes a workbook showing the expected input format
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(defaultSheet, SheetTemplate); err != nil {
		return fmt.Errorf("failed to name template sheet: %w", err)
	}

	header := make([]any, len(templateColumns))
	for i, c := range templateColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetTemplate, "A1", &header); err != nil {
		return fmt.Errorf("failed to write template header: %w", err)
	}
	for i, row := range templateRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetTemplate, cell, &row); err != nil {
			return fmt.Errorf("failed to write template row: %w", err)
		}
	}

	if _, err := f.NewSheet("Instructions"); err != nil {
		return fmt.Errorf("failed to create instructions sheet: %w", err)
	}
	for i, line := range templateNotes {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue("Instructions", cell, line); err != nil {
			return fmt.Errorf("failed to write instructions: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}
