package claims

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"Claim Name", "NEMSAS ID", "Patient Name", "Patient Number", "Phone Number",
	"Service Type", "Status", "Total Amount", "Created Date",
}

func exportRow(c *Claim) []string {
	nemsasID := ""
	if c.NEMSASID != nil {
		nemsasID = *c.NEMSASID
	}
	return []string{
		c.ClaimName,
		nemsasID,
		c.PatientName,
		c.PatientNumber,
		c.PhoneNumber,
		c.ServiceType,
		c.Status,
		strconv.FormatFloat(c.TotalAmount, 'f', 2, 64),
		c.CreatedDate.Format("2006-01-02"),
	}
}

// WriteCSV writes the claims report in CSV form.
func WriteCSV(w io.Writer, items []*Claim) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, c := range items {
		if err := cw.Write(exportRow(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteExcel writes the claims report as an xlsx workbook with a single
// Claims sheet.
func WriteExcel(w io.Writer, items []*Claim) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Claims"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}
	for row, c := range items {
		for col, value := range exportRow(c) {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
