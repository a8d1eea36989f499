// Package export writes the viscosity/temperature table to spreadsheet
// files for use outside the application.
package export

import (
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ramorimdias/viscobat/src/compute"
)

// XLSXHeaders are the column titles, localized by the caller.
type XLSXHeaders struct {
	Temperature string
	Viscosity   string
}

// WriteXLSX writes the table as a one-sheet workbook to w.
func WriteXLSX(w io.Writer, table []compute.TablePoint, headers XLSXHeaders) error {
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", []interface{}{headers.Temperature, headers.Viscosity}); err != nil {
		return err
	}
	for i, p := range table {
		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err := sw.SetRow(cellAddr, []interface{}{p.Temperature, p.Viscosity}); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}

// SaveXLSX writes the table to a file path, for the CLI.
func SaveXLSX(path string, table []compute.TablePoint, headers XLSXHeaders) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteXLSX(f, table, headers); err != nil {
		return err
	}
	return f.Sync()
}
