package batch

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// WriteXLSX writes records to an XLSX workbook with a single sheet, using
// the same column layout as the CSV writer.
func WriteXLSX(records []Record, path string, metadata bool) error {
	columns := basicColumns
	if metadata {
		columns = metadataColumns
	}

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Categorized")
	if err != nil {
		return eris.Wrap(err, "batch: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range columns {
		header.AddCell().SetString(col)
	}

	for _, r := range records {
		row := sheet.AddRow()
		for _, v := range buildRow(r, columns) {
			row.AddCell().SetString(v)
		}
	}

	return eris.Wrapf(f.Save(path), "batch: save %s", path)
}
