package transfer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/at-ishikawa/wordbook/internal/apperror"
)

// SheetName is the worksheet written by exports and preferred by imports.
const SheetName = "Words"

// xlsxCodec uses the same columns as csvCodec on a single worksheet.
type xlsxCodec struct{}

func (xlsxCodec) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (xlsxCodec) Filename(name string) string { return filename(name, "words", "xlsx") }

func (xlsxCodec) Encode(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SheetName)
	if err := setRow(f, 1, Header()); err != nil {
		return nil, err
	}
	for i, wd := range words(doc) {
		if err := setRow(f, i+2, Flatten(wd.Fields())); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name of row %d: %w", row, err)
	}
	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("write xlsx row %d: %w", row, err)
	}
	return nil
}

func (xlsxCodec) Decode(data []byte) ([]Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperror.Validation("Invalid XLSX format: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperror.Validation("Invalid XLSX format: workbook has no sheets")
	}
	sheet := sheets[0]
	for _, name := range sheets {
		if name == SheetName {
			sheet = name
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperror.Validation("Invalid XLSX format: %v", err)
	}
	if len(rows) == 0 {
		return nil, apperror.Validation("Missing required columns: word, definition")
	}
	t, err := newTable(rows[0])
	if err != nil {
		return nil, err
	}

	var records []Record
	for i, cells := range rows[1:] {
		if len(cells) == 0 {
			continue
		}
		records = append(records, t.record(i+2, cells))
	}
	return records, nil
}
