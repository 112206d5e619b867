package source

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vdobler/plotgrid"
)

// LoadXLSX reads sheet of the Excel workbook at path. An empty sheet
// selects the first one. The first row holds the column names; a column
// is Float if every non-empty cell below it parses as a number and String
// otherwise.
func LoadXLSX(path, sheet string) (*plotgrid.DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &LoadError{Path: path, Err: errors.New("workbook has no sheets")}
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	df, err := fromCells(sheet, rows)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return df, nil
}

// fromCells builds a data frame from a header row followed by data rows.
// Rows may be ragged; missing cells are empty.
func fromCells(name string, rows [][]string) (*plotgrid.DataFrame, error) {
	df := plotgrid.NewDataFrame(name, nil)
	if len(rows) == 0 {
		return df, nil
	}
	header, body := rows[0], rows[1:]

	for c, colName := range header {
		colName = strings.TrimSpace(colName)
		if colName == "" {
			colName = "column" + strconv.Itoa(c+1)
		}
		cell := func(r int) string {
			if c < len(body[r]) {
				return strings.TrimSpace(body[r][c])
			}
			return ""
		}

		ft := plotgrid.Float
		for r := range body {
			if s := cell(r); s != "" {
				if _, err := strconv.ParseFloat(s, 64); err != nil {
					ft = plotgrid.String
					break
				}
			}
		}

		field := plotgrid.NewField(colName, len(body), ft, df.Pool)
		for r := range body {
			s := cell(r)
			if s == "" {
				continue
			}
			if ft == plotgrid.String {
				field.SetString(r, s)
			} else {
				field.Data[r] = parseNumber(s)
			}
		}
		if err := df.Add(field); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", name, err)
		}
	}
	return df, nil
}
