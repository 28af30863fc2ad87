// cmd/seeder/workbook.go
package main

import (
	"fmt"
	"strings"

	"github.com/tealeg/xlsx/v3"
)

// LoadWorkbook reads seed rows from an xlsx file. Each sheet is named after
// a table, its first row holds column names and empty cells become NULL.
// Sheets for unknown tables are rejected; tables come back in insert order.
func LoadWorkbook(path string) ([]seedTable, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	byName := make(map[string]seedTable)
	for _, sheet := range file.Sheets {
		name := strings.ToLower(strings.TrimSpace(sheet.Name))
		if !knownTable(name) {
			return nil, fmt.Errorf("sheet %q does not name a zoo table", sheet.Name)
		}

		rows, err := readSheet(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet.Name, err)
		}
		byName[name] = seedTable{Name: name, Rows: rows}
	}

	tables := make([]seedTable, 0, len(byName))
	for _, name := range tableOrder {
		if t, ok := byName[name]; ok {
			tables = append(tables, t)
		}
	}
	return tables, nil
}

func readSheet(sheet *xlsx.Sheet) ([]seedRow, error) {
	var (
		header []string
		rows   []seedRow
	)

	err := sheet.ForEachRow(func(r *xlsx.Row) error {
		get := func(i int) string {
			c := r.GetCell(i)
			if c == nil {
				return ""
			}
			if s, err := c.FormattedValue(); err == nil {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(c.String())
		}

		if header == nil {
			for i := 0; i < sheet.MaxCol; i++ {
				col := get(i)
				if col == "" {
					break
				}
				header = append(header, strings.ToLower(col))
			}
			if len(header) == 0 {
				return fmt.Errorf("header row is empty")
			}
			return nil
		}

		row := make(seedRow, len(header))
		for i, col := range header {
			if v := get(i); v != "" {
				row[col] = v
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func knownTable(name string) bool {
	for _, t := range tableOrder {
		if t == name {
			return true
		}
	}
	return false
}
