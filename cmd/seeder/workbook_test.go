// cmd/seeder/workbook_test.go
package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
)

func writeWorkbook(t *testing.T, sheets map[string][][]string) string {
	t.Helper()

	file := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := file.AddSheet(name)
		require.NoError(t, err)
		for _, values := range rows {
			row := sheet.AddRow()
			for _, v := range values {
				row.AddCell().SetString(v)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "seed.xlsx")
	require.NoError(t, file.Save(path))
	return path
}

func TestLoadWorkbook(t *testing.T) {
	t.Run("orders_tables_by_foreign_keys", func(t *testing.T) {
		path := writeWorkbook(t, map[string][][]string{
			"hewan": {
				{"id", "nama", "spesies"},
				{"5b0ab2f3-6c4e-4cb9-9d4e-0f5a3e1d2c11", "Bima", "Panthera leo"},
			},
			"Habitat": {
				{"nama", "luas_area", "kapasitas", "status"},
				{"Savana", "1250.50", "12", "Aktif"},
				{"Rawa", "300", "4", ""},
			},
		})

		tables, err := LoadWorkbook(path)
		require.NoError(t, err)
		require.Len(t, tables, 2)

		assert.Equal(t, "habitat", tables[0].Name)
		assert.Equal(t, "hewan", tables[1].Name)

		require.Len(t, tables[0].Rows, 2)
		assert.Equal(t, seedRow{"nama": "Savana", "luas_area": "1250.50", "kapasitas": "12", "status": "Aktif"}, tables[0].Rows[0])
		assert.NotContains(t, tables[0].Rows[1], "status")
	})

	t.Run("rejects_unknown_sheet", func(t *testing.T) {
		path := writeWorkbook(t, map[string][][]string{
			"gudang": {{"kode_rak"}, {"1"}},
		})

		_, err := LoadWorkbook(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not name a zoo table")
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"))
		assert.Error(t, err)
	})
}

func TestInsertStatement(t *testing.T) {
	cols := sortedColumns(seedRow{"nama": "Savana", "kapasitas": 12, "luas_area": "1.5"})
	assert.Equal(t, []string{"kapasitas", "luas_area", "nama"}, cols)

	assert.Equal(t,
		"INSERT INTO habitat (kapasitas, luas_area, nama) SELECT kapasitas, luas_area, nama FROM json_populate_record(NULL::habitat, $1::json) ON CONFLICT DO NOTHING",
		insertStatement("habitat", cols),
	)
}

func TestDemoDataset_CoversKnownTablesInOrder(t *testing.T) {
	tables := demoDataset()

	pos := make(map[string]int, len(tableOrder))
	for i, name := range tableOrder {
		pos[name] = i
	}

	last := -1
	for _, table := range tables {
		i, ok := pos[table.Name]
		require.True(t, ok, "unknown table %s", table.Name)
		assert.Greater(t, i, last, "%s is out of order", table.Name)
		assert.NotEmpty(t, table.Rows)
		last = i
	}
}
