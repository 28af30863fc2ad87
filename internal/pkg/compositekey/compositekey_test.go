package compositekey_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/sizopi-be/internal/pkg/compositekey"
)

var feedingShape = compositekey.Shape{
	{Column: "id_hewan", Kind: compositekey.KindUUID},
	{Column: "jadwal", Kind: compositekey.KindTimestamp},
}

var examShape = compositekey.Shape{
	{Column: "id_hewan", Kind: compositekey.KindUUID},
	{Column: "tgl_pemeriksaan_selanjutnya", Kind: compositekey.KindDate},
}

func TestShape_Normalize_DateForms(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name  string
		shape compositekey.Shape
		a, b  any
	}{
		{
			name:  "date_only_matches_midnight_timestamp",
			shape: feedingShape,
			a:     "2025-06-01",
			b:     "2025-06-01T00:00:00",
		},
		{
			name:  "space_separated_matches_t_separated",
			shape: feedingShape,
			a:     "2025-06-01 08:30:00",
			b:     "2025-06-01T08:30:00",
		},
		{
			name:  "rfc3339_zulu_matches_naive",
			shape: feedingShape,
			a:     "2025-06-01T08:30:00Z",
			b:     "2025-06-01T08:30:00",
		},
		{
			name:  "date_part_truncates_time",
			shape: examShape,
			a:     "2025-06-01T17:45:00",
			b:     "2025-06-01",
		},
		{
			name:  "time_value_matches_string",
			shape: examShape,
			a:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			b:     "2025-06-01",
		},
		{
			name:  "date_part_reads_day_in_written_offset",
			shape: examShape,
			a:     "2025-06-01T00:00:00+07:00",
			b:     "2025-06-01",
		},
		{
			name:  "date_part_reads_day_in_time_value_zone",
			shape: examShape,
			a:     time.Date(2025, 6, 1, 0, 30, 0, 0, time.FixedZone("WIB", 7*60*60)),
			b:     "2025-06-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka, err := tt.shape.Normalize(id.String(), tt.a)
			require.NoError(t, err)
			kb, err := tt.shape.Normalize(id, tt.b)
			require.NoError(t, err)

			assert.True(t, ka.Equal(kb), "%s != %s", ka, kb)
		})
	}
}

func TestShape_Normalize_Idempotent(t *testing.T) {
	id := uuid.New()

	first, err := examShape.Normalize(id, "2025-06-01T10:00:00")
	require.NoError(t, err)

	again, err := examShape.Normalize(first.Values()...)
	require.NoError(t, err)

	assert.Equal(t, first.Values(), again.Values())
}

func TestShape_Normalize_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  []any
	}{
		{name: "wrong_arity", raw: []any{uuid.New().String()}},
		{name: "bad_uuid", raw: []any{"not-a-uuid", "2025-06-01"}},
		{name: "nil_uuid", raw: []any{uuid.Nil, "2025-06-01"}},
		{name: "bad_date", raw: []any{uuid.New().String(), "01/06/2025"}},
		{name: "unsupported_type", raw: []any{uuid.New().String(), 3.14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := feedingShape.Normalize(tt.raw...)
			assert.Error(t, err)
		})
	}
}

func TestKey_Map(t *testing.T) {
	id := uuid.New()

	key, err := examShape.Normalize(id.String(), "2025-06-01")
	require.NoError(t, err)

	m := key.Map()
	assert.Equal(t, id, m["id_hewan"])
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), m["tgl_pemeriksaan_selanjutnya"])
	assert.Equal(t, []string{"id_hewan", "tgl_pemeriksaan_selanjutnya"}, examShape.Columns())
	assert.Equal(t, id.String()+"/2025-06-01", key.String())
}

func TestParseTime(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)

	got, err := compositekey.ParseTime(time.Date(2025, 6, 1, 7, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = compositekey.ParseTime(time.Time{})
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want time.Time
	}{
		{name: "date_only", raw: "2020-05-01", want: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "jakarta_midnight_stays_same_day", raw: "2025-06-01T00:00:00+07:00", want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "late_utc_stays_same_day", raw: "2025-06-01T23:30:00Z", want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "space_separated", raw: "2025-06-01 08:00:00", want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compositekey.ParseDate(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := compositekey.ParseDate("01/06/2025")
	assert.Error(t, err)
}
