package reports_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocinacentral/ckms-api/internal/application/reports"
)

func TestBucketKey_Dia(t *testing.T) {
	ts := mustTime("2026-01-31T15:04:05Z")
	assert.Equal(t, "2026-01-31", reports.BucketKey(ts, reports.GranularityDay))
}

func TestBucketKey_Mes(t *testing.T) {
	ts := mustTime("2026-03-07T00:00:00Z")
	assert.Equal(t, "2026-03", reports.BucketKey(ts, reports.GranularityMonth))
}

// La semana empieza en domingo: cualquier día de la misma semana produce la
// clave del domingo que la inicia.
func TestBucketKey_Semana(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2026-01-04T10:00:00Z", "2026-01-04"}, // domingo → él mismo
		{"2026-01-05T10:00:00Z", "2026-01-04"}, // lunes
		{"2026-01-10T23:59:59Z", "2026-01-04"}, // sábado
		{"2026-01-11T00:00:00Z", "2026-01-11"}, // domingo siguiente
		{"2026-01-01T12:00:00Z", "2025-12-28"}, // semana que cruza el año
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, reports.BucketKey(mustTime(tc.input), reports.GranularityWeek), "input %s", tc.input)
	}
}

func TestBucketKey_TimeCeroProduceClaveVacia(t *testing.T) {
	for _, g := range []reports.Granularity{reports.GranularityDay, reports.GranularityWeek, reports.GranularityMonth} {
		assert.Empty(t, reports.BucketKey(time.Time{}, g))
	}
}

// Entradas cronológicamente crecientes producen claves lexicográficamente no
// decrecientes, para cualquier granularidad.
func TestBucketKey_OrdenLexicograficoIgualCronologico(t *testing.T) {
	inputs := []time.Time{
		mustTime("2025-11-30T00:00:00Z"),
		mustTime("2025-12-15T08:00:00Z"),
		mustTime("2026-01-01T00:00:00Z"),
		mustTime("2026-01-04T12:00:00Z"),
		mustTime("2026-02-28T23:00:00Z"),
		mustTime("2026-10-05T01:00:00Z"),
	}
	for _, g := range []reports.Granularity{reports.GranularityDay, reports.GranularityWeek, reports.GranularityMonth} {
		keys := make([]string, 0, len(inputs))
		for _, ts := range inputs {
			keys = append(keys, reports.BucketKey(ts, g))
		}
		assert.True(t, sort.StringsAreSorted(keys), "granularidad %s: claves %v", g, keys)
	}
}

func TestParseGranularity(t *testing.T) {
	g, err := reports.ParseGranularity("")
	require.NoError(t, err)
	assert.Equal(t, reports.GranularityDay, g, "vacío equivale a day")

	for _, valid := range []string{"day", "week", "month"} {
		g, err := reports.ParseGranularity(valid)
		require.NoError(t, err)
		assert.Equal(t, reports.Granularity(valid), g)
	}

	_, err = reports.ParseGranularity("year")
	assert.Error(t, err)
}
