package reports

import (
	"sort"
	"time"
)

// GroupByDate agrupa filas arbitrarias en buckets temporales y reduce cada
// bucket a un punto de serie.
//
// Contrato:
//   - dateOf extrae la fecha de la fila; un time cero produce clave vacía y la
//     fila se descarta en silencio (política de degradación leniente: una fila
//     sin fecha no tumba el reporte completo).
//   - Dentro de cada bucket se preserva el orden de llegada de las filas.
//   - La salida tiene una entrada por clave distinta, ordenada ascendente por
//     la clave string (equivale a orden cronológico por el formato de BucketKey).
//   - reduce recibe la clave y todas las filas del bucket; su forma de salida
//     no está restringida.
func GroupByDate[R any, S any](
	rows []R,
	g Granularity,
	dateOf func(R) time.Time,
	reduce func(key string, group []R) S,
) []S {
	buckets := make(map[string][]R)
	for _, r := range rows {
		key := BucketKey(dateOf(r), g)
		if key == "" {
			continue
		}
		buckets[key] = append(buckets[key], r)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]S, 0, len(keys))
	for _, k := range keys {
		series = append(series, reduce(k, buckets[k]))
	}
	return series
}
