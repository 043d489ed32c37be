package forst

// Total é o acumulador de um bucket: soma dos valores e quantidade de linhas
type Total struct {
	Sum   float64
	Count int
}

// GroupAndSum agrupa as linhas pela chave e soma os valores de cada grupo.
// Linhas cuja chave é rejeitada (ok == false) ficam de fora.
func GroupAndSum[T any, K comparable](rows []T, key func(T) (K, bool), value func(T) float64) map[K]Total {
	groups := make(map[K]Total)

	for _, row := range rows {
		k, ok := key(row)
		if !ok {
			continue
		}

		t := groups[k]
		t.Sum += value(row)
		t.Count++
		groups[k] = t
	}

	return groups
}
