package panelutil

import "sort"

// TopNScores keeps the n highest-scoring symbols from a score map.
// Ties beyond position n are dropped in sort order.
func TopNScores(scoresBySymbol map[string]float64, n int) map[string]float64 {
	var keyValuePairs []struct {
		Key   string
		Value float64
	}

	for key, value := range scoresBySymbol {
		keyValuePairs = append(keyValuePairs, struct {
			Key   string
			Value float64
		}{key, value})
	}

	sort.Slice(keyValuePairs, func(i, j int) bool {
		if keyValuePairs[i].Value == keyValuePairs[j].Value {
			return keyValuePairs[i].Key < keyValuePairs[j].Key
		}
		return keyValuePairs[i].Value > keyValuePairs[j].Value
	})

	if len(keyValuePairs) > n {
		keyValuePairs = keyValuePairs[:n]
	}

	topNMap := make(map[string]float64)
	for _, kv := range keyValuePairs {
		topNMap[kv.Key] = kv.Value
	}

	return topNMap
}

// TopNByDate applies TopNScores independently to each date's scores.
func TopNByDate(scores map[string]map[string]float64, n int) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(scores))
	for date, bySymbol := range scores {
		out[date] = TopNScores(bySymbol, n)
	}
	return out
}
