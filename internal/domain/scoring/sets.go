package scoring

import "strings"

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}

func toLowerSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[strings.ToLower(it)] = struct{}{}
	}
	return out
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

func unionSize(a, b map[string]struct{}) int {
	return len(a) + len(b) - intersectionSize(a, b)
}

// jaccard is |a∩b| / |a∪b|, defined as 0 when both sets are empty.
func jaccard(a, b map[string]struct{}) float64 {
	u := unionSize(a, b)
	if u == 0 {
		return 0
	}
	return float64(intersectionSize(a, b)) / float64(u)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
