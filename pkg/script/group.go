package script

// GroupIndices partitions scripts into display buckets and returns indices
// into scripts. Buckets, in order: typed with shortcut, typed without,
// Other with shortcut, Other without. Empty buckets are omitted and
// discovery order is kept inside each bucket.
func GroupIndices(scripts []Script) [][]int {
	var buckets [4][]int
	for i, s := range scripts {
		b := 0
		if s.Phase() == PhaseOther {
			b = 2
		}
		if !s.HasShortcut() {
			b++
		}
		buckets[b] = append(buckets[b], i)
	}

	groups := make([][]int, 0, len(buckets))
	for _, b := range buckets {
		if len(b) > 0 {
			groups = append(groups, b)
		}
	}
	return groups
}

// Group is GroupIndices resolved to script values.
func Group(scripts []Script) [][]Script {
	idx := GroupIndices(scripts)
	groups := make([][]Script, len(idx))
	for g, bucket := range idx {
		groups[g] = make([]Script, len(bucket))
		for j, i := range bucket {
			groups[g][j] = scripts[i]
		}
	}
	return groups
}
