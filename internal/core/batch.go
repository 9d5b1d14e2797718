package core

import "sort"

// MergeJobIDs returns the sorted union of the two id lists. Re-running
// a partially failed batch creation therefore never double-records an
// id: merge(merge(a, b), b) == merge(a, b).
func MergeJobIDs(existing []int, added []int) []int {
	seen := map[int]struct{}{}
	var merged []int
	for _, list := range [][]int{existing, added} {
		for _, id := range list {
			if _, found := seen[id]; found {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}
	sort.Ints(merged)
	return merged
}
