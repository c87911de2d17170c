package core

import (
	"sort"

	"github.com/syncflow/syncflow/schema"
)

// RankSlots orders scored slots by confidence, highest first, and returns
// at most limit entries. The sort is stable: equal scores keep the
// generator's emission order, which is the defined deterministic
// tie-break. An empty input yields an empty result, never an error.
func RankSlots(slots []schema.ScoredSlot, limit int) []schema.ScoredSlot {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Score > slots[j].Score
	})
	if limit > 0 && len(slots) > limit {
		return slots[:limit]
	}
	return slots
}
