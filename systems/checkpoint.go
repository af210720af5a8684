package systems

import (
	"github.com/automoto/racetrack/components"
	"github.com/automoto/racetrack/tags"
	"github.com/samber/lo"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CheckpointIndex resolves a collision object to the index of the checkpoint
// it belongs to.
func CheckpointIndex(obj *resolv.Object) (int, bool) {
	if obj == nil || !obj.HasTags(tags.ResolvCheckpoint) {
		return 0, false
	}

	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() || !entry.HasComponent(components.Checkpoint) {
		return 0, false
	}

	return components.Checkpoint.Get(entry).Index, true
}

// CheckpointsTouching returns the indices of every checkpoint obj overlaps.
// obj must already be registered with the track's space.
func CheckpointsTouching(obj *resolv.Object) []int {
	check := obj.Check(0, 0, tags.ResolvCheckpoint)
	if check == nil {
		return nil
	}

	return lo.FilterMap(check.ObjectsByTags(tags.ResolvCheckpoint), func(o *resolv.Object, _ int) (int, bool) {
		return CheckpointIndex(o)
	})
}
