package space

import (
	"time"

	"github.com/StevenRydell/littlespace/internal/core"
)

// Throttle lets an expensive check run at most once per interval of
// accumulated frame time.
type Throttle struct {
	Interval time.Duration
	acc      time.Duration
}

// Tick adds dt and reports whether the check is due. The accumulator resets
// to zero when it fires.
func (t *Throttle) Tick(dt time.Duration) bool {
	t.acc += dt
	if t.acc < t.Interval {
		return false
	}
	t.acc = 0
	return true
}

// Reset clears the accumulator.
func (t *Throttle) Reset() {
	t.acc = 0
}

// hits pairs projectiles with the first thing each one hits.
// Only the first shotLimit projectiles and first targetLimit targets are
// checked (a negative limit checks all). Projectiles marked in skip are
// ignored. With exclusive set a target can absorb only one projectile.
func hits[T any](shots []Projectile, skip []bool, shotLimit int, targets []T, targetLimit int, exclusive bool, hit func(T, core.Vec2) bool) (shotHit, targetHit []bool) {
	shotHit = make([]bool, len(shots))
	targetHit = make([]bool, len(targets))

	ns := len(shots)
	if shotLimit >= 0 && shotLimit < ns {
		ns = shotLimit
	}
	nt := len(targets)
	if targetLimit >= 0 && targetLimit < nt {
		nt = targetLimit
	}

	for i := 0; i < ns; i++ {
		if skip != nil && skip[i] {
			continue
		}
		for j := 0; j < nt; j++ {
			if exclusive && targetHit[j] {
				continue
			}
			if hit(targets[j], shots[i].Pos) {
				shotHit[i] = true
				targetHit[j] = true
				break
			}
		}
	}
	return shotHit, targetHit
}

// removeMarked deletes every element whose mark is set, walking from the
// back so earlier indices stay valid, and returns the shortened slice and
// how many were removed.
func removeMarked[T any](items []T, marks ...[]bool) ([]T, int) {
	removed := 0
	for i := len(items) - 1; i >= 0; i-- {
		if !anyMarked(i, marks) {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		removed++
	}
	return items, removed
}

func anyMarked(i int, marks [][]bool) bool {
	for _, m := range marks {
		if i < len(m) && m[i] {
			return true
		}
	}
	return false
}

func hitTarget(t Target, p core.Vec2) bool {
	return t.Hit(p)
}

func hitShip(e *Enemy, p core.Vec2) bool {
	return e.Pos.Dist(p) <= e.Size
}
