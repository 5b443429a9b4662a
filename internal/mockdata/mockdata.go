// Package mockdata produces the placeholder timetable and dashboard payloads.
// Both generators sit behind interfaces so real scheduling or analytics can replace them.
package mockdata

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"gradescan/internal/model"
)

type TimetableGenerator interface {
	Generate(ctx context.Context) (*model.Timetable, error)
}

type DashboardGenerator interface {
	Generate(ctx context.Context) (*model.Dashboard, error)
}

// lockedRand serialises access to a *rand.Rand shared across requests.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(src rand.Source) *lockedRand {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1|1)
	}
	return &lockedRand{rng: rand.New(src)}
}

// between returns a uniform int in [lo, hi].
func (r *lockedRand) between(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rng.IntN(hi-lo+1)
}

func (r *lockedRand) pick(items []string) string {
	return items[r.between(0, len(items)-1)]
}

// sample returns k distinct items in random order.
func (r *lockedRand) sample(items []string, k int) []string {
	cp := append([]string(nil), items...)
	r.mu.Lock()
	r.rng.Shuffle(len(cp), func(i, j int) { cp[i], cp[j] = cp[j], cp[i] })
	r.mu.Unlock()
	if k > len(cp) {
		k = len(cp)
	}
	return cp[:k]
}

func (r *lockedRand) shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rng.Shuffle(n, swap)
}
