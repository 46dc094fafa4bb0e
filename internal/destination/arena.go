package destination

import "time"

// ExpandDuration is how long a parent takes to expand or collapse.
const ExpandDuration = 200 * time.Millisecond

// expansion animates one parent's reveal between 0 and 1.
type expansion struct {
	value  float64
	target float64
}

// arena holds one expansion per live parent, keyed by the node's structural
// key so that entries survive rebuilds of an unchanged tree.
type arena struct {
	entries     map[string]*expansion
	justSettled bool
}

func newArena() *arena {
	return &arena{entries: make(map[string]*expansion)}
}

func (a *arena) ensure(key string, expanded bool) {
	if _, ok := a.entries[key]; ok {
		return
	}
	v := 0.0
	if expanded {
		v = 1
	}
	a.entries[key] = &expansion{value: v, target: v}
}

func (a *arena) prune(live map[string]bool) {
	for key := range a.entries {
		if !live[key] {
			delete(a.entries, key)
		}
	}
}

func (a *arena) value(key string) float64 {
	if e, ok := a.entries[key]; ok {
		return e.value
	}
	return 0
}

func (a *arena) retarget(key string, expanded bool) {
	e, ok := a.entries[key]
	if !ok {
		return
	}
	e.target = 0
	if expanded {
		e.target = 1
	}
}

func (a *arena) snap(key string, expanded bool) {
	a.retarget(key, expanded)
	if e, ok := a.entries[key]; ok {
		e.value = e.target
	}
}

func (a *arena) running() bool {
	for _, e := range a.entries {
		if e.value != e.target {
			return true
		}
	}
	return false
}

func (a *arena) advance(dt time.Duration) bool {
	a.justSettled = false
	step := float64(dt) / float64(ExpandDuration)
	running := false
	for _, e := range a.entries {
		if e.value == e.target {
			continue
		}
		if e.value < e.target {
			e.value = min(e.value+step, e.target)
		} else {
			e.value = max(e.value-step, e.target)
		}
		if e.value == e.target {
			a.justSettled = true
		} else {
			running = true
		}
	}
	return running
}
