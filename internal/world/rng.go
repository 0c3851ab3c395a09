package world

// worldRNG is a small xorshift generator. Object placement must not
// depend on math/rand internals, so regenerated chunks stay identical
// across runs and Go releases.
type worldRNG struct {
	state uint64
}

func newWorldRNG(seed uint32) *worldRNG {
	state := uint64(seed)
	if state == 0 {
		state = 0x9e3779b97f4a7c15
	}
	return &worldRNG{state: state}
}

func (r *worldRNG) next() uint64 {
	r.state ^= r.state << 7
	r.state ^= r.state >> 9
	r.state ^= r.state << 8
	return r.state
}

// Float64 returns a uniform value in [0, 1).
func (r *worldRNG) Float64() float64 {
	return float64(r.next()>>11) / float64(1<<53)
}
