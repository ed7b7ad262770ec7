package passcode

// Highlight tracks the most recently pressed key. Each press bumps a
// generation; only the clear scheduled by the latest press takes effect.
type Highlight struct {
	key    Key
	active bool
	gen    uint64
}

// Press highlights k and returns the generation to hand back to Expire.
func (h *Highlight) Press(k Key) uint64 {
	h.gen++
	h.key = k
	h.active = true
	return h.gen
}

// Expire clears the highlight if gen is still the latest press and reports
// whether it did.
func (h *Highlight) Expire(gen uint64) bool {
	if gen != h.gen || !h.active {
		return false
	}
	h.active = false
	h.key = ""
	return true
}

// Active returns the highlighted key, if any.
func (h *Highlight) Active() (Key, bool) {
	return h.key, h.active
}
