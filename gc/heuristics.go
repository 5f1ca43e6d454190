package gc

// initialThreshold and thresholdFactor: collection is first suggested
// once 128 KiB of container storage has been allocated through the
// heap, and every subsequent cycle raises the bar by the same factor
// rather than resetting it to a fixed size.
const (
	initialThreshold = 128 * 1024
	thresholdFactor  = 1.75
)

// heuristics tracks how much container storage a Heap's allocator has
// handed out and decides when a collection cycle is due. It holds no
// lock: the owning heap is single-threaded cooperative, so the counters
// are plain fields mutated only from the owning goroutine.
type heuristics struct {
	allocated     int64
	threshold     int64
	shouldCollect bool
}

func newHeuristics() *heuristics {
	return &heuristics{threshold: initialThreshold}
}

// grow returns the next threshold, scaled by thresholdFactor from the
// current one.
func (h *heuristics) grow() int64 {
	return int64(float64(h.threshold) * thresholdFactor)
}

// adjust raises the threshold at the end of a collection cycle. The
// threshold is monotonically non-decreasing across cycles.
func (h *heuristics) adjust() {
	h.threshold = h.grow()
}

// checkCollect flips shouldCollect once allocated has caught up with
// threshold, and immediately raises the bar again so a long run of
// small allocations between collections doesn't re-trigger on every
// call.
func (h *heuristics) checkCollect() {
	if h.allocated >= h.threshold {
		h.shouldCollect = true
		h.threshold = h.grow()
	}
}

// updateAllocated applies a signed byte delta (positive for growth,
// negative for shrink/free) and re-evaluates the collection heuristic.
func (h *heuristics) updateAllocated(delta int64) {
	h.allocated += delta
	h.checkCollect()
}

// Threshold returns the current collection threshold in bytes.
func (h *heuristics) Threshold() int64 {
	return h.threshold
}

// ShouldCollect reports whether allocated has reached threshold since
// the last collection cycle. It is cleared only by Heap.Collect.
func (h *heuristics) ShouldCollect() bool {
	return h.shouldCollect
}

// clearShouldCollect is invoked at the end of a Heap.Collect cycle.
func (h *heuristics) clearShouldCollect() {
	h.shouldCollect = false
}
