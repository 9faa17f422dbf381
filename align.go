package corekit

// growCapacity computes the next container capacity for a buffer currently
// at oldCap that must hold at least minCap elements: oldCap plus whichever
// is larger of oldCap or minCap, so capacity at least doubles and never
// grows by less than the caller actually needs.
func growCapacity(oldCap, minCap int) int {
	want := oldCap
	if minCap > want {
		want = minCap
	}
	return oldCap + want
}
