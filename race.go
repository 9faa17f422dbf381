//go:build race

package corekit

// RaceEnabled reports whether the binary was built with -race.
//
// The SPSC/MPMC stress tests rely on acquire/release orderings that the
// race detector's happens-before model doesn't fully capture across
// independent atomic counters, producing false positives; tests check this
// flag to skip those cases under -race rather than disable them outright.
const RaceEnabled = true
