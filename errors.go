package corekit

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For SPSC/MPMC Push: the ring is full (backpressure).
// For SPSC/MPMC Pop: the ring is empty (no data available).
//
// SafeQueue and SafeAccessTable use the same signal through a different
// shape: [SafeQueue.AcquireConsumer] returns a nil handle instead of this
// error (no item type to wrap a zero value around), and a missing key from
// [SafeAccessTable.Find] likewise returns nil rather than ErrWouldBlock --
// both are "try again, nothing is wrong" outcomes, not failures.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry the operation later (with backoff or yield) rather than propagating
// the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := ring.Push(item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if corekit.IsWouldBlock(err) {
//	        backoff.Wait()  // Adaptive backpressure
//	        continue
//	    }
//	    return err  // Unexpected error
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
//
// Container methods (Vector, FlatVector, SmallVector, Sorted, Dispatcher)
// never return this error; an out-of-range index or unbound callable is a
// programmer error and panics instead, since a container has no concept of
// "try again later."
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
