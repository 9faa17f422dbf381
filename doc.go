// Package corekit provides core collection types and concurrency primitives:
// growable vectors with three storage backends, a sorted overlay, an opaque
// callable holder, a multicast dispatcher, bounded SPSC and MPMC ring
// queues, a page-pooled staging queue, and a striped-lock concurrent table.
//
// # Quick Start
//
// Containers:
//
//	var v corekit.Vector[int]
//	v.Push(1)
//	v.Push(2)
//
//	fv := corekit.NewFlatVector[Event](16)
//	sv := corekit.NewSmallVector[Event, [4]Event]() // 4 inline, spills to heap
//
// Sorted overlay:
//
//	s := corekit.NewSortedVector[int](func(a, b int) bool { return a < b })
//	s.Push(3)
//	s.Push(1)
//	s.Push(2) // s.Slice() == [1 2 3]
//
// Queues:
//
//	q := corekit.NewSPSC[Event](1024)
//	q := corekit.NewMPMC[*Request](4096)
//
// Builder API auto-selects the ring algorithm based on constraints:
//
//	q := corekit.Build[Event](corekit.New(1024).SingleProducer().SingleConsumer()) // → SPSC
//	q := corekit.Build[Event](corekit.New(1024))                                   // → MPMC
//
// # Basic Usage
//
// SPSC and MPMC share the same non-blocking Push/Pop interface:
//
//	q := corekit.NewMPMC[int](1024)
//
//	err := q.Push(42)
//	if corekit.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	elem, err := q.Pop()
//	if corekit.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # Common Patterns
//
// Pipeline Stage (SPSC):
//
//	// Stage 1 → Queue → Stage 2
//	q := corekit.NewSPSC[Data](1024)
//
//	go func() { // Producer (Stage 1)
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for q.Push(data) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer (Stage 2)
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := q.Pop()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// Worker Pool (MPMC):
//
//	// Multiple submitters → Multiple workers
//	q := corekit.NewMPMC[Job](4096)
//
//	for range numWorkers {
//	    go func() {
//	        for {
//	            job, err := q.Pop()
//	            if err == nil {
//	                job.Run()
//	            }
//	        }
//	    }()
//	}
//
//	func Submit(j Job) error {
//	    return q.Push(j)
//	}
//
// Fan-out notification (Dispatcher):
//
//	var d corekit.Dispatcher[Event, error]
//	d.AddFree(logHandler)
//	corekit.AddMember(&d, metrics, (*Metrics).Observe)
//	d.DispatchWithCallback(ev, func(err error) {
//	    if err != nil {
//	        log.Print(err)
//	    }
//	})
//
// # Container Backends
//
// Three backends trade inline storage against indirection, matching the
// storage/move-cost tradeoffs of value-type collections:
//
//	Vector[T]               - slice-backed, grows geometrically
//	FlatVector[T]            - single pointer to a heap header; cheap to move
//	SmallVector[T, Buf]      - inline array (sized by Buf) until it overflows
//
// All three share the same Push/Pop/Insert/Erase/Find/Resize/Reserve
// operations through an unexported shared core; choose the backend for its
// storage characteristics, not its API.
//
// # Sorted Overlay
//
// Sorted[T, B] keeps any of the three backends in ascending order as
// elements are pushed, trading O(n) insertion for O(log n) lookup via
// binary search:
//
//	s := corekit.NewSortedVector[int](func(a, b int) bool { return a < b })
//	s.Push(5)
//	s.Push(1)
//	idx, found := s.Search(5)
//
// # Error Handling
//
// Queues return [ErrWouldBlock] when operations cannot proceed. This error
// is sourced from [code.hybscloud.com/iox] for ecosystem consistency.
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Push(item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !corekit.IsWouldBlock(err) {
//	        return err // Unexpected error
//	    }
//	    backoff.Wait()
//	}
//
// For semantic error classification (delegates to iox):
//
//	corekit.IsWouldBlock(err)  // true if queue full/empty
//	corekit.IsSemantic(err)    // true if control flow signal
//	corekit.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Container preconditions (out-of-range index, Pop on an empty container,
// and so on) are
// programmer errors and panic rather than returning an error, matching the
// teacher package's convention that only blocking/non-blocking queue state
// is modeled as a control-flow error.
//
// # Capacity and Length
//
// MPMC capacity rounds up to the next power of 2. SPSC honors the
// requested usable capacity exactly; one extra physical slot is allocated
// internally to distinguish full from empty, but it is never user-visible:
//
//	q := corekit.NewMPMC[int](3)     // Actual capacity: 4
//	q := corekit.NewMPMC[int](1000)  // Actual capacity: 1024
//	q := corekit.NewSPSC[int](8)     // Cap(): 8 (9 physical slots)
//
// Queue length is intentionally approximate (Len) rather than exact,
// because accurate counts in lock-free algorithms require expensive
// cross-core synchronization.
//
// # Thread Safety
//
//   - SPSC: one producer goroutine, one consumer goroutine
//   - MPMC: any number of producer and consumer goroutines
//   - SafeQueue: any number of producer and consumer handles
//   - SafeAccessTable: concurrent access to distinct keys does not serialize
//   - Vector/FlatVector/SmallVector/Sorted/Dispatcher: not safe for
//     concurrent use; callers must synchronize externally
//
// Violating the SPSC access pattern (e.g. multiple producers) causes
// undefined behavior including data corruption and races.
//
// # Graceful Shutdown
//
// MPMC and SafeQueue implement the [Drainer] interface:
//
//	prodWg.Wait() // Producer goroutines finish
//
//	if d, ok := any(q).(corekit.Drainer); ok {
//	    d.Drain()
//	}
//
// SPSC does not implement [Drainer] as it has no threshold mechanism; the
// type assertion naturally handles this case.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established purely through atomic acquire-release orderings. MPMC and
// SPSC use per-cell/per-index sequence numbers with acquire-release
// semantics to protect non-atomic data fields; these algorithms are
// correct, but race-detector-incompatible stress tests skip themselves when
// [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, and [code.hybscloud.com/spin] for CPU pause instructions during
// CAS retry loops.
package corekit
