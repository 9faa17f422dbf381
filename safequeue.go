package corekit

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// pageState is a SafeQueue page's lifecycle state.
type pageState = int32

const (
	pageEmpty pageState = iota
	pageAvailable
	pageInUse
)

// safeQueuePage is one owned page: a growable slice of T plus an atomic
// state. Producers and consumers acquire exclusive, temporary ownership of
// a page by CAS-ing its state to InUse.
type safeQueuePage[T any] struct {
	data  []T
	state atomix.Int32
}

// SafeQueue is a page-pool staging queue for workloads where producers and
// consumers burst-fill and burst-drain contiguous regions rather than
// individual items. A reader/writer lock protects the page-list topology
// (growth, clearing); per-page state transitions are atomic CAS, so
// acquiring an existing page never blocks on the topology lock beyond a
// shared read.
type SafeQueue[T any] struct {
	mu       sync.RWMutex
	pages    []*safeQueuePage[T]
	pageSize int
	draining atomix.Bool
}

// NewSafeQueue creates an empty SafeQueue. pageSize is the initial capacity
// reserved for each page as it is created; it is a hint, not a limit.
func NewSafeQueue[T any](pageSize int) *SafeQueue[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &SafeQueue[T]{pageSize: pageSize}
}

// Drain signals that no more producers will acquire pages. It only sets an
// internal flag that no SafeQueue method reads or reports: acquiring and
// releasing pages behaves the same before and after Drain, since SafeQueue
// has no threshold mechanism to bypass (unlike the FAA-based ring queues in
// the teacher's original design).
func (q *SafeQueue[T]) Drain() {
	q.draining.StoreRelease(true)
}

// AcquireProducer finds an Empty or Available page and claims it for
// exclusive producer use, allocating a new page if none is claimable. The
// returned handle must be released via [SafeQueueProducer.Release].
func (q *SafeQueue[T]) AcquireProducer() *SafeQueueProducer[T] {
	if p := q.acquireExisting(pageEmpty, pageInUse); p != nil {
		return &SafeQueueProducer[T]{page: p}
	}
	if p := q.acquireExisting(pageAvailable, pageInUse); p != nil {
		return &SafeQueueProducer[T]{page: p}
	}
	return &SafeQueueProducer[T]{page: q.addPage()}
}

// AcquireConsumer finds an Available page and claims it for exclusive
// consumer use. Returns nil if no page is currently Available -- unlike
// the producer side, the consumer never allocates.
func (q *SafeQueue[T]) AcquireConsumer() *SafeQueueConsumer[T] {
	if p := q.acquireExisting(pageAvailable, pageInUse); p != nil {
		return &SafeQueueConsumer[T]{page: p}
	}
	return nil
}

// acquireExisting scans the page list under the topology read lock and
// CASes the first page found in `from` state to `to`.
func (q *SafeQueue[T]) acquireExisting(from, to pageState) *safeQueuePage[T] {
	q.mu.RLock()
	defer q.mu.RUnlock()
	for _, p := range q.pages {
		if p.state.CompareAndSwapAcqRel(from, to) {
			return p
		}
	}
	return nil
}

// addPage allocates a new InUse page under the topology write lock.
func (q *SafeQueue[T]) addPage() *safeQueuePage[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	p := &safeQueuePage[T]{data: make([]T, 0, q.pageSize)}
	p.state.StoreRelaxed(pageInUse)
	q.pages = append(q.pages, p)
	return p
}

// Clear empties every page and marks it Empty. Requires exclusive access
// (no producer/consumer handles outstanding).
func (q *SafeQueue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	for _, p := range q.pages {
		for i := range p.data {
			p.data[i] = zero
		}
		p.data = p.data[:0]
		p.state.StoreRelease(pageEmpty)
	}
}

// ReleaseAllMemory clears the queue and drops every page, freeing their
// backing storage. Requires exclusive access.
func (q *SafeQueue[T]) ReleaseAllMemory() {
	q.Clear()
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pages = nil
}

// PageCount returns the current number of pages, including Empty ones.
// Requires only a topology read lock; the result may be stale the instant
// it is observed under concurrent page creation.
func (q *SafeQueue[T]) PageCount() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.pages)
}

// SafeQueueProducer owns one InUse page for direct mutation of its element
// slice. Exactly one producer or consumer handle may own a given page at a
// time.
type SafeQueueProducer[T any] struct {
	page *safeQueuePage[T]
}

// Data exposes the page's element slice for direct append/mutation.
func (p *SafeQueueProducer[T]) Data() *[]T { return &p.page.data }

// Release transitions the page to Available if it holds data, or back to
// Empty if the producer left it empty.
func (p *SafeQueueProducer[T]) Release() {
	if len(p.page.data) == 0 {
		p.page.state.StoreRelease(pageEmpty)
	} else {
		p.page.state.StoreRelease(pageAvailable)
	}
	p.page = nil
}

// SafeQueueConsumer owns one InUse page for direct draining of its element
// slice.
type SafeQueueConsumer[T any] struct {
	page *safeQueuePage[T]
}

// Data exposes the page's element slice for direct draining.
func (c *SafeQueueConsumer[T]) Data() []T { return c.page.data }

// Release clears the page and transitions it to Empty.
func (c *SafeQueueConsumer[T]) Release() {
	var zero T
	for i := range c.page.data {
		c.page.data[i] = zero
	}
	c.page.data = c.page.data[:0]
	c.page.state.StoreRelease(pageEmpty)
	c.page = nil
}

// ReleaseNoClear transitions the page without clearing it, preserving
// whatever the consumer left behind: Available if non-empty, Empty
// otherwise.
func (c *SafeQueueConsumer[T]) ReleaseNoClear() {
	if len(c.page.data) == 0 {
		c.page.state.StoreRelease(pageEmpty)
	} else {
		c.page.state.StoreRelease(pageAvailable)
	}
	c.page = nil
}
