package corekit_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"

	"github.com/lunarforge/corekit"
)

func TestSPSCCapacityIsExact(t *testing.T) {
	q := corekit.NewSPSC[int](8)
	assert.Equal(t, 8, q.Cap())
}

func TestSPSCDrainsFIFO(t *testing.T) {
	// Scenario 1: SPSC drains FIFO.
	q := corekit.NewSPSC[int](8)
	for i := 0; i < 8; i++ {
		require.NoError(t, q.Push(i))
	}
	assert.ErrorIs(t, q.Push(9), corekit.ErrWouldBlock)

	for i := 0; i < 8; i++ {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestSPSCPushPopEmptyYieldsPushed(t *testing.T) {
	// Property 9.
	q := corekit.NewSPSC[int](4)
	require.NoError(t, q.Push(42))
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestSPSCCapacity2(t *testing.T) {
	// Boundary: ring of capacity 2.
	q := corekit.NewSPSC[int](2)
	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	assert.ErrorIs(t, q.Push(3), corekit.ErrWouldBlock)

	_, err := q.Pop()
	require.NoError(t, err)
	assert.NoError(t, q.Push(3))
}

func TestSPSCPopEmptyReturnsWouldBlock(t *testing.T) {
	q := corekit.NewSPSC[int](4)
	_, err := q.Pop()
	assert.True(t, errors.Is(err, corekit.ErrWouldBlock))
	assert.True(t, corekit.IsWouldBlock(err))
}

func TestSPSCPushPopRange(t *testing.T) {
	q := corekit.NewSPSC[int](8)
	ok := q.TryPushRange([]int{1, 2, 3, 4})
	require.True(t, ok)

	out := make([]int, 4)
	ok = q.TryPopRange(out)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, out)
}

func TestSPSCTryPushRangeFailsWhenDoesNotFit(t *testing.T) {
	q := corekit.NewSPSC[int](4)
	ok := q.TryPushRange([]int{1, 2, 3, 4, 5})
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestSPSCPushRangePartialFit(t *testing.T) {
	q := corekit.NewSPSC[int](4)
	n := q.PushRange([]int{1, 2, 3, 4, 5, 6})
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, q.Len())
}

func TestSPSCPushRangeWrapsAcrossBoundary(t *testing.T) {
	q := corekit.NewSPSC[int](4)
	require.NoError(t, q.Push(0))
	require.NoError(t, q.Push(0))
	_, _ = q.Pop()
	_, _ = q.Pop()
	// tail is now offset into the ring; a subsequent range push should wrap.
	n := q.PushRange([]int{1, 2, 3, 4})
	require.Equal(t, 4, n)
	out := make([]int, 4)
	got := q.PopRange(out)
	require.Equal(t, 4, got)
	assert.Equal(t, []int{1, 2, 3, 4}, out)
}

func TestSPSCClearDrains(t *testing.T) {
	q := corekit.NewSPSC[int](8)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Push(i))
	}
	q.Clear()
	assert.Equal(t, 0, q.Len())
	_, err := q.Pop()
	assert.ErrorIs(t, err, corekit.ErrWouldBlock)
}

func TestSPSCConcurrentProducerConsumer(t *testing.T) {
	if corekit.RaceEnabled {
		t.Skip("skip: acquire/release ordering is not visible to the race detector")
	}

	const n = 100_000
	q := corekit.NewSPSC[int](256)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for i := 0; i < n; i++ {
			for q.Push(i) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	var got []int
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for len(got) < n {
			v, err := q.Pop()
			if err != nil {
				backoff.Wait()
				continue
			}
			backoff.Reset()
			got = append(got, v)
		}
	}()

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for producer/consumer to finish")
	}

	require.Len(t, got, n)
	for i := 0; i < n; i++ {
		if got[i] != i {
			t.Fatalf("FIFO violation at index %d: got %d want %d", i, got[i], i)
		}
	}
}

func TestSPSCLenApproximateAfterQuiesce(t *testing.T) {
	q := corekit.NewSPSC[int](8)
	var produced atomix.Int64
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Push(i))
		produced.Add(1)
	}
	assert.Equal(t, int(produced.Load()), q.Len())
}
