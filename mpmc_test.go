package corekit_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"

	"github.com/lunarforge/corekit"
)

func TestMPMCCapacityRoundsUpToPowerOfTwo(t *testing.T) {
	q := corekit.NewMPMC[int](3)
	assert.Equal(t, 4, q.Cap())
}

func TestMPMCPanicsOnCapacityBelowTwo(t *testing.T) {
	assert.Panics(t, func() { corekit.NewMPMC[int](1) })
}

func TestMPMCCapacity2TwoPushesSucceed(t *testing.T) {
	// Boundary: MPMC ring of capacity 2.
	q := corekit.NewMPMC[int](2)
	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	assert.ErrorIs(t, q.Push(3), corekit.ErrWouldBlock)
}

func TestMPMCPushPopEmptyYieldsPushed(t *testing.T) {
	q := corekit.NewMPMC[int](4)
	require.NoError(t, q.Push(7))
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestMPMCFullAndEmptyDetection(t *testing.T) {
	q := corekit.NewMPMC[int](4)
	for i := 0; i < 4; i++ {
		require.NoError(t, q.Push(i))
	}
	assert.ErrorIs(t, q.Push(99), corekit.ErrWouldBlock)

	for i := 0; i < 4; i++ {
		_, err := q.Pop()
		require.NoError(t, err)
	}
	_, err := q.Pop()
	assert.ErrorIs(t, err, corekit.ErrWouldBlock)
}

func TestMPMCFIFOSingleProducerConsumer(t *testing.T) {
	q := corekit.NewMPMC[int](16)
	for i := 0; i < 10; i++ {
		require.NoError(t, q.Push(i))
	}
	for i := 0; i < 10; i++ {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestMPMCPushRangePartial(t *testing.T) {
	q := corekit.NewMPMC[int](4)
	n := q.PushRange([]int{1, 2, 3, 4, 5})
	assert.Equal(t, 4, n)
}

func TestMPMCPopRange(t *testing.T) {
	q := corekit.NewMPMC[int](8)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Push(i))
	}
	out := make([]int, 8)
	n := q.PopRange(out)
	assert.Equal(t, 5, n)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, out[:n])
}

func TestMPMCDrainIsAdvisoryOnly(t *testing.T) {
	q := corekit.NewMPMC[int](4)
	require.NoError(t, q.Push(1))
	q.Drain()
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestMPMCClearDrains(t *testing.T) {
	q := corekit.NewMPMC[int](8)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Push(i))
	}
	q.Clear()
	_, err := q.Pop()
	assert.ErrorIs(t, err, corekit.ErrWouldBlock)
}

// TestMPMCStress is the concurrent stress scenario: N producers, M
// consumers pushing/popping integers and verifying every one is popped
// exactly once across all consumers (property 12, scenario 2 scaled down
// for test runtime).
func TestMPMCStress(t *testing.T) {
	if corekit.RaceEnabled {
		t.Skip("skip: CAS-based algorithm uses cross-variable memory ordering")
	}

	const (
		numProducers = 4
		numConsumers = 4
		itemsPerProd = 20_000
		timeout      = 10 * time.Second
	)

	q := corekit.NewMPMC[int](4096)
	expectedTotal := numProducers * itemsPerProd
	seen := make([]atomix.Int32, expectedTotal)

	var wg sync.WaitGroup
	var produced, consumed atomix.Int64
	deadline := time.Now().Add(timeout)

	for p := 0; p < numProducers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			backoff := iox.Backoff{}
			for i := 0; i < itemsPerProd; i++ {
				v := id*itemsPerProd + i
				for q.Push(v) != nil {
					if time.Now().After(deadline) {
						return
					}
					backoff.Wait()
				}
				produced.Add(1)
				backoff.Reset()
			}
		}(p)
	}

	for c := 0; c < numConsumers; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for consumed.Load() < int64(expectedTotal) {
				if time.Now().After(deadline) {
					return
				}
				v, err := q.Pop()
				if err == nil {
					if v >= 0 && v < expectedTotal {
						seen[v].Add(1)
					}
					consumed.Add(1)
					backoff.Reset()
				} else {
					if produced.Load() == int64(expectedTotal) && consumed.Load() == int64(expectedTotal) {
						return
					}
					backoff.Wait()
				}
			}
		}()
	}

	wg.Wait()

	require.Equal(t, int64(expectedTotal), consumed.Load())
	for i := 0; i < expectedTotal; i++ {
		if got := seen[i].Load(); got != 1 {
			t.Fatalf("item %d popped %d times, want exactly 1", i, got)
		}
	}
}
