package corekit_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarforge/corekit"
)

func TestSafeQueueProducerFillsAndConsumerDrains(t *testing.T) {
	q := corekit.NewSafeQueue[int](8)

	prod := q.AcquireProducer()
	*prod.Data() = append(*prod.Data(), 1, 2, 3)
	prod.Release()

	cons := q.AcquireConsumer()
	require.NotNil(t, cons)
	assert.Equal(t, []int{1, 2, 3}, cons.Data())
	cons.Release()

	// Page returned to Empty; another consumer finds nothing available.
	assert.Nil(t, q.AcquireConsumer())
}

func TestSafeQueueEmptyProducerReturnsToEmptyState(t *testing.T) {
	q := corekit.NewSafeQueue[int](4)

	prod := q.AcquireProducer()
	prod.Release() // never wrote anything

	assert.Nil(t, q.AcquireConsumer())
}

func TestSafeQueueAcquireConsumerNilWhenNothingAvailable(t *testing.T) {
	q := corekit.NewSafeQueue[int](4)
	assert.Nil(t, q.AcquireConsumer())
}

func TestSafeQueueGrowsPageListOnDemand(t *testing.T) {
	q := corekit.NewSafeQueue[int](4)

	p1 := q.AcquireProducer()
	p2 := q.AcquireProducer() // no Empty/Available page exists yet; allocates
	assert.Equal(t, 2, q.PageCount())

	*p1.Data() = append(*p1.Data(), 1)
	*p2.Data() = append(*p2.Data(), 2)
	p1.Release()
	p2.Release()

	seen := map[int]bool{}
	for i := 0; i < 2; i++ {
		c := q.AcquireConsumer()
		require.NotNil(t, c)
		for _, v := range c.Data() {
			seen[v] = true
		}
		c.Release()
	}
	assert.Equal(t, map[int]bool{1: true, 2: true}, seen)
}

func TestSafeQueueReleaseNoClearPreservesData(t *testing.T) {
	q := corekit.NewSafeQueue[int](4)

	prod := q.AcquireProducer()
	*prod.Data() = append(*prod.Data(), 1, 2)
	prod.Release()

	cons := q.AcquireConsumer()
	require.NotNil(t, cons)
	cons.ReleaseNoClear()

	cons2 := q.AcquireConsumer()
	require.NotNil(t, cons2)
	assert.Equal(t, []int{1, 2}, cons2.Data())
	cons2.Release()
}

func TestSafeQueueClearEmptiesAllPages(t *testing.T) {
	q := corekit.NewSafeQueue[int](4)
	prod := q.AcquireProducer()
	*prod.Data() = append(*prod.Data(), 1, 2, 3)
	prod.Release()

	q.Clear()
	assert.Nil(t, q.AcquireConsumer())
}

func TestSafeQueueReleaseAllMemoryDropsPages(t *testing.T) {
	q := corekit.NewSafeQueue[int](4)
	prod := q.AcquireProducer()
	*prod.Data() = append(*prod.Data(), 1)
	prod.Release()

	q.ReleaseAllMemory()
	assert.Equal(t, 0, q.PageCount())
}

func TestSafeQueueConcurrentProducersConsumers(t *testing.T) {
	q := corekit.NewSafeQueue[int](16)
	const producers = 8
	const itemsPerProducer = 200

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			prod := q.AcquireProducer()
			for i := 0; i < itemsPerProducer; i++ {
				*prod.Data() = append(*prod.Data(), id*itemsPerProducer+i)
			}
			prod.Release()
		}(p)
	}
	wg.Wait()

	got := 0
	for {
		c := q.AcquireConsumer()
		if c == nil {
			break
		}
		got += len(c.Data())
		c.Release()
	}
	assert.Equal(t, producers*itemsPerProducer, got)
}
