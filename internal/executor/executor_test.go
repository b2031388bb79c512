package executor

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncExecutorRunsSequentially(t *testing.T) {
	e := NewSyncExecutor()
	assert.Equal(t, 1, e.Parallelism())

	var order []int
	e.Run(5, func(i int) { order = append(order, i) })
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestPoolExecutorRunsEveryIndexExactlyOnce(t *testing.T) {
	e := NewPoolExecutor(4)
	var seen [100]int32
	e.Run(100, func(i int) { atomic.AddInt32(&seen[i], 1) })
	for i, count := range seen {
		assert.Equalf(t, int32(1), count, "index %d ran %d times", i, count)
	}
}

func TestPoolExecutorDefaultsWorkersWhenNonPositive(t *testing.T) {
	e := NewPoolExecutor(0)
	assert.Greater(t, e.Parallelism(), 0)
}

func TestExecuteAllPreservesOrder(t *testing.T) {
	e := NewSyncExecutor()
	results := ExecuteAll(e, []int{1, 2, 3}, func(v int) int { return v * v })
	assert.Equal(t, []int{1, 4, 9}, results)
}

func TestExecuteAllFallibleCapturesPerItemErrors(t *testing.T) {
	e := NewPoolExecutor(2)
	boom := errors.New("boom")
	outcomes := ExecuteAllFallible(e, []int{1, 2, 3}, func(v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})

	assert.Len(t, outcomes, 3)
	assert.NoError(t, outcomes[0].Err)
	assert.Equal(t, 1, outcomes[0].Value)
	assert.ErrorIs(t, outcomes[1].Err, boom)
	assert.NoError(t, outcomes[2].Err)
	assert.Equal(t, 3, outcomes[2].Value)
}
