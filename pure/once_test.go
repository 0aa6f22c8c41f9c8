package pure_test

import (
	"sync/atomic"
	"testing"

	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnce_EagerSuccess(t *testing.T) {
	count := 0
	once := pure.Once(func() (string, error) {
		count++
		return "ready", nil
	})
	require.Equal(t, 1, count)

	for range 3 {
		v, err := once()
		require.NoError(t, err)
		assert.Equal(t, "ready", v)
	}
	assert.Equal(t, 1, count)
}

func TestOnce_RetriesAfterEagerFailure(t *testing.T) {
	var count atomic.Int32
	once := pure.Once(func() (int, error) {
		if count.Add(1) <= 2 {
			return 0, errBoom
		}
		return 42, nil
	})
	assert.Equal(t, int32(1), count.Load())

	_, err := once()
	assert.ErrorIs(t, err, errBoom)

	v, err := once()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = once()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, int32(3), count.Load())
}

func TestOnce_ConcurrentRetriesSucceedOnce(t *testing.T) {
	var count atomic.Int32
	release := make(chan struct{})
	once := pure.Once(func() (int, error) {
		if count.Add(1) == 1 {
			return 0, errBoom
		}
		<-release
		return 7, nil
	})

	callConcurrently(30, release, func() {
		v, err := once()
		assert.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	assert.Equal(t, int32(2), count.Load())
}
