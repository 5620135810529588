package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobQueueRunsAllJobs(t *testing.T) {
	queue := CreateJobQueue(2, 3)
	defer queue.Close()

	var count int64
	for i := 0; i < 50; i++ {
		require.NoError(t, queue.Add(func() error {
			atomic.AddInt64(&count, 1)
			return nil
		}))
	}
	assert.NoError(t, queue.Wait())
	assert.EqualValues(t, 50, atomic.LoadInt64(&count))
}

func TestJobQueueReportsFirstError(t *testing.T) {
	queue := CreateJobQueue(0, 1)
	defer queue.Close()

	first := errors.New("first")
	require.NoError(t, queue.Add(func() error { return nil }))
	require.NoError(t, queue.Add(func() error { return first }))
	require.NoError(t, queue.Add(func() error { return errors.New("second") }))

	assert.Equal(t, first, queue.Wait())
}

func TestJobQueueRejectsNilJob(t *testing.T) {
	queue := CreateJobQueue(1, 1)
	defer queue.Close()

	assert.Error(t, queue.Add(nil))
	assert.NoError(t, queue.Wait())
}
