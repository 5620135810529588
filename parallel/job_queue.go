package parallel

import (
	"fmt"
	"sync"
)

func CreateJobQueue(queueSize int, poolSize int) *JobQueue {
	if poolSize < 1 {
		poolSize = 1
	}

	group := &JobQueue{
		jobsChannel: make(chan func() error, queueSize),
		waitGroup:   &sync.WaitGroup{},
	}

	for i := 1; i <= poolSize; i++ {
		go group.worker()
	}
	return group
}

// JobQueue runs jobs on a fixed pool of workers. Wait reports the first error
// returned by any job.
type JobQueue struct {
	jobsChannel chan func() error
	waitGroup   *sync.WaitGroup
	errOnce     sync.Once
	firstErr    error
}

func (queue *JobQueue) Add(job func() error) error {
	if job == nil {
		return fmt.Errorf("nil function")
	}

	queue.waitGroup.Add(1)
	queue.jobsChannel <- job
	return nil
}

func (queue *JobQueue) Wait() error {
	queue.waitGroup.Wait()
	return queue.firstErr
}

func (queue *JobQueue) Close() {
	close(queue.jobsChannel)
}

func (queue *JobQueue) worker() {
	for job := range queue.jobsChannel {
		if err := job(); err != nil {
			queue.errOnce.Do(func() {
				queue.firstErr = err
			})
		}
		queue.waitGroup.Done()
	}
}
