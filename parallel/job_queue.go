package parallel

import (
	"fmt"
	"sync"
)

// CreateJobQueue starts poolSize workers reading from a queue of queueSize.
// A pool size below one is raised to one.
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

// JobQueue runs jobs on a fixed set of workers and keeps the first error
// returned by any of them.
type JobQueue struct {
	jobsChannel chan func() error
	waitGroup   *sync.WaitGroup
	errLock     sync.Mutex
	err         error
}

func (queue *JobQueue) Add(function func() error) error {
	if function == nil {
		return fmt.Errorf("nil function")
	}

	queue.waitGroup.Add(1)
	queue.jobsChannel <- function
	return nil
}

// Wait blocks until every added job has finished and returns the first
// error seen.
func (queue *JobQueue) Wait() error {
	queue.waitGroup.Wait()
	queue.errLock.Lock()
	defer queue.errLock.Unlock()
	return queue.err
}

func (queue *JobQueue) Close() {
	close(queue.jobsChannel)
}

func (queue *JobQueue) worker() {
	for job := range queue.jobsChannel {
		if err := job(); err != nil {
			queue.errLock.Lock()
			if queue.err == nil {
				queue.err = err
			}
			queue.errLock.Unlock()
		}
		queue.waitGroup.Done()
	}
}
