package renderer

import (
	"context"
	"sync"
)

// tileTask asks a worker to render a half-open sample range for one tile
type tileTask struct {
	tile        Tile
	startSample int
	endSample   int
}

// tileResult reports a completed (or failed) tile
type tileResult struct {
	tileID  int
	samples int
	err     error
}

// workerPool runs a fixed number of workers pulling tile tasks from a
// shared queue. Load balances across tiles of uneven cost: a worker takes
// the next tile as soon as it finishes its current one.
type workerPool struct {
	tasks   chan tileTask
	results chan tileResult
	wg      sync.WaitGroup
}

func newWorkerPool(queueDepth int) *workerPool {
	return &workerPool{
		tasks:   make(chan tileTask, queueDepth),
		results: make(chan tileResult, queueDepth),
	}
}

// start launches numWorkers goroutines. The render callback must recover
// its own panics; cancellation is checked between tiles only, so an
// in-flight tile always finishes cleanly.
func (wp *workerPool) start(ctx context.Context, numWorkers int, render func(tileTask) (int, error)) {
	for i := 0; i < numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.tasks {
				if ctx.Err() != nil {
					wp.results <- tileResult{tileID: task.tile.ID, err: ctx.Err()}
					continue
				}
				samples, err := render(task)
				wp.results <- tileResult{tileID: task.tile.ID, samples: samples, err: err}
			}
		}()
	}
}

// submit queues a tile task
func (wp *workerPool) submit(task tileTask) {
	wp.tasks <- task
}

// stop shuts the pool down after all queued work has drained
func (wp *workerPool) stop() {
	close(wp.tasks)
	wp.wg.Wait()
	close(wp.results)
}
