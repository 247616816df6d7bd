package crawl

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Task is one unit of crawl work: a URL to check, the page it was
// discovered on, and whether its own links should be expanded.
type Task struct {
	URL     string
	Parent  string
	Recurse bool
}

// visitedShards spreads the visited set across independently locked maps so
// the default 100 workers do not serialize on a single mutex.
const visitedShards = 16

// Frontier is a FIFO work queue with exact URL deduplication.
// It is safe for concurrent use by multiple goroutines.
//
// Push is the crawl's dedup gate: the test-and-insert into the visited set
// happens under one lock, so two tasks for the same URL can never both be
// accepted, regardless of arrival order.
type Frontier struct {
	mu    sync.Mutex
	queue []Task

	visited [visitedShards]struct {
		mu   sync.Mutex
		urls map[string]struct{}
	}
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	f := &Frontier{}
	for i := range f.visited {
		f.visited[i].urls = make(map[string]struct{})
	}
	return f
}

// Push enqueues a task. Returns false if the URL has already been accepted,
// in which case the task is discarded without emitting anything.
func (f *Frontier) Push(t Task) bool {
	shard := &f.visited[xxhash.Sum64String(t.URL)%visitedShards]

	shard.mu.Lock()
	if _, ok := shard.urls[t.URL]; ok {
		shard.mu.Unlock()
		return false
	}
	shard.urls[t.URL] = struct{}{}
	shard.mu.Unlock()

	f.mu.Lock()
	f.queue = append(f.queue, t)
	f.mu.Unlock()
	return true
}

// Pop returns the oldest queued task.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return Task{}, false
	}
	t := f.queue[0]
	f.queue = f.queue[1:]
	return t, true
}

// Len returns the number of queued tasks.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has ever been accepted by Push.
func (f *Frontier) Seen(url string) bool {
	shard := &f.visited[xxhash.Sum64String(url)%visitedShards]
	shard.mu.Lock()
	defer shard.mu.Unlock()
	_, ok := shard.urls[url]
	return ok
}
