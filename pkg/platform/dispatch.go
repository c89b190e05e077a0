package platform

import "sync"

// MainQueue schedules callbacks on a UI thread through a post function,
// typically backend.Host.Post.
type MainQueue struct {
	mu   sync.RWMutex
	post func(callback func()) bool
}

// NewMainQueue creates a queue posting through post. post may be nil and
// set later with Register.
func NewMainQueue(post func(callback func()) bool) *MainQueue {
	return &MainQueue{post: post}
}

// Register sets the post function.
func (q *MainQueue) Register(post func(callback func()) bool) {
	q.mu.Lock()
	q.post = post
	q.mu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread.
// Returns true if the callback was successfully scheduled, false if no post
// function is registered, the callback is nil or the UI thread has shut
// down.
func (q *MainQueue) Dispatch(callback func()) bool {
	q.mu.RLock()
	fn := q.post
	q.mu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	return fn(callback)
}

var mainQueue = NewMainQueue(nil)

// RegisterDispatch sets the post function of the application's main window.
// app.Start calls it once the backend is up.
func RegisterDispatch(post func(callback func()) bool) {
	mainQueue.Register(post)
}

// Dispatch schedules a callback on the main window's UI thread. Use it to
// update state from background goroutines.
func Dispatch(callback func()) bool {
	return mainQueue.Dispatch(callback)
}
