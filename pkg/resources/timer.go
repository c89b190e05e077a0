package resources

import "time"

// Timer is a delayed action. It is scheduled through a window
// (core.Window.ScheduleTimer), which hands it to the active backend; once
// the delay elapses the action always runs to completion on the UI thread.
//
//	w.ScheduleTimer(resources.DelayedAction(time.Second, func() {
//	    fmt.Println("Hello, world!")
//	}))
type Timer struct {
	Delay  time.Duration
	Action func()
}

// DelayedAction creates a Timer that fires after delay.
func DelayedAction(delay time.Duration, action func()) Timer {
	return Timer{Delay: delay, Action: action}
}

// Fire runs the action if there is one.
func (t Timer) Fire() {
	if t.Action != nil {
		t.Action()
	}
}
