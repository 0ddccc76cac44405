package tui

import (
	"time"

	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

// timerState tracks the current state of the timer.
type timerState int

const (
	timerStopped timerState = iota
	timerRunning
	timerPaused
)

// timerModel is the tracking session on the time screen. A stopped session
// becomes a draft time sheet entry; nothing is stored.
type timerModel struct {
	now func() time.Time

	state     timerState
	startTime time.Time
	elapsed   time.Duration
	pausedAt  time.Time
	pauseGap  time.Duration

	project string
	member  string

	// Idle detection
	lastActivity time.Time
	idleTimeout  time.Duration
	isIdle       bool
}

func newTimerModel(member string) timerModel {
	return timerModel{
		now:          time.Now,
		state:        timerStopped,
		member:       member,
		lastActivity: time.Now(),
		idleTimeout:  5 * time.Minute,
	}
}

func (t *timerModel) start(project string) {
	now := t.now()
	t.state = timerRunning
	t.startTime = now
	t.elapsed = 0
	t.pauseGap = 0
	t.project = project
	t.lastActivity = now
	t.isIdle = false
}

// stop ends the session and returns it as a draft entry. ok is false when
// no session was running.
func (t *timerModel) stop() (entry store.TimesheetEntry, ok bool) {
	if t.state == timerStopped {
		return store.TimesheetEntry{}, false
	}
	elapsed := t.currentElapsed()
	now := t.now()
	t.state = timerStopped
	t.elapsed = 0
	return store.TimesheetEntry{
		Date:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Project:  t.project,
		Member:   t.member,
		Duration: view.FormatHoursMinutes(elapsed),
	}, true
}

func (t *timerModel) pause() {
	if t.state != timerRunning {
		return
	}
	t.state = timerPaused
	t.pausedAt = t.now()
}

func (t *timerModel) resume() {
	if t.state != timerPaused {
		return
	}
	now := t.now()
	t.pauseGap += now.Sub(t.pausedAt)
	t.state = timerRunning
	t.isIdle = false
	t.lastActivity = now
}

func (t *timerModel) toggle() {
	switch t.state {
	case timerRunning:
		t.pause()
	case timerPaused:
		t.resume()
	}
}

func (t *timerModel) tick() {
	if t.state == timerRunning {
		now := t.now()
		t.elapsed = now.Sub(t.startTime) - t.pauseGap

		if now.Sub(t.lastActivity) > t.idleTimeout && !t.isIdle {
			t.isIdle = true
			t.pause()
		}
	}
}

func (t *timerModel) recordActivity() {
	t.lastActivity = t.now()
	if t.isIdle && t.state == timerPaused {
		t.resume()
		t.isIdle = false
	}
}

func (t timerModel) running() bool {
	return t.state != timerStopped
}

func (t timerModel) paused() bool {
	return t.state == timerPaused
}

func (t timerModel) currentElapsed() time.Duration {
	now := t.now()
	switch t.state {
	case timerStopped:
		return 0
	case timerPaused:
		return t.pausedAt.Sub(t.startTime) - t.pauseGap
	}
	return now.Sub(t.startTime) - t.pauseGap
}
