package tui

import (
	"testing"
	"time"
)

func TestTimerArmsOnActivation(t *testing.T) {
	tm := newTimer(newSimTick)

	if cmd := tm.sync(false, time.Second, false); cmd != nil {
		t.Error("inactive timer should not schedule a tick")
	}
	if tm.gen != 0 {
		t.Errorf("gen = %d, expected 0 while never armed", tm.gen)
	}

	if cmd := tm.sync(true, time.Second, false); cmd == nil {
		t.Fatal("activating the timer should schedule a tick")
	}
	if !tm.current(1) {
		t.Error("generation 1 should be live after arming")
	}
}

func TestTimerIdempotentSync(t *testing.T) {
	tm := newTimer(newSimTick)
	tm.sync(true, time.Second, false)

	if cmd := tm.sync(true, time.Second, false); cmd != nil {
		t.Error("unchanged activation and period should not schedule a second tick")
	}
	if tm.gen != 1 {
		t.Errorf("gen = %d, expected 1", tm.gen)
	}
}

func TestTimerRearmsOnPeriodChange(t *testing.T) {
	tm := newTimer(newSimTick)
	tm.sync(true, 100*time.Millisecond, false)
	old := tm.gen

	if cmd := tm.sync(true, 90*time.Millisecond, false); cmd == nil {
		t.Fatal("a new period should schedule a fresh tick")
	}
	if tm.current(old) {
		t.Error("the tick armed with the old period must be stale")
	}
	if tm.period != 90*time.Millisecond {
		t.Errorf("period = %v, expected 90ms", tm.period)
	}
}

func TestTimerCancel(t *testing.T) {
	tm := newTimer(newCountdownTick)
	tm.sync(true, 800*time.Millisecond, false)
	old := tm.gen

	if cmd := tm.sync(false, 800*time.Millisecond, false); cmd != nil {
		t.Error("deactivating should not schedule a tick")
	}
	if tm.current(old) {
		t.Error("an in-flight tick must be dropped after cancel")
	}
}

func TestTimerFiredRearms(t *testing.T) {
	tm := newTimer(newSimTick)
	tm.sync(true, time.Second, false)
	tm.fired()

	if tm.current(tm.gen) {
		t.Error("a fired tick is no longer live")
	}
	if cmd := tm.sync(true, time.Second, false); cmd == nil {
		t.Error("a fired timer that is still active should re-arm")
	}
}

func TestTimerRestart(t *testing.T) {
	tm := newTimer(newCountdownTick)
	tm.sync(true, time.Second, false)
	old := tm.gen

	if cmd := tm.sync(true, time.Second, true); cmd == nil {
		t.Fatal("restart should schedule a fresh tick")
	}
	if tm.current(old) {
		t.Error("restart should make the previous tick stale")
	}
}

func TestTickCommandCarriesGeneration(t *testing.T) {
	tm := newTimer(newCountdownTick)
	cmd := tm.sync(true, time.Millisecond, false)

	msg, ok := cmd().(countdownTickMsg)
	if !ok {
		t.Fatalf("tick produced %T, expected countdownTickMsg", cmd())
	}
	if msg.gen != tm.gen {
		t.Errorf("msg gen = %d, expected %d", msg.gen, tm.gen)
	}
}
