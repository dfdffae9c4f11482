package liveresize

import "testing"

const (
	testBegin = 0x0231
	testEnd   = 0x0232
)

type recordingObserver struct {
	starts, ends int
}

func (o *recordingObserver) OnOperationStart() { o.starts++ }
func (o *recordingObserver) OnOperationEnd()   { o.ends++ }

func TestInterceptorDrivesObserver(t *testing.T) {
	obs := &recordingObserver{}
	var forwarded []uint32
	next := MessageHandlerFunc(func(msg Message) uintptr {
		forwarded = append(forwarded, msg.Code)
		return 7
	})
	ic := NewInterceptor(next, obs, testBegin, testEnd)

	msgs := []uint32{0x0005, testBegin, 0x0113, testEnd, 0x0002}
	for _, code := range msgs {
		if got := ic.HandleMessage(Message{Code: code}); got != 7 {
			t.Fatalf("HandleMessage(%#x) = %d, want forwarded result 7", code, got)
		}
	}

	if obs.starts != 1 || obs.ends != 1 {
		t.Fatalf("observer saw %d starts / %d ends, want 1/1", obs.starts, obs.ends)
	}

	// Every message forwarded exactly once, in order, including the two
	// recognized ones.
	if len(forwarded) != len(msgs) {
		t.Fatalf("forwarded %d messages, want %d", len(forwarded), len(msgs))
	}
	for i, code := range msgs {
		if forwarded[i] != code {
			t.Fatalf("forwarded[%d] = %#x, want %#x", i, forwarded[i], code)
		}
	}
}

func TestInterceptorOrdering(t *testing.T) {
	// The pump must already be active when the original procedure runs,
	// so local handling precedes the forward.
	obs := &recordingObserver{}
	var startsAtForward int
	next := MessageHandlerFunc(func(msg Message) uintptr {
		startsAtForward = obs.starts
		return 0
	})
	ic := NewInterceptor(next, obs, testBegin, testEnd)

	ic.HandleMessage(Message{Code: testBegin})
	if startsAtForward != 1 {
		t.Fatalf("observer start seen %d times at forward, want 1 (before forward)", startsAtForward)
	}
}

func TestInterceptorWithPump(t *testing.T) {
	win := &fakeWindow{clientW: 800, clientH: 600}
	ren := &fakeRenderer{w: 800, h: 600}
	tick := &manualTicker{}
	pump := NewResizePump(win, ren, nil, tick, DefaultPumpInterval)
	next := MessageHandlerFunc(func(Message) uintptr { return 0 })
	ic := NewInterceptor(next, pump, testBegin, testEnd)

	ic.HandleMessage(Message{Code: testBegin})
	if !pump.Active() {
		t.Fatal("pump should be active after begin notification")
	}
	// Duplicate begin from the window system is harmless.
	ic.HandleMessage(Message{Code: testBegin})
	if tick.starts != 1 {
		t.Fatalf("tick source started %d times, want 1", tick.starts)
	}

	win.clientW = 900
	tick.fire()
	ic.HandleMessage(Message{Code: testEnd})
	if pump.Active() {
		t.Fatal("pump should be idle after end notification")
	}
	// One tick resize plus the final unconditional resize.
	if len(ren.resizes) != 2 {
		t.Fatalf("got %d resizes %v, want 2", len(ren.resizes), ren.resizes)
	}
}
