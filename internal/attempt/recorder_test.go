package attempt

import (
	"testing"
	"time"
)

// fakeClock advances by a fixed amount on every read.
type fakeClock struct {
	now  time.Time
	tick time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.tick)
	return c.now
}

func newTestRecorder(tick time.Duration) *Recorder {
	c := &fakeClock{now: time.Unix(1700000000, 0), tick: tick}
	return newRecorder(c.Now)
}

func TestAppendPreservesOrderAndTiming(t *testing.T) {
	r := newTestRecorder(2 * time.Second)

	texts := []string{"divide both sides by 2", "x^2 = 4", "x = 2 or x = -2"}
	for _, s := range texts {
		if !r.Append(s, nil) {
			t.Fatalf("append %q rejected", s)
		}
	}

	steps, total := r.Finalize("")
	if len(steps) != len(texts) {
		t.Fatalf("len = %d, want %d", len(steps), len(texts))
	}
	for i, s := range steps {
		if s.Content != texts[i] {
			t.Errorf("steps[%d] = %q, want %q", i, s.Content, texts[i])
		}
		if s.Duration < 0 {
			t.Errorf("steps[%d] duration = %v, want >= 0", i, s.Duration)
		}
		if i > 0 && s.Timestamp.Before(steps[i-1].Timestamp) {
			t.Errorf("steps[%d] timestamp before steps[%d]", i, i-1)
		}
	}
	if total <= 0 {
		t.Errorf("total = %v, want > 0", total)
	}
}

func TestAppendRejectsBlankContent(t *testing.T) {
	r := newTestRecorder(time.Second)

	for _, s := range []string{"", "   ", "\t\n"} {
		if r.Append(s, nil) {
			t.Errorf("append %q accepted, want rejected", s)
		}
	}
	if r.Len() != 0 {
		t.Errorf("len = %d, want 0", r.Len())
	}
}

func TestAppendTrimsContent(t *testing.T) {
	r := newTestRecorder(time.Second)
	if !r.Append("  x = 2  ", nil) {
		t.Fatal("append rejected")
	}
	if got := r.Steps()[0].Content; got != "x = 2" {
		t.Errorf("content = %q, want trimmed", got)
	}
}

func TestDurationResetsPerStep(t *testing.T) {
	c := &fakeClock{now: time.Unix(1700000000, 0), tick: 0}
	r := newRecorder(func() time.Time { return c.now })

	c.now = c.now.Add(3 * time.Second)
	r.Append("first", nil)
	c.now = c.now.Add(5 * time.Second)
	r.Append("second", nil)

	steps := r.Steps()
	if steps[0].Duration != 3*time.Second {
		t.Errorf("first duration = %v, want 3s", steps[0].Duration)
	}
	if steps[1].Duration != 5*time.Second {
		t.Errorf("second duration = %v, want 5s", steps[1].Duration)
	}
}

func TestFinalizeFlushesPendingInput(t *testing.T) {
	r := newTestRecorder(time.Second)
	r.Append("committed step", nil)

	steps, _ := r.Finalize("still typing this")
	if len(steps) != 2 {
		t.Fatalf("len = %d, want 2", len(steps))
	}
	if steps[1].Content != "still typing this" {
		t.Errorf("final step = %q", steps[1].Content)
	}

	// Blank pending text adds nothing.
	r2 := newTestRecorder(time.Second)
	r2.Append("only step", nil)
	steps, _ = r2.Finalize("   ")
	if len(steps) != 1 {
		t.Errorf("len = %d, want 1", len(steps))
	}
}

func TestFinalizeIsTerminal(t *testing.T) {
	r := newTestRecorder(time.Second)
	r.Append("one", nil)
	r.Finalize("")

	if r.Append("late entry", nil) {
		t.Error("append after finalize accepted")
	}
	if r.Len() != 1 {
		t.Errorf("len = %d, want 1", r.Len())
	}
}

func TestTaggedMetadata(t *testing.T) {
	r := newTestRecorder(time.Second)

	r.Append("Selected CN III", HotspotClick{HotspotID: "cn3", Label: "CN III Label"})
	r.Append("Ordered the phases", SequenceSubmit{ItemIDs: []string{"seq-pivot", "seq-scan"}})

	steps := r.Steps()
	if got := steps[0].Meta.Kind(); got != "hotspot-click" {
		t.Errorf("meta[0] kind = %q", got)
	}
	if hc, ok := steps[0].Meta.(HotspotClick); !ok || hc.HotspotID != "cn3" {
		t.Errorf("meta[0] = %+v", steps[0].Meta)
	}
	if got := steps[1].Meta.Kind(); got != "sequence-submit" {
		t.Errorf("meta[1] kind = %q", got)
	}
}
