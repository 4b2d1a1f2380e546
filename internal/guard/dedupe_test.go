package guard

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDeduplicator_CoalescesConcurrentCalls(t *testing.T) {
	d := NewDeduplicator(30 * time.Second)

	var calls atomic.Int32
	release := make(chan struct{})

	slowProduce := func() (string, error) {
		calls.Add(1)
		<-release
		return "result", nil
	}

	const n = 5
	var wg sync.WaitGroup
	results := make([]string, n)
	errs := make([]error, n)

	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = d.Do("k", slowProduce)
		}()
	}

	// Wait until the first caller has registered, then let it finish.
	for d.Pending() == 0 {
		time.Sleep(time.Millisecond)
	}
	// Give the remaining callers a moment to attach.
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("produce invoked %d times, want 1", got)
	}
	for i := range n {
		if errs[i] != nil {
			t.Fatalf("caller %d got error: %v", i, errs[i])
		}
		if results[i] != "result" {
			t.Fatalf("caller %d got %q, want result", i, results[i])
		}
	}
}

func TestDeduplicator_ErrorSharedAndRegistrationCleared(t *testing.T) {
	d := NewDeduplicator(30 * time.Second)
	wantErr := errors.New("upstream failed")

	_, err := d.Do("k", func() (string, error) { return "", wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want the produce error", err)
	}
	if d.Pending() != 0 {
		t.Fatal("failed call left an in-flight registration")
	}

	// A later call with the same key invokes produce again.
	got, err := d.Do("k", func() (string, error) { return "fresh", nil })
	if err != nil || got != "fresh" {
		t.Fatalf("follow-up call = (%q, %v), want (fresh, nil)", got, err)
	}
}

func TestDeduplicator_NoReuseAfterSettlement(t *testing.T) {
	d := NewDeduplicator(30 * time.Second)

	var calls atomic.Int32
	produce := func() (string, error) {
		return string(rune('a' + calls.Add(1))), nil
	}

	first, _ := d.Do("k", produce)
	second, _ := d.Do("k", produce)

	if calls.Load() != 2 {
		t.Fatalf("sequential calls coalesced: produce ran %d times", calls.Load())
	}
	if first == second {
		t.Fatal("second call reused a settled result")
	}
}

func TestDeduplicator_StaleEntryReplaced(t *testing.T) {
	d := NewDeduplicator(time.Second)
	now := time.Now()
	d.now = func() time.Time { return now }

	// Simulate a wedged call: registered long ago, never settled.
	d.mu.Lock()
	d.inflight[NormalizeKey("k")] = &inflight{
		done:    make(chan struct{}),
		started: now.Add(-time.Minute),
	}
	d.mu.Unlock()

	done := make(chan struct{})
	var got string
	go func() {
		got, _ = d.Do("k", func() (string, error) { return "fresh", nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Do blocked on a stale in-flight entry")
	}
	if got != "fresh" {
		t.Fatalf("got %q, want fresh", got)
	}
}

func TestDeduplicator_DistinctKeysIndependent(t *testing.T) {
	d := NewDeduplicator(30 * time.Second)

	blockA := make(chan struct{})
	startedA := make(chan struct{})

	go d.Do("a", func() (string, error) {
		close(startedA)
		<-blockA
		return "a", nil
	})
	<-startedA

	// A call for a different key must not wait on "a".
	done := make(chan struct{})
	go func() {
		d.Do("b", func() (string, error) { return "b", nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("distinct keys interfered")
	}
	close(blockA)
}

func TestDeduplicator_KeyNormalization(t *testing.T) {
	d := NewDeduplicator(30 * time.Second)

	release := make(chan struct{})
	started := make(chan struct{})
	var calls atomic.Int32

	go d.Do("  Explain   LOOPS ", func() (string, error) {
		calls.Add(1)
		close(started)
		<-release
		return "v", nil
	})
	<-started

	done := make(chan struct{})
	go func() {
		d.Do("explain loops", func() (string, error) {
			calls.Add(1)
			return "v", nil
		})
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	close(release)
	<-done

	if calls.Load() != 1 {
		t.Fatalf("differently-formatted identical keys did not coalesce: %d calls", calls.Load())
	}
}
