package dispatcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryJob_StartsThenReturnsNotReadyUntilDone(t *testing.T) {
	d := New(nil)
	ctx := context.Background()
	release := make(chan struct{})

	work := func(context.Context) (interface{}, error) {
		<-release
		return "done", nil
	}

	_, err := d.TryJob(ctx, "s3", "SessionRun", "fp-1", work)
	require.Error(t, err)
	var notReady *NotReadyError
	require.ErrorAs(t, err, &notReady)

	_, err = d.TryJob(ctx, "s3", "SessionRun", "fp-1", work)
	require.Error(t, err)
	require.ErrorAs(t, err, &notReady)

	close(release)
	require.Eventually(t, func() bool {
		result, err := d.TryJob(ctx, "s3", "SessionRun", "fp-1", work)
		if err != nil {
			return false
		}
		assert.Equal(t, "done", result)
		return true
	}, time.Second, time.Millisecond)
}

// TestTryJob_DifferentFingerprintDiscardsStaleResultWithoutStartingNewWork
// exercises the "slot done, fingerprint differs" branch: the stale result
// is discarded and the slot is reset, but the new request's work does not
// start on this call — only on its own next identical poll, via the
// "no slot"/"slot empty" branch. This mirrors the dispatcher contract
// exactly rather than eagerly starting the new job as a side effect of
// discarding the old one.
func TestTryJob_DifferentFingerprintDiscardsStaleResultWithoutStartingNewWork(t *testing.T) {
	d := New(nil)
	ctx := context.Background()
	release := make(chan struct{})
	work := func(context.Context) (interface{}, error) {
		<-release
		return 1, nil
	}

	_, err := d.TryJob(ctx, "s1", "SessionRun", "fp-1", work)
	require.Error(t, err)
	close(release)

	// Wait for the fp-1 job to finish without collecting its result, so the
	// slot still holds a completed fp-1 future.
	require.Eventually(t, func() bool {
		d.mu.Lock()
		slot := d.slots["s1"]
		d.mu.Unlock()
		slot.mu.Lock()
		defer slot.mu.Unlock()
		return slot.future != nil && slot.future.isDone()
	}, time.Second, time.Millisecond)

	var work2Started bool
	work2 := func(context.Context) (interface{}, error) {
		work2Started = true
		return 2, nil
	}

	// Stale completed result under fp-1 is discarded; work2 must not start.
	_, err = d.TryJob(ctx, "s1", "SessionRun", "fp-2", work2)
	require.Error(t, err)
	var notReady *NotReadyError
	require.ErrorAs(t, err, &notReady)
	assert.False(t, work2Started, "work2 must not start as a side effect of discarding the stale fp-1 result")

	// The identical fp-2 request, retried, now starts its own work.
	_, err = d.TryJob(ctx, "s1", "SessionRun", "fp-2", work2)
	require.Error(t, err)
	require.ErrorAs(t, err, &notReady)

	require.Eventually(t, func() bool {
		result, err := d.TryJob(ctx, "s1", "SessionRun", "fp-2", work2)
		if err != nil {
			return false
		}
		assert.Equal(t, 2, result)
		return true
	}, time.Second, time.Millisecond)
}

func TestTryJob_SeparateSessionsHaveIndependentSlots(t *testing.T) {
	d := New(nil)
	ctx := context.Background()
	work := func(context.Context) (interface{}, error) { return nil, nil }

	_, err1 := d.TryJob(ctx, "a", "SessionStep", "fp", work)
	_, err2 := d.TryJob(ctx, "b", "SessionStep", "fp", work)
	require.Error(t, err1)
	require.Error(t, err2)
}
