// Package signing implements the completion-merging primitive (C12) that
// turns N independent asynchronous wallet-sign calls into one ordered
// result, grounded on the original implementation's xfer_payload.rs
// InputSigner (a mutex-guarded accumulator keyed by input identity,
// invoking the final callback exactly once when every key has completed)
// and callbacks.rs's single-mutex, invoke-outside-the-lock discipline.
package signing

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/internal/sovlog"
)

// MergeAsync dispatches perItem(i, done) for every index in [0, n), then
// invokes finish exactly once:
//   - with all n results, in original index order, once every done call
//     has reported success;
//   - with the first reported error, as soon as any done call reports one
//     (subsequent completions - success or failure - are discarded).
//
// perItem may call done synchronously (within the same call stack) or from
// another goroutine; both are safe. The index itself is the merge key,
// which is what makes "original key order" trivial to honor - no map is
// needed, only a fixed-size slice.
//
// A fresh correlation id is logged at start and completion; it exists for
// diagnostics only, the merge key is always the input index.
func MergeAsync[T any](ctx context.Context, n int, perItem func(i int, done func(T, error)), finish func([]T, error)) {
	mergeID := uuid.NewString()
	sovlog.L(ctx).Debugf("signing merge %s: dispatching %d item(s)", mergeID, n)

	var mu sync.Mutex
	results := make([]T, n)
	completed := make([]bool, n)
	remaining := n
	finished := false

	done := func(i int) func(T, error) {
		return func(v T, err error) {
			mu.Lock()
			if finished {
				mu.Unlock()
				return
			}
			if completed[i] {
				// A handle must be used exactly once; a second
				// completion for the same key is discarded rather
				// than corrupting an already-decided result.
				mu.Unlock()
				sovlog.L(ctx).Warnf("%s", sovi18n.NewError(ctx, msgs.MsgMergeKeyReused, i))
				return
			}
			completed[i] = true

			if err != nil {
				finished = true
				mu.Unlock()
				sovlog.L(ctx).Debugf("signing merge %s: failed: %s", mergeID, err)
				finish(nil, err)
				return
			}

			results[i] = v
			remaining--
			allDone := remaining == 0
			mu.Unlock()

			if allDone {
				mu.Lock()
				if finished {
					mu.Unlock()
					return
				}
				finished = true
				mu.Unlock()
				sovlog.L(ctx).Debugf("signing merge %s: completed", mergeID)
				finish(results, nil)
			}
		}
	}

	if n == 0 {
		sovlog.L(ctx).Debugf("signing merge %s: no items, completing immediately", mergeID)
		finish(results, nil)
		return
	}

	for i := 0; i < n; i++ {
		perItem(i, done(i))
	}
}
