// Package batch runs one fallible operation per item of a slice in parallel
// and folds the outcomes into a single result.
//
// Every item reaches exactly one terminal state:
//
//   - success: the value is kept at the item's position;
//   - swallowed failure: the item is dropped from the result;
//   - escalated failure: the whole run fails with the handler's error.
//
// A failure is swallowed when no [FailureHandler] is installed or when the
// handler returns nil. When the handler returns an error, that error is
// escalated. If several items escalate, the first escalation to complete is
// the one returned. Running items are never cancelled: [Run] returns only
// after every spawned unit has finished.
//
//	r := batch.New(batch.OnFailure(func(i int, err error) error {
//	    return fmt.Errorf("item %d: %w", i, err)
//	}))
//	out, err := batch.Run(r, items, func(i int, in string) (int, error) {
//	    return strconv.Atoi(in)
//	})
package batch
