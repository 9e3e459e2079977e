package metrics

import (
	"context"
	"time"
)

// pollerFunction alias is private and should be used only here
type pollerFunction = func(ctx context.Context) error

// RecordPollerDuration wraps f so every run is observed under typ.
func RecordPollerDuration(typ string, f pollerFunction) pollerFunction {
	return func(ctx context.Context) error {
		startTime := time.Now()
		err := f(ctx)

		if pollerDurationHistogram != nil {
			pollerDurationHistogram.
				WithLabelValues(typ, outcome(err != nil).String()).
				Observe(time.Since(startTime).Seconds())
		}

		return err
	}
}
