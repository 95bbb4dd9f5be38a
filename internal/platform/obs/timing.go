package obs

import (
	"context"
	"scenic-seat-service/internal/platform/logging"
	"time"
)

// Time starts timing an operation and returns a function that logs its duration.
// Pass the named error return so failures are logged with the elapsed time:
//
//	defer obs.Time(ctx, "cities.FindCity")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)
		l := logging.Ctx(ctx)

		if errp != nil && *errp != nil {
			l.Debug().Str("op", name).Dur("dur", dur).Err(*errp).Msg("op failed")
			return
		}
		l.Debug().Str("op", name).Dur("dur", dur).Msg("op done")
	}
}
