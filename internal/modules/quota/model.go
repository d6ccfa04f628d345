package quota

import "errors"

// ErrQuotaExceeded is returned when a caller has no AI lookups left for the current day.
var ErrQuotaExceeded = errors.New("lookup quota exceeded")

// DefaultDailyLookups is the number of AI lookups granted per caller per day.
const DefaultDailyLookups = 200

const dayLayout = "2006-01-02"
