package quotes

import (
	"time"

	"github.com/ifeomasylviadike/quotevault/pkg/errors"
	"github.com/ifeomasylviadike/quotevault/pkg/logging"
)

// Import bulk-inserts externally supplied records into the store.
// Each item must carry non-empty text and category; invalid items are
// skipped silently (logged at debug) and the count of accepted items is
// returned. Items without an id are admitted as fresh local records.
func Import(store Store, recs []Record) (int, error) {
	accepted := 0
	for _, rec := range recs {
		if rec.ID == "" {
			rec.ID = NewLocalID()
		}
		if rec.Origin == "" {
			rec.Origin = OriginLocal
		}
		if rec.UpdatedAt.IsZero() {
			rec.UpdatedAt = time.Now()
		}

		if err := Validate(rec); err != nil {
			logging.Debug().
				Err(err).
				Str("id", rec.ID).
				Msg("Skipping invalid record during import")
			continue
		}

		if err := store.Set(rec); err != nil {
			return accepted, errors.WrapIO("write", "store", err)
		}
		accepted++
	}

	if accepted > 0 {
		if err := store.Save(); err != nil {
			return accepted, err
		}
	}
	return accepted, nil
}
