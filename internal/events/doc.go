// Package events builds the normalized event table used by the event-study
// pipeline from raw analyst recommendation records.
//
// The builder collapses multiple same-day recommendations from the same firm
// down to the last one issued, keeps only actions that indicate an upgrade or
// a downgrade, and assigns stable sequential event IDs. The transformation is
// a pure function of its input: same records in, same events out, in the same
// order, every time.
//
// Typical usage:
//
//	recs, err := recommendations.Load(path)
//	if err != nil {
//	    return err
//	}
//	evts, err := events.Build(recs)
//
// An unclassifiable action aborts the build with a *ClassificationError
// rather than guessing or dropping the row.
package events
