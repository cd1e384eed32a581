package events

import (
	"sort"
	"strings"

	"recstudy/pkg/contracts/domain"
)

// groupKey identifies one (event date, firm) group after normalization.
type groupKey struct {
	date string
	firm string
}

// Build converts raw recommendation records into the ordered event table.
//
// Records are sorted by their original timestamp, collapsed to the last
// record per (event date, uppercased firm) group, filtered down to rating
// changes, classified, and assigned dense IDs starting at 1. The input slice
// is not modified and the result is fully determined by the input.
//
// A retained action that cannot be classified aborts the whole build with a
// *ClassificationError; there is no partial output.
func Build(recs []domain.Recommendation) ([]domain.Event, error) {
	// Sort a copy so same-day ordering is chronological. The stable sort
	// keeps source order for records with identical timestamps.
	sorted := make([]domain.Recommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	// Keep only the last recommendation a firm issued on a given day.
	last := make(map[groupKey]domain.Recommendation, len(sorted))
	for _, rec := range sorted {
		key := groupKey{date: rec.EventDate(), firm: strings.ToUpper(rec.Firm)}
		last[key] = rec
	}

	// Iterate groups in ascending (date, firm) order so IDs are reproducible.
	keys := make([]groupKey, 0, len(last))
	for key := range last {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		return keys[i].firm < keys[j].firm
	})

	evts := make([]domain.Event, 0, len(keys))
	for _, key := range keys {
		action := last[key].Action
		if !isRatingChange(action) {
			// Initiations, coverage changes and other non-directional
			// actions are dropped, not errors.
			continue
		}
		eventType, err := classify(action)
		if err != nil {
			return nil, err
		}
		evts = append(evts, domain.Event{
			ID:        len(evts) + 1,
			Firm:      key.firm,
			EventDate: key.date,
			Type:      eventType,
		})
	}
	return evts, nil
}

// isRatingChange reports whether the action text indicates a rating change.
// The match is a bare case-sensitive substring test on the source text, so
// unrelated words containing "up" (e.g. "update") also pass. Tightening the
// match would change which rows survive; classify must stay consistent with
// whatever this accepts.
func isRatingChange(action string) bool {
	return strings.Contains(action, "up") || strings.Contains(action, "down")
}

// classify maps action text to its event type. "down" wins when both
// substrings appear, matching the direction of the final grade.
func classify(action string) (domain.EventType, error) {
	switch {
	case strings.Contains(action, "down"):
		return domain.EventTypeDowngrade, nil
	case strings.Contains(action, "up"):
		return domain.EventTypeUpgrade, nil
	default:
		return "", &ClassificationError{Action: action}
	}
}
