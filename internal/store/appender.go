package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownCollection is returned when a record is appended to a
// collection name the document does not define. This is a programmer
// error, not user input.
var ErrUnknownCollection = errors.New("unknown collection")

// Fields carries the caller-supplied values for a new record. Missing
// fields receive per-collection defaults at append time.
type Fields map[string]any

// Appender appends records to the document's named collections with a
// server-assigned identity, all through a single store mutation.
type Appender struct {
	store *Store
	now   func() time.Time
}

// NewAppender creates an Appender backed by s.
func NewAppender(s *Store) *Appender {
	return &Appender{store: s, now: time.Now}
}

// Append builds a record for the named collection from fields, assigns
// its id and timestamp defaults, persists it, and returns the record
// that was stored. Ids are wall-clock milliseconds bumped past the
// current maximum, so they stay strictly increasing even when appends
// land within the same millisecond.
func (a *Appender) Append(ctx context.Context, collection string, fields Fields) (any, error) {
	var rec any

	_, err := a.store.Mutate(ctx, func(doc *Document) error {
		now := a.now().UTC()
		built, err := buildRecord(doc, collection, fields, now)
		if err != nil {
			return err
		}
		rec = built
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func buildRecord(doc *Document, collection string, fields Fields, now time.Time) (any, error) {
	switch collection {
	case CollectionMoods:
		r := MoodRecord{
			ID:   nextID(doc, now),
			Mood: stringField(fields, "mood"),
			Note: stringField(fields, "note"),
			Time: stringField(fields, "time"),
		}
		if r.Time == "" {
			r.Time = now.Format(time.RFC3339)
		}
		doc.Moods = append(doc.Moods, r)
		return r, nil

	case CollectionJournals:
		entry := JournalEntry{}
		for k, v := range fields {
			entry[k] = v
		}
		if _, ok := entry["id"]; !ok {
			entry["id"] = uuid.New().String()
		}
		if _, ok := entry["time"]; !ok {
			entry["time"] = now.Format(time.RFC3339)
		}
		doc.Journals = append(doc.Journals, entry)
		return entry, nil

	case CollectionWebcam:
		r := WebcamRecord{
			ID:            nextID(doc, now),
			Filename:      stringField(fields, "filename"),
			Timestamp:     now.Format(time.RFC3339),
			EstimatedMood: stringField(fields, "estimatedMood"),
			Notes:         stringField(fields, "notes"),
		}
		if r.EstimatedMood == "" {
			r.EstimatedMood = "unlabeled"
		}
		doc.Webcam = append(doc.Webcam, r)
		return r, nil

	case CollectionSleep:
		r := SleepRecord{
			ID:      nextID(doc, now),
			Hours:   floatField(fields, "hours"),
			Quality: stringField(fields, "quality"),
			Time:    stringField(fields, "time"),
		}
		if r.Time == "" {
			r.Time = now.Format(time.RFC3339)
		}
		doc.Sleep = append(doc.Sleep, r)
		return r, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
}

func nextID(doc *Document, now time.Time) int64 {
	id := now.UnixMilli()
	if max := maxID(doc); id <= max {
		id = max + 1
	}
	return id
}

func maxID(doc *Document) int64 {
	var max int64
	for _, r := range doc.Moods {
		if r.ID > max {
			max = r.ID
		}
	}
	for _, r := range doc.Webcam {
		if r.ID > max {
			max = r.ID
		}
	}
	for _, r := range doc.Sleep {
		if r.ID > max {
			max = r.ID
		}
	}
	return max
}

func stringField(fields Fields, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func floatField(fields Fields, key string) float64 {
	switch v := fields[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
