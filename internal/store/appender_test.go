package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestAppend_MoodScenario(t *testing.T) {
	s := newTestStore(t)
	a := NewAppender(s)
	ctx := context.Background()

	before := time.Now().UTC()
	rec, err := a.Append(ctx, CollectionMoods, Fields{"mood": "calm", "note": "ok"})
	if err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}

	mood, ok := rec.(MoodRecord)
	if !ok {
		t.Fatalf("Append() returned %T, want MoodRecord", rec)
	}
	if mood.Mood != "calm" || mood.Note != "ok" {
		t.Errorf("Append() record = %+v, want mood=calm note=ok", mood)
	}
	if mood.ID <= 0 {
		t.Errorf("Append() id = %d, want positive", mood.ID)
	}

	stamped, err := time.Parse(time.RFC3339, mood.Time)
	if err != nil {
		t.Fatalf("Append() time %q does not parse: %v", mood.Time, err)
	}
	if d := stamped.Sub(before); d < -time.Second || d > time.Second {
		t.Errorf("Append() time %v not within 1s of call", stamped)
	}

	second, err := a.Append(ctx, CollectionMoods, Fields{"mood": "sad"})
	if err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}
	sadMood := second.(MoodRecord)
	if sadMood.ID == mood.ID {
		t.Errorf("Append() reused id %d", mood.ID)
	}

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(doc.Moods) != 2 {
		t.Fatalf("Load() moods length = %d, want 2", len(doc.Moods))
	}
	if doc.Moods[0] != mood {
		t.Errorf("Load() first record = %+v, want unchanged %+v", doc.Moods[0], mood)
	}
}

func TestAppend_ConcurrentIsolation(t *testing.T) {
	s := newTestStore(t)
	a := NewAppender(s)
	ctx := context.Background()

	const perCollection = 10
	collections := []string{CollectionMoods, CollectionWebcam, CollectionSleep}

	var wg sync.WaitGroup
	for _, collection := range collections {
		for i := 0; i < perCollection; i++ {
			wg.Add(1)
			go func(collection string) {
				defer wg.Done()
				if _, err := a.Append(ctx, collection, Fields{}); err != nil {
					t.Errorf("Append(%s) unexpected error: %v", collection, err)
				}
			}(collection)
		}
	}
	wg.Wait()

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	total := len(doc.Moods) + len(doc.Webcam) + len(doc.Sleep)
	if want := perCollection * len(collections); total != want {
		t.Errorf("Load() total records = %d, want %d (no appends lost)", total, want)
	}

	seen := make(map[int64]bool)
	for _, r := range doc.Moods {
		seen[r.ID] = true
	}
	for _, r := range doc.Webcam {
		seen[r.ID] = true
	}
	for _, r := range doc.Sleep {
		seen[r.ID] = true
	}
	if len(seen) != perCollection*len(collections) {
		t.Errorf("Append() produced %d unique ids, want %d", len(seen), perCollection*len(collections))
	}
}

func TestAppend_IDsStrictlyIncreasing(t *testing.T) {
	s := newTestStore(t)
	a := NewAppender(s)

	// Freeze the clock so every append would compute the same
	// millisecond id without the bump-past-max rule.
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return fixed }

	ctx := context.Background()
	var prev int64
	for i := 0; i < 5; i++ {
		rec, err := a.Append(ctx, CollectionSleep, Fields{"hours": 7.5, "quality": "good"})
		if err != nil {
			t.Fatalf("Append() unexpected error: %v", err)
		}
		id := rec.(SleepRecord).ID
		if id <= prev {
			t.Errorf("Append() id = %d, want > %d", id, prev)
		}
		prev = id
	}
}

func TestAppend_UnknownCollection(t *testing.T) {
	s := newTestStore(t)
	a := NewAppender(s)

	for _, name := range []string{"nope", "customBot", ""} {
		if _, err := a.Append(context.Background(), name, Fields{}); !errors.Is(err, ErrUnknownCollection) {
			t.Errorf("Append(%q) error = %v, want ErrUnknownCollection", name, err)
		}
	}
}

func TestAppend_JournalStampsIdentity(t *testing.T) {
	s := newTestStore(t)
	a := NewAppender(s)
	ctx := context.Background()

	rec, err := a.Append(ctx, CollectionJournals, Fields{"text": "slept well, long walk"})
	if err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}
	entry := rec.(JournalEntry)
	if entry["text"] != "slept well, long walk" {
		t.Errorf("Append() entry text = %v, want caller value preserved", entry["text"])
	}
	if id, ok := entry["id"].(string); !ok || id == "" {
		t.Errorf("Append() entry id = %v, want generated uuid string", entry["id"])
	}
	if ts, ok := entry["time"].(string); !ok || ts == "" {
		t.Errorf("Append() entry time = %v, want stamped timestamp", entry["time"])
	}

	// Caller-supplied identity is kept verbatim.
	rec, err = a.Append(ctx, CollectionJournals, Fields{"id": "mine", "time": "2025-01-01T00:00:00Z", "extra": true})
	if err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}
	entry = rec.(JournalEntry)
	if entry["id"] != "mine" || entry["time"] != "2025-01-01T00:00:00Z" || entry["extra"] != true {
		t.Errorf("Append() entry = %v, want caller fields verbatim", entry)
	}
}

func TestAppend_WebcamDefaults(t *testing.T) {
	s := newTestStore(t)
	a := NewAppender(s)

	rec, err := a.Append(context.Background(), CollectionWebcam, Fields{"filename": "snap_1.jpg"})
	if err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}
	snap := rec.(WebcamRecord)
	if snap.EstimatedMood != "unlabeled" {
		t.Errorf("Append() estimatedMood = %q, want %q", snap.EstimatedMood, "unlabeled")
	}
	if snap.Filename != "snap_1.jpg" {
		t.Errorf("Append() filename = %q, want snap_1.jpg", snap.Filename)
	}
	if snap.Notes != "" {
		t.Errorf("Append() notes = %q, want empty", snap.Notes)
	}
	if snap.Timestamp == "" {
		t.Error("Append() timestamp missing")
	}
}

func TestAppend_SleepFields(t *testing.T) {
	s := newTestStore(t)
	a := NewAppender(s)

	rec, err := a.Append(context.Background(), CollectionSleep, Fields{"hours": 6.5, "quality": "restless"})
	if err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}
	sleep := rec.(SleepRecord)
	if sleep.Hours != 6.5 || sleep.Quality != "restless" {
		t.Errorf("Append() record = %+v, want hours=6.5 quality=restless", sleep)
	}
	if sleep.Time == "" {
		t.Error("Append() time missing")
	}
}
