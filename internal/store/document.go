package store

// Names of the appendable collections inside the document.
const (
	CollectionMoods    = "moods"
	CollectionJournals = "journals"
	CollectionWebcam   = "webcam"
	CollectionSleep    = "sleep"
)

// MoodRecord is one logged mood check-in.
type MoodRecord struct {
	ID   int64  `json:"id"`
	Mood string `json:"mood"`
	Note string `json:"note"`
	Time string `json:"time"`
}

// JournalEntry is a caller-shaped journal object. Entries are persisted
// with whatever fields the client sent; the server only stamps "id" and
// "time" when they are absent.
type JournalEntry map[string]any

// WebcamRecord references a snapshot image stored beside the document.
// The image file itself is not covered by the store's guarantees.
type WebcamRecord struct {
	ID            int64  `json:"id"`
	Filename      string `json:"filename"`
	Timestamp     string `json:"timestamp"`
	EstimatedMood string `json:"estimatedMood"`
	Notes         string `json:"notes"`
}

// SleepRecord is one logged night of sleep.
type SleepRecord struct {
	ID      int64   `json:"id"`
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality"`
	Time    string  `json:"time"`
}

// BotProfile configures the companion's persona. All fields default to
// the empty string; prompt assembly substitutes documented defaults.
type BotProfile struct {
	Personality  string `json:"personality"`
	Tone         string `json:"tone"`
	Instructions string `json:"instructions"`
}

// Document is the root object persisted to the data file. Every
// collection field is always present after a load, even when empty.
type Document struct {
	Moods     []MoodRecord   `json:"moods"`
	Journals  []JournalEntry `json:"journals"`
	Webcam    []WebcamRecord `json:"webcam"`
	Sleep     []SleepRecord  `json:"sleep"`
	CustomBot *BotProfile    `json:"customBot"`
}

// normalize fills in collection fields that are missing from an older or
// hand-edited file. Missing fields are not corruption.
func (d *Document) normalize() {
	if d.Moods == nil {
		d.Moods = []MoodRecord{}
	}
	if d.Journals == nil {
		d.Journals = []JournalEntry{}
	}
	if d.Webcam == nil {
		d.Webcam = []WebcamRecord{}
	}
	if d.Sleep == nil {
		d.Sleep = []SleepRecord{}
	}
}
