package store

import "context"

// BotRepo provides access to the stored companion profile.
type BotRepo struct {
	store *Store
}

// NewBotRepo creates a new BotRepo.
func NewBotRepo(s *Store) *BotRepo {
	return &BotRepo{store: s}
}

// Get returns the stored profile, or the all-empty default if none was
// ever saved.
func (r *BotRepo) Get() (BotProfile, error) {
	doc, err := r.store.Load()
	if err != nil {
		return BotProfile{}, err
	}
	if doc.CustomBot == nil {
		return BotProfile{}, nil
	}
	return *doc.CustomBot, nil
}

// Set replaces the stored profile wholesale. Fields the caller left out
// stay blank; last writer wins for the whole profile.
func (r *BotRepo) Set(ctx context.Context, profile BotProfile) (BotProfile, error) {
	_, err := r.store.Mutate(ctx, func(doc *Document) error {
		doc.CustomBot = &profile
		return nil
	})
	if err != nil {
		return BotProfile{}, err
	}
	return profile, nil
}
