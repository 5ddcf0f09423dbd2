package leaderboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsalinasr/SnakeDuel/internal/user"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

type LeaderboardService struct {
	repo  EntryRepository
	cache ListingCache
}

func NewLeaderboardService(repo EntryRepository, cache ListingCache) *LeaderboardService {
	return &LeaderboardService{repo: repo, cache: cache}
}

// Submit records a score for the authenticated user. There is no
// idempotency key: every accepted submission is a new row.
func (s *LeaderboardService) Submit(submitter *user.PublicUser, submission ScoreSubmission) (*Entry, error) {
	if !submission.Mode.Valid() {
		return nil, ErrInvalidMode
	}

	entry := &Entry{
		ID:        uuid.New().String(),
		Username:  submitter.Username,
		Score:     submission.Score,
		Mode:      submission.Mode,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertEntry(entry); err != nil {
		return nil, err
	}

	s.cache.Invalidate(submission.Mode)
	return entry, nil
}

func (s *LeaderboardService) List(query Query) ([]Entry, error) {
	if query.Mode != "" && !query.Mode.Valid() {
		return nil, ErrInvalidMode
	}
	if query.Limit <= 0 {
		query.Limit = defaultLimit
	}
	if query.Limit > maxLimit {
		query.Limit = maxLimit
	}

	// Only the default page is cached; paginated reads go straight to
	// the store.
	cacheable := query.Offset == 0 && query.Limit == defaultLimit
	if cacheable {
		if entries, ok := s.cache.GetListing(query.Mode); ok {
			return entries, nil
		}
	}

	entries, err := s.repo.ListEntries(query)
	if err != nil {
		return nil, err
	}

	if cacheable {
		s.cache.SetListing(query.Mode, entries)
	}
	return entries, nil
}
