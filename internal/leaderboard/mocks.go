package leaderboard

import (
	"github.com/stretchr/testify/mock"

	"github.com/jsalinasr/SnakeDuel/internal/game"
)

type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) InsertEntry(entry *Entry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockEntryRepository) ListEntries(query Query) ([]Entry, error) {
	args := m.Called(query)
	if entries := args.Get(0); entries != nil {
		return entries.([]Entry), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockListingCache struct {
	mock.Mock
}

func (m *MockListingCache) GetListing(mode game.Mode) ([]Entry, bool) {
	args := m.Called(mode)
	if entries := args.Get(0); entries != nil {
		return entries.([]Entry), args.Bool(1)
	}
	return nil, args.Bool(1)
}

func (m *MockListingCache) SetListing(mode game.Mode, entries []Entry) {
	m.Called(mode, entries)
}

func (m *MockListingCache) Invalidate(mode game.Mode) {
	m.Called(mode)
}
