package accesslog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"noteshare/internal/domain/note"
	"noteshare/internal/utils/logger"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, entry Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) ListRecent(ctx context.Context, userID string, limit int) ([]Entry, error) {
	args := m.Called(ctx, userID, limit)
	entries, _ := args.Get(0).([]Entry)
	return entries, args.Error(1)
}

func (m *MockRepository) CountOlderThan(ctx context.Context, userID string, before time.Time) (int, error) {
	args := m.Called(ctx, userID, before)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) DeleteOlderThan(ctx context.Context, userID string, before time.Time) error {
	args := m.Called(ctx, userID, before)
	return args.Error(0)
}

// stubNotes resolves ids from a map and counts concurrent lookups.
type stubNotes struct {
	notes    map[string]note.Note
	failing  map[string]error
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (s *stubNotes) Get(_ context.Context, id string) (note.Note, error) {
	cur := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if cur <= p || s.peak.CompareAndSwap(p, cur) {
			break
		}
	}
	time.Sleep(time.Millisecond)

	if err, ok := s.failing[id]; ok {
		return note.Note{}, err
	}
	n, ok := s.notes[id]
	if !ok {
		return note.Note{}, note.ErrNotFound
	}
	return n, nil
}

type stubIP string

func (s stubIP) PublicIP(context.Context) string { return string(s) }

var fixedNow = time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)

const testUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:131.0) Gecko/20100101 Firefox/131.0"

func newTestService(repo Repository, notes NoteFinder, ip IPResolver, concurrency int) *Service {
	clock := func() time.Time { return fixedNow }
	return NewService(repo, notes, ip, Config{UserAgent: testUA, EnrichConcurrency: concurrency, Now: clock}, logger.Discard())
}

func TestService_Record(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, nil, stubIP("203.0.113.7"), 0)

	expected := Entry{
		UserID:    "u-1",
		NoteID:    "n-1",
		Action:    ActionView,
		IPAddress: "203.0.113.7",
		UserAgent: testUA,
		Browser:   "Firefox",
		OS:        "Windows",
		Device:    DeviceDesktop,
	}
	mockRepo.On("Create", mock.Anything, expected).Return(nil)

	res := service.Record(context.Background(), "u-1", "n-1", ActionView)

	assert.True(t, res.Success)
	mockRepo.AssertExpectations(t)
}

func TestService_Record_UnknownIPWithoutResolver(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, nil, nil, 0)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(e Entry) bool {
		return e.IPAddress == UnknownIP
	})).Return(nil)

	assert.True(t, service.Record(context.Background(), "u-1", "n-1", ActionEdit).Success)
	mockRepo.AssertExpectations(t)
}

func TestService_Record_InsertFails(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, nil, stubIP(UnknownIP), 0)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("401"))

	res := service.Record(context.Background(), "u-1", "n-1", ActionEdit)

	assert.False(t, res.Success)
	assert.Equal(t, "record access: 401", res.Message)
}

func TestService_Recent_AttachesTitles(t *testing.T) {
	mockRepo := new(MockRepository)
	notes := &stubNotes{
		notes: map[string]note.Note{
			"n-1": {ID: "n-1", Title: "first"},
			"n-3": {ID: "n-3", Title: "third"},
		},
		failing: map[string]error{"n-4": errors.New("timeout")},
	}
	service := newTestService(mockRepo, notes, nil, 2)

	entries := []Entry{
		{ID: "l-5", NoteID: "n-1", Action: ActionView},
		{ID: "l-4", NoteID: "n-2", Action: ActionEdit},
		{ID: "l-3", NoteID: "n-3", Action: ActionView},
		{ID: "l-2", NoteID: "n-4", Action: ActionView},
		{ID: "l-1", NoteID: "", Action: ActionView},
	}
	mockRepo.On("ListRecent", mock.Anything, "u-1", RecentLimit).Return(entries, nil)

	res := service.Recent(context.Background(), "u-1")

	require.True(t, res.Success)
	require.Len(t, res.Entries, 5)

	ids := make([]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"l-5", "l-4", "l-3", "l-2", "l-1"}, ids)

	assert.Equal(t, "first", res.Entries[0].NoteTitle)
	assert.Empty(t, res.Entries[1].NoteTitle, "deleted note has no title")
	assert.Equal(t, "third", res.Entries[2].NoteTitle)
	assert.Empty(t, res.Entries[3].NoteTitle, "failed lookup has no title")
	assert.Empty(t, res.Entries[4].NoteTitle)

	assert.LessOrEqual(t, notes.peak.Load(), int32(2))
}

func TestService_Recent_ListFails(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, &stubNotes{}, nil, 0)

	mockRepo.On("ListRecent", mock.Anything, "u-1", RecentLimit).Return(nil, errors.New("boom"))

	res := service.Recent(context.Background(), "u-1")

	assert.False(t, res.Success)
	assert.NotNil(t, res.Entries)
	assert.Empty(t, res.Entries)
}

func TestService_Prune(t *testing.T) {
	cutoff := fixedNow.Add(-14 * 24 * time.Hour)

	tests := []struct {
		name         string
		setup        func(m *MockRepository)
		wantSuccess  bool
		wantDeleted  int
		expectDelete bool
	}{
		{
			name: "nothing to prune",
			setup: func(m *MockRepository) {
				m.On("CountOlderThan", mock.Anything, "u-1", cutoff).Return(0, nil)
			},
			wantSuccess: true,
		},
		{
			name: "prunes old entries",
			setup: func(m *MockRepository) {
				m.On("CountOlderThan", mock.Anything, "u-1", cutoff).Return(7, nil)
				m.On("DeleteOlderThan", mock.Anything, "u-1", cutoff).Return(nil)
			},
			wantSuccess:  true,
			wantDeleted:  7,
			expectDelete: true,
		},
		{
			name: "count fails",
			setup: func(m *MockRepository) {
				m.On("CountOlderThan", mock.Anything, "u-1", cutoff).Return(0, errors.New("boom"))
			},
		},
		{
			name: "delete fails",
			setup: func(m *MockRepository) {
				m.On("CountOlderThan", mock.Anything, "u-1", cutoff).Return(1, nil)
				m.On("DeleteOlderThan", mock.Anything, "u-1", cutoff).Return(errors.New("boom"))
			},
			expectDelete: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setup(mockRepo)
			service := newTestService(mockRepo, nil, nil, 0)

			res := service.Prune(context.Background(), "u-1")

			assert.Equal(t, tt.wantSuccess, res.Success)
			assert.Equal(t, tt.wantDeleted, res.DeletedCount)
			if !tt.expectDelete {
				mockRepo.AssertNotCalled(t, "DeleteOlderThan", mock.Anything, mock.Anything, mock.Anything)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
