package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/ihl-standings/internal/domain/team"
)

// ErrNullName mirrors the NOT NULL constraint on teams.name.
var ErrNullName = errors.New("null value in column \"name\" violates not-null constraint")

// TeamStore keeps teams in process. It is meant for tests and local runs
// with APP_STORAGE=memory.
type TeamStore struct {
	mu     sync.RWMutex
	rows   []team.Team
	nextID int64
	now    func() time.Time

	open atomic.Int64
}

func NewTeamStore(seed []team.Team) *TeamStore {
	s := &TeamStore{now: time.Now}
	for _, item := range seed {
		if item.ID > s.nextID {
			s.nextID = item.ID
		}
		s.rows = append(s.rows, item)
	}
	return s
}

// SetClock overrides the timestamp source.
func (s *TeamStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// OpenSessions reports sessions that were opened and not yet closed.
func (s *TeamStore) OpenSessions() int64 {
	return s.open.Load()
}

func (s *TeamStore) Open(_ context.Context) (team.Session, error) {
	s.open.Add(1)
	return &teamSession{store: s}, nil
}

func (s *TeamStore) List(_ context.Context) ([]team.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]team.Team, len(s.rows))
	copy(out, s.rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})

	return out, nil
}

func (s *TeamStore) Create(_ context.Context, in team.Input) (team.Team, error) {
	if in.Name == nil {
		return team.Team{}, ErrNullName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.nextID++
	item := applyInput(team.Team{ID: s.nextID, CreatedAt: now}, in)
	item.UpdatedAt = now
	s.rows = append(s.rows, item)

	return item, nil
}

func (s *TeamStore) Update(_ context.Context, id int64, in team.Input) (team.Team, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.rows {
		if s.rows[idx].ID != id {
			continue
		}
		if in.Name == nil {
			return team.Team{}, false, ErrNullName
		}
		item := applyInput(s.rows[idx], in)
		item.UpdatedAt = s.now()
		s.rows[idx] = item
		return item, true, nil
	}

	return team.Team{}, false, nil
}

func (s *TeamStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.rows[:0]
	for _, item := range s.rows {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.rows = kept

	return nil
}

func applyInput(item team.Team, in team.Input) team.Team {
	if in.Name != nil {
		item.Name = *in.Name
	}
	item.LogoURL = nil
	if in.LogoURL != nil {
		logo := *in.LogoURL
		item.LogoURL = &logo
	}
	item.GamesPlayed = in.GamesPlayed
	item.Wins = in.Wins
	item.Losses = in.Losses
	item.OTLosses = in.OTLosses
	item.GoalsFor = in.GoalsFor
	item.GoalsAgainst = in.GoalsAgainst
	item.Position = in.Position
	return item
}

type teamSession struct {
	store  *TeamStore
	closed atomic.Bool
}

func (s *teamSession) List(ctx context.Context) ([]team.Team, error) {
	return s.store.List(ctx)
}

func (s *teamSession) Create(ctx context.Context, in team.Input) (team.Team, error) {
	return s.store.Create(ctx, in)
}

func (s *teamSession) Update(ctx context.Context, id int64, in team.Input) (team.Team, bool, error) {
	return s.store.Update(ctx, id, in)
}

func (s *teamSession) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *teamSession) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		s.store.open.Add(-1)
	}
	return nil
}
