package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/ihl-standings/internal/domain/team"
	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
)

// TeamService runs every operation on its own session: the session is
// opened first and closed on every exit path, and operation errors are
// returned unchanged in meaning.
type TeamService struct {
	opener team.Opener
	logger *logging.Logger
}

func NewTeamService(opener team.Opener, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		opener: opener,
		logger: logger,
	}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	var out []team.Team
	err := s.withSession(ctx, func(repo team.Repository) error {
		items, err := repo.List(ctx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *TeamService) ListStandings(ctx context.Context) ([]team.Standing, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return team.Standings(items), nil
}

func (s *TeamService) Create(ctx context.Context, in team.Input) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	var out team.Team
	err := s.withSession(ctx, func(repo team.Repository) error {
		created, err := repo.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("create team: %w", err)
		}
		out = created
		return nil
	})
	if err != nil {
		return team.Team{}, err
	}

	s.logger.InfoContext(ctx, "team created", "team_id", out.ID, "position", out.Position)
	return out, nil
}

// Update overwrites every mutable field of the team. The boolean is false
// when no row carries the id; a blank id never matches.
func (s *TeamService) Update(ctx context.Context, rawID string, in team.Input) (team.Team, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	id, ok, err := parseTeamID(rawID)
	if err != nil {
		return team.Team{}, false, err
	}

	var (
		out   team.Team
		found bool
	)
	err = s.withSession(ctx, func(repo team.Repository) error {
		if !ok {
			return nil
		}
		updated, exists, err := repo.Update(ctx, id, in)
		if err != nil {
			return fmt.Errorf("update team: %w", err)
		}
		out, found = updated, exists
		return nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	if !found {
		s.logger.InfoContext(ctx, "team update matched no row", "team_id", strings.TrimSpace(rawID))
		return team.Team{}, false, nil
	}
	s.logger.InfoContext(ctx, "team updated", "team_id", out.ID)
	return out, true, nil
}

// Delete removes the team if it exists. Missing ids are not an error.
func (s *TeamService) Delete(ctx context.Context, rawID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	id, ok, err := parseTeamID(rawID)
	if err != nil {
		return err
	}

	err = s.withSession(ctx, func(repo team.Repository) error {
		if !ok {
			return nil
		}
		if err := repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete team: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", strings.TrimSpace(rawID))
	return nil
}

func (s *TeamService) withSession(ctx context.Context, fn func(team.Repository) error) (err error) {
	if s.opener == nil {
		return fmt.Errorf("%w: team storage is not configured", ErrDependencyUnavailable)
	}

	session, err := s.opener.Open(ctx)
	if err != nil {
		return fmt.Errorf("%w: open team session: %v", ErrDependencyUnavailable, err)
	}
	defer func() {
		closeErr := session.Close()
		if closeErr == nil {
			return
		}
		s.logger.WarnContext(ctx, "close team session failed", "error", closeErr)
		if err == nil {
			err = closeErr
		}
	}()

	return fn(session)
}

// parseTeamID reports ok=false for a blank id.
func parseTeamID(raw string) (int64, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: team id %q is not an integer", ErrInvalidInput, raw)
	}

	return id, true, nil
}
