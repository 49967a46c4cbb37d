package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/ihl-standings/internal/domain/team"
	qb "github.com/riskibarqy/ihl-standings/internal/platform/querybuilder"
)

// TeamRepository runs single auto-committed statements against the teams
// table.
type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := buildListTeamsQuery()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}

	return out, nil
}

func (r *TeamRepository) Create(ctx context.Context, in team.Input) (team.Team, error) {
	query, args, err := buildCreateTeamQuery(in)
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	return teamFromRow(row), nil
}

func (r *TeamRepository) Update(ctx context.Context, id int64, in team.Input) (team.Team, bool, error) {
	query, args, err := buildUpdateTeamQuery(id, in)
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build update team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("update team id=%d: %w", id, err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom(teamsTable).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete team id=%d: %w", id, err)
	}

	return nil
}

func buildListTeamsQuery() (string, []any, error) {
	return qb.Select(teamColumns...).From(teamsTable).OrderBy("position ASC").ToSQL()
}

func buildCreateTeamQuery(in team.Input) (string, []any, error) {
	return qb.InsertModel(teamsTable, teamWriteModelFromInput(in), returningTeamColumns())
}

func buildUpdateTeamQuery(id int64, in team.Input) (string, []any, error) {
	b, err := qb.UpdateModel(teamsTable, teamWriteModelFromInput(in))
	if err != nil {
		return "", nil, err
	}

	return b.SetExpr("updated_at", "CURRENT_TIMESTAMP").
		Where(qb.Eq("id", id)).
		Suffix(returningTeamColumns()).
		ToSQL()
}

func returningTeamColumns() string {
	return "RETURNING " + strings.Join(teamColumns, ", ")
}
