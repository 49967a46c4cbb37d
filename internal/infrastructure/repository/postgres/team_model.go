package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/ihl-standings/internal/domain/team"
)

const teamsTable = "teams"

var teamColumns = []string{
	"id",
	"name",
	"logo_url",
	"games_played",
	"wins",
	"losses",
	"ot_losses",
	"goals_for",
	"goals_against",
	"position",
	"created_at",
	"updated_at",
}

type teamTableModel struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	LogoURL      sql.NullString `db:"logo_url"`
	GamesPlayed  int            `db:"games_played"`
	Wins         int            `db:"wins"`
	Losses       int            `db:"losses"`
	OTLosses     int            `db:"ot_losses"`
	GoalsFor     int            `db:"goals_for"`
	GoalsAgainst int            `db:"goals_against"`
	Position     int            `db:"position"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// teamWriteModel lists the columns written by both INSERT and UPDATE.
type teamWriteModel struct {
	Name         *string `db:"name"`
	LogoURL      *string `db:"logo_url"`
	GamesPlayed  int     `db:"games_played"`
	Wins         int     `db:"wins"`
	Losses       int     `db:"losses"`
	OTLosses     int     `db:"ot_losses"`
	GoalsFor     int     `db:"goals_for"`
	GoalsAgainst int     `db:"goals_against"`
	Position     int     `db:"position"`
}

func teamWriteModelFromInput(in team.Input) teamWriteModel {
	return teamWriteModel{
		Name:         in.Name,
		LogoURL:      in.LogoURL,
		GamesPlayed:  in.GamesPlayed,
		Wins:         in.Wins,
		Losses:       in.Losses,
		OTLosses:     in.OTLosses,
		GoalsFor:     in.GoalsFor,
		GoalsAgainst: in.GoalsAgainst,
		Position:     in.Position,
	}
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:           row.ID,
		Name:         row.Name,
		LogoURL:      nullStringToPtr(row.LogoURL),
		GamesPlayed:  row.GamesPlayed,
		Wins:         row.Wins,
		Losses:       row.Losses,
		OTLosses:     row.OTLosses,
		GoalsFor:     row.GoalsFor,
		GoalsAgainst: row.GoalsAgainst,
		Position:     row.Position,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
