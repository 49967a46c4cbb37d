package httpapi

import (
	"net/http"

	"github.com/riskibarqy/ihl-standings/internal/domain/team"
	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
	"github.com/riskibarqy/ihl-standings/internal/usecase"
)

// Handler serves the routes that answer in the JSON envelope.
type Handler struct {
	teamService *usecase.TeamService
	logger      *logging.Logger
}

func NewHandler(teamService *usecase.TeamService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService: teamService,
		logger:      logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type standingDTO struct {
	Rank           int     `json:"rank"`
	TeamID         int64   `json:"team_id"`
	Name           string  `json:"name"`
	LogoURL        *string `json:"logo_url"`
	GamesPlayed    int     `json:"games_played"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	OTLosses       int     `json:"ot_losses"`
	Points         int     `json:"points"`
	GoalsFor       int     `json:"goals_for"`
	GoalsAgainst   int     `json:"goals_against"`
	GoalDifference int     `json:"goal_difference"`
	Position       int     `json:"position"`
}

func standingToDTO(s team.Standing) standingDTO {
	return standingDTO{
		Rank:           s.Rank,
		TeamID:         s.Team.ID,
		Name:           s.Team.Name,
		LogoURL:        s.Team.LogoURL,
		GamesPlayed:    s.Team.GamesPlayed,
		Wins:           s.Team.Wins,
		Losses:         s.Team.Losses,
		OTLosses:       s.Team.OTLosses,
		Points:         s.Points,
		GoalsFor:       s.Team.GoalsFor,
		GoalsAgainst:   s.Team.GoalsAgainst,
		GoalDifference: s.GoalDifference,
		Position:       s.Team.Position,
	}
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	rows, err := h.teamService.ListStandings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingToDTO(row))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
