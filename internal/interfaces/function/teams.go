package function

import (
	"context"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/ihl-standings/internal/domain/team"
	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
	"github.com/riskibarqy/ihl-standings/internal/usecase"
)

// TeamsHandler serves the teams resource.
type TeamsHandler struct {
	service *usecase.TeamService
	logger  *logging.Logger
}

func NewTeamsHandler(service *usecase.TeamService, logger *logging.Logger) *TeamsHandler {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamsHandler{
		service: service,
		logger:  logger,
	}
}

// teamPayload is the accepted body for create and update. Absent numeric
// fields stay zero and absent strings stay nil.
type teamPayload struct {
	Name         *string `json:"name"`
	LogoURL      *string `json:"logo_url"`
	GamesPlayed  int     `json:"games_played"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	OTLosses     int     `json:"ot_losses"`
	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
	Position     int     `json:"position"`
}

func (p teamPayload) toInput() team.Input {
	return team.Input{
		Name:         p.Name,
		LogoURL:      p.LogoURL,
		GamesPlayed:  p.GamesPlayed,
		Wins:         p.Wins,
		Losses:       p.Losses,
		OTLosses:     p.OTLosses,
		GoalsFor:     p.GoalsFor,
		GoalsAgainst: p.GoalsAgainst,
		Position:     p.Position,
	}
}

type teamDTO struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	LogoURL      *string   `json:"logo_url"`
	GamesPlayed  int       `json:"games_played"`
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	OTLosses     int       `json:"ot_losses"`
	GoalsFor     int       `json:"goals_for"`
	GoalsAgainst int       `json:"goals_against"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:           item.ID,
		Name:         item.Name,
		LogoURL:      item.LogoURL,
		GamesPlayed:  item.GamesPlayed,
		Wins:         item.Wins,
		Losses:       item.Losses,
		OTLosses:     item.OTLosses,
		GoalsFor:     item.GoalsFor,
		GoalsAgainst: item.GoalsAgainst,
		Position:     item.Position,
		CreatedAt:    item.CreatedAt.UTC(),
		UpdatedAt:    item.UpdatedAt.UTC(),
	}
}

func (h *TeamsHandler) Handle(ctx context.Context, req Request) (Response, error) {
	method := req.method(MethodGet)
	ctx, span := startSpan(ctx, "function.TeamsHandler.Handle", method)
	defer span.End()

	switch method {
	case MethodOptions:
		return preflight(MethodGet, MethodPost, MethodPut, MethodDelete, MethodOptions), nil
	case MethodGet:
		return h.list(ctx)
	case MethodPost:
		return h.create(ctx, req)
	case MethodPut:
		return h.update(ctx, req)
	case MethodDelete:
		return h.delete(ctx, req)
	default:
		h.logger.WarnContext(ctx, "teams method not allowed", "method", string(method))
		return methodNotAllowed()
	}
}

func (h *TeamsHandler) list(ctx context.Context) (Response, error) {
	items, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		return Response{}, err
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return jsonResponse(http.StatusOK, out)
}

func (h *TeamsHandler) create(ctx context.Context, req Request) (Response, error) {
	payload, err := decodeTeamPayload(req)
	if err != nil {
		return Response{}, err
	}

	created, err := h.service.Create(ctx, payload.toInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "create team failed", "error", err)
		return Response{}, err
	}

	return jsonResponse(http.StatusCreated, teamToDTO(created))
}

func (h *TeamsHandler) update(ctx context.Context, req Request) (Response, error) {
	payload, err := decodeTeamPayload(req)
	if err != nil {
		return Response{}, err
	}

	updated, found, err := h.service.Update(ctx, req.pathParam("id"), payload.toInput())
	if err != nil {
		h.logger.ErrorContext(ctx, "update team failed", "error", err)
		return Response{}, err
	}
	if !found {
		return jsonResponse(http.StatusOK, struct{}{})
	}

	return jsonResponse(http.StatusOK, teamToDTO(updated))
}

func (h *TeamsHandler) delete(ctx context.Context, req Request) (Response, error) {
	if err := h.service.Delete(ctx, req.pathParam("id")); err != nil {
		h.logger.ErrorContext(ctx, "delete team failed", "error", err)
		return Response{}, err
	}

	return jsonResponse(http.StatusOK, successBody{Success: true})
}

func decodeTeamPayload(req Request) (teamPayload, error) {
	var payload teamPayload
	if err := sonic.UnmarshalString(req.bodyOrEmptyObject(), &payload); err != nil {
		return teamPayload{}, errors.Wrap(err, "decode team payload")
	}
	return payload, nil
}
