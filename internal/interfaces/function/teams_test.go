package function

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/ihl-standings/internal/domain/team"
	"github.com/riskibarqy/ihl-standings/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
	"github.com/riskibarqy/ihl-standings/internal/usecase"
	"github.com/stretchr/testify/require"
)

type decodedTeam struct {
	ID           int64     `json:"id"`
	Name         *string   `json:"name"`
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

func body(v string) *string { return &v }

func newTeamsHandler(t *testing.T, seed []team.Team) (*TeamsHandler, *memory.TeamStore) {
	t.Helper()

	store := memory.NewTeamStore(seed)
	svc := usecase.NewTeamService(store, logging.NewNop())
	return NewTeamsHandler(svc, logging.NewNop()), store
}

func decodeBody(t *testing.T, resp Response, out any) {
	t.Helper()
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(resp.Body, out); err != nil {
		t.Fatalf("decode response body %q: %v", resp.Body, err)
	}
}

func requireJSONHeaders(t *testing.T, resp Response) {
	t.Helper()
	require.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	require.Equal(t, "application/json", resp.Headers["Content-Type"])
	require.False(t, resp.IsBase64Encoded)
}

func TestTeamsHandler_PostDefaultsOmittedNumericFields(t *testing.T) {
	handler, store := newTeamsHandler(t, nil)

	resp, err := handler.Handle(context.Background(), Request{
		HTTPMethod: "POST",
		Body:       body(`{"name":"Polar Bears","wins":5,"goals_for":17,"position":3}`),
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	requireJSONHeaders(t, resp)

	var got decodedTeam
	decodeBody(t, resp, &got)
	require.NotZero(t, got.ID)
	require.Equal(t, "Polar Bears", *got.Name)
	require.Nil(t, got.LogoURL)
	require.Equal(t, 5, got.Wins)
	require.Equal(t, 17, got.GoalsFor)
	require.Equal(t, 3, got.Position)
	require.Zero(t, got.GamesPlayed)
	require.Zero(t, got.Losses)
	require.Zero(t, got.OTLosses)
	require.Zero(t, got.GoalsAgainst)
	require.False(t, got.CreatedAt.IsZero())
	require.Zero(t, store.OpenSessions())
}

func TestTeamsHandler_PostNullNumericBecomesZero(t *testing.T) {
	handler, _ := newTeamsHandler(t, nil)

	resp, err := handler.Handle(context.Background(), Request{
		HTTPMethod: "POST",
		Body:       body(`{"name":"Hawks","wins":null,"unknown":"ignored"}`),
	})
	require.NoError(t, err)

	var got decodedTeam
	decodeBody(t, resp, &got)
	require.Zero(t, got.Wins)
}

func TestTeamsHandler_GetOrdersByPosition(t *testing.T) {
	handler, _ := newTeamsHandler(t, []team.Team{
		{ID: 1, Name: "C", Position: 5},
		{ID: 2, Name: "A", Position: 1},
		{ID: 3, Name: "B", Position: 1},
		{ID: 4, Name: "D", Position: 2},
	})

	resp, err := handler.Handle(context.Background(), Request{HTTPMethod: "GET"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	requireJSONHeaders(t, resp)

	var got []decodedTeam
	decodeBody(t, resp, &got)
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		if got[i-1].Position > got[i].Position {
			t.Fatalf("positions not non-decreasing at %d: %d > %d", i, got[i-1].Position, got[i].Position)
		}
	}
}

func TestTeamsHandler_EmptyMethodDefaultsToGet(t *testing.T) {
	handler, _ := newTeamsHandler(t, nil)

	resp, err := handler.Handle(context.Background(), Request{})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "[]", resp.Body)
}

func TestTeamsHandler_PutOverwritesAndRefreshesUpdatedAt(t *testing.T) {
	handler, store := newTeamsHandler(t, nil)
	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time { return created })

	resp, err := handler.Handle(context.Background(), Request{
		HTTPMethod: "POST",
		Body:       body(`{"name":"Sharks","logo_url":"/uploads/x.png","wins":9,"losses":2,"goals_for":30,"position":1}`),
	})
	require.NoError(t, err)
	var before decodedTeam
	decodeBody(t, resp, &before)

	store.SetClock(func() time.Time { return created.Add(time.Hour) })
	resp, err = handler.Handle(context.Background(), Request{
		HTTPMethod: "PUT",
		PathParams: map[string]string{"id": "1"},
		Body:       body(`{"name":"Sharks","wins":10}`),
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var after decodedTeam
	decodeBody(t, resp, &after)
	require.Equal(t, before.ID, after.ID)
	require.Equal(t, 10, after.Wins)
	require.Zero(t, after.Losses)
	require.Zero(t, after.GoalsFor)
	require.Zero(t, after.Position)
	require.Nil(t, after.LogoURL)
	require.False(t, after.UpdatedAt.Before(before.UpdatedAt))
	require.True(t, after.CreatedAt.Equal(before.CreatedAt))
}

func TestTeamsHandler_PutMissingIDReturnsEmptyObject(t *testing.T) {
	handler, _ := newTeamsHandler(t, []team.Team{{ID: 1, Name: "A"}})

	for _, params := range []map[string]string{{"id": "999"}, nil} {
		resp, err := handler.Handle(context.Background(), Request{
			HTTPMethod: "PUT",
			PathParams: params,
			Body:       body(`{"name":"B"}`),
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "{}", resp.Body)
	}
}

func TestTeamsHandler_DeleteAlwaysSucceeds(t *testing.T) {
	handler, store := newTeamsHandler(t, []team.Team{{ID: 1, Name: "A"}})

	for _, id := range []string{"1", "1", "42"} {
		resp, err := handler.Handle(context.Background(), Request{
			HTTPMethod: "DELETE",
			PathParams: map[string]string{"id": id},
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		requireJSONHeaders(t, resp)

		var got map[string]bool
		decodeBody(t, resp, &got)
		require.Equal(t, map[string]bool{"success": true}, got)
	}

	items, err := store.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestTeamsHandler_OptionsIsPreflight(t *testing.T) {
	handler, store := newTeamsHandler(t, nil)

	resp, err := handler.Handle(context.Background(), Request{
		HTTPMethod: "OPTIONS",
		Body:       body(`not json at all`),
		PathParams: map[string]string{"id": "x"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, resp.Body)
	require.Equal(t, map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
		"Access-Control-Max-Age":       "86400",
	}, resp.Headers)
	require.Zero(t, store.OpenSessions())
}

func TestTeamsHandler_UnsupportedMethod(t *testing.T) {
	handler, _ := newTeamsHandler(t, nil)

	resp, err := handler.Handle(context.Background(), Request{HTTPMethod: "PATCH"})
	require.NoError(t, err)
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	requireJSONHeaders(t, resp)

	var got map[string]string
	decodeBody(t, resp, &got)
	require.Equal(t, map[string]string{"error": "Method not allowed"}, got)
}

func TestTeamsHandler_MalformedBodyPropagates(t *testing.T) {
	handler, store := newTeamsHandler(t, nil)

	_, err := handler.Handle(context.Background(), Request{HTTPMethod: "POST", Body: body(`{"name":`)})
	require.Error(t, err)

	_, err = handler.Handle(context.Background(), Request{HTTPMethod: "POST", Body: body(``)})
	require.Error(t, err)

	items, listErr := store.List(context.Background())
	require.NoError(t, listErr)
	require.Empty(t, items)
}

func TestTeamsHandler_StorageErrorsPropagate(t *testing.T) {
	handler, store := newTeamsHandler(t, nil)

	_, err := handler.Handle(context.Background(), Request{HTTPMethod: "POST", Body: body(`{"wins":1}`)})
	require.True(t, errors.Is(err, memory.ErrNullName))
	require.Zero(t, store.OpenSessions())

	_, err = handler.Handle(context.Background(), Request{
		HTTPMethod: "DELETE",
		PathParams: map[string]string{"id": "abc"},
	})
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestTeamsHandler_NilBodyTreatedAsEmptyObject(t *testing.T) {
	handler, _ := newTeamsHandler(t, []team.Team{{ID: 1, Name: "A", Wins: 3}})

	_, err := handler.Handle(context.Background(), Request{HTTPMethod: "POST"})
	require.ErrorIs(t, err, memory.ErrNullName)
}
