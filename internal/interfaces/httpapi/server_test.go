package httpapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/ihl-standings/internal/domain/team"
	"github.com/riskibarqy/ihl-standings/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ihl-standings/internal/interfaces/function"
	"github.com/riskibarqy/ihl-standings/internal/platform/id"
	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
	"github.com/riskibarqy/ihl-standings/internal/usecase"
	"github.com/stretchr/testify/require"
)

var testJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestRouter(t *testing.T, seed []team.Team) (http.Handler, *memory.TeamStore) {
	t.Helper()

	logger := logging.NewNop()
	store := memory.NewTeamStore(seed)
	teamService := usecase.NewTeamService(store, logger)
	uploadService := usecase.NewUploadService(id.NewUUIDGenerator())

	router := NewRouter(
		NewHandler(teamService, logger),
		Functions{
			Teams:  function.NewTeamsHandler(teamService, logger).Handle,
			Upload: function.NewUploadHandler(uploadService, logger).Handle,
		},
		logger,
		[]string{"*"},
	)
	return router, store
}

func serve(router http.Handler, method, target, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := serve(router, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"apiVersion":"2.0","data":{"status":"ok"}}`, rec.Body.String())
}

func TestRouter_TeamsLifecycle(t *testing.T) {
	router, store := newTestRouter(t, nil)

	rec := serve(router, http.MethodPost, "/v1/teams", "application/json", []byte(`{"name":"Ice Wolves","wins":4,"position":2}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var created map[string]any
	require.NoError(t, testJSON.Unmarshal(rec.Body.Bytes(), &created))
	require.EqualValues(t, 1, created["id"])
	require.EqualValues(t, 4, created["wins"])

	rec = serve(router, http.MethodPut, "/v1/teams/1", "application/json", []byte(`{"name":"Ice Wolves","wins":5}`))
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	require.NoError(t, testJSON.Unmarshal(rec.Body.Bytes(), &updated))
	require.EqualValues(t, 5, updated["wins"])
	require.EqualValues(t, 0, updated["position"])

	rec = serve(router, http.MethodGet, "/v1/teams", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []map[string]any
	require.NoError(t, testJSON.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	rec = serve(router, http.MethodDelete, "/v1/teams/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())
	require.Zero(t, store.OpenSessions())
}

func TestRouter_TeamsPreflightAndMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := serve(router, http.MethodOptions, "/v1/teams/7", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.String())
	require.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	require.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))

	rec = serve(router, http.MethodPatch, "/v1/teams/7", "application/json", []byte(`{}`))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestRouter_FunctionErrorBecomesInternalEnvelope(t *testing.T) {
	router, store := newTestRouter(t, nil)

	rec := serve(router, http.MethodPost, "/v1/teams", "application/json", []byte(`{"name":`))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, testJSON.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "2.0", body["apiVersion"])
	require.Contains(t, body, "error")
	require.Zero(t, store.OpenSessions())
}

func TestRouter_UploadBinaryBody(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := serve(router, http.MethodPost, "/v1/upload", "image/png", []byte{0x89, 'P', 'N', 'G'})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, testJSON.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, strings.HasPrefix(body["url"], "/uploads/"))
	require.True(t, strings.HasSuffix(body["url"], ".png"))
	require.Len(t, body["url"], len("/uploads/")+36+len(".png"))
}

func TestRouter_Standings(t *testing.T) {
	router, _ := newTestRouter(t, []team.Team{
		{ID: 1, Name: "Second", Position: 2, Wins: 2, OTLosses: 1, GoalsFor: 5, GoalsAgainst: 9},
		{ID: 2, Name: "First", Position: 1, Wins: 4, GoalsFor: 12, GoalsAgainst: 3},
	})

	rec := serve(router, http.MethodGet, "/v1/standings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []standingDTO `json:"data"`
	}
	require.NoError(t, testJSON.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	require.Equal(t, "First", body.Data[0].Name)
	require.Equal(t, 1, body.Data[0].Rank)
	require.Equal(t, 8, body.Data[0].Points)
	require.Equal(t, 9, body.Data[0].GoalDifference)
	require.Equal(t, 5, body.Data[1].Points)
	require.Equal(t, -4, body.Data[1].GoalDifference)
}

func TestRecoverPanic(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestToFunctionRequest(t *testing.T) {
	t.Run("empty body stays nil", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
		req, err := toFunctionRequest(httptest.NewRecorder(), r)
		require.NoError(t, err)
		require.Nil(t, req.Body)
		require.Equal(t, http.MethodGet, req.HTTPMethod)
	})

	t.Run("json body passes through", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/v1/teams", strings.NewReader(`{"name":"A"}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")
		req, err := toFunctionRequest(httptest.NewRecorder(), r)
		require.NoError(t, err)
		require.NotNil(t, req.Body)
		require.Equal(t, `{"name":"A"}`, *req.Body)
		require.False(t, req.IsBase64Encoded)
	})

	t.Run("binary body is base64", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/v1/upload", bytes.NewReader([]byte{0xff, 0x00}))
		r.Header.Set("Content-Type", "application/octet-stream")
		req, err := toFunctionRequest(httptest.NewRecorder(), r)
		require.NoError(t, err)
		require.True(t, req.IsBase64Encoded)
		require.Equal(t, "/wA=", *req.Body)
	})
}

func TestGateway_PassesPathID(t *testing.T) {
	var got function.Request
	fn := func(_ context.Context, req function.Request) (function.Response, error) {
		got = req
		return function.Response{StatusCode: http.StatusOK, Body: "{}"}, nil
	}

	mux := http.NewServeMux()
	mux.Handle("/v1/teams/{id}", gateway("teams", fn, logging.NewNop()))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/teams/42", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]string{"id": "42"}, got.PathParams)
}
