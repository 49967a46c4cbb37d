package httpapi

import (
	"net/http"

	"github.com/riskibarqy/ihl-standings/internal/interfaces/function"
	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
)

// Functions groups the function entrypoints served by the router.
type Functions struct {
	Teams  function.HandlerFunc
	Upload function.HandlerFunc
}

func NewRouter(
	handler *Handler,
	functions Functions,
	logger *logging.Logger,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handler.Healthz)

	standings := CORS(corsAllowedOrigins, http.HandlerFunc(handler.ListStandings))
	mux.Handle("GET /v1/standings", standings)
	mux.Handle("OPTIONS /v1/standings", standings)

	if functions.Teams != nil {
		teams := gateway("teams", functions.Teams, logger)
		mux.Handle("/v1/teams", teams)
		mux.Handle("/v1/teams/{id}", teams)
	}
	if functions.Upload != nil {
		mux.Handle("/v1/upload", gateway("upload", functions.Upload, logger))
	}

	return RequestTracing(RequestLogging(logger, recoverPanic(logger, mux)))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
