package function

import (
	"context"
	"net/http"

	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
	"github.com/riskibarqy/ihl-standings/internal/usecase"
)

// UploadHandler answers logo uploads with a freshly minted location. The
// payload itself is not stored.
type UploadHandler struct {
	service *usecase.UploadService
	logger  *logging.Logger
}

func NewUploadHandler(service *usecase.UploadService, logger *logging.Logger) *UploadHandler {
	if logger == nil {
		logger = logging.Default()
	}

	return &UploadHandler{
		service: service,
		logger:  logger,
	}
}

func (h *UploadHandler) Handle(ctx context.Context, req Request) (Response, error) {
	method := req.method(MethodPost)
	ctx, span := startSpan(ctx, "function.UploadHandler.Handle", method)
	defer span.End()

	switch method {
	case MethodOptions:
		return preflight(MethodPost, MethodOptions), nil
	case MethodPost:
	default:
		h.logger.WarnContext(ctx, "upload method not allowed", "method", string(method))
		return methodNotAllowed()
	}

	bodySize := 0
	if req.Body != nil {
		bodySize = len(*req.Body)
	}
	h.logger.DebugContext(ctx, "upload received", "body_bytes", bodySize, "base64", req.IsBase64Encoded)

	url, err := h.service.CreateLogoURL(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "create logo url failed", "error", err)
		return Response{}, err
	}

	return jsonResponse(http.StatusOK, urlBody{URL: url})
}
