package httpapi

import (
	"encoding/base64"
	"mime"
	"net/http"
	"strings"

	"github.com/riskibarqy/ihl-standings/internal/interfaces/function"
	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

const maxGatewayBodyBytes = 10 << 20

// gateway exposes a function handler over net/http the way a cloud
// gateway would: the request is flattened into a function.Request and the
// returned function.Response is written back as-is.
func gateway(name string, fn function.HandlerFunc, logger *logging.Logger) http.Handler {
	spanName := "httpapi.gateway." + name

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), spanName)
		defer span.End()

		req, err := toFunctionRequest(w, r)
		if err != nil {
			logger.WarnContext(ctx, "read request body failed", "function", name, "error", err)
			writeInternalError(ctx, w)
			return
		}

		resp, err := fn(ctx, req)
		if err != nil {
			logger.ErrorContext(ctx, "function invocation failed", "function", name, "method", r.Method, "error", err)
			writeInternalError(ctx, w)
			return
		}

		if err := writeFunctionResponse(w, resp); err != nil {
			logger.WarnContext(ctx, "write function response failed", "function", name, "error", err)
		}
	})
}

func toFunctionRequest(w http.ResponseWriter, r *http.Request) (function.Request, error) {
	req := function.Request{HTTPMethod: r.Method}
	if id := r.PathValue("id"); id != "" {
		req.PathParams = map[string]string{"id": id}
	}

	if r.Body == nil {
		return req, nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(http.MaxBytesReader(w, r.Body, maxGatewayBodyBytes)); err != nil {
		return function.Request{}, err
	}
	if buf.Len() == 0 {
		return req, nil
	}

	var body string
	if isBinaryContentType(r.Header.Get("Content-Type")) {
		body = base64.StdEncoding.EncodeToString(buf.B)
		req.IsBase64Encoded = true
	} else {
		body = buf.String()
	}
	req.Body = &body

	return req, nil
}

func isBinaryContentType(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return true
	}
	switch {
	case strings.HasPrefix(mediaType, "text/"),
		mediaType == "application/json",
		strings.HasSuffix(mediaType, "+json"),
		mediaType == "application/x-www-form-urlencoded":
		return false
	default:
		return true
	}
}

func writeFunctionResponse(w http.ResponseWriter, resp function.Response) error {
	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.StatusCode)

	if resp.Body == "" {
		return nil
	}
	if resp.IsBase64Encoded {
		raw, err := base64.StdEncoding.DecodeString(resp.Body)
		if err != nil {
			return err
		}
		_, err = w.Write(raw)
		return err
	}

	_, err := w.Write([]byte(resp.Body))
	return err
}
