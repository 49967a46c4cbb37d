package function

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
)

const (
	headerAllowOrigin  = "Access-Control-Allow-Origin"
	headerAllowMethods = "Access-Control-Allow-Methods"
	headerAllowHeaders = "Access-Control-Allow-Headers"
	headerMaxAge       = "Access-Control-Max-Age"
	headerContentType  = "Content-Type"

	preflightMaxAge = "86400"
)

type errorBody struct {
	Error string `json:"error"`
}

type successBody struct {
	Success bool `json:"success"`
}

type urlBody struct {
	URL string `json:"url"`
}

func preflight(methods ...Method) Response {
	allowed := make([]string, 0, len(methods))
	for _, m := range methods {
		allowed = append(allowed, string(m))
	}

	return Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			headerAllowOrigin:  "*",
			headerAllowMethods: strings.Join(allowed, ", "),
			headerAllowHeaders: "Content-Type",
			headerMaxAge:       preflightMaxAge,
		},
	}
}

func jsonResponse(status int, payload any) (Response, error) {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("encode response body: %w", err)
	}

	return Response{
		StatusCode: status,
		Headers: map[string]string{
			headerContentType: "application/json",
			headerAllowOrigin: "*",
		},
		Body: string(body),
	}, nil
}

func methodNotAllowed() (Response, error) {
	return jsonResponse(http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
}
