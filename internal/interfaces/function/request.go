package function

import (
	"context"
	"net/http"
)

// Request is the event a gateway hands to a function invocation.
type Request struct {
	HTTPMethod      string            `json:"httpMethod"`
	Body            *string           `json:"body"`
	PathParams      map[string]string `json:"pathParams"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// Response is returned to the gateway verbatim. Body is already JSON text.
type Response struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// HandlerFunc is the shape shared by every function entrypoint.
type HandlerFunc func(ctx context.Context, req Request) (Response, error)

type Method string

const (
	MethodGet     Method = http.MethodGet
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodDelete  Method = http.MethodDelete
	MethodOptions Method = http.MethodOptions
)

// method returns the request method, or fallback when the gateway sent none.
func (r Request) method(fallback Method) Method {
	if r.HTTPMethod == "" {
		return fallback
	}
	return Method(r.HTTPMethod)
}

func (r Request) pathParam(name string) string {
	if r.PathParams == nil {
		return ""
	}
	return r.PathParams[name]
}

// bodyOrEmptyObject treats a missing body as an empty JSON object.
func (r Request) bodyOrEmptyObject() string {
	if r.Body == nil {
		return "{}"
	}
	return *r.Body
}
