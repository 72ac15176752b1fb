package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type jsonResponse struct {
	status int
	body   Envelope
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON responds 200 with data in the envelope.
func JSON(data any) Response {
	return JSONWithStatus(http.StatusOK, data)
}

func JSONWithStatus(status int, data any) Response {
	return jsonResponse{
		status: status,
		body: Envelope{
			Code:    status,
			Message: http.StatusText(status),
			Data:    data,
		},
	}
}

// JSONError renders err in the envelope. HTTPError values keep their status
// and key; other errors become 500 without leaking their text.
func JSONError(err error) Response {
	httpErr := ErrInternalServerError
	errors.As(err, &httpErr)

	msg := httpErr.Message
	if msg == "" {
		msg = http.StatusText(httpErr.Code)
	}

	return jsonResponse{
		status: httpErr.Code,
		body: Envelope{
			Code:    httpErr.Code,
			Message: msg,
			Error:   httpErr.Key,
		},
	}
}

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty responds 204 No Content.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}
