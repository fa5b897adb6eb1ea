package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/domain/penca"
	"github.com/riskibarqy/penca/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "penca"
	internalMessage  = "internal server error"
)

// encodeFailureBody is written when the envelope itself cannot be encoded.
var encodeFailureBody = []byte(`{"apiVersion":"2.0","error":{"code":500,"message":"encode response failed","status":"INTERNAL"}}`)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain   string `json:"domain"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var internalError = mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}

// errorRules are checked in order; the first match wins.
var errorRules = []struct {
	matches func(error) bool
	mapped  mappedError
}{
	{
		matches: func(err error) bool {
			var validationErr *penca.ValidationError
			return errors.Is(err, usecase.ErrInvalidInput) || errors.As(err, &validationErr)
		},
		mapped: mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"},
	},
	{
		matches: func(err error) bool { return errors.Is(err, usecase.ErrNotFound) },
		mapped:  mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"},
	},
	{
		matches: func(err error) bool {
			return errors.Is(err, usecase.ErrConflict) || errors.Is(err, match.ErrAlreadyPlayed)
		},
		mapped: mappedError{HTTPStatus: http.StatusConflict, Reason: "conflict", Status: "ALREADY_EXISTS"},
	},
	{
		matches: func(err error) bool { return errors.Is(err, usecase.ErrUnauthorized) },
		mapped:  mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "unauthorized", Status: "UNAUTHENTICATED"},
	},
	{
		matches: func(err error) bool {
			return errors.Is(err, usecase.ErrDependencyUnavailable) || errors.Is(err, match.ErrPersistenceFailure)
		},
		mapped: mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"},
	},
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	body := encodeFailureBody
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		status = http.StatusInternalServerError
	} else {
		body = buf.B
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{APIVersion: googleAPIVersion, Data: data})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(ctx, err)

	message := err.Error()
	if mapped == internalError {
		message = internalMessage
	}
	item := googleErrorItem{Domain: errorDomain, Reason: mapped.Reason, Message: message}
	var validationErr *penca.ValidationError
	if errors.As(err, &validationErr) {
		item.Location = validationErr.Field
	}

	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope(mapped, message, item))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, internalError.HTTPStatus, errorEnvelope(internalError, internalMessage, googleErrorItem{
		Domain:  errorDomain,
		Reason:  internalError.Reason,
		Message: internalMessage,
	}))
}

func errorEnvelope(mapped mappedError, message string, items ...googleErrorItem) googleResponseEnvelope {
	return googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: message,
			Status:  mapped.Status,
			Errors:  items,
		},
	}
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	for _, rule := range errorRules {
		if rule.matches(err) {
			return rule.mapped
		}
	}
	return internalError
}
