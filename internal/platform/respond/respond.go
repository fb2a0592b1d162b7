// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every response (Success or Error) follows the same JSON envelope:
//
//	{"success": true,  "data": ..., "message": "...", "count": 3, "pagination": {...}}
//	{"success": false, "message": "...", "error": "REASON_CODE", "details": [...]}
//
// Clients branch on the "success" flag and the machine-readable "error" code,
// never on the HTTP status text.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/internal/platform/ctxutil"
	"github.com/taibuivan/grandline/pkg/pagination"
)

// SuccessEnvelope is the JSON envelope for successful responses.
type SuccessEnvelope struct {
	Success    bool             `json:"success"`
	Data       interface{}      `json:"data"`
	Message    string           `json:"message,omitempty"`
	Count      *int             `json:"count,omitempty"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Details []apperr.FieldError `json:"details,omitempty"`
	Count   int                 `json:"count,omitempty"`
	Cause   string              `json:"cause,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard success envelope.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Success: true, Data: data})
}

// Message writes a 200 OK response carrying a human readable confirmation.
func Message(writer http.ResponseWriter, message string, data interface{}) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Success: true, Data: data, Message: message})
}

// Created writes a 201 Created response with data wrapped in the standard success envelope.
func Created(writer http.ResponseWriter, message string, data interface{}) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Success: true, Data: data, Message: message})
}

// Paginated writes a 200 OK response with a page of items and its metadata block.
func Paginated(writer http.ResponseWriter, data interface{}, metadata pagination.Meta) {
	count := metadata.Total
	JSON(writer, http.StatusOK, SuccessEnvelope{
		Success:    true,
		Data:       data,
		Count:      &count,
		Pagination: &metadata,
	})
}

// Error converts any Go error into a standardized JSON API error response.
//
// # Security
//
// The cause of a 5xx error is always logged. It is only written to the client
// when the request context was marked by the ExposeErrors middleware.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: keep the original for the log, hide it from the client.
		logger.ErrorContext(ctx, "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
		)
		appError = apperr.Internal(err)
	}

	envelope := ErrorEnvelope{
		Success: false,
		Message: appError.Message,
		Error:   appError.Code,
		Details: appError.Details,
		Count:   appError.Count,
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
			slog.Any("cause", appError.Cause),
		)

		if appError.Cause != nil && ctxutil.ExposeErrors(ctx) {
			envelope.Cause = appError.Cause.Error()
		}
	}

	JSON(writer, appError.HTTPStatus, envelope)
}
