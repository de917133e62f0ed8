// Package httputil provides HTTP plumbing for the layout API.
//
// # Overview
//
// This package provides infrastructure shared by all API handlers:
//
//   - [WriteJSON] / [WriteError]: uniform response encoding
//   - [DecodeJSON]: bounded request body decoding
//   - [WithRequestID] / [RequestIDFrom]: request ID propagation
//
// # Error Responses
//
// [WriteError] translates the structured error codes from pkg/errors into
// HTTP status codes and a JSON body:
//
//	{"error": "no corner at top_left", "code": "CORNER_COUNT", "request_id": "..."}
//
// Spec decoding problems map to 400, structural ring violations to 422,
// missing resources to 404 and everything else to 500. Internal error
// details are masked in the response body; the full error stays in the
// server log.
package httputil
