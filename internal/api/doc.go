// Package api provides the HTTP handlers for the board-game review REST
// surface: request decoding and validation, response envelopes, and the
// centralized mapping from store/domain errors to status codes and
// client-facing messages.
package api
