package server

import (
	"errors"
	"net/http"

	"jobmatch/internal/config"
	"jobmatch/internal/parsing"
	"jobmatch/internal/schemas"
)

// requestError is a transport-level decoding failure.
type requestError struct {
	status  int
	message string
}

func (e *requestError) Error() string {
	return e.message
}

// validateScoreBody runs the JSON Schema check over a raw request body.
func validateScoreBody(body []byte) error {
	return schemas.ValidateScoreRequest(body)
}

// httpStatus maps pipeline and request errors to HTTP status codes.
// Unparsable input is the client's to fix (422); invalid options and
// malformed bodies are bad requests (400).
func httpStatus(err error) int {
	var (
		reqErr    *requestError
		parseErr  *parsing.ParseError
		configErr *config.ConfigurationError
		schemaErr *schemas.ValidationError
	)
	switch {
	case errors.As(err, &reqErr):
		return reqErr.status
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &configErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
