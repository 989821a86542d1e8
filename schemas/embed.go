// Package schemas holds the JSON Schemas for the public API payloads.
package schemas

import _ "embed"

// ScoreRequest is the schema for the body of the /score, /counterfactual
// and /action endpoints.
//
//go:embed score_request.schema.json
var ScoreRequest []byte
