package orchestrator

import (
	"encoding/json"
	"strings"

	"github.com/hollandm/funcall/internal/orchestrator/models"
)

// wireEnvelope is the only shape the model may use to request a function
// call: a single JSON object whose sole top-level key is "function_call".
type wireEnvelope struct {
	FunctionCall *wireCall `json:"function_call"`
}

type wireCall struct {
	Name      string                     `json:"name"`
	Arguments map[string]json.RawMessage `json:"arguments"`
}

// ParseFunctionCall classifies raw model output. It returns a decoded
// request and true only when the entire text, modulo surrounding
// whitespace, is one well-formed function-call object. Everything else,
// including prose mixed with JSON, extra keys, or malformed syntax, is a
// plain answer: the caller keeps the raw text and no function runs.
//
// An unrecognized function name still parses successfully here. Existence
// is the safety check's concern, so the denial surfaces through the same
// path as every other policy violation.
func ParseFunctionCall(raw string) (models.FunctionCallRequest, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return models.FunctionCallRequest{}, false
	}

	decoder := json.NewDecoder(strings.NewReader(trimmed))
	decoder.DisallowUnknownFields()

	var envelope wireEnvelope
	if err := decoder.Decode(&envelope); err != nil {
		return models.FunctionCallRequest{}, false
	}

	// Anything after the object, prose or a second object, disqualifies it.
	if decoder.More() {
		return models.FunctionCallRequest{}, false
	}

	if envelope.FunctionCall == nil || envelope.FunctionCall.Name == "" {
		return models.FunctionCallRequest{}, false
	}

	arguments := make(map[string]any, len(envelope.FunctionCall.Arguments))
	for key, rawValue := range envelope.FunctionCall.Arguments {
		value, ok := decodeArgumentValue(rawValue)
		if !ok {
			return models.FunctionCallRequest{}, false
		}
		arguments[key] = value
	}

	return models.FunctionCallRequest{
		Name:      envelope.FunctionCall.Name,
		Arguments: arguments,
	}, true
}

// decodeArgumentValue accepts the two value shapes the wire format allows,
// a string or a list of strings.
func decodeArgumentValue(raw json.RawMessage) (any, bool) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString, true
	}

	var asList []string
	if err := json.Unmarshal(raw, &asList); err == nil {
		return asList, true
	}

	return nil, false
}
