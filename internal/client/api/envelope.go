package api

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/dmitrijs2005/jobboard/internal/common"
)

// Envelope is the uniform response wrapper returned by the API.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// Raw is an envelope whose payload has not been decoded yet.
type Raw = Envelope[json.RawMessage]

// Err returns nil for a successful envelope and an *APIError wrapping
// common.ErrRejected otherwise.
func (e *Envelope[T]) Err() error {
	if e.Success {
		return nil
	}
	return &APIError{Status: 200, Message: e.Message, Err: common.ErrRejected}
}

// decodeRaw converts Raw into Envelope[T]. A null or absent data field
// leaves Data at its zero value.
func decodeRaw[T any](raw *Raw) (*Envelope[T], error) {
	out := &Envelope[T]{Success: raw.Success, Message: raw.Message}
	data := bytes.TrimSpace(raw.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return out, nil
	}
	if err := json.Unmarshal(data, &out.Data); err != nil {
		return nil, err
	}
	return out, nil
}

// errorBody covers both the envelope shape and framework error bodies where
// message may be a list of validation messages.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

func extractMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}

	if len(eb.Message) > 0 {
		var s string
		if err := json.Unmarshal(eb.Message, &s); err == nil && s != "" {
			return s
		}
		var list []string
		if err := json.Unmarshal(eb.Message, &list); err == nil && len(list) > 0 {
			return strings.Join(list, "; ")
		}
	}
	return eb.Error
}
