// Package chat answers visitor questions about the portfolio owner by
// streaming replies from a generative model.
package chat

import (
	"errors"
	"fmt"
	"strings"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ErrEmptyHistory is returned when no user turn is left to answer.
var ErrEmptyHistory = errors.New("no user message to process")

// Message is one turn of the conversation.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Normalize prepares a client-supplied history for the model. Blank turns are
// dropped, only the last maxTurns turns are kept (maxTurns <= 0 keeps all),
// and leading non-user turns are trimmed because the model requires the
// conversation to open with a user turn. Unknown roles are an error.
func Normalize(history []Message, maxTurns int) ([]Message, error) {
	out := make([]Message, 0, len(history))
	for i, m := range history {
		if m.Role != RoleUser && m.Role != RoleModel {
			return nil, fmt.Errorf("message %d: unknown role %q", i, m.Role)
		}
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		out = append(out, m)
	}
	if maxTurns > 0 && len(out) > maxTurns {
		out = out[len(out)-maxTurns:]
	}
	for len(out) > 0 && out[0].Role != RoleUser {
		out = out[1:]
	}
	if len(out) == 0 {
		return nil, ErrEmptyHistory
	}
	return out, nil
}
