package chat

import (
	"fmt"

	"github.com/eringen/folio/content"
)

// SystemInstruction builds the grounding prompt for the portfolio owner.
func SystemInstruction(ctx content.ChatContext) string {
	return fmt.Sprintf(`You are a friendly, helpful AI assistant for %[1]s. Answer questions about %[1]s using the provided context. You can also have a general conversation.

CONTEXT ABOUT %[1]s:
%[2]s

If a question cannot be answered from this context, say you don't have information on that topic. Be polite and conversational.`,
		ctx.Name, ctx.String())
}
