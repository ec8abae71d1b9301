// Package gateway wraps the remote generative model behind a small interface
// the rest of the application consumes. One call to the model maps to one
// user-visible action: there is no retry, batching, or pooling layer here.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nikogura/career-compass/pkg/career"
	"google.golang.org/genai"
)

// DefaultModel is the generative model used for every feature.
const DefaultModel = "gemini-2.5-flash"

// RemoteError marks a failure of the remote model call: the transport
// failed, or the call succeeded but carried no usable payload.
type RemoteError struct {
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *RemoteError) Error() (msg string) {
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", e.Op, e.Cause)
		return msg
	}
	msg = e.Op
	return msg
}

// Unwrap exposes the underlying cause.
func (e *RemoteError) Unwrap() (err error) {
	err = e.Cause
	return err
}

// ChatSession is a stateful conversation scoped to one career topic.
// SendMessageStream delivers the response as a finite, non-restartable
// sequence of text deltas; the caller folds them into a growing message.
// A failure mid-sequence leaves already-delivered deltas with the caller.
type ChatSession interface {
	SendMessageStream(ctx context.Context, message string, onDelta func(delta string)) (err error)
}

// Gateway is the external AI collaborator consumed by the orchestrator.
type Gateway interface {
	// GenerateStructured sends a prompt with a structured-output schema and
	// returns the raw JSON payload.
	GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (raw json.RawMessage, err error)

	// GenerateGrounded sends a prompt through the search-grounded mode. The
	// response may be free text wrapped around JSON; grounding citations are
	// returned alongside it.
	GenerateGrounded(ctx context.Context, prompt string) (text string, sources []career.Source, err error)

	// NewChatSession establishes a conversation context with the given
	// system instruction.
	NewChatSession(ctx context.Context, systemInstruction string) (session ChatSession, err error)
}
