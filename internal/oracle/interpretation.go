// Package oracle asks a generative model to interpret a snapshot of the weave.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("oracle: API key is missing")
	// ErrBusy is returned when an interpretation is already in flight.
	ErrBusy = errors.New("oracle: interpretation already in progress")
	// ErrIncomplete is returned when the model omits a required field.
	ErrIncomplete = errors.New("oracle: incomplete interpretation")
	// ErrEmptyResponse is returned when the model produced no candidates.
	ErrEmptyResponse = errors.New("oracle: no response from model")
)

// Interpretation is the poetic reading of a weave snapshot.
type Interpretation struct {
	Title      string `json:"title"`
	Poem       string `json:"poem"`
	Philosophy string `json:"philosophy"`
}

// Validate reports ErrIncomplete when any field is blank.
func (i Interpretation) Validate() error {
	var missing []string
	if strings.TrimSpace(i.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(i.Poem) == "" {
		missing = append(missing, "poem")
	}
	if strings.TrimSpace(i.Philosophy) == "" {
		missing = append(missing, "philosophy")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

// Interpreter turns an encoded JPEG snapshot into an Interpretation.
type Interpreter interface {
	Interpret(ctx context.Context, jpeg []byte) (Interpretation, error)
}
