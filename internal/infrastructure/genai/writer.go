package genai

import (
	"context"
	"fmt"

	"github.com/pantrylens/backend/internal/domain"
)

// TemplateWriter phrases substitution prompts from a fixed template. It
// stands in for the hosted generative-text service, which receives the same
// inputs and returns free-form text.
type TemplateWriter struct{}

// NewTemplateWriter creates a template-based suggestion writer.
func NewTemplateWriter() *TemplateWriter {
	return &TemplateWriter{}
}

// WriteSubstitutionPrompt phrases the question shown to the user when a
// missing ingredient is a variant of a staple they own.
func (w *TemplateWriter) WriteSubstitutionPrompt(ctx context.Context, missingName string, staple domain.CanonicalTag) (string, error) {
	return fmt.Sprintf("Het recept vraagt om %s. Wil je je %s gebruiken als vervanging?", missingName, staple), nil
}
