package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	PurposeIdentifyFields = "identify_fields"
	PurposeAnalyzeJob     = "analyze_job_description"
)

// DefaultMarkupLimit caps the condensed markup embedded in a prompt, in runes.
const DefaultMarkupLimit = 100000

var ErrUnknownPurpose = errors.New("unknown analysis purpose")

// Generator is a text-generation backend.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

func buildPrompt(purpose, markup string) (string, error) {
	switch purpose {
	case PurposeIdentifyFields:
		return `Analyze this HTML form and identify all the input fields that need to be filled.
For each field, provide:
1. The field type (text input, textarea, dropdown, radio, checkbox, file, etc.) as "type"
2. The field identifier (id, name, or another unique selector) as "identifier"
3. The expected content type (name, email, phone, cover letter, etc.) as "category"
4. Whether it appears to be required as "required"

Return the response as a JSON object of the form {"fields": [...]} that can be parsed programmatically.

HTML content:
` + markup, nil
	case PurposeAnalyzeJob:
		return `Analyze this job description and extract key information like:
1. Skills required ("skills", a list of strings)
2. Experience level needed
3. Key responsibilities ("responsibilities", a list of strings)
4. Company details
5. Any specific requirements or questions asked

Also, suggest a personalized response for any "Why should we hire you?" or similar questions,
focusing on the specific skills and requirements mentioned, as "suggested_response".

Return the response as a JSON object that can be parsed programmatically.

HTML content:
` + markup, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPurpose, purpose)
}

// Analyzer turns page markup into structured answers. It never returns an
// error: every failure is folded into the Result.
type Analyzer struct {
	gen         Generator
	timeout     time.Duration
	markupLimit int
	log         *zap.Logger
}

func NewAnalyzer(gen Generator, timeout time.Duration, log *zap.Logger) *Analyzer {
	return &Analyzer{
		gen:         gen,
		timeout:     timeout,
		markupLimit: DefaultMarkupLimit,
		log:         log,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, markup, purpose string) Result {
	prompt, err := buildPrompt(purpose, CondenseMarkup(markup, a.markupLimit))
	if err != nil {
		a.log.Error("❌ cannot build prompt", zap.Error(err))
		return Failed(err)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	reply, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		a.log.Error("❌ generation failed", zap.String("purpose", purpose), zap.Error(err))
		return Failed(err)
	}

	res := ParseReply(reply)
	if !res.Structured() {
		a.log.Error("⚠️ reply is not JSON", zap.String("purpose", purpose))
		a.log.Debug("raw reply", zap.String("raw_response", res.Raw))
	}
	return res
}
