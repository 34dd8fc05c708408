// Package ai wraps the Gemini client behind a best-effort text helper.
// Every failure path collapses into a fixed human-readable fallback
// string; callers never receive an error and never depend on the
// service being reachable.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// defaultModel is the Gemini model used for both drafting and summaries.
const defaultModel = "gemini-2.5-flash"

// Fallback strings returned when the service is disabled or failing.
const (
	disabledDraft   = "<p>AI suggestions are disabled (missing API key).</p>"
	disabledSummary = "AI summary is disabled (missing API key)."
	errorDraft      = "<p>Error communicating with AI service.</p>"
	errorSummary    = "Error communicating with AI service to generate summary."
	emptyDraft      = "<p>Could not generate a response.</p>"
	emptySummary    = "Could not generate summary."
	nothingToSum    = "No entries available to summarize."
)

// Assistant generates entry drafts and result-set summaries. A nil
// client (no API key, or client construction failed) leaves the
// assistant permanently in fallback mode.
type Assistant struct {
	client *genai.Client
	model  string
	log    zerolog.Logger
}

// New builds an Assistant. An empty apiKey disables the service rather
// than failing; so does a client construction error.
func New(ctx context.Context, apiKey string, log zerolog.Logger) *Assistant {
	a := &Assistant{model: defaultModel, log: log}
	if apiKey == "" {
		return a
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Error().Err(err).Msg("ai client unavailable, falling back")
		return a
	}
	a.client = client
	return a
}

// Enabled reports whether a usable client is configured.
func (a *Assistant) Enabled() bool {
	return a.client != nil
}

// Generate drafts knowledge-base entry content for the given question
// or title. Returns HTML body markup, or a fallback string on any
// failure. Never retries.
func (a *Assistant) Generate(ctx context.Context, question string) string {
	if a.client == nil {
		return disabledDraft
	}

	prompt := fmt.Sprintf(`You are a senior IT support specialist.
Provide a technical, concise, and professional answer (or draft) for the
following knowledge base entry title/question.

Question: %s

Format the response as valid HTML using simple tags (e.g., <p>, <ul>,
<ol>, <li>, <strong>, <em>, <br>). Do not include code fences or the
<html>/<body> tags, just the content body. Keep the tone suitable for an
IT knowledge base.`, question)

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		a.log.Error().Err(err).Msg("generate failed")
		return errorDraft
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return emptyDraft
}

// Summarize produces a short thematic overview of the visible entry
// titles. Returns a fallback string on any failure or when there is
// nothing to summarize.
func (a *Assistant) Summarize(ctx context.Context, titles []string) string {
	if len(titles) == 0 {
		return nothingToSum
	}
	if a.client == nil {
		return disabledSummary
	}

	var list strings.Builder
	for _, t := range titles {
		fmt.Fprintf(&list, "- %s\n", t)
	}

	prompt := fmt.Sprintf(`You are an IT knowledge base assistant.

Analyze the following list of knowledge base article titles currently
visible in the dashboard:
%s
Provide a high-level, concise summary (max 2-3 sentences) of the topics
and technical solutions available in this list. Focus on grouping common
themes. Do not list every single title. Keep it professional and helpful.`, list.String())

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		a.log.Error().Err(err).Msg("summarize failed")
		return errorSummary
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return emptySummary
}
