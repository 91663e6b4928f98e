// Package llmdetect is the LLM-backed fallback detector. It implements the
// same contract as the rule-based detectors but makes a network call, so the
// orchestration layer invokes it directly (never the reconciler) and only
// when the rule-based pass came back sparse.
package llmdetect

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"go-grammatik/catalog"
	"go-grammatik/types"
)

const (
	defaultTimeout = 20 * time.Second

	// LLM detections are capped below feature-derived confidence so a rule
	// detection on the same span always wins the tie-break.
	maxLLMConfidence = 0.85
	minLLMConfidence = 0.50
)

// finding is one entry of the JSON array the model is asked to return.
type finding struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// Detector asks a chat model to spot grammar points the rules missed.
type Detector struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// New builds the fallback detector. Pass "" to use the default model.
func New(client *openai.Client, model string) *Detector {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Detector{client: client, model: model, timeout: defaultTimeout}
}

func (d *Detector) Name() string { return "llm-fallback" }

// Detect sends the sentence plus the catalog id list to the model and maps
// the reply back onto character spans. Failures are logged and produce zero
// detections; the LLM is a bonus pass, never a hard dependency.
func (d *Detector) Detect(s types.Sentence) []types.Detection {
	if d.client == nil || strings.TrimSpace(s.Text) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	raw, err := d.complete(ctx, s.Text)
	if err != nil {
		log.Printf("llm fallback failed for %q: %v", s.Text, err)
		return nil
	}

	var findings []finding
	if err := json.Unmarshal([]byte(raw), &findings); err != nil {
		log.Printf("llm fallback returned unparseable JSON: %v", err)
		return nil
	}

	return mapFindings(s, findings)
}

// mapFindings anchors model findings onto byte spans of the sentence.
// Findings whose quoted text is not an exact substring are dropped.
func mapFindings(s types.Sentence, findings []finding) []types.Detection {
	var out []types.Detection
	for _, f := range findings {
		start := strings.Index(s.Text, f.Text)
		if f.Text == "" || start < 0 {
			continue // cannot anchor the finding to a span
		}
		out = append(out, types.Detection{
			Point:      catalog.MustPoint(f.ID),
			Start:      start,
			End:        start + len(f.Text),
			Confidence: clampConfidence(f.Confidence),
			Details: map[string]any{
				"source": "llm",
				"word":   f.Text,
			},
			Explanation: f.Explanation,
		})
	}
	return out
}

// clampConfidence bounds a model-reported confidence into the fallback band.
func clampConfidence(c float64) float64 {
	if c > maxLLMConfidence {
		return maxLLMConfidence
	}
	if c < minLLMConfidence {
		return minLLMConfidence
	}
	return c
}

func (d *Detector) complete(ctx context.Context, text string) (string, error) {
	ids := make([]string, 0, 32)
	for id := range catalog.Index() {
		ids = append(ids, id)
	}
	prompt := fmt.Sprintf(
		"Analyze the German sentence below and list the grammar points it contains. "+
			"Reply with ONLY a JSON array, each element {\"id\": <one of: %s>, "+
			"\"text\": <exact substring of the sentence showing the point>, "+
			"\"confidence\": <0 to 1>, \"explanation\": <one short English sentence>}. "+
			"Empty array if nothing applies.\n\nSentence: %s",
		strings.Join(ids, ", "), text)

	resp, err := d.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: d.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are a German grammar analyzer for language learners. You answer with strict JSON only.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   500,
			Temperature: 0.1, // keep the output deterministic-ish and parseable
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}
	return stripFences(resp.Choices[0].Message.Content), nil
}

// stripFences removes a markdown code fence if the model added one anyway.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
