package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"bizchat-be/internal/constant"
	"bizchat-be/internal/pkg/apperr"
	"bizchat-be/pkg/llm"
)

// BookingIntent is the structured result of intent extraction.
// Fields the user did not supply are empty strings.
type BookingIntent struct {
	Intent  string `json:"intent"`
	Service string `json:"service"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time"` // HH:MM
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (i *BookingIntent) IsBooking() bool {
	return i.Intent == constant.IntentBookAppointment
}

// Extractor asks the generation model to classify a message and pull
// out booking details as strict JSON.
type Extractor struct {
	llmProvider llm.LLMProvider
}

func NewExtractor(llmProvider llm.LLMProvider) *Extractor {
	return &Extractor{
		llmProvider: llmProvider,
	}
}

func (e *Extractor) Extract(ctx context.Context, serviceNames []string, message string) (*BookingIntent, error) {
	prompt := fmt.Sprintf(
		constant.IntentExtractionPromptV1,
		strings.Join(serviceNames, ", "),
		message,
	)

	response, err := e.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.1))
	if err != nil {
		return nil, apperr.Upstream("text generation", err)
	}

	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, apperr.Parse("booking intent", response, fmt.Errorf("no JSON object in response"))
	}

	var result BookingIntent
	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		return nil, apperr.Parse("booking intent", response, err)
	}

	normalize(&result)
	return &result, nil
}

// normalize collapses the model's "missing" sentinel (and casing noise
// on the intent label) so downstream code only deals with empty strings.
func normalize(i *BookingIntent) {
	i.Intent = strings.ToLower(strings.TrimSpace(i.Intent))
	i.Service = clearMissing(i.Service)
	i.Date = clearMissing(i.Date)
	i.Time = clearMissing(i.Time)
	i.Name = clearMissing(i.Name)
	i.Phone = clearMissing(i.Phone)
	i.Email = clearMissing(i.Email)
}

func clearMissing(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.EqualFold(trimmed, constant.MissingSentinel) {
		return ""
	}
	return trimmed
}

// extractJSON pulls the outermost JSON object out of a model response,
// tolerating markdown fences and prose around it.
func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
