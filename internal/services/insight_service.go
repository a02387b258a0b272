package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wedding_hall_backend/internal/repositories"
	"wedding_hall_backend/pkg/utils"
)

// InsightFallbackMessage is returned whenever the external generator cannot
// produce a report. The dashboard must keep working regardless.
const InsightFallbackMessage = "Unable to generate insights at this time. Please check your data manually."

// InsightService hands a read-only snapshot of bookings and viewings to an
// external generative-language API and returns its natural-language summary.
// Nothing the collaborator returns is consumed back into the store.
type InsightService interface {
	OwnerInsights(ctx context.Context) string
}

type insightService struct {
	bookingRepo repositories.BookingRepository
	viewingRepo repositories.ViewingRepository
	client      *http.Client
	baseURL     string
	apiKey      string
	model       string
}

// NewInsightService creates a new instance of InsightService. baseURL points at
// the generative-language REST endpoint; an empty apiKey disables the client.
func NewInsightService(
	br repositories.BookingRepository,
	vr repositories.ViewingRepository,
	baseURL, apiKey, model string,
) InsightService {
	return &insightService{
		bookingRepo: br,
		viewingRepo: vr,
		client:      &http.Client{Timeout: 30 * time.Second},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		apiKey:      apiKey,
		model:       model,
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// OwnerInsights returns the collaborator's report text, or the fixed fallback on
// any failure (missing key, network error, bad status, empty response).
func (s *insightService) OwnerInsights(ctx context.Context) string {
	if s.apiKey == "" {
		utils.LogDebug("Insight generation skipped: no API key configured")
		return InsightFallbackMessage
	}

	prompt, err := s.buildPrompt()
	if err != nil {
		utils.LogError(err, "OwnerInsights: failed to build prompt")
		return InsightFallbackMessage
	}

	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	})
	if err != nil {
		utils.LogError(err, "OwnerInsights: failed to marshal request")
		return InsightFallbackMessage
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		s.baseURL, s.model, url.QueryEscape(s.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		utils.LogError(err, "OwnerInsights: failed to build request")
		return InsightFallbackMessage
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		utils.LogError(err, "OwnerInsights: insight API request failed")
		return InsightFallbackMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.LogError(fmt.Errorf("insight API returned status %d", resp.StatusCode), "OwnerInsights: unexpected status")
		return InsightFallbackMessage
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		utils.LogError(err, "OwnerInsights: failed to decode response")
		return InsightFallbackMessage
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return InsightFallbackMessage
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return InsightFallbackMessage
	}
	return text
}

func (s *insightService) buildPrompt() (string, error) {
	bookings, err := json.Marshal(s.bookingRepo.GetBookings())
	if err != nil {
		return "", err
	}
	viewings, err := json.Marshal(s.viewingRepo.GetViewings())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Analyze this wedding hall booking data and provide a concise summary for the hall owner.
Bookings: %s
Viewings: %s

Provide:
1. A summary of pending actions (approvals needed).
2. Occupancy rate assessment.
3. Revenue projection based on approved bookings.
4. One strategic tip for the upcoming month.

Format the response as a clear, professional report.`, bookings, viewings), nil
}
