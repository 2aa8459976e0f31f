package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"vidloop-backend/internal/ai"

	"github.com/rs/zerolog/log"
)

// AIHandler exposes the admin dashboard's generative-model terminals as
// thin pass-throughs to the provider client.
type AIHandler struct {
	client *ai.Client
}

// NewAIHandler creates a new AI handler
func NewAIHandler(client *ai.Client) *AIHandler {
	return &AIHandler{client: client}
}

// ModerateContent handles POST /api/v1/admin/moderate
func (h *AIHandler) ModerateContent(w http.ResponseWriter, r *http.Request) {
	var in ai.ModerateContentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	out, err := h.client.ModerateContent(r.Context(), in)
	if err != nil {
		respondAIError(w, "moderate", err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// GenerateCaptions handles POST /api/v1/admin/captions
func (h *AIHandler) GenerateCaptions(w http.ResponseWriter, r *http.Request) {
	var in ai.GenerateCaptionsInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	out, err := h.client.GenerateCaptions(r.Context(), in)
	if err != nil {
		respondAIError(w, "captions", err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// DetectFraud handles POST /api/v1/admin/fraud
func (h *AIHandler) DetectFraud(w http.ResponseWriter, r *http.Request) {
	var in ai.DetectFraudInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	out, err := h.client.DetectFraud(r.Context(), in)
	if err != nil {
		respondAIError(w, "fraud", err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// SuggestBugFix handles POST /api/v1/admin/bugfix
func (h *AIHandler) SuggestBugFix(w http.ResponseWriter, r *http.Request) {
	var in ai.SuggestBugFixInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	out, err := h.client.SuggestBugFix(r.Context(), in)
	if err != nil {
		respondAIError(w, "bugfix", err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// RecommendVideos handles POST /api/v1/admin/mood
func (h *AIHandler) RecommendVideos(w http.ResponseWriter, r *http.Request) {
	var in ai.RecommendVideosInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	out, err := h.client.RecommendVideos(r.Context(), in)
	if err != nil {
		respondAIError(w, "mood", err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// respondAIError distinguishes provider failures from bad input. Provider
// errors come back as 502 so the dashboard can tell them apart from its
// own mistakes.
func respondAIError(w http.ResponseWriter, terminal string, err error) {
	var provErr *ai.ProviderError
	if errors.As(err, &provErr) {
		log.Error().
			Int("status", provErr.StatusCode).
			Str("terminal", terminal).
			Msg("Provider call failed")
		respondError(w, provErr.Message, http.StatusBadGateway)
		return
	}
	respondError(w, err.Error(), http.StatusBadRequest)
}
