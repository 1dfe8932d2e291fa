// Package api exposes HTTP handlers for the tracker.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"example.com/ftracker/internal/domain"
	"example.com/ftracker/internal/training"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/summaries", h.summaries)
	mux.HandleFunc("/v1/workout-types", h.workoutTypes)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) summaries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	report, err := h.service.Process(r.Context(), domain.Package{
		WorkoutType: req.WorkoutType,
		Data:        req.Data,
	})
	if err != nil {
		switch reason := domain.Reason(err); reason {
		case domain.ReasonUnknownWorkoutType, domain.ReasonInvalidReading:
			writeError(w, http.StatusUnprocessableEntity, reason, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	if wantsText(r) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(report.Message))
		return
	}
	writeJSON(w, http.StatusOK, toSummaryView(*report))
}

func (h *Handler) workoutTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	types := training.WorkoutTypes()
	resp := WorkoutTypesResponse{Items: make([]WorkoutTypeView, 0, len(types))}
	for _, wt := range types {
		resp.Items = append(resp.Items, WorkoutTypeView{
			Code:         wt.Code,
			TrainingType: wt.Kind.String(),
			Arity:        wt.Arity,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// SummaryRequest is the payload for POST /v1/summaries.
type SummaryRequest struct {
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
}

// Validate ensures request correctness. The reading, including its length, is
// checked by the tracker.
func (r SummaryRequest) Validate() error {
	if strings.TrimSpace(r.WorkoutType) == "" {
		return errors.New("workout_type is required")
	}
	return nil
}

// SummaryView is the JSON form of a training report.
type SummaryView struct {
	ReportID     string    `json:"report_id"`
	WorkoutType  string    `json:"workout_type"`
	TrainingType string    `json:"training_type"`
	Duration     float64   `json:"duration"`
	Distance     float64   `json:"distance"`
	Speed        float64   `json:"speed"`
	Calories     float64   `json:"calories"`
	Message      string    `json:"message"`
	ProcessedAt  time.Time `json:"processed_at"`
}

// WorkoutTypeView describes a supported workout code.
type WorkoutTypeView struct {
	Code         string `json:"code"`
	TrainingType string `json:"training_type"`
	Arity        int    `json:"arity"`
}

// WorkoutTypesResponse packages the workout catalogue.
type WorkoutTypesResponse struct {
	Items []WorkoutTypeView `json:"items"`
}

func wantsText(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Accept"), "text/plain")
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toSummaryView(report domain.Report) SummaryView {
	return SummaryView{
		ReportID:     report.ID,
		WorkoutType:  report.WorkoutType,
		TrainingType: report.Summary.TrainingType,
		Duration:     report.Summary.Duration,
		Distance:     report.Summary.Distance,
		Speed:        report.Summary.Speed,
		Calories:     report.Summary.Calories,
		Message:      report.Message,
		ProcessedAt:  report.ProcessedAt,
	}
}
