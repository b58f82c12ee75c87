// canvas/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/walkcanvas/go-services/canvas/service"
	"github.com/walkcanvas/go-services/shared/api"
	"github.com/walkcanvas/go-services/shared/models"
)

// CanvasAPIHandlers holds references to the services that handle business logic.
type CanvasAPIHandlers struct {
	PromptService   *service.PromptService
	DistanceService *service.DistanceService
	DrawingService  *service.DrawingService
	TeamService     *service.TeamService
}

// NewCanvasAPIHandlers is the constructor for the API handlers.
func NewCanvasAPIHandlers(ps *service.PromptService, dis *service.DistanceService, drs *service.DrawingService, ts *service.TeamService) *CanvasAPIHandlers {
	return &CanvasAPIHandlers{
		PromptService:   ps,
		DistanceService: dis,
		DrawingService:  drs,
		TeamService:     ts,
	}
}

// --- Request/Response DTOs ---

type RelayPromptRequest struct {
	Query string `json:"query"`
}

type RelayPromptResponse struct {
	Response string `json:"response"`
}

type AccumulateDistanceRequest struct {
	Email     string   `json:"email"`
	Distance  *float64 `json:"distance"` // pointer so a missing field is distinguishable from 0
	Username  string   `json:"username"`
	Timestamp string   `json:"timestamp"`
}

type AccumulateDistanceResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	TotalDistance float64 `json:"totalDistance"`
}

type CreateDrawingRequest struct {
	Email       string           `json:"email"`
	Username    string           `json:"username"`
	Coordinates *[]models.LatLng `json:"coordinates"` // pointer so a missing field is distinguishable from []
	Timestamp   string           `json:"timestamp"`
	IsPublic    bool             `json:"isPublic"`
	TeamIDs     []string         `json:"teamIds"`
}

type CreateDrawingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DrawingID string `json:"drawingId"`
}

type VoteRequest struct {
	VoterEmail string `json:"voterEmail"`
}

type VoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CreateTeamRequest struct {
	TeamName string `json:"teamName"`
	Email    string `json:"email"`
}

type CreateTeamResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	TeamID  string `json:"teamId"`
}

// TeamView is the listing projection of a team; the drawing back-reference
// list stays internal.
type TeamView struct {
	ID           string    `json:"id"`
	TeamName     string    `json:"teamName"`
	CreatorEmail string    `json:"creatorEmail"`
	CreatedAt    time.Time `json:"createdAt"`
}

// --- Handler Methods ---

// RelayPromptHandler forwards a prompt to the generative-text collaborator.
// POST /prompt
func (cah *CanvasAPIHandlers) RelayPromptHandler(w http.ResponseWriter, r *http.Request) {
	var req RelayPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Query == "" {
		api.WriteBadRequest(w, "Query is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	text, err := cah.PromptService.Relay(ctx, req.Query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyPrompt):
			api.WriteBadRequest(w, "Query is required")
		case errors.Is(err, service.ErrUpstreamUnavailable):
			api.WriteBadGateway(w, "Generative-text service unavailable")
		default:
			log.Printf("ERROR: Relaying prompt failed: %v", err)
			api.WriteInternalServerError(w, "Failed to relay prompt")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, RelayPromptResponse{Response: text})
}

// AccumulateDistanceHandler adds a walked-distance delta to the caller's total.
// POST /distance
func (cah *CanvasAPIHandlers) AccumulateDistanceHandler(w http.ResponseWriter, r *http.Request) {
	var req AccumulateDistanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Email == "" {
		api.WriteBadRequest(w, "Email is required")
		return
	}
	if req.Distance == nil {
		api.WriteBadRequest(w, "Distance must be a number")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := cah.DistanceService.Accumulate(ctx, req.Email, *req.Distance, req.Username, req.Timestamp)
	if err != nil {
		log.Printf("ERROR: Accumulating distance for %s failed: %v", req.Email, err)
		api.WriteInternalServerError(w, "Failed to update distance")
		return
	}

	status := http.StatusOK
	message := "Distance updated"
	if result.Created {
		status = http.StatusCreated
		message = "Distance record created"
	}
	api.WriteJSON(w, status, AccumulateDistanceResponse{
		Success:       true,
		Message:       message,
		TotalDistance: result.TotalDistance,
	})
}

// LeaderboardHandler returns the ranked distance view.
// GET /leaderboard
func (cah *CanvasAPIHandlers) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := cah.DistanceService.Leaderboard(ctx)
	if err != nil {
		log.Printf("ERROR: Reading leaderboard failed: %v", err)
		api.WriteInternalServerError(w, "Failed to retrieve leaderboard")
		return
	}

	api.WriteJSON(w, http.StatusOK, entries)
}

// CreateDrawingHandler stores a new drawing and attaches it to teams best-effort.
// POST /drawings
func (cah *CanvasAPIHandlers) CreateDrawingHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateDrawingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.Email == "" {
		api.WriteBadRequest(w, "Email is required")
		return
	}
	if req.Coordinates == nil {
		api.WriteBadRequest(w, "Coordinates must be a sequence of {lat, lng} points")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	drawingID, err := cah.DrawingService.Create(ctx, service.CreateDrawingInput{
		Email:       req.Email,
		Username:    req.Username,
		Coordinates: *req.Coordinates,
		Timestamp:   req.Timestamp,
		IsPublic:    req.IsPublic,
		TeamIDs:     req.TeamIDs,
	})
	if err != nil {
		log.Printf("ERROR: Creating drawing for %s failed: %v", req.Email, err)
		api.WriteInternalServerError(w, "Failed to save drawing")
		return
	}

	api.WriteJSON(w, http.StatusCreated, CreateDrawingResponse{
		Success:   true,
		Message:   "Drawing saved",
		DrawingID: drawingID,
	})
}

// VoteDrawingHandler records one vote per voter per drawing.
// POST /drawings/{id}/votes
func (cah *CanvasAPIHandlers) VoteDrawingHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	drawingID := vars["id"]
	if drawingID == "" {
		api.WriteBadRequest(w, "Drawing ID is required")
		return
	}

	var req VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.VoterEmail == "" {
		api.WriteBadRequest(w, "Voter email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := cah.DrawingService.Vote(ctx, drawingID, req.VoterEmail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateVote):
			api.WriteConflict(w, "You have already voted on this drawing")
		case errors.Is(err, service.ErrDrawingNotFound):
			api.WriteNotFound(w, "Drawing not found")
		default:
			log.Printf("ERROR: Voting on drawing %s failed: %v", drawingID, err)
			api.WriteInternalServerError(w, "Failed to record vote")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, VoteResponse{Success: true, Message: "Vote recorded"})
}

// ListPublicDrawingsHandler lists public drawings in the requested order.
// GET /drawings?sortBy=votes|date
func (cah *CanvasAPIHandlers) ListPublicDrawingsHandler(w http.ResponseWriter, r *http.Request) {
	cah.listDrawings(w, r, true)
}

// ListAllDrawingsHandler lists drawings regardless of visibility. Kept for
// the original clients that predate the isPublic flag.
// GET /drawings/all?sortBy=votes|date
func (cah *CanvasAPIHandlers) ListAllDrawingsHandler(w http.ResponseWriter, r *http.Request) {
	cah.listDrawings(w, r, false)
}

func (cah *CanvasAPIHandlers) listDrawings(w http.ResponseWriter, r *http.Request, publicOnly bool) {
	sortBy := r.URL.Query().Get("sortBy")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	views, err := cah.DrawingService.ListSorted(ctx, sortBy, publicOnly)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSortKey) {
			api.WriteBadRequest(w, "sortBy must be \"votes\" or \"date\"")
			return
		}
		log.Printf("ERROR: Listing drawings failed: %v", err)
		api.WriteInternalServerError(w, "Failed to list drawings")
		return
	}

	api.WriteJSON(w, http.StatusOK, views)
}

// CreateTeamHandler registers a new team for the caller.
// POST /teams
func (cah *CanvasAPIHandlers) CreateTeamHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.TeamName == "" {
		api.WriteBadRequest(w, "Team name is required")
		return
	}
	if req.Email == "" {
		api.WriteBadRequest(w, "Email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	teamID, err := cah.TeamService.Create(ctx, req.TeamName, req.Email)
	if err != nil {
		log.Printf("ERROR: Creating team %q for %s failed: %v", req.TeamName, req.Email, err)
		api.WriteInternalServerError(w, "Failed to create team")
		return
	}

	api.WriteJSON(w, http.StatusCreated, CreateTeamResponse{
		Success: true,
		Message: "Team created",
		TeamID:  teamID,
	})
}

// ListTeamsHandler lists the caller's teams, newest first.
// GET /teams?email=
func (cah *CanvasAPIHandlers) ListTeamsHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		api.WriteBadRequest(w, "Email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	teams, err := cah.TeamService.ListByCreator(ctx, email)
	if err != nil {
		log.Printf("ERROR: Listing teams for %s failed: %v", email, err)
		api.WriteInternalServerError(w, "Failed to list teams")
		return
	}

	views := make([]TeamView, 0, len(teams))
	for _, t := range teams {
		views = append(views, TeamView{
			ID:           t.ID,
			TeamName:     t.TeamName,
			CreatorEmail: t.CreatorEmail,
			CreatedAt:    t.CreatedAt,
		})
	}
	api.WriteJSON(w, http.StatusOK, views)
}

// TeamDrawingsHandler resolves a team's drawings.
// GET /teams/{id}/drawings
func (cah *CanvasAPIHandlers) TeamDrawingsHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamID := vars["id"]
	if teamID == "" {
		api.WriteBadRequest(w, "Team ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	views, err := cah.TeamService.Drawings(ctx, teamID)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotAccessible) {
			api.WriteForbidden(w, "Team not found or not accessible")
			return
		}
		log.Printf("ERROR: Resolving drawings for team %s failed: %v", teamID, err)
		api.WriteInternalServerError(w, "Failed to retrieve team drawings")
		return
	}

	api.WriteJSON(w, http.StatusOK, views)
}

// RegisterRoutes registers all API endpoints for the canvas service.
func (cah *CanvasAPIHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/prompt", cah.RelayPromptHandler).Methods("POST")

	router.HandleFunc("/distance", cah.AccumulateDistanceHandler).Methods("POST")
	router.HandleFunc("/leaderboard", cah.LeaderboardHandler).Methods("GET")

	router.HandleFunc("/drawings", cah.CreateDrawingHandler).Methods("POST")
	router.HandleFunc("/drawings", cah.ListPublicDrawingsHandler).Methods("GET")
	router.HandleFunc("/drawings/all", cah.ListAllDrawingsHandler).Methods("GET")
	router.HandleFunc("/drawings/{id}/votes", cah.VoteDrawingHandler).Methods("POST")

	router.HandleFunc("/teams", cah.CreateTeamHandler).Methods("POST")
	router.HandleFunc("/teams", cah.ListTeamsHandler).Methods("GET")
	router.HandleFunc("/teams/{id}/drawings", cah.TeamDrawingsHandler).Methods("GET")
}
