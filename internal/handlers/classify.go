package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/xelth-com/eckshop/internal/database"
	"github.com/xelth-com/eckshop/internal/middleware"
	"github.com/xelth-com/eckshop/internal/models"
	"github.com/xelth-com/eckshop/internal/services/classifier"
	"github.com/xelth-com/eckshop/internal/utils"
	"github.com/xelth-com/eckshop/internal/websocket"
)

type classifyRequest struct {
	Parts []classifier.Part `json:"parts"`
}

type classifyResponse struct {
	Decisions []classifier.Decision `json:"decisions"`
	Carcass   []classifier.Part     `json:"carcass"`
	Routed    []classifier.Part     `json:"routed"`
}

type keywordRequest struct {
	Category string `json:"category"`
	Keyword  string `json:"keyword"`
}

type keywordEvent struct {
	Action   string              `json:"action"`
	Category classifier.Category `json:"category"`
	Keyword  string              `json:"keyword"`
}

// classifyParts classifies a batch of parts and partitions them
func (r *Router) classifyParts(w http.ResponseWriter, req *http.Request) {
	var body classifyRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	r.mu.RLock()
	resp := classifyResponse{Decisions: make([]classifier.Decision, 0, len(body.Parts))}
	for _, p := range body.Parts {
		resp.Decisions = append(resp.Decisions, r.classifier.Decide(p))
	}
	resp.Carcass, resp.Routed = r.classifier.Partition(body.Parts)
	r.mu.RUnlock()

	respondJSON(w, http.StatusOK, resp)
}

// listKeywords returns the active keyword rule set
func (r *Router) listKeywords(w http.ResponseWriter, req *http.Request) {
	r.mu.RLock()
	all := r.classifier.Rules().All()
	r.mu.RUnlock()

	respondJSON(w, http.StatusOK, all)
}

// addKeyword adds a keyword to a category and persists it
func (r *Router) addKeyword(w http.ResponseWriter, req *http.Request) {
	if !r.canEditRules(w, req) {
		return
	}

	var body keywordRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	category, keyword, err := parseKeyword(body.Category, body.Keyword)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.classifier.AddKeyword(category, keyword) {
		respondError(w, http.StatusConflict, "Keyword already exists")
		return
	}
	if r.rules != nil {
		if err := r.rules.SaveRule(req.Context(), category, keyword); err != nil {
			r.classifier.RemoveKeyword(category, keyword)
			r.log.Error("failed to save keyword rule", zap.String("category", string(category)), zap.String("keyword", keyword), zap.Error(err))
			respondError(w, http.StatusInternalServerError, "Failed to save keyword")
			return
		}
	}

	r.log.Info("keyword added", zap.String("category", string(category)), zap.String("keyword", keyword))
	r.notify(websocket.EventKeywordsChanged, keywordEvent{Action: "added", Category: category, Keyword: keyword})
	respondJSON(w, http.StatusCreated, map[string]string{
		"category": string(category),
		"keyword":  keyword,
	})
}

// removeKeyword removes a keyword from a category and persists the change
func (r *Router) removeKeyword(w http.ResponseWriter, req *http.Request) {
	if !r.canEditRules(w, req) {
		return
	}

	vars := mux.Vars(req)
	category, keyword, err := parseKeyword(vars["category"], vars["keyword"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.classifier.RemoveKeyword(category, keyword) {
		respondError(w, http.StatusNotFound, "Keyword not found")
		return
	}
	if r.rules != nil {
		if err := r.rules.DeleteRule(req.Context(), category, keyword); err != nil {
			r.classifier.AddKeyword(category, keyword)
			r.log.Error("failed to delete keyword rule", zap.String("category", string(category)), zap.String("keyword", keyword), zap.Error(err))
			respondError(w, http.StatusInternalServerError, "Failed to delete keyword")
			return
		}
	}

	r.log.Info("keyword removed", zap.String("category", string(category)), zap.String("keyword", keyword))
	r.notify(websocket.EventKeywordsChanged, keywordEvent{Action: "removed", Category: category, Keyword: keyword})
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) canEditRules(w http.ResponseWriter, req *http.Request) bool {
	claims, ok := middleware.ClaimsFromContext(req.Context())
	if !ok || !utils.CanEditRules(claims) {
		respondError(w, http.StatusForbidden, "Insufficient role")
		return false
	}
	return true
}

func parseKeyword(rawCategory, rawKeyword string) (classifier.Category, string, error) {
	category, err := classifier.ParseCategory(strings.ToLower(strings.TrimSpace(rawCategory)))
	if err != nil {
		return "", "", err
	}
	keyword := strings.ToLower(strings.TrimSpace(rawKeyword))
	if keyword == "" {
		return "", "", classifier.ErrEmptyKeyword
	}
	return category, keyword, nil
}

type routingResponse struct {
	WorkOrderID string                                `json:"work_order_id"`
	Decisions   []classifier.Decision                 `json:"decisions"`
	Readiness   classifier.Readiness                  `json:"readiness"`
	Racks       map[classifier.RackType][]models.Rack `json:"racks"`
}

// getWorkOrderRouting classifies the stored parts of a work order
func (r *Router) getWorkOrderRouting(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	stored, err := r.orders.Parts(req.Context(), id)
	if errors.Is(err, database.ErrWorkOrderNotFound) {
		respondError(w, http.StatusNotFound, "Work order not found")
		return
	}
	if err != nil {
		r.log.Error("failed to load parts", zap.String("work_order_id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to load parts")
		return
	}

	parts := make([]classifier.Part, 0, len(stored))
	done := make(map[string]bool, len(stored))
	for _, p := range stored {
		cp := p.ToClassifier()
		parts = append(parts, cp)
		done[cp.ID] = p.IsDone()
	}

	resp := routingResponse{
		WorkOrderID: id,
		Decisions:   make([]classifier.Decision, 0, len(parts)),
		Racks:       make(map[classifier.RackType][]models.Rack),
	}

	r.mu.RLock()
	for _, p := range parts {
		resp.Decisions = append(resp.Decisions, r.classifier.Decide(p))
	}
	resp.Readiness = r.classifier.AssemblyReadiness(parts, func(p classifier.Part) bool {
		return done[p.ID]
	})
	r.mu.RUnlock()

	for _, d := range resp.Decisions {
		if _, seen := resp.Racks[d.RackType]; seen {
			continue
		}
		racks, err := r.orders.Racks(req.Context(), d.RackType)
		if err != nil {
			r.log.Error("failed to load racks", zap.String("rack_type", string(d.RackType)), zap.Error(err))
			respondError(w, http.StatusInternalServerError, "Failed to load racks")
			return
		}
		if racks == nil {
			racks = []models.Rack{}
		}
		resp.Racks[d.RackType] = racks
	}

	respondJSON(w, http.StatusOK, resp)
}
