package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/xelth-com/eckshop/internal/database"
	"github.com/xelth-com/eckshop/internal/services/hardware"
	"github.com/xelth-com/eckshop/internal/services/printer"
)

type hardwareRequest struct {
	Records []hardware.Record `json:"records"`
}

type hardwareResponse struct {
	Groups   []hardware.Group       `json:"groups"`
	Patterns hardware.PatternReport `json:"patterns"`
}

type scanSheetRequest struct {
	Records []hardware.Record   `json:"records"`
	Layout  printer.SheetConfig `json:"layout"`
}

func consolidate(records []hardware.Record) hardwareResponse {
	groups := hardware.GroupRecords(records)
	if groups == nil {
		groups = []hardware.Group{}
	}
	return hardwareResponse{
		Groups:   groups,
		Patterns: hardware.AnalyzePatterns(records),
	}
}

// groupHardware consolidates raw hardware records posted by the client
func (r *Router) groupHardware(w http.ResponseWriter, req *http.Request) {
	var body hardwareRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	respondJSON(w, http.StatusOK, consolidate(body.Records))
}

// getWorkOrderHardware consolidates the stored hardware of a work order
func (r *Router) getWorkOrderHardware(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	items, err := r.orders.Hardware(req.Context(), id)
	if errors.Is(err, database.ErrWorkOrderNotFound) {
		respondError(w, http.StatusNotFound, "Work order not found")
		return
	}
	if err != nil {
		r.log.Error("failed to load hardware", zap.String("work_order_id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to load hardware")
		return
	}

	records := make([]hardware.Record, 0, len(items))
	for _, item := range items {
		records = append(records, item.ToRecord())
	}
	respondJSON(w, http.StatusOK, consolidate(records))
}

// hardwareScanSheet renders a printable QR sheet with one cell per hardware group
func (r *Router) hardwareScanSheet(w http.ResponseWriter, req *http.Request) {
	var body scanSheetRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entries := printer.EntriesFromGroups(hardware.GroupRecords(body.Records))
	pdf, err := printer.GenerateScanSheetPDF(body.Layout, entries)
	if errors.Is(err, printer.ErrNoEntries) {
		respondError(w, http.StatusBadRequest, "No hardware records to print")
		return
	}
	if err != nil {
		r.log.Error("failed to generate scan sheet", zap.Int("entries", len(entries)), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to generate PDF: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=hardware_sheet.pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Write(pdf)
}
