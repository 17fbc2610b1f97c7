package handlers

import (
	"io"
	"net/http"
	"sort"

	"go.uber.org/zap"

	"github.com/xelth-com/eckshop/internal/services/labels"
	"github.com/xelth-com/eckshop/internal/websocket"
)

// maxLabelDocument caps the size of an uploaded label document
const maxLabelDocument = 16 << 20

type labelsResponse struct {
	Labels    map[string]string `json:"labels"`
	Anomalies []labels.Anomaly  `json:"anomalies"`
}

// parseLabels splits a label document into standalone labels keyed by scan code.
// With ?wrap=false the raw fragments are returned instead of standalone pages.
func (r *Router) parseLabels(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxLabelDocument))
	if err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "Label document too large")
		return
	}
	document := string(body)

	var resp labelsResponse
	if req.URL.Query().Get("wrap") == "false" {
		res := r.extractor.Parse(document)
		resp = labelsResponse{Labels: res.Labels, Anomalies: res.Anomalies}
	} else {
		resp.Labels, resp.Anomalies = r.extractor.Render(document)
	}

	for _, a := range resp.Anomalies {
		r.log.Warn("label anomaly",
			zap.String("kind", string(a.Kind)),
			zap.Int("fragment", a.Fragment),
			zap.String("code", a.Code),
			zap.String("detail", a.Detail),
		)
	}

	codes := make([]string, 0, len(resp.Labels))
	for code := range resp.Labels {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	r.notify(websocket.EventLabelsParsed, map[string]interface{}{
		"codes":     codes,
		"anomalies": len(resp.Anomalies),
	})

	respondJSON(w, http.StatusOK, resp)
}
