package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/normscope/normscope/internal/export"
	"github.com/normscope/normscope/pkg/report"
	"github.com/normscope/normscope/pkg/scoring"
	"github.com/normscope/normscope/pkg/session"
)

const maxSessionBytes = 1 << 20

const (
	codeMissingRequiredField = "missing_required_field"
	codeInvalidDateOrder     = "invalid_date_order"
	codeRawScoreOutOfDomain  = "raw_score_out_of_domain"
	codeInvalidRequest       = "invalid_request"
	codeExportFailed         = "export_failed"
	codeUnauthorized         = "unauthorized"
	codeNotFound             = "not_found"
)

// scoreResponse is the report document plus the export locations, if any.
type scoreResponse struct {
	*report.Document
	Exports []string `json:"exports,omitempty"`
}

// handleScore scores one session (request body in the session JSON shape)
// and returns the assembled report document. ?export=1 additionally writes
// the document to the configured sink.
func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	wantExport, _ := strconv.ParseBool(r.URL.Query().Get("export"))
	if wantExport && h.sink == nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "export requested but no export destination is configured")
		return
	}

	var s session.Session
	dec := json.NewDecoder(io.LimitReader(r.Body, maxSessionBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid session body: "+err.Error())
		return
	}

	in, err := s.Input(h.engine.Battery())
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	doc, err := h.assembler.Build(h.engine, in)
	if err != nil {
		status, code := classifyError(err)
		writeError(w, status, code, err.Error())
		return
	}
	h.log.Debug("scored session",
		zap.String("report_id", doc.ID),
		zap.String("summary", doc.Result.Summary()))

	resp := scoreResponse{Document: doc}
	if wantExport {
		locs, err := export.Export(r.Context(), h.sink, doc)
		if err != nil {
			h.log.Error("export failed", zap.String("report_id", doc.ID), zap.Error(err))
			writeError(w, http.StatusBadGateway, codeExportFailed, err.Error())
			return
		}
		resp.Exports = locs
	}
	writeJSON(w, http.StatusOK, resp)
}

// classifyError maps scoring errors to an HTTP status and error code.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, scoring.ErrMissingRequiredField):
		return http.StatusUnprocessableEntity, codeMissingRequiredField
	case errors.Is(err, scoring.ErrInvalidDateOrder):
		return http.StatusUnprocessableEntity, codeInvalidDateOrder
	case errors.Is(err, scoring.ErrRawScoreOutOfDomain):
		return http.StatusUnprocessableEntity, codeRawScoreOutOfDomain
	default:
		return http.StatusBadRequest, codeInvalidRequest
	}
}
