package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/normscope/normscope/pkg/norms"
)

type subtestInfo struct {
	Key    norms.SubtestKey `json:"key"`
	Abbrev string           `json:"abbrev"`
	Name   string           `json:"name"`
	MaxRaw int              `json:"max_raw"`
}

type normsResponse struct {
	Subtests  []subtestInfo `json:"subtests"`
	Indices   []norms.Index `json:"indices"`
	FullScale norms.Index   `json:"full_scale"`
	Bands     []norms.Band  `json:"bands"`
}

type subtestTableResponse struct {
	subtestInfo
	// Scaled is indexed by raw score.
	Scaled []int `json:"scaled"`
}

func (h *Handler) handleNorms(w http.ResponseWriter, r *http.Request) {
	b := h.engine.Battery()
	resp := normsResponse{
		Indices:   b.Indices(),
		FullScale: b.FullScale(),
		Bands:     b.Bands(),
	}
	for _, s := range b.Subtests() {
		resp.Subtests = append(resp.Subtests, info(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSubtestNorms(w http.ResponseWriter, r *http.Request) {
	b := h.engine.Battery()
	key, ok := b.ParseSubtestKey(chi.URLParam(r, "subtest"))
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "unknown subtest "+chi.URLParam(r, "subtest"))
		return
	}
	s, _ := b.Subtest(key)
	writeJSON(w, http.StatusOK, subtestTableResponse{subtestInfo: info(s), Scaled: s.Table()})
}

func info(s norms.Subtest) subtestInfo {
	return subtestInfo{Key: s.Key, Abbrev: s.Abbrev, Name: s.Name, MaxRaw: s.MaxRaw()}
}
