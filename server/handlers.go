package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/export"
	"github.com/jsphweid/chordgrid/grid"
	"github.com/jsphweid/chordgrid/layout"
	"github.com/jsphweid/chordgrid/model"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Error: detail})
}

// readBody decodes a JSON body into v. An empty body leaves v as is.
func readBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("invalid request body: %w", err)
}

func partID(r *http.Request) string {
	return mux.Vars(r)["id"]
}

func measureIndex(r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	return index, err == nil
}

func (s *Server) done(op string, applied bool) {
	s.metrics.observe(op, applied)
	s.metrics.parts.Set(float64(s.grid.PartCount()))
}

func (s *Server) totalError() string {
	return fmt.Sprintf("measures_total must be between 1 and %d", s.grid.MaxMeasuresTotal())
}

func (s *Server) handleSong(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Snapshot())
}

func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, layout.ProjectSong(s.Snapshot()))
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := export.WriteHTML(w, layout.ProjectSong(s.Snapshot())); err != nil {
		s.logger.Error("print failed", zap.Error(err))
	}
}

func (s *Server) handleHeader(w http.ResponseWriter, r *http.Request) {
	var body model.HeaderRequestBody
	if err := readBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.SetHeader(body.Title, body.Tempo)
	s.done("set_header", true)
	writeJSON(w, http.StatusOK, layout.ProjectSong(s.grid.Song()))
}

func (s *Server) handleTranspose(w http.ResponseWriter, r *http.Request) {
	var body model.TransposeRequestBody
	if err := readBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Transpose(body.Steps)
	s.done("transpose", true)
	writeJSON(w, http.StatusOK, s.grid.Song())
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	c := chord.Parse(text)
	writeJSON(w, http.StatusOK, model.ParseResponse{
		Input:      text,
		Root:       c.Root,
		Suffix:     c.Suffix,
		Normalized: c.String(),
		Recognized: c.Recognized(),
	})
}

func (s *Server) handleAddPart(w http.ResponseWriter, r *http.Request) {
	var body model.AddPartRequestBody
	if err := readBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if body.MeasuresTotal > s.grid.MaxMeasuresTotal() {
		s.done("add_part", false)
		writeError(w, http.StatusBadRequest, s.totalError())
		return
	}
	p := s.grid.AddPart(grid.PartDefaults{
		Name:            body.Name,
		MeasuresTotal:   body.MeasuresTotal,
		MeasuresPerLine: body.MeasuresPerLine,
	})
	s.done("add_part", true)
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetPart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.grid.Part(partID(r))
	if !ok {
		writeError(w, http.StatusNotFound, "part not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleRemovePart(w http.ResponseWriter, r *http.Request) {
	id := partID(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.grid.Part(id)
	s.grid.RemovePart(id)
	s.done("remove_part", ok)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRename(w http.ResponseWriter, r *http.Request) {
	var body model.RenameRequestBody
	if err := readBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	id := partID(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.grid.RenamePart(id, body.Name)
	s.done("rename_part", ok)
	if !ok {
		writeError(w, http.StatusNotFound, "part not found")
		return
	}
	p, _ := s.grid.Part(id)
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	var body model.ResizeRequestBody
	if err := readBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	id := partID(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.grid.Part(id); !ok {
		s.done("resize_part", false)
		writeError(w, http.StatusNotFound, "part not found")
		return
	}
	if !s.grid.ResizePart(id, body.MeasuresTotal, body.MeasuresPerLine) {
		s.done("resize_part", false)
		writeError(w, http.StatusBadRequest, s.totalError())
		return
	}
	s.done("resize_part", true)
	p, _ := s.grid.Part(id)
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDuplicate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.grid.DuplicatePart(partID(r))
	s.done("duplicate_part", ok)
	if !ok {
		writeError(w, http.StatusNotFound, "part not found")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetMeasure(w http.ResponseWriter, r *http.Request) {
	index, ok := measureIndex(r)
	if !ok {
		writeError(w, http.StatusNotFound, "measure not found")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.grid.Measure(partID(r), index)
	if !ok {
		writeError(w, http.StatusNotFound, "measure not found")
		return
	}
	writeJSON(w, http.StatusOK, chord.Edit(m))
}

func (s *Server) handleSetMeasure(w http.ResponseWriter, r *http.Request) {
	var body model.MeasureEdit
	if err := readBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	index, ok := measureIndex(r)
	if !ok {
		writeError(w, http.StatusNotFound, "measure not found")
		return
	}
	m := chord.ParseMeasure(body.Text, body.Split, body.Oval)

	s.mu.Lock()
	defer s.mu.Unlock()
	ok = s.grid.SetMeasure(partID(r), index, m)
	s.done("set_measure", ok)
	if !ok {
		writeError(w, http.StatusNotFound, "measure not found")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleClearMeasure(w http.ResponseWriter, r *http.Request) {
	index, ok := measureIndex(r)
	if !ok {
		writeError(w, http.StatusNotFound, "measure not found")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ok = s.grid.ClearMeasure(partID(r), index)
	s.done("clear_measure", ok)
	if !ok {
		writeError(w, http.StatusNotFound, "measure not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
