package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
	"github.com/ziadkadry99/ai-heroes/internal/generator"
)

// triggerResponse is the JSON response for a started generation.
type triggerResponse struct {
	JobID string          `json:"job_id"`
	State generator.State `json:"state"`
}

// statusResponse is the JSON response for the generator status endpoint.
// Fields holds the last result keyed by target id.
type statusResponse struct {
	State     generator.State    `json:"state"`
	JobID     string             `json:"job_id,omitempty"`
	Character *catalog.Character `json:"character,omitempty"`
	Fields    map[string]string  `json:"fields"`
}

func (s *Site) handleListCharacters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.All())
}

func (s *Site) handleGetCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "character not found"})
		return
	}
	c, err := s.cat.ByID(id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Site) handleTriggerGenerate(w http.ResponseWriter, r *http.Request) {
	job, err := s.sim.Trigger()
	if errors.Is(err, generator.ErrBusy) {
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": err.Error(),
			"state": string(generator.StateGenerating),
		})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusAccepted, triggerResponse{JobID: job.ID, State: generator.StateGenerating})
}

func (s *Site) handleGenerateStatus(w http.ResponseWriter, r *http.Request) {
	st := s.sim.Status()
	resp := statusResponse{
		State:  st.State,
		JobID:  st.JobID,
		Fields: resultFields(st.Last).Map(),
	}
	if st.Last != nil {
		c := st.Last.Character
		resp.Character = &c
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
