package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/m-mizutani/ecotravel/pkg/model"
	"github.com/m-mizutani/ecotravel/pkg/usecase/editor"
	"github.com/m-mizutani/ecotravel/pkg/usecase/planner"
	"github.com/m-mizutani/ecotravel/pkg/utils/logging"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// POST /api/itineraries/generate
func (s *Server) generateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var params model.SearchParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := params.Validate(); err != nil {
		logging.From(r.Context()).Info("rejected generation request", "err", err)
		respondError(w, http.StatusBadRequest, "invalid search parameters")
		return
	}

	s.store.SetSearchParams(&params)

	itinerary, err := s.planner.Generate(r.Context(), params)
	if err != nil {
		// Internal failure detail is logged by the planner; the client
		// only sees the generic message.
		respondError(w, http.StatusInternalServerError, planner.ErrGenerationFailed.Error())
		return
	}

	s.store.SetCurrent(itinerary)
	respondJSON(w, http.StatusOK, itinerary)
}

// GET /api/itineraries
func (s *Server) listSaved(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	respondJSON(w, http.StatusOK, s.store.Saved())
}

// POST /api/itineraries
func (s *Server) saveItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var itinerary model.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&itinerary); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if itinerary.ID == "" {
		respondError(w, http.StatusBadRequest, "itinerary id is required")
		return
	}

	if err := s.store.Save(r.Context(), itinerary); err != nil {
		logging.From(r.Context()).Error("failed to save itinerary", "err", err, "id", itinerary.ID)
		respondError(w, http.StatusInternalServerError, "failed to save itinerary")
		return
	}

	respondJSON(w, http.StatusCreated, itinerary)
}

// DELETE /api/itineraries/:id
func (s *Server) deleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := model.ItineraryID(ps.ByName("id"))

	if err := s.store.Delete(r.Context(), id); err != nil {
		logging.From(r.Context()).Error("failed to delete itinerary", "err", err, "id", id)
		respondError(w, http.StatusInternalServerError, "failed to delete itinerary")
		return
	}

	// An unknown id deletes nothing and still succeeds
	respondJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// GET /api/current
func (s *Server) getCurrent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	current := s.store.Current()
	if current == nil {
		respondError(w, http.StatusNotFound, "no current itinerary")
		return
	}
	respondJSON(w, http.StatusOK, current)
}

// PUT /api/current
func (s *Server) setCurrent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var itinerary *model.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&itinerary); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	s.store.SetCurrent(itinerary)
	respondJSON(w, http.StatusOK, itinerary)
}

type moveRequest struct {
	DayIndex      int              `json:"dayIndex"`
	ActivityIndex int              `json:"activityIndex"`
	Direction     editor.Direction `json:"direction"`
}

// POST /api/current/move
func (s *Server) moveActivity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := req.Direction.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "direction must be earlier or later")
		return
	}

	// Editing without a current document is a silent no-op
	s.editor.Move(req.DayIndex, req.ActivityIndex, req.Direction)
	respondJSON(w, http.StatusOK, s.store.Current())
}

type deleteActivityRequest struct {
	DayIndex      int `json:"dayIndex"`
	ActivityIndex int `json:"activityIndex"`
}

// POST /api/current/activities/delete
func (s *Server) deleteActivity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req deleteActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	s.editor.Delete(req.DayIndex, req.ActivityIndex)
	respondJSON(w, http.StatusOK, s.store.Current())
}

// GET /api/destinations
func (s *Server) listDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	respondJSON(w, http.StatusOK, s.destinations)
}
