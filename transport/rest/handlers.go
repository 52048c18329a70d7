package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/nineboard-agent/internal/apperror"
	"github.com/rocketscienceinc/nineboard-agent/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	snapshot, ok := that.games.Snapshot()
	if !ok {
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no game in progress"})
		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func (that *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	game, err := that.games.GetGame(r.Context(), id)
	if errors.Is(err, apperror.ErrGameNotFound) {
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
		return
	}

	if err != nil {
		that.logger.Error().
			Err(err).
			Str("game_id", id).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("failed to get game")
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to get game"})

		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := that.games.DeleteGame(r.Context(), id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperror.ErrGameNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
	case errors.Is(err, usecase.ErrGameInProgress):
		that.writeJSON(w, http.StatusConflict, errorResponse{Error: "game is in progress"})
	default:
		that.logger.Error().
			Err(err).
			Str("game_id", id).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("failed to delete game")
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to delete game"})
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		that.logger.Error().Err(err).Msg("failed to write response")
	}
}
