package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

type statusHandlers struct {
	logger *slog.Logger
	source gameSource
}

// game - returns the current round as JSON.
func (that *statusHandlers) game(w http.ResponseWriter, _ *http.Request) {
	game := that.source.Game()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(game); err != nil {
		that.logger.Error("failed to encode game", "error", err)
	}
}
