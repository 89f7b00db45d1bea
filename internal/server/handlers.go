package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hanwool/moneyweather/internal/markethours"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.QuickCheck(ctx); err != nil {
		s.log.Error().Err(err).Msg("Database health check failed")
		s.writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "moneyweather",
	})
}

// handleMarket serves the full dashboard payload. Responses are safe to
// cache briefly at the edge; stale data is acceptable while revalidating.
func (s *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	data, err := s.market.MarketData()
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to build market data")
		s.writeError(w, http.StatusInternalServerError, "failed to load market data")
		return
	}

	w.Header().Set("Cache-Control", "public, s-maxage=60, stale-while-revalidate=300")
	s.writeJSON(w, http.StatusOK, data)
}

// handleMarketStatus reports the current Korean and US trading sessions.
func (s *Server) handleMarketStatus(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"korea":     markethours.KoreanMarket(now),
		"us":        markethours.USMarket(now),
		"timestamp": now.UTC().Format(time.RFC3339),
	})
}

// handleCron triggers a collection cycle. Auth happens before any upstream
// fetch: either the cron secret as a bearer token, or the manual run key as
// a query parameter.
func (s *Server) handleCron(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		s.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := s.collector.Collect(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("Collection cycle failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Success",
		"runId":   result.RunID,
		"count":   result.Updated,
	})
}

func (s *Server) authorized(r *http.Request) bool {
	if secret := s.cfg.CronSecret; secret != "" {
		if r.Header.Get("Authorization") == "Bearer "+secret {
			return true
		}
	}
	if key := s.cfg.ManualRunKey; key != "" {
		if r.URL.Query().Get("key") == key {
			return true
		}
	}
	return false
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
