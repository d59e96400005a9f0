// Package api provides the HTTP interface to a running festival.
// GET endpoints are public (read-only observation).
// POST endpoints require a bearer token (control plane).
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/festival"
	"github.com/soundfield/festsim/internal/roster"
	"github.com/soundfield/festsim/internal/sim"
	"github.com/soundfield/festsim/internal/store"
)

// Server serves one festival over HTTP. All state access goes through mu;
// the engine itself is single-threaded.
type Server struct {
	Coord    *sim.Coordinator
	Gen      *roster.Generator
	DB       *store.DB
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.

	mu   sync.Mutex
	fest *festival.Festival

	// Events generated by past days that have not been responded to yet.
	open []*festival.DynamicEvent
}

// NewServer wires a server around an in-memory festival.
func NewServer(coord *sim.Coordinator, gen *roster.Generator, db *store.DB, f *festival.Festival, port int, adminKey string) *Server {
	return &Server{
		Coord:    coord,
		Gen:      gen,
		DB:       db,
		Port:     port,
		AdminKey: adminKey,
		fest:     f,
	}
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	rosterLimiter := NewRateLimiter(60, time.Minute)

	mux := http.NewServeMux()

	// Public endpoints (GET, read-only).
	mux.HandleFunc("/api/v1/summary", s.handleSummary)
	mux.HandleFunc("/api/v1/finances", s.handleFinances)
	mux.HandleFunc("/api/v1/risk", s.handleRisk)
	mux.HandleFunc("/api/v1/weather", s.handleWeather)
	mux.HandleFunc("/api/v1/events", s.handleEvents)
	mux.HandleFunc("/api/v1/analytics", s.handleAnalytics)
	mux.HandleFunc("/api/v1/roster", RateLimitMiddleware(rosterLimiter, s.handleRoster))

	// Control endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/advance", s.adminOnly(s.handleAdvance))
	mux.HandleFunc("/api/v1/hire", s.adminOnly(s.handleHire))
	mux.HandleFunc("/api/v1/slot", s.adminOnly(s.handleSlot))
	mux.HandleFunc("/api/v1/campaign", s.adminOnly(s.handleCampaign))
	mux.HandleFunc("/api/v1/respond", s.adminOnly(s.handleRespond))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		handler := corsMiddleware(mux)
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS to a comma-separated list of allowed origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth on POST requests.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if s.AdminKey == "" {
			http.Error(w, "control endpoints disabled (no FESTSIM_ADMIN_KEY set)", http.StatusForbidden)
			return
		}
		if !s.checkBearerToken(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	summary := s.Coord.Summary(s.fest)
	s.mu.Unlock()
	writeJSON(w, summary)
}

func (s *Server) handleFinances(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	fin := s.Coord.Finances(s.fest)
	s.mu.Unlock()
	writeJSON(w, fin)
}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	risk := s.Coord.EventEngine().RiskAssessment(s.fest)
	s.mu.Unlock()
	writeJSON(w, risk)
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	wc := s.Coord.EventEngine().Forecast()
	impact := s.Coord.EventEngine().Impact(s.fest, wc)
	s.mu.Unlock()

	writeJSON(w, map[string]any{
		"condition": wc,
		"impact":    impact,
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	open := make([]*festival.DynamicEvent, len(s.open))
	copy(open, s.open)
	s.mu.Unlock()
	writeJSON(w, open)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	analytics := s.Coord.Analytics(s.fest)
	recs := s.Coord.RecommendedCampaigns(s.fest)
	s.mu.Unlock()

	writeJSON(w, map[string]any{
		"analytics":       analytics,
		"recommendations": recs,
	})
}

// handleRoster generates fresh hire candidates. Candidate generation
// consumes the generator sequence, so this endpoint is rate limited.
func (s *Server) handleRoster(w http.ResponseWriter, r *http.Request) {
	artists := queryCount(r, "artists", 5)
	vendors := queryCount(r, "vendors", 5)

	s.mu.Lock()
	day := s.fest.DaysRemaining
	a := s.Gen.Artists(day, artists)
	v := s.Gen.Vendors(day, vendors)
	s.mu.Unlock()

	writeJSON(w, map[string]any{
		"artists": a,
		"vendors": v,
	})
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	day, err := s.Coord.AdvanceDay(s.fest)
	if err == nil {
		s.open = append(s.open, day.Events...)
		if s.DB != nil {
			if derr := s.DB.AppendDayLog(s.fest.ID, day); derr != nil {
				slog.Error("day log append failed", "error", derr)
			}
			if derr := s.DB.SaveSnapshot(s.fest); derr != nil {
				slog.Error("snapshot save failed", "error", derr)
			}
		}
	}
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, day)
}

func (s *Server) handleHire(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind string `json:"kind"` // "artist" or "vendor"
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch req.Kind {
	case "artist":
		a := s.Gen.GenerateArtist(s.fest.DaysRemaining)
		if err := s.Coord.HireArtist(s.fest, a); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, a)
	case "vendor":
		v := s.Gen.GenerateVendor(s.fest.DaysRemaining)
		if err := s.Coord.HireVendor(s.fest, v); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, v)
	default:
		http.Error(w, "kind must be artist or vendor", http.StatusBadRequest)
	}
}

func (s *Server) handleSlot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ArtistID int64  `json:"artist_id"`
		Slot     string `json:"slot"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err := s.Coord.AssignSlot(s.fest, req.ArtistID, req.Slot)
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]string{"status": "assigned", "slot": req.Slot})
}

func (s *Server) handleCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CampaignType   string  `json:"campaign_type"`
		TargetAudience string  `json:"target_audience"`
		Budget         float64 `json:"budget"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	result, err := s.Coord.RunCampaign(s.fest, req.CampaignType, req.TargetAudience, req.Budget)
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, result)
}

func (s *Server) handleRespond(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EventID  string `json:"event_id"`
		OptionID string `json:"option_id,omitempty"`
		Tier     string `json:"tier,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if (req.OptionID == "") == (req.Tier == "") {
		http.Error(w, "exactly one of option_id or tier required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var ev *festival.DynamicEvent
	idx := -1
	for i, open := range s.open {
		if open.ID == req.EventID {
			ev = open
			idx = i
			break
		}
	}
	if ev == nil {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	}

	var outcome festival.ResponseOutcome
	var err error
	if req.OptionID != "" {
		outcome, err = s.Coord.RespondToEvent(s.fest, ev, req.OptionID)
	} else {
		outcome, err = s.Coord.ResolveCrisis(s.fest, ev, catalog.CrisisTier(req.Tier))
	}
	if err != nil {
		writeError(w, err)
		return
	}

	s.open = append(s.open[:idx], s.open[idx+1:]...)
	writeJSON(w, outcome)
}

// writeError maps engine sentinel errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, festival.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, festival.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, festival.ErrInsufficientBudget),
		errors.Is(err, festival.ErrFestivalEnded),
		errors.Is(err, festival.ErrEventResolved),
		errors.Is(err, festival.ErrSlotTaken):
		status = http.StatusConflict
	}
	http.Error(w, err.Error(), status)
}

func queryCount(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			return n
		}
	}
	return def
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
