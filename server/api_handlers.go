package server

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"

	"github.com/pileup/pileup/pkg/domain"
	"github.com/pileup/pileup/pkg/stats"
)

// maxReasonLen limits user-supplied amnesty and abandon reasons
const maxReasonLen = 500

// entryActions maps URL actions to the resulting entry status
var entryActions = map[string]domain.Status{
	"amnesty":  domain.StatusAmnestyGranted,
	"complete": domain.StatusCompleted,
	"abandon":  domain.StatusAbandoned,
	"playing":  domain.StatusPlaying,
}

// pileHandler lists backlog entries with optional filtering and sorting
func (s *Server) pileHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.EntryFilter{
		Genre:         r.URL.Query().Get("genre"),
		SortBy:        r.URL.Query().Get("sort"),
		SortDirection: r.URL.Query().Get("dir"),
	}

	if st := r.URL.Query().Get("status"); st != "" {
		status := domain.Status(st)
		if !status.Valid() {
			renderError(w, r, fmt.Errorf("invalid status %q", st), http.StatusBadRequest)
			return
		}
		filter.Status = status
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset > 0 {
			filter.Offset = offset
		}
	}

	entries, err := s.store.Backlog(r.Context(), filter)
	if err != nil {
		lgr.Printf("[ERROR] failed to list backlog: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	})
}

// syncHandler triggers an immediate Steam library sync
func (s *Server) syncHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.scheduler.SyncNow(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] sync failed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// entryActionHandler transitions a backlog entry to a new status. The action
// path segment is one of amnesty, complete, abandon or playing; amnesty and
// abandon accept an optional reason in the JSON body.
func (s *Server) entryActionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid entry ID"), http.StatusBadRequest)
		return
	}

	status, ok := entryActions[r.PathValue("action")]
	if !ok {
		renderError(w, r, fmt.Errorf("invalid action %q", r.PathValue("action")), http.StatusBadRequest)
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if r.Body != nil {
		// reason is optional, ignore decode errors on empty bodies
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	reason := s.cleanReason(body.Reason)

	updated, err := s.store.UpdateStatus(ctx, id, status, reason)
	if err != nil {
		lgr.Printf("[ERROR] failed to update entry %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !updated {
		renderError(w, r, fmt.Errorf("entry %d not found", id), http.StatusNotFound)
		return
	}

	entry, err := s.store.Entry(ctx, id)
	if err != nil {
		lgr.Printf("[ERROR] failed to reload entry %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, entry)
}

// cleanReason strips markup from a user-supplied reason and caps its length,
// truncating on a rune boundary so a multi-byte character is never split
func (s *Server) cleanReason(reason string) string {
	reason = strings.TrimSpace(s.sanitizer.Sanitize(reason))
	if len(reason) > maxReasonLen {
		cut := maxReasonLen
		for cut > 0 && !utf8.RuneStart(reason[cut]) {
			cut--
		}
		reason = reason[:cut]
	}
	return reason
}

// recommendationsHandler returns scored game recommendations
func (s *Server) recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	backlog, err := s.store.Backlog(r.Context(), domain.EntryFilter{})
	if err != nil {
		lgr.Printf("[ERROR] failed to load backlog: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	recs := s.engine.Recommend(backlog)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"recommendations": recs,
		"count":           len(recs),
	})
}

// plansHandler returns today's action plans
func (s *Server) plansHandler(w http.ResponseWriter, r *http.Request) {
	backlog, err := s.store.Backlog(r.Context(), domain.EntryFilter{})
	if err != nil {
		lgr.Printf("[ERROR] failed to load backlog: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"plans": s.engine.Plans(backlog)})
}

// greetingHandler returns a personalized greeting message
func (s *Server) greetingHandler(w http.ResponseWriter, r *http.Request) {
	backlog, err := s.store.Backlog(r.Context(), domain.EntryFilter{})
	if err != nil {
		lgr.Printf("[ERROR] failed to load backlog: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, s.engine.Greeting(backlog, s.config.GetUserName()))
}

// analysisHandler returns pile analysis observations
func (s *Server) analysisHandler(w http.ResponseWriter, r *http.Request) {
	backlog, err := s.store.Backlog(r.Context(), domain.EntryFilter{})
	if err != nil {
		lgr.Printf("[ERROR] failed to load backlog: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"observations": s.engine.PileAnalysis(backlog)})
}

// motivationHandler returns a motivational message for an action
func (s *Server) motivationHandler(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")
	renderJSON(w, r, http.StatusOK, map[string]string{"message": s.engine.Motivational(action)})
}

// realityCheckHandler returns the reality check stats
func (s *Server) realityCheckHandler(w http.ResponseWriter, r *http.Request) {
	backlog, err := s.store.Backlog(r.Context(), domain.EntryFilter{})
	if err != nil {
		lgr.Printf("[ERROR] failed to load backlog: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, stats.Check(backlog))
}

// shameScoreHandler returns the shame score with its breakdown
func (s *Server) shameScoreHandler(w http.ResponseWriter, r *http.Request) {
	backlog, err := s.store.Backlog(r.Context(), domain.EntryFilter{})
	if err != nil {
		lgr.Printf("[ERROR] failed to load backlog: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, stats.Shame(backlog))
}

// insightsHandler returns behavioral insights
func (s *Server) insightsHandler(w http.ResponseWriter, r *http.Request) {
	backlog, err := s.store.Backlog(r.Context(), domain.EntryFilter{})
	if err != nil {
		lgr.Printf("[ERROR] failed to load backlog: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, stats.Analyze(backlog))
}

// createShareHandler builds a share card from the current stats and stores it
func (s *Server) createShareHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	backlog, err := s.store.Backlog(ctx, domain.EntryFilter{})
	if err != nil {
		lgr.Printf("[ERROR] failed to load backlog: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	payload := stats.BuildShareable(s.config.GetUserName(), stats.Check(backlog), stats.Shame(backlog),
		time.Now(), rand.Intn) //nolint:gosec // fun fact selection, no security value

	id, err := s.store.CreateShare(ctx, payload)
	if err != nil {
		lgr.Printf("[ERROR] failed to create share: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusCreated, map[string]string{
		"id":  id,
		"url": "/api/v1/share/" + id,
	})
}

// getShareHandler returns a previously created share card
func (s *Server) getShareHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	payload, err := s.store.GetShare(r.Context(), id)
	if err != nil {
		lgr.Printf("[ERROR] failed to get share %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if payload == nil {
		renderError(w, r, fmt.Errorf("share %s not found", id), http.StatusNotFound)
		return
	}

	renderJSON(w, r, http.StatusOK, payload)
}
