package ops

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/app/engine"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
)

const defaultDepth = 20

// Engine is the part of the engine host the router reads.
type Engine interface {
	Ready() bool
	Pairs() []string
	Market(pair string) (engine.Market, bool)
	Stats() engine.Stats
}

// ReadyResponse is the body of GET /ready.
type ReadyResponse struct {
	Ready bool         `json:"ready"`
	Pairs []string     `json:"pairs"`
	Stats engine.Stats `json:"stats"`
}

// BookResponse is the body of GET /books/{pair}.
type BookResponse struct {
	Pair     string                   `json:"pair"`
	Bids     []orderbookv1.PriceLevel `json:"bids"`
	Asks     []orderbookv1.PriceLevel `json:"asks"`
	Snapshot *snapshotv1.Snapshot     `json:"snapshot,omitempty"`
}

type handler struct {
	engine Engine
	logger *logger.Logger
}

// NewRouter builds the operational HTTP surface. GET /health runs checks;
// the other routes are read-only views of the engine.
func NewRouter(e Engine, checks map[string]healthcheck.Checker, log *logger.Logger) http.Handler {
	h := &handler{engine: e, logger: log}
	hc := healthcheck.HealthCheck{Checks: checks, Timeout: 2 * time.Second}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(hc.Handler)
	r.Use(middleware.Timeout(3 * time.Second))

	r.Get("/ready", h.ready)
	r.Get("/books/{pair}", h.book)

	return r
}

func (h *handler) ready(w http.ResponseWriter, _ *http.Request) {
	resp := ReadyResponse{
		Ready: h.engine.Ready(),
		Pairs: h.engine.Pairs(),
		Stats: h.engine.Stats(),
	}

	code := http.StatusOK
	if !resp.Ready {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

// book returns aggregated depth; ?depth=N limits levels and ?orders=true
// includes the full snapshot.
func (h *handler) book(w http.ResponseWriter, r *http.Request) {
	pair := chi.URLParam(r, "pair")
	market, ok := h.engine.Market(pair)
	if !ok {
		h.writeError(w, r, http.StatusNotFound, errors.New(errors.UnknownPair, "unknown pair: "+pair, "pair"))
		return
	}

	levels := defaultDepth
	if raw := r.URL.Query().Get("depth"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeError(w, r, http.StatusBadRequest, errors.New(errors.GeneralBadRequestError, "depth must be a positive integer", "depth"))
			return
		}
		levels = n
	}

	resp := BookResponse{Pair: pair}
	resp.Bids, resp.Asks = market.Depth(levels)
	if r.URL.Query().Get("orders") == "true" {
		resp.Snapshot = market.Snapshot()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, code int, err error) {
	h.logger.WarnContext(r.Context(), err.Error(), logger.NewField("path", r.URL.Path))
	writeJSON(w, code, map[string]any{
		"status":     code,
		"code":       errors.CodeOf(err),
		"detail":     err.Error(),
		"request_id": middleware.GetReqID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
