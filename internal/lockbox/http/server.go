package httpapi

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/MATTBOX19/lockbox-backend/internal/lockbox/dto"
	"github.com/MATTBOX19/lockbox-backend/internal/lockbox/store"
)

// HeaderCronSecret é o header que o job agendado manda no upsert
const HeaderCronSecret = "X-Cron-Secret"

// Metrics agrupa os contadores de ingestão (registrados no main, injetados aqui)
type Metrics struct {
	Upserts      prometheus.Counter     // lotes aceitos
	Unauthorized prometheus.Counter     // tentativas com segredo inválido
	Records      *prometheus.CounterVec // registros gravados, por kind ("game" | "pick")
}

// API expõe os endpoints REST do lockbox: leitura pública de games/picks
// e o upsert gateado por segredo pro job de ingestão
type API struct {
	log        *zap.Logger
	store      *store.Store
	cronSecret string
	origins    []string // origens liberadas no CORS
	metrics    Metrics
}

func NewAPI(log *zap.Logger, st *store.Store, cronSecret string, origins []string, m Metrics) *API {
	return &API{log: log, store: st, cronSecret: cronSecret, origins: origins, metrics: m}
}

// Router retorna o roteador HTTP com os endpoints REST
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", HeaderCronSecret},
	}))

	// leitura pública
	r.Get("/health", a.health)
	r.Get("/picks/today", a.listPicks)
	r.Get("/games/today", a.listGames)

	// escrita gateada pelo segredo do cron
	r.Post("/ingest/upsert", a.ingestUpsert)
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// health responde as contagens do instante da chamada
func (a *API) health(w http.ResponseWriter, r *http.Request) {
	games, picks := a.store.Counts()
	writeJSON(w, http.StatusOK, dto.HealthResponse{OK: true, Picks: picks, Games: games})
}

func (a *API) listPicks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.ListPicks())
}

func (a *API) listGames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.ListGames())
}

// ingestUpsert aplica um lote de games e picks vindo do job agendado.
// Segredo errado: 401 sem tocar em nada. Payload inválido: 400 antes de
// qualquer escrita (o lote nunca é aplicado pela metade por erro de shape)
func (a *API) ingestUpsert(w http.ResponseWriter, r *http.Request) {
	if !a.secretOK(r.Header.Get(HeaderCronSecret)) {
		a.metrics.Unauthorized.Inc()
		a.log.Warn("ingest rejected: invalid cron secret", zap.String("remote", r.RemoteAddr))
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid secret"})
		return
	}

	var req dto.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
		return
	}

	for i, g := range req.Games {
		if err := g.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("games[%d]: %v", i, err)})
			return
		}
	}
	for i, p := range req.Picks {
		if err := p.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("picks[%d]: %v", i, err)})
			return
		}
	}

	games, picks := a.store.Upsert(req.Games, req.Picks)

	a.metrics.Upserts.Inc()
	a.metrics.Records.WithLabelValues("game").Add(float64(len(req.Games)))
	a.metrics.Records.WithLabelValues("pick").Add(float64(len(req.Picks)))

	a.log.Info("ingest applied",
		zap.Int("games_in", len(req.Games)),
		zap.Int("picks_in", len(req.Picks)),
		zap.Int("games_total", games),
		zap.Int("picks_total", picks),
	)

	writeJSON(w, http.StatusOK, dto.UpsertResponse{OK: true, Games: games, Picks: picks})
}

// secretOK compara em tempo constante pra não vazar timing do segredo
func (a *API) secretOK(got string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(a.cronSecret)) == 1
}
