package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	httpapi "github.com/MATTBOX19/lockbox-backend/internal/lockbox/http"
	"github.com/MATTBOX19/lockbox-backend/internal/lockbox/store"
	"github.com/MATTBOX19/lockbox-backend/internal/shared/config"
	"github.com/MATTBOX19/lockbox-backend/internal/shared/logger"
	"github.com/MATTBOX19/lockbox-backend/internal/shared/metrics"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	if cfg.CronSecret == "change-me" {
		log.Warn("CRON_SECRET not set; using development default")
	}

	// métricas de ingestão: registradas aqui e injetadas no handler
	upserts := prometheus.NewCounter(prometheus.CounterOpts{Name: "lockbox_ingest_upserts_total", Help: "lotes de upsert aceitos"})
	unauthorized := prometheus.NewCounter(prometheus.CounterOpts{Name: "lockbox_ingest_unauthorized_total", Help: "upserts rejeitados por segredo inválido"})
	records := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "lockbox_ingest_records_total", Help: "registros gravados por tipo"}, []string{"kind"})
	prometheus.MustRegister(upserts, unauthorized, records)

	// estado em memória; restart zera
	st := store.New()

	api := httpapi.NewAPI(log, st, cfg.CronSecret,
		strings.Split(cfg.CORSAllowedOrigins, ","),
		httpapi.Metrics{Upserts: upserts, Unauthorized: unauthorized, Records: records},
	)

	// metrics/health em porta separada; sem dependência externa pra pingar
	metrics.StartMetricsServer(cfg.MetricsPort, nil)
	log.Info("metrics/health server", zap.String("addr", ":"+cfg.MetricsPort))

	apiSrv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: api.Router(),
	}

	log.Info("lockbox-api listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
