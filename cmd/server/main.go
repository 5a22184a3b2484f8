package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/vendor-order-service/internal/adapter/cache"
	"github.com/example/vendor-order-service/internal/adapter/directory"
	"github.com/example/vendor-order-service/internal/adapter/httpapi"
	"github.com/example/vendor-order-service/internal/adapter/natsstan"
	"github.com/example/vendor-order-service/internal/adapter/oms"
	"github.com/example/vendor-order-service/internal/adapter/repo"
	"github.com/example/vendor-order-service/internal/config"
	"github.com/example/vendor-order-service/internal/domain"
	"github.com/example/vendor-order-service/internal/logging"
	"github.com/example/vendor-order-service/internal/usecase"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := repo.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	orderRepo := repo.NewPostgresOrderRepo(pool)
	orderCache := cache.NewMemoryOrderCache()
	if err := (usecase.LoadCache{Repo: orderRepo, Cache: orderCache}).Execute(ctx); err != nil {
		log.Fatalf("load cache: %v", err)
	}

	var dir domain.VendorDirectory = &repo.PostgresVendorDirectory{Pool: pool}
	if cfg.VendorStaffJSON != "" {
		static, err := directory.FromJSON(cfg.VendorStaffJSON)
		if err != nil {
			log.Fatalf("vendor staff mapping: %v", err)
		}
		dir = static
		logger.Info("vendor directory loaded from VENDOR_STAFF_JSON")
	}

	var sink domain.RefundSink
	if cfg.OMSBaseURL != "" {
		sink = oms.NewClient(cfg.OMSBaseURL)
	} else {
		sink = oms.NewMemorySink()
		logger.Warn("OMS_BASE_URL not set, refunds go to in-memory sink")
	}

	sub := &natsstan.Subscriber{
		ClusterID: cfg.StanClusterID,
		ClientID:  cfg.StanClientID,
		URL:       cfg.NATSURL,
		Subject:   cfg.StanSubject,
		Durable:   cfg.StanDurable,
	}
	go func() {
		process := usecase.ProcessIncomingOrder{Repo: orderRepo, Cache: orderCache}
		if err := sub.Subscribe(ctx, process.Execute); err != nil {
			logger.Error("order feed subscribe", "error", err)
		}
	}()

	server := httpapi.NewServer(logger,
		usecase.ListOrders{Directory: dir, Cache: orderCache},
		usecase.GetScopedOrder{Directory: dir, Cache: orderCache},
		usecase.SubmitRefund{Directory: dir, Repo: orderRepo, Sink: sink},
	)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: server.Router}
	go func() {
		logger.Info("http listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
}
