package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Spok95/stone-inventory/internal/bot"
	"github.com/Spok95/stone-inventory/internal/config"
	"github.com/Spok95/stone-inventory/internal/domain/money"
	"github.com/Spok95/stone-inventory/internal/domain/prices"
	"github.com/Spok95/stone-inventory/internal/domain/samples"
	"github.com/Spok95/stone-inventory/internal/domain/slabs"
	"github.com/Spok95/stone-inventory/internal/infra/db"
	httpx "github.com/Spok95/stone-inventory/internal/infra/http"
	"github.com/Spok95/stone-inventory/internal/infra/logger"
	"github.com/Spok95/stone-inventory/internal/infra/metrics"
	"github.com/Spok95/stone-inventory/internal/infra/mongodb"
	"github.com/Spok95/stone-inventory/internal/observe"
)

type stores struct {
	slabs   slabs.Store
	samples samples.Store
	prices  prices.Store
	close   func()
}

func openPostgres(ctx context.Context, dsn string, log *slog.Logger) (stores, error) {
	if err := db.Migrate(dsn); err != nil {
		return stores{}, fmt.Errorf("migrations: %w", err)
	}
	log.Info("migrations applied")

	pool, err := db.Connect(ctx, dsn)
	if err != nil {
		return stores{}, fmt.Errorf("db connect: %w", err)
	}
	log.Info("db connected")
	return stores{
		slabs:   slabs.NewRepo(pool),
		samples: samples.NewRepo(pool),
		prices:  prices.NewRepo(pool),
		close:   pool.Close,
	}, nil
}

func openMongo(ctx context.Context, uri, database string, log *slog.Logger) (stores, error) {
	client, mdb, err := mongodb.Connect(ctx, uri, database)
	if err != nil {
		return stores{}, err
	}
	slabRepo, sampleRepo, priceRepo := slabs.NewMongoRepo(mdb), samples.NewMongoRepo(mdb), prices.NewMongoRepo(mdb)
	for _, ix := range []interface{ EnsureIndexes(context.Context) error }{slabRepo, sampleRepo, priceRepo} {
		if err := ix.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return stores{}, fmt.Errorf("mongo indexes: %w", err)
		}
	}
	log.Info("mongo connected", "database", database)
	return stores{
		slabs:   slabRepo,
		samples: sampleRepo,
		prices:  priceRepo,
		close:   func() { _ = client.Disconnect(context.Background()) },
	}, nil
}

func main() {
	configPath := flag.String("config", "config/example.yaml", "path to the YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.App.Env)

	if err := run(cfg, log); err != nil {
		log.Error("stopped", "err", err)
		os.Exit(1)
	}
	log.Info("graceful shutdown complete")
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		st  stores
		err error
	)
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		st, err = openMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database, log)
	default:
		st, err = openPostgres(ctx, cfg.Postgres.DSN, log)
	}
	if err != nil {
		return err
	}
	defer st.close()

	// Validate already accepted both values.
	cur, _ := money.ParseCurrency(cfg.Inventory.Currency)
	underflow, _ := samples.ParseUnderflowPolicy(cfg.Inventory.SampleUnderflow)

	obs := observe.Observer(observe.NewLog(log))
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		obs = observe.Multi(obs, metrics.New(reg))
		gatherer = reg
	}

	slabSvc := slabs.NewService(st.slabs, obs)
	sampleSvc := samples.NewService(st.samples, obs, samples.WithUnderflow(underflow))
	priceSvc := prices.NewService(st.prices, obs, cur)

	srv := httpx.New(cfg.HTTP.Addr, gatherer)
	go func() {
		if err := srv.Start(); err != nil {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	if cfg.Telegram.Token != "" {
		api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			return fmt.Errorf("telegram: %w", err)
		}
		log.Info("bot authorized", "username", api.Self.UserName)
		b := bot.New(api, log, slabSvc, sampleSvc, priceSvc)
		go func() {
			if err := b.Run(ctx, int(cfg.Telegram.PollTimeout.Seconds())); err != nil && ctx.Err() == nil {
				log.Error("bot stopped", "err", err)
			}
		}()
	} else {
		log.Warn("telegram.token is empty, bot disabled")
	}

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
