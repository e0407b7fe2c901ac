package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clubportal-backend-go/internal/config"
	"clubportal-backend-go/internal/db"
	httpapi "clubportal-backend-go/internal/http"
	"clubportal-backend-go/internal/migrations"
	"clubportal-backend-go/internal/services"
	"clubportal-backend-go/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	cleanupLogs, err := setupLogger()
	if err != nil {
		log.Printf("logger setup failed: %v", err)
	} else {
		defer cleanupLogs()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer database.Close()
	if err := migrations.Apply(ctx, database, "migrations"); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	pg := store.NewPostgres(database)

	rdb, err := services.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	outbox := services.NewOutbox(cfg.OutboxSize, time.Duration(cfg.DeliveryTimeoutSeconds)*time.Second)
	var kafka *services.KafkaPublisher
	var events services.Publisher = services.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafka = services.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		events = services.NewAsyncPublisher(kafka, outbox)
		log.Printf("publishing lifecycle events to %s", cfg.KafkaTopic)
	}
	var notifier services.Notifier = services.NopNotifier{}
	if cfg.SMTPHost != "" {
		notifier = services.NewAsyncNotifier(services.NewSMTPNotifier(services.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}), outbox)
	}

	tokens := services.TokenService{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  time.Duration(cfg.AccessTTLSeconds) * time.Second,
		RefreshTTL: time.Duration(cfg.RefreshTTLSeconds) * time.Second,
	}
	clock := services.RealClock{}
	limiter := services.NewRedisLimiter(rdb, cfg.HelpRateLimit, time.Duration(cfg.HelpRateWindowSeconds)*time.Second)

	hub := services.NewDashboardHub()
	go hub.Run(ctx)
	dashboard := services.NewDashboardStats(pg, clock, cfg.MetricsDiskPath)

	server := httpapi.NewServer(cfg, httpapi.Deps{
		Sessions:   services.NewSessionStore(pg, pg, tokens, services.NewRedisSessions(rdb), events, clock),
		Profiles:   services.NewProfileService(pg, pg),
		Moderation: services.NewModeration(pg, pg, pg, hub, events, notifier, clock, cfg.PendingPageSize),
		Content:    services.NewContentService(pg),
		Help:       services.NewHelpDesk(pg, limiter, events, clock),
		Dashboard:  dashboard,
		Hub:        hub,
		Visits:     pg,
		Clock:      clock,
	})
	go statsLoop(ctx, dashboard, hub, time.Duration(cfg.StatsSampleSeconds)*time.Second)

	addr := ":" + cfg.Port
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	cancel()
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = httpServer.Shutdown(ctxShutdown)
	if err := outbox.Close(ctxShutdown); err != nil {
		log.Printf("outbox drain: %v", err)
	}
	if err := kafka.Close(); err != nil {
		log.Printf("kafka close: %v", err)
	}
	log.Printf("shutdown complete")
}

// statsLoop samples the dashboard counters on an interval and pushes each
// sample to connected admins.
func statsLoop(ctx context.Context, dashboard *services.DashboardStats, hub *services.DashboardHub, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sample, err := dashboard.Capture(ctx)
			if err != nil {
				log.Printf("stats capture: %v", err)
				continue
			}
			hub.Broadcast(sample)
		case <-ctx.Done():
			return
		}
	}
}
