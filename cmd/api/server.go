package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mw "github.com/5w1tchy/bookshelf-api/internal/api/middlewares"
	"github.com/5w1tchy/bookshelf-api/internal/api/router"
	"github.com/5w1tchy/bookshelf-api/internal/config"
	storebooks "github.com/5w1tchy/bookshelf-api/internal/store/books"
	"github.com/5w1tchy/bookshelf-api/pkg/utils"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln("Error starting server:", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for _, w := range cfg.HardeningWarnings() {
		log.Printf("[server] WARNING: %s\n", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiters, err := rateLimiters(ctx, cfg)
	if err != nil {
		return err
	}

	store := storebooks.New()

	middlewares := []utils.Middleware{
		mw.RequestID,
		mw.Recovery,
		mw.Cors(cfg.CORSAllowedOrigins),
		mw.ResponseTime,
		mw.HPP(mw.DefaultHPPOptions()),
	}
	middlewares = append(middlewares, limiters...)
	middlewares = append(middlewares,
		mw.BodySizeLimit(cfg.MaxBodySize),
		mw.Compression,
		mw.SecurityHeaders(cfg.StrictSecurity),
	)
	secureMux := utils.ApplyMiddleware(router.Router(store), middlewares...)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           secureMux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       time.Minute,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		log.Println("[server] Shutting down")

		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		shutdownErr <- server.Shutdown(sctx)
	}()

	fmt.Println("Server is running on port:", cfg.Port)
	if cfg.TLSEnabled() {
		err = server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
	} else {
		err = server.ListenAndServe()
	}
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Printf("[server] Stopped, %d books dropped from memory\n", store.Len())
	return nil
}

// rateLimiters returns the Redis-backed token bucket and sliding window when
// Redis is reachable, and the in-process limiter otherwise.
func rateLimiters(ctx context.Context, cfg config.Config) ([]utils.Middleware, error) {
	rdb, err := cfg.RedisClient()
	if err != nil {
		return nil, err
	}
	if rdb != nil {
		err := config.PingRedis(rdb, 3*time.Second)
		if err == nil {
			fmt.Println("✅ Connected to Redis")
			tb := mw.NewRedisTokenBucket(rdb, cfg.RateLimitRPS, cfg.RateLimitBurst, mw.PerIPKey("tb"))
			sw := mw.NewRedisSlidingWindow(rdb, cfg.RateLimitWindowMax, cfg.RateLimitWindow, mw.PerIPKey("sw"))
			return []utils.Middleware{tb.Middleware, sw.Middleware}, nil
		}
		log.Printf("[server] WARNING: Redis connection failed: %v (using local rate limiter)\n", err)
		_ = rdb.Close()
	}

	local := mw.NewLocalRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, mw.PerIPKey("local"))
	go local.Run(ctx)
	return []utils.Middleware{local.Middleware}, nil
}
