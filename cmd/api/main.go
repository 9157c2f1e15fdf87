package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backend-wanderwise/internal/auth"
	"backend-wanderwise/internal/config"
	"backend-wanderwise/internal/db"
	"backend-wanderwise/internal/server"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig    func() config.Config
	connectMongo  func(config.Config) (*mongo.Client, error)
	ensureIndexes func(context.Context, *mongo.Database) error
	notify        func(chan<- os.Signal, ...os.Signal)
	run           func(context.Context, config.Config, *mongo.Client, auth.TokenVerifier, <-chan os.Signal, ListenFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig:    config.Load,
		connectMongo:  db.ConnectMongo,
		ensureIndexes: db.EnsureIndexes,
		notify:        signal.Notify,
		run:           Run,
	}
}

func realMain(deps mainDeps) {
	cfg := deps.loadConfig()

	client, err := deps.connectMongo(cfg)
	if err != nil {
		log.Fatalf("mongodb connection failed: %v", err)
	}

	if err := deps.ensureIndexes(context.Background(), client.Database(cfg.MongoDB)); err != nil {
		log.Printf("ensure indexes: %v", err)
	}

	verifier := auth.NewVerifier(cfg.FirebaseProjectID, cfg.GoogleCertsURL)

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, client, verifier, signals, nil); err != nil {
		log.Printf("server exited with error: %v", err)
	}
}

type ListenFunc func(app *fiber.App, addr string) error

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

var shutdownFn = func(app *fiber.App, ctx context.Context) error {
	return app.ShutdownWithContext(ctx)
}

// Run starts the HTTP server and waits for termination signals.
func Run(ctx context.Context, cfg config.Config, client *mongo.Client, verifier auth.TokenVerifier, signals <-chan os.Signal, listen ListenFunc) error {
	srv := server.NewServer(cfg, client, verifier)

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.App, cfg.ServerPort)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := shutdownFn(srv.App, shutdownCtx); err != nil {
		return err
	}
	if client != nil {
		disconnectCtx, cancelDisconnect := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelDisconnect()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Printf("mongodb disconnect: %v", err)
		}
	}
	return nil
}
