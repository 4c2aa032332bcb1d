// Command talktemplate is the terminal client for the TalkTemplate
// service: log in, talk a template into shape, and track review status.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/seojinpark/talktemplate/client/internal/cli"
	"github.com/seojinpark/talktemplate/client/internal/config"
	"github.com/seojinpark/talktemplate/client/internal/model/template"
	"github.com/seojinpark/talktemplate/client/internal/service/authapi"
	chatservice "github.com/seojinpark/talktemplate/client/internal/service/chat"
	"github.com/seojinpark/talktemplate/client/internal/service/prefs"
	"github.com/seojinpark/talktemplate/client/internal/service/session"
	"github.com/seojinpark/talktemplate/client/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run owns all defers; os.Exit must stay out here so they fire.
	if err := run(ctx, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	// A missing .env simply means plain environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("failed to load configuration: %v", err)
		return err
	}

	kv, closeStore := openStore(cfg.Store)
	defer closeStore()

	api := authapi.New(cfg.API.BaseURL, cfg.API.Timeout)
	sessions := session.NewManager(api, kv)
	sessions.Restore()

	app := &cli.App{
		Sessions:  sessions,
		Chat:      chatservice.NewService(cfg.Chat.ResponseDelay),
		Templates: template.NewMemoryStore(template.Seed()),
		Prefs:     prefs.NewManager(kv),
		In:        os.Stdin,
		Out:       os.Stdout,
	}

	return app.Run(ctx, args)
}

// openStore opens the durable store, degrading to memory-only state when
// the file cannot be opened. The session then lasts for this process only.
func openStore(cfg config.StoreConfig) (store.Store, func()) {
	bolt, err := store.OpenBolt(cfg.Path)
	if err != nil {
		log.Printf("[store] %s unavailable, session will not survive restarts: %v", cfg.Path, err)
		return store.NewMemoryStore(), func() {}
	}
	return bolt, func() {
		if err := bolt.Close(); err != nil {
			log.Printf("[store] close: %v", err)
		}
	}
}
