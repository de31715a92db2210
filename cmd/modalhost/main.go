package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avivier/modalhost/app"
	"github.com/avivier/modalhost/internal/config"
	"github.com/avivier/modalhost/internal/logging"
	"github.com/avivier/modalhost/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	cleanup, err := logging.Setup(cfg.Log.File)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer cleanup()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := store.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := store.NewContactRepo(db)

	p := tea.NewProgram(app.New(repo), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
