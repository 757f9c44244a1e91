// Command migrate manages the rating-search run archive's schema,
// mirroring the teacher's cmd/migrate up/down pattern against the
// embedded SQLite store instead of Postgres.
package main

import (
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/soccer-sim/pkg/config"
	"github.com/jstittsworth/soccer-sim/pkg/runstore"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down]")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	store, err := runstore.Open(cfg.RunStorePath, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("failed to open run store: %v", err)
	}
	defer store.Close()

	switch os.Args[1] {
	case "up":
		logrus.WithField("path", cfg.RunStorePath).Info("run store schema migrated")
	case "down":
		logrus.Fatal("down migration not supported: delete the sqlite file directly")
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
