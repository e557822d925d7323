package main

import (
	"flag"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/anami-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/anami-scheduler/internal/db"
	"github.com/BruksfildServices01/anami-scheduler/internal/logging"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "run schema migrations")
	seedFlag := flag.Bool("seed", false, "upsert the service catalog")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if !*migrateFlag && !*seedFlag {
		log.Info("nothing to do: pass -migrate and/or -seed")
		return
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer func() { _ = dbpkg.Close(db) }()

	if *migrateFlag {
		log.Info("running migrations")
		if err := dbpkg.Migrate(db); err != nil {
			log.Fatal("migration failed", zap.Error(err))
		}
		log.Info("migrations done")
	}

	if *seedFlag {
		log.Info("seeding services")
		n, err := dbpkg.SeedServices(db)
		if err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
		log.Info("services seeded", zap.Int("count", n))
	}
}
