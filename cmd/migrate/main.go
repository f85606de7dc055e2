package main

import (
	"context"
	"flag"
	"log"
	"time"

	"match-ton-alternance/internal/config"
	"match-ton-alternance/internal/database/migration"
	dbpostgres "match-ton-alternance/internal/database/postgres"
	"match-ton-alternance/internal/database/seeder"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding V<version>__<name>.sql files")
	seed := flag.Bool("seed", false, "insert development seed data after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := (migration.Runner{Dir: *dir}).Run(ctx, db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Printf("migrations applied | dir=%s", *dir)

	if *seed {
		r := seeder.Runner{Seeders: []seeder.Seeder{seeder.JobOfferSeeder{}}}
		if err := r.Run(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Printf("seed data inserted")
	}
}
