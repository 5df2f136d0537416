package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boolen-kitchen/api/internal/config"
	"github.com/boolen-kitchen/api/internal/router"
	"github.com/boolen-kitchen/api/internal/store"
	"github.com/boolen-kitchen/api/internal/ws"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var st store.Store
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v", err)
		}
		defer pool.Close()
		st, err = store.NewPgxStore(ctx, pool)
		if err != nil {
			log.Fatalf("Unable to initialize database store: %v", err)
		}
		log.Println("Using Postgres store")
	} else {
		fs, err := store.NewFileStore(cfg.DataFile)
		if err != nil {
			log.Fatalf("Unable to open data file %s: %v", cfg.DataFile, err)
		}
		st = fs
		log.Printf("Using file store at %s", cfg.DataFile)
	}

	hub := ws.NewHub()
	go hub.Run()

	r, err := router.New(cfg, st, hub)
	if err != nil {
		log.Fatalf("Unable to build router: %v", err)
	}

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}
