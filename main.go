package main

import (
	"context"
	"fmt"
	mrand "math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/riddleme/assets"
	"github.com/robalobadob/riddleme/internal/catalog"
	"github.com/robalobadob/riddleme/internal/config"
	"github.com/robalobadob/riddleme/internal/console"
	"github.com/robalobadob/riddleme/internal/daily"
	"github.com/robalobadob/riddleme/internal/game"
	"github.com/robalobadob/riddleme/internal/httpserver"
	"github.com/robalobadob/riddleme/internal/store"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	mode := "play"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}
	if mode != "play" && mode != "serve" {
		fmt.Fprintf(os.Stderr, "usage: %s [serve]\n", os.Args[0])
		os.Exit(2)
	}

	ctx := context.Background()
	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Source).Msg("failed to load riddles")
	}
	log.Info().Int("riddles", cat.Len()).Str("source", cfg.Source).Msg("catalog loaded")

	if mode == "serve" {
		srv := httpserver.New(store.NewMemoryStore(), cat, randSource(cfg))
		log.Info().Str("port", cfg.Port).Msg("starting riddle server")
		if err := srv.Start(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
		return
	}

	ctl := game.NewController(cat, randSource(cfg)(), os.Stdin, console.New(os.Stdout, cfg.Color))
	if _, err := ctl.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// loadCatalog builds the catalog from the configured source.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.Source {
	case config.SourceEmbedded:
		return catalog.Parse(
			strings.NewReader(string(assets.Riddles())),
			strings.NewReader(string(assets.Hints())),
		)
	case config.SourceSQLite:
		return loadSQLiteCatalog(ctx, cfg.DBPath)
	default:
		return catalog.LoadFiles(cfg.RiddleFile, cfg.HintFile)
	}
}

// randSource returns a generator factory. Daily mode and a fixed seed make
// every game deal the same riddles; otherwise each game is seeded randomly.
func randSource(cfg *config.Config) func() *mrand.Rand {
	return func() *mrand.Rand {
		seed := cfg.Seed
		switch {
		case cfg.Daily:
			seed = daily.Seed(time.Now(), cfg.DailySalt)
		case seed == 0:
			seed = mrand.Uint64()
		}
		return mrand.New(mrand.NewPCG(seed, seed))
	}
}
