package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-helper/internal/config"
	"github.com/robalobadob/wordle/apps/go-helper/internal/history"
	"github.com/robalobadob/wordle/apps/go-helper/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-helper/internal/store"
	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dict, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	log.Info().Int("words", dict.Len()).Int("skipped", dict.Skipped()).Msg("dictionary loaded")

	var hist *history.Store
	if cfg.HistoryDB != "" {
		hist, err = history.Open(cfg.HistoryDB)
		if err != nil {
			log.Fatal().Err(err).Str("dsn", cfg.HistoryDB).Msg("failed to open history db")
		}
		defer hist.Close()
	}

	mem := store.NewMemoryStore()
	go sweep(mem, cfg.SessionTTL)

	srv := httpserver.New(mem, dict, hist, httpserver.Options{
		Rows:          cfg.Rows,
		Cols:          cfg.WordLength,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		ClientOrigin:  cfg.ClientOrigin,
	})
	log.Info().Str("port", cfg.Port).Int("rows", cfg.Rows).Int("cols", cfg.WordLength).Msg("starting go-helper")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// sweep drops sessions idle for longer than ttl.
func sweep(st store.Store, ttl time.Duration) {
	t := time.NewTicker(ttl / 4)
	defer t.Stop()
	for range t.C {
		n, err := st.Sweep(context.Background(), time.Now().Add(-ttl))
		if err != nil {
			log.Warn().Err(err).Msg("sweep sessions")
			continue
		}
		if n > 0 {
			log.Info().Int("dropped", n).Msg("swept idle sessions")
		}
	}
}
