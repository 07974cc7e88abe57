package main

import (
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/emberhollow/character-api/internal/engine/resolver"
	characterorch "github.com/emberhollow/character-api/internal/orchestrators/character"
	"github.com/emberhollow/character-api/internal/redis"
	characterrepo "github.com/emberhollow/character-api/internal/repositories/character"
	compendiumrepo "github.com/emberhollow/character-api/internal/repositories/compendium"
	charactersvc "github.com/emberhollow/character-api/internal/services/character"
)

type envConfig struct {
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
}

// buildService wires the full stack: Redis client, repositories, resolution
// engine and the character orchestrator.
func buildService() (charactersvc.Service, error) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, err
	}

	charRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	compRepo, err := compendiumrepo.NewRedis(&compendiumrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	return characterorch.New(&characterorch.Config{
		CharacterRepo:  charRepo,
		CompendiumRepo: compRepo,
		Engine:         resolver.New(),
	})
}
