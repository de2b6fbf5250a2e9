package main

import (
	"context"
	"os"

	"battle-of-monsters/internal/api"
	"battle-of-monsters/internal/config"
	"battle-of-monsters/internal/constants"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.HealthcheckTimeout)
	defer cancel()

	if _, err := api.NewHealthClient(cfg).Check(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
