package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"battle-of-monsters/internal/config"
	"battle-of-monsters/internal/database"
	"battle-of-monsters/internal/db"
	"battle-of-monsters/internal/domain"
	"battle-of-monsters/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	monsters *repository.MonsterRepository
	battles  *repository.BattleRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "monsters.db")}
	sqlDB, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	queries := db.New(sqlDB)
	return fixture{
		monsters: repository.NewMonsterRepository(sqlDB, queries, zerolog.Nop()),
		battles:  repository.NewBattleRepository(sqlDB, queries, zerolog.Nop()),
	}
}

func createMonster(t *testing.T, repo *repository.MonsterRepository, name string, attack, defense, hp, speed int) domain.Monster {
	t.Helper()
	m := domain.Monster{Name: name, Attack: attack, Defense: defense, HP: hp, Speed: speed, ImageURL: "https://img/" + name}
	require.NoError(t, repo.Create(context.Background(), &m))
	require.NotZero(t, m.ID)
	return m
}
