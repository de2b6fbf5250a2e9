package service_test

import (
	"context"
	"strings"
	"testing"

	"battle-of-monsters/internal/constants"
	"battle-of-monsters/internal/domain"
	"battle-of-monsters/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonsterService_AddAndGet(t *testing.T) {
	store := newMemMonsters()
	svc := service.NewMonsterService(store, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Add(ctx, domain.Monster{ID: 55, Name: "Goblin", Attack: 3, Defense: 2, HP: 10, Speed: 5})
	require.NoError(t, err)
	// client supplied ids are ignored
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Goblin", got.Name)
}

func TestMonsterService_AddRejectsInvalidStats(t *testing.T) {
	svc := service.NewMonsterService(newMemMonsters(), zerolog.Nop())

	_, err := svc.Add(context.Background(), domain.Monster{Name: "Ghost", HP: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Add(context.Background(), domain.Monster{HP: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	tests := []struct {
		name string
		m    domain.Monster
	}{
		{"hp above cap", domain.Monster{Name: "Titan", HP: constants.MaxStat + 1}},
		{"attack above cap", domain.Monster{Name: "Titan", Attack: constants.MaxStat + 1, HP: 1}},
		{"defense above cap", domain.Monster{Name: "Titan", Defense: constants.MaxStat + 1, HP: 1}},
		{"speed above cap", domain.Monster{Name: "Titan", Speed: constants.MaxStat + 1, HP: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), tc.m)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	added, err := svc.Add(context.Background(), domain.Monster{Name: "Titan", HP: constants.MaxStat})
	require.NoError(t, err)
	assert.Equal(t, constants.MaxStat, added.HP)
}

func TestMonsterService_Update(t *testing.T) {
	store := newMemMonsters(fastMonster)
	svc := service.NewMonsterService(store, zerolog.Nop())
	ctx := context.Background()

	updated, err := svc.Update(ctx, fastMonster.ID, domain.Monster{Name: "Faster", Attack: 1, Defense: 2, HP: 3, Speed: 4, ImageURL: "img"})
	require.NoError(t, err)
	assert.Equal(t, fastMonster.ID, updated.ID)

	got, err := svc.Get(ctx, fastMonster.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Monster{ID: fastMonster.ID, Name: "Faster", Attack: 1, Defense: 2, HP: 3, Speed: 4, ImageURL: "img"}, *got)

	_, err = svc.Update(ctx, 99, domain.Monster{Name: "x", HP: 1})
	assert.ErrorIs(t, err, domain.ErrMonsterNotFound)
}

func TestMonsterService_Remove(t *testing.T) {
	store := newMemMonsters(fastMonster)
	svc := service.NewMonsterService(store, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, fastMonster.ID))
	assert.ErrorIs(t, svc.Remove(ctx, fastMonster.ID), domain.ErrMonsterNotFound)
}

func TestMonsterService_Import(t *testing.T) {
	store := newMemMonsters()
	svc := service.NewMonsterService(store, zerolog.Nop())
	ctx := context.Background()

	in := "name,attack,defense,hp,speed,imageUrl\nA,1,1,1,1,a.png\nB,2,2,2,2,b.png\n"
	imp, err := svc.Import(ctx, "uploads/monsters-correct.csv", strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "monsters-correct.csv", imp.Filename)
	assert.Equal(t, 2, imp.MonsterCount)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	imports, err := svc.ListImports(ctx)
	require.NoError(t, err)
	assert.Len(t, imports, 1)
}

func TestMonsterService_ImportFailures(t *testing.T) {
	good := "name,attack,defense,hp,speed,imageUrl\nA,1,1,1,1,a.png\n"

	t.Run("extension", func(t *testing.T) {
		svc := service.NewMonsterService(newMemMonsters(), zerolog.Nop())
		_, err := svc.Import(context.Background(), "monsters.txt", strings.NewReader(good))
		assert.ErrorIs(t, err, domain.ErrUnsupportedFile)
	})

	t.Run("wrong column", func(t *testing.T) {
		store := newMemMonsters()
		svc := service.NewMonsterService(store, zerolog.Nop())
		_, err := svc.Import(context.Background(), "monsters-wrong-column.csv",
			strings.NewReader("name,attack,defense,hp,speed,image\nA,1,1,1,1,a.png\n"))
		assert.ErrorIs(t, err, domain.ErrWrongDataMapping)
		assert.Empty(t, store.monsters)
	})

	t.Run("storage", func(t *testing.T) {
		store := newMemMonsters()
		store.failWith = errStorage
		svc := service.NewMonsterService(store, zerolog.Nop())
		_, err := svc.Import(context.Background(), "monsters.csv", strings.NewReader(good))
		assert.ErrorIs(t, err, domain.ErrWrongDataMapping)
	})
}
