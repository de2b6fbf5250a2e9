package repository_test

import (
	"context"
	"testing"

	"battle-of-monsters/internal/constants"
	"battle-of-monsters/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonsterRepository_CreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := createMonster(t, f.monsters, "Dead Unicorn", 60, 40, 10, 80)

	got, err := f.monsters.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Dead Unicorn", got.Name)
	assert.Equal(t, 60, got.Attack)
	assert.Equal(t, 40, got.Defense)
	assert.Equal(t, 10, got.HP)
	assert.Equal(t, 80, got.Speed)
	assert.Equal(t, "https://img/Dead Unicorn", got.ImageURL)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestMonsterRepository_GetMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.monsters.Get(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrMonsterNotFound)
}

func TestMonsterRepository_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.monsters.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := createMonster(t, f.monsters, "A", 1, 1, 1, 1)
	second := createMonster(t, f.monsters, "B", 2, 2, 2, 2)

	list, err := f.monsters.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestMonsterRepository_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m := createMonster(t, f.monsters, "Old", 10, 10, 10, 10)
	m.Name = "New"
	m.HP = 99
	require.NoError(t, f.monsters.Update(ctx, &m))

	got, err := f.monsters.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, 99, got.HP)

	missing := domain.Monster{ID: 999, Name: "x", HP: 1}
	assert.ErrorIs(t, f.monsters.Update(ctx, &missing), domain.ErrMonsterNotFound)
}

func TestMonsterRepository_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m := createMonster(t, f.monsters, "Gone", 10, 10, 10, 10)
	require.NoError(t, f.monsters.Delete(ctx, m.ID))

	_, err := f.monsters.Get(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrMonsterNotFound)
	assert.ErrorIs(t, f.monsters.Delete(ctx, m.ID), domain.ErrMonsterNotFound)
}

func TestMonsterRepository_Import(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	monsters := make([]domain.Monster, 250)
	for i := range monsters {
		monsters[i] = domain.Monster{Name: "Imported", Attack: i, Defense: 1, HP: 10, Speed: 5}
	}

	imp := domain.MonsterImport{Filename: "monsters-correct.csv"}
	require.NoError(t, f.monsters.Import(ctx, &imp, monsters))
	assert.NotEmpty(t, imp.ID)
	assert.Equal(t, 250, imp.MonsterCount)
	for _, m := range monsters {
		assert.NotZero(t, m.ID)
	}

	list, err := f.monsters.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 250)

	imports, err := f.monsters.ListImports(ctx)
	require.NoError(t, err)
	require.Len(t, imports, 1)
	assert.Equal(t, imp.ID, imports[0].ID)
	assert.Equal(t, "monsters-correct.csv", imports[0].Filename)
	assert.Equal(t, 250, imports[0].MonsterCount)
}

func TestMonsterRepository_ImportIsAtomic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	monsters := []domain.Monster{
		{Name: "Fine", Attack: 1, Defense: 1, HP: 1, Speed: 1},
		// violates the hp CHECK constraint
		{Name: "Broken", Attack: 1, Defense: 1, HP: 0, Speed: 1},
	}

	imp := domain.MonsterImport{Filename: "broken.csv"}
	require.Error(t, f.monsters.Import(ctx, &imp, monsters))

	list, err := f.monsters.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	imports, err := f.monsters.ListImports(ctx)
	require.NoError(t, err)
	assert.Empty(t, imports)
}

func TestMonsterRepository_StatCapIsEnforcedByStorage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	atCap := createMonster(t, f.monsters, "Titan", 1, 1, constants.MaxStat, 1)
	got, err := f.monsters.Get(ctx, atCap.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.MaxStat, got.HP)

	tooBig := domain.Monster{Name: "Colossus", Attack: 1, Defense: 1, HP: constants.MaxStat + 1, Speed: 1}
	assert.Error(t, f.monsters.Create(ctx, &tooBig))
}
