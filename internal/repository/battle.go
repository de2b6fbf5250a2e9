package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"battle-of-monsters/internal/db"
	"battle-of-monsters/internal/domain"

	"github.com/rs/zerolog"
)

type BattleRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewBattleRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *BattleRepository {
	return &BattleRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// battleRow is the join of a battle with both participants.
type battleRow db.GetBattleWithMonstersRow

func (r *BattleRepository) Get(ctx context.Context, id int64) (*domain.Battle, error) {
	row, err := r.queries.GetBattleWithMonsters(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("battle %d: %w", id, domain.ErrBattleNotFound)
	}
	if err != nil {
		return nil, err
	}

	b := battleRow(row).toDomain()
	return &b, nil
}

func (r *BattleRepository) List(ctx context.Context) ([]domain.Battle, error) {
	rows, err := r.queries.ListBattlesWithMonsters(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Battle, len(rows))
	for i, row := range rows {
		result[i] = battleRow(row).toDomain()
	}
	return result, nil
}

// Create inserts b and assigns its ID and CreatedAt. A monster id that does
// not exist is reported as domain.ErrMonsterNotFound.
func (r *BattleRepository) Create(ctx context.Context, b *domain.Battle) error {
	now := time.Now().UTC()
	id, err := r.queries.CreateBattle(ctx, db.CreateBattleParams{
		MonsterA:  b.MonsterA,
		MonsterB:  b.MonsterB,
		Winner:    b.Winner,
		CreatedAt: now,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("battle %d vs %d: %w", b.MonsterA, b.MonsterB, domain.ErrMonsterNotFound)
		}
		return fmt.Errorf("failed to insert battle: %w", err)
	}

	r.logger.Debug().
		Int64("battle_id", id).
		Int64("monster_a", b.MonsterA).
		Int64("monster_b", b.MonsterB).
		Int64("winner", b.Winner).
		Msg("battle stored")

	b.ID = id
	b.CreatedAt = now
	return nil
}

func (r *BattleRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteBattle(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete battle %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("battle %d: %w", id, domain.ErrBattleNotFound)
	}
	return nil
}

func (row battleRow) toDomain() domain.Battle {
	a := domain.Monster{
		ID:        row.MonsterA,
		Name:      row.AName,
		Attack:    int(row.AAttack),
		Defense:   int(row.ADefense),
		HP:        int(row.AHp),
		Speed:     int(row.ASpeed),
		ImageURL:  row.AImageUrl,
		CreatedAt: row.ACreatedAt,
		UpdatedAt: row.AUpdatedAt,
	}
	b := domain.Monster{
		ID:        row.MonsterB,
		Name:      row.BName,
		Attack:    int(row.BAttack),
		Defense:   int(row.BDefense),
		HP:        int(row.BHp),
		Speed:     int(row.BSpeed),
		ImageURL:  row.BImageUrl,
		CreatedAt: row.BCreatedAt,
		UpdatedAt: row.BUpdatedAt,
	}

	winner := a
	if row.Winner == row.MonsterB {
		winner = b
	}

	return domain.Battle{
		ID:               row.ID,
		MonsterA:         row.MonsterA,
		MonsterB:         row.MonsterB,
		Winner:           row.Winner,
		MonsterARelation: &a,
		MonsterBRelation: &b,
		WinnerRelation:   &winner,
		CreatedAt:        row.CreatedAt,
	}
}
