package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"battle-of-monsters/internal/constants"
	"battle-of-monsters/internal/db"
	"battle-of-monsters/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type MonsterRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMonsterRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MonsterRepository {
	return &MonsterRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *MonsterRepository) Get(ctx context.Context, id int64) (*domain.Monster, error) {
	row, err := r.queries.GetMonster(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("monster %d: %w", id, domain.ErrMonsterNotFound)
	}
	if err != nil {
		return nil, err
	}

	m := toDomainMonster(row)
	return &m, nil
}

func (r *MonsterRepository) List(ctx context.Context) ([]domain.Monster, error) {
	rows, err := r.queries.ListMonsters(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Monster, len(rows))
	for i, row := range rows {
		result[i] = toDomainMonster(row)
	}
	return result, nil
}

// Create inserts m and fills in its ID and timestamps.
func (r *MonsterRepository) Create(ctx context.Context, m *domain.Monster) error {
	return createMonster(ctx, r.queries, m)
}

func (r *MonsterRepository) Update(ctx context.Context, m *domain.Monster) error {
	now := time.Now().UTC()
	n, err := r.queries.UpdateMonster(ctx, db.UpdateMonsterParams{
		Name:      m.Name,
		Attack:    int64(m.Attack),
		Defense:   int64(m.Defense),
		Hp:        int64(m.HP),
		Speed:     int64(m.Speed),
		ImageUrl:  m.ImageURL,
		UpdatedAt: now,
		ID:        m.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to update monster %d: %w", m.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("monster %d: %w", m.ID, domain.ErrMonsterNotFound)
	}

	m.UpdatedAt = now
	return nil
}

// Delete removes the monster; battles referencing it cascade.
func (r *MonsterRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteMonster(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete monster %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("monster %d: %w", id, domain.ErrMonsterNotFound)
	}
	return nil
}

// Import stores all monsters and the import record in one transaction.
// Monster IDs and the import ID are filled in on success.
func (r *MonsterRepository) Import(ctx context.Context, imp *domain.MonsterImport, monsters []domain.Monster) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	for i := 0; i < len(monsters); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(monsters) {
			end = len(monsters)
		}

		for j := i; j < end; j++ {
			if err := createMonster(ctx, qtx, &monsters[j]); err != nil {
				return fmt.Errorf("failed to insert monster row %d: %w", j+1, err)
			}
		}
		r.logger.Debug().Int("from", i).Int("to", end).Msg("imported monster batch")
	}

	id := imp.ID
	if id == "" {
		id, err = gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
	}
	createdAt := time.Now().UTC()

	err = qtx.CreateMonsterImport(ctx, db.CreateMonsterImportParams{
		ID:           id,
		Filename:     imp.Filename,
		MonsterCount: int64(len(monsters)),
		CreatedAt:    createdAt,
	})
	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	imp.ID = id
	imp.MonsterCount = len(monsters)
	imp.CreatedAt = createdAt
	return nil
}

func (r *MonsterRepository) ListImports(ctx context.Context) ([]domain.MonsterImport, error) {
	rows, err := r.queries.ListMonsterImports(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MonsterImport, len(rows))
	for i, row := range rows {
		result[i] = domain.MonsterImport{
			ID:           row.ID,
			Filename:     row.Filename,
			MonsterCount: int(row.MonsterCount),
			CreatedAt:    row.CreatedAt,
		}
	}
	return result, nil
}

func createMonster(ctx context.Context, q *db.Queries, m *domain.Monster) error {
	now := time.Now().UTC()
	id, err := q.CreateMonster(ctx, db.CreateMonsterParams{
		Name:      m.Name,
		Attack:    int64(m.Attack),
		Defense:   int64(m.Defense),
		Hp:        int64(m.HP),
		Speed:     int64(m.Speed),
		ImageUrl:  m.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return err
	}

	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
	return nil
}

func toDomainMonster(row db.Monster) domain.Monster {
	return domain.Monster{
		ID:        row.ID,
		Name:      row.Name,
		Attack:    int(row.Attack),
		Defense:   int(row.Defense),
		HP:        int(row.Hp),
		Speed:     int(row.Speed),
		ImageURL:  row.ImageUrl,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
