package service

import (
	"context"

	"battle-of-monsters/internal/domain"
)

// MonsterStore is the persistence the monster use cases need.
// repository.MonsterRepository implements it.
type MonsterStore interface {
	Get(ctx context.Context, id int64) (*domain.Monster, error)
	List(ctx context.Context) ([]domain.Monster, error)
	Create(ctx context.Context, m *domain.Monster) error
	Update(ctx context.Context, m *domain.Monster) error
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, imp *domain.MonsterImport, monsters []domain.Monster) error
	ListImports(ctx context.Context) ([]domain.MonsterImport, error)
}

// BattleStore is implemented by repository.BattleRepository.
type BattleStore interface {
	Get(ctx context.Context, id int64) (*domain.Battle, error)
	List(ctx context.Context) ([]domain.Battle, error)
	Create(ctx context.Context, b *domain.Battle) error
	Delete(ctx context.Context, id int64) error
}
