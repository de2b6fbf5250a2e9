package service

import (
	"context"
	"errors"
	"fmt"

	"battle-of-monsters/internal/battle"
	"battle-of-monsters/internal/constants"
	"battle-of-monsters/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type BattleService struct {
	monsters MonsterStore
	battles  BattleStore
	logger   zerolog.Logger
}

func NewBattleService(monsters MonsterStore, battles BattleStore, logger zerolog.Logger) *BattleService {
	return &BattleService{monsters: monsters, battles: battles, logger: logger}
}

// Start fights monster aID against bID and stores the outcome. If either
// monster is missing the error wraps domain.ErrMonsterNotFound.
func (s *BattleService) Start(ctx context.Context, aID, bID int64) (*domain.Battle, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	var a, b *domain.Monster
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = s.monsters.Get(gCtx, aID)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = s.monsters.Get(gCtx, bID)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, domain.ErrMonsterNotFound) {
			s.logger.Debug().Int64("monster_a", aID).Int64("monster_b", bID).Msg("battle participant not found")
			return nil, fmt.Errorf("battle %d vs %d: %w", aID, bID, domain.ErrMonsterNotFound)
		}
		s.logger.Error().Err(err).Int64("monster_a", aID).Int64("monster_b", bID).Msg("failed to load battle participants")
		return nil, fmt.Errorf("failed to load battle participants: %w", err)
	}

	result, err := battle.New(*a, *b)
	if err != nil {
		s.logger.Warn().Err(err).Int64("monster_a", aID).Int64("monster_b", bID).Msg("battle rejected")
		return nil, err
	}

	if err := s.battles.Create(ctx, &result); err != nil {
		s.logger.Error().Err(err).Int64("monster_a", aID).Int64("monster_b", bID).Msg("failed to store battle")
		return nil, fmt.Errorf("failed to store battle: %w", err)
	}

	s.logger.Info().
		Int64("battle_id", result.ID).
		Int64("monster_a", aID).
		Int64("monster_b", bID).
		Int64("winner", result.Winner).
		Msg("battle resolved")
	return &result, nil
}

func (s *BattleService) Get(ctx context.Context, id int64) (*domain.Battle, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.battles.Get(ctx, id)
}

func (s *BattleService) List(ctx context.Context) ([]domain.Battle, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	battles, err := s.battles.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list battles")
		return nil, fmt.Errorf("failed to list battles: %w", err)
	}
	return battles, nil
}

func (s *BattleService) Remove(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.battles.Delete(ctx, id); err != nil {
		s.logger.Debug().Err(err).Int64("battle_id", id).Msg("failed to remove battle")
		return err
	}

	s.logger.Info().Int64("battle_id", id).Msg("battle removed")
	return nil
}
