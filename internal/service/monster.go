package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"battle-of-monsters/internal/constants"
	"battle-of-monsters/internal/csvimport"
	"battle-of-monsters/internal/domain"

	"github.com/rs/zerolog"
)

type MonsterService struct {
	repo   MonsterStore
	logger zerolog.Logger
}

func NewMonsterService(repo MonsterStore, logger zerolog.Logger) *MonsterService {
	return &MonsterService{repo: repo, logger: logger}
}

func (s *MonsterService) Get(ctx context.Context, id int64) (*domain.Monster, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	m, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.Debug().Err(err).Int64("monster_id", id).Msg("monster lookup failed")
		return nil, err
	}
	return m, nil
}

func (s *MonsterService) List(ctx context.Context) ([]domain.Monster, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	monsters, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list monsters")
		return nil, fmt.Errorf("failed to list monsters: %w", err)
	}
	return monsters, nil
}

func (s *MonsterService) Add(ctx context.Context, m domain.Monster) (*domain.Monster, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := m.Validate(); err != nil {
		return nil, err
	}

	m.ID = 0
	if err := s.repo.Create(ctx, &m); err != nil {
		s.logger.Error().Err(err).Str("name", m.Name).Msg("failed to create monster")
		return nil, fmt.Errorf("failed to create monster: %w", err)
	}

	s.logger.Info().Int64("monster_id", m.ID).Str("name", m.Name).Msg("monster created")
	return &m, nil
}

// Update overwrites every stat of monster id with the values in m.
func (s *MonsterService) Update(ctx context.Context, id int64, m domain.Monster) (*domain.Monster, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := m.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = m.Name
	existing.Attack = m.Attack
	existing.Defense = m.Defense
	existing.HP = m.HP
	existing.Speed = m.Speed
	existing.ImageURL = m.ImageURL

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Int64("monster_id", id).Msg("failed to update monster")
		return nil, err
	}

	s.logger.Info().Int64("monster_id", id).Msg("monster updated")
	return existing, nil
}

func (s *MonsterService) Remove(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Debug().Err(err).Int64("monster_id", id).Msg("failed to remove monster")
		return err
	}

	s.logger.Info().Int64("monster_id", id).Msg("monster removed")
	return nil
}

// Import parses a CSV upload and stores all of its monsters, or none.
func (s *MonsterService) Import(ctx context.Context, filename string, r io.Reader) (*domain.MonsterImport, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ImportTimeout)
	defer cancel()

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != constants.ImportExtension {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFile, ext)
	}

	monsters, err := csvimport.Parse(r)
	if err != nil {
		s.logger.Warn().Err(err).Str("filename", filename).Msg("rejected monster import")
		return nil, err
	}

	imp := &domain.MonsterImport{Filename: filepath.Base(filename)}
	if err := s.repo.Import(ctx, imp, monsters); err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("failed to store monster import")
		return nil, fmt.Errorf("%w: %w", domain.ErrWrongDataMapping, err)
	}

	s.logger.Info().
		Str("import_id", imp.ID).
		Str("filename", imp.Filename).
		Int("count", imp.MonsterCount).
		Msg("monsters imported")
	return imp, nil
}

func (s *MonsterService) ListImports(ctx context.Context) ([]domain.MonsterImport, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	imports, err := s.repo.ListImports(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list imports")
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	return imports, nil
}
