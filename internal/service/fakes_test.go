package service_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"battle-of-monsters/internal/domain"
)

type memMonsters struct {
	mu       sync.Mutex
	nextID   int64
	monsters map[int64]domain.Monster
	imports  []domain.MonsterImport
	failWith error
}

func newMemMonsters(seed ...domain.Monster) *memMonsters {
	s := &memMonsters{monsters: map[int64]domain.Monster{}}
	for _, m := range seed {
		if m.ID > s.nextID {
			s.nextID = m.ID
		}
		s.monsters[m.ID] = m
	}
	return s
}

func (s *memMonsters) Get(_ context.Context, id int64) (*domain.Monster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	m, ok := s.monsters[id]
	if !ok {
		return nil, fmt.Errorf("monster %d: %w", id, domain.ErrMonsterNotFound)
	}
	return &m, nil
}

func (s *memMonsters) List(context.Context) ([]domain.Monster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := make([]domain.Monster, 0, len(s.monsters))
	for _, m := range s.monsters {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memMonsters) Create(_ context.Context, m *domain.Monster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.nextID++
	m.ID = s.nextID
	s.monsters[m.ID] = *m
	return nil
}

func (s *memMonsters) Update(_ context.Context, m *domain.Monster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.monsters[m.ID]; !ok {
		return domain.ErrMonsterNotFound
	}
	s.monsters[m.ID] = *m
	return nil
}

func (s *memMonsters) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.monsters[id]; !ok {
		return domain.ErrMonsterNotFound
	}
	delete(s.monsters, id)
	return nil
}

func (s *memMonsters) Import(_ context.Context, imp *domain.MonsterImport, monsters []domain.Monster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	for i := range monsters {
		s.nextID++
		monsters[i].ID = s.nextID
		s.monsters[s.nextID] = monsters[i]
	}
	imp.ID = fmt.Sprintf("import-%d", len(s.imports)+1)
	imp.MonsterCount = len(monsters)
	s.imports = append(s.imports, *imp)
	return nil
}

func (s *memMonsters) ListImports(context.Context) ([]domain.MonsterImport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.MonsterImport(nil), s.imports...), nil
}

type memBattles struct {
	mu      sync.Mutex
	nextID  int64
	battles map[int64]domain.Battle
}

func newMemBattles() *memBattles {
	return &memBattles{battles: map[int64]domain.Battle{}}
}

func (s *memBattles) Get(_ context.Context, id int64) (*domain.Battle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.battles[id]
	if !ok {
		return nil, fmt.Errorf("battle %d: %w", id, domain.ErrBattleNotFound)
	}
	return &b, nil
}

func (s *memBattles) List(context.Context) ([]domain.Battle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Battle, 0, len(s.battles))
	for _, b := range s.battles {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memBattles) Create(_ context.Context, b *domain.Battle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	b.ID = s.nextID
	s.battles[b.ID] = *b
	return nil
}

func (s *memBattles) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.battles[id]; !ok {
		return domain.ErrBattleNotFound
	}
	delete(s.battles, id)
	return nil
}

var errStorage = errors.New("disk on fire")
