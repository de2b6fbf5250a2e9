package domain

import (
	"fmt"
	"time"

	"battle-of-monsters/internal/constants"
)

type Monster struct {
	ID        int64
	Name      string
	Attack    int
	Defense   int
	HP        int
	Speed     int
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the stat ranges a stored monster must satisfy. Every stat
// is capped at constants.MaxStat.
func (m Monster) Validate() error {
	switch {
	case m.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case m.Attack < 0:
		return fmt.Errorf("%w: attack must be >= 0, got %d", ErrInvalidInput, m.Attack)
	case m.Defense < 0:
		return fmt.Errorf("%w: defense must be >= 0, got %d", ErrInvalidInput, m.Defense)
	case m.HP <= 0:
		return fmt.Errorf("%w: hp must be > 0, got %d", ErrInvalidInput, m.HP)
	case m.Speed < 0:
		return fmt.Errorf("%w: speed must be >= 0, got %d", ErrInvalidInput, m.Speed)
	}

	for _, stat := range []struct {
		name  string
		value int
	}{
		{"attack", m.Attack},
		{"defense", m.Defense},
		{"hp", m.HP},
		{"speed", m.Speed},
	} {
		if stat.value > constants.MaxStat {
			return fmt.Errorf("%w: %s must be <= %d, got %d", ErrInvalidInput, stat.name, constants.MaxStat, stat.value)
		}
	}
	return nil
}

// Battle links two monsters and the winner by id. The relation fields are
// filled by the repository join, or by battle.New before persistence.
type Battle struct {
	ID       int64
	MonsterA int64
	MonsterB int64
	Winner   int64

	MonsterARelation *Monster
	MonsterBRelation *Monster
	WinnerRelation   *Monster

	CreatedAt time.Time
}

type MonsterImport struct {
	ID           string // nanoid
	Filename     string
	MonsterCount int
	CreatedAt    time.Time
}
