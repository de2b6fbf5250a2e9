// Package battle resolves combat between two monsters.
//
// Everything here is pure: inputs are passed by value, never mutated, and no
// I/O happens. Callers may resolve any number of battles concurrently.
package battle

import (
	"fmt"

	"battle-of-monsters/internal/constants"
	"battle-of-monsters/internal/domain"
)

// Result describes how a fight played out.
type Result struct {
	Winner domain.Monster
	Loser  domain.Monster
	// FirstAttacker is the monster that struck in the first exchange.
	FirstAttacker domain.Monster
	// Exchanges counts single attacker-to-defender hits.
	Exchanges int
}

// Damage returns the hit points one strike removes from the defender.
// A strike always deals at least 1.
func Damage(attacker, defender domain.Monster) int {
	dmg := attacker.Attack - defender.Defense
	if dmg <= 0 {
		return 1
	}
	return dmg
}

// AttacksFirst reports whether a opens the fight against b: higher speed
// wins, then higher attack, and a full tie goes to a.
func AttacksFirst(a, b domain.Monster) bool {
	if a.Speed != b.Speed {
		return a.Speed > b.Speed
	}
	if a.Attack != b.Attack {
		return a.Attack > b.Attack
	}
	return true
}

// Fight plays out the exchanges between a and b. The strikes alternate, so
// the outcome follows from how many hits each side needs to finish the
// other, and the cost does not grow with HP.
//
// Precondition: both monsters have 0 < HP <= constants.MaxStat, otherwise
// domain.ErrInvalidInput.
// Postcondition: Winner is a or b unchanged and Exchanges <= a.HP + b.HP.
func Fight(a, b domain.Monster) (Result, error) {
	for _, m := range []domain.Monster{a, b} {
		if m.HP <= 0 || m.HP > constants.MaxStat {
			return Result{}, fmt.Errorf("%w: monster %d has hp %d", domain.ErrInvalidInput, m.ID, m.HP)
		}
	}

	first, second := b, a
	if AttacksFirst(a, b) {
		first, second = a, b
	}

	firstHits := hitsToKill(first, second)
	secondHits := hitsToKill(second, first)

	res := Result{FirstAttacker: first}
	if firstHits <= secondHits {
		// the opener lands its last hit before the reply catches up
		res.Winner, res.Loser = first, second
		res.Exchanges = 2*firstHits - 1
	} else {
		res.Winner, res.Loser = second, first
		res.Exchanges = 2 * secondHits
	}
	return res, nil
}

// hitsToKill is the number of strikes attacker needs to bring defender to 0 hp.
func hitsToKill(attacker, defender domain.Monster) int {
	dmg := Damage(attacker, defender)
	return (defender.HP-1)/dmg + 1
}

// Resolve returns whichever of a and b survives the fight.
func Resolve(a, b domain.Monster) (domain.Monster, error) {
	res, err := Fight(a, b)
	if err != nil {
		return domain.Monster{}, err
	}
	return res.Winner, nil
}

// New builds the battle record for a against b. It does not persist anything;
// ID and CreatedAt are left for storage to assign.
func New(a, b domain.Monster) (domain.Battle, error) {
	winner, err := Resolve(a, b)
	if err != nil {
		return domain.Battle{}, err
	}

	return domain.Battle{
		MonsterA:         a.ID,
		MonsterB:         b.ID,
		Winner:           winner.ID,
		MonsterARelation: &a,
		MonsterBRelation: &b,
		WinnerRelation:   &winner,
	}, nil
}
