package server

import (
	"time"

	"battle-of-monsters/internal/domain"
)

type monsterPayload struct {
	Name     string `json:"name"`
	Attack   int    `json:"attack"`
	Defense  int    `json:"defense"`
	HP       int    `json:"hp"`
	Speed    int    `json:"speed"`
	ImageURL string `json:"imageUrl"`
}

func (p monsterPayload) toDomain() domain.Monster {
	return domain.Monster{
		Name:     p.Name,
		Attack:   p.Attack,
		Defense:  p.Defense,
		HP:       p.HP,
		Speed:    p.Speed,
		ImageURL: p.ImageURL,
	}
}

// battleRequest ids are pointers so a missing id can be told apart from 0.
type battleRequest struct {
	MonsterA *int64 `json:"monsterA"`
	MonsterB *int64 `json:"monsterB"`
}

type monsterResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Attack   int    `json:"attack"`
	Defense  int    `json:"defense"`
	HP       int    `json:"hp"`
	Speed    int    `json:"speed"`
	ImageURL string `json:"imageUrl"`
}

type battleResponse struct {
	ID               int64            `json:"id"`
	MonsterA         int64            `json:"monsterA"`
	MonsterB         int64            `json:"monsterB"`
	Winner           int64            `json:"winner"`
	MonsterARelation *monsterResponse `json:"monsterARelation,omitempty"`
	MonsterBRelation *monsterResponse `json:"monsterBRelation,omitempty"`
	WinnerRelation   *monsterResponse `json:"winnerRelation,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}

type importResponse struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	MonsterCount int       `json:"monsterCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toMonsterResponse(m *domain.Monster) *monsterResponse {
	if m == nil {
		return nil
	}
	return &monsterResponse{
		ID:       m.ID,
		Name:     m.Name,
		Attack:   m.Attack,
		Defense:  m.Defense,
		HP:       m.HP,
		Speed:    m.Speed,
		ImageURL: m.ImageURL,
	}
}

func toBattleResponse(b *domain.Battle) battleResponse {
	return battleResponse{
		ID:               b.ID,
		MonsterA:         b.MonsterA,
		MonsterB:         b.MonsterB,
		Winner:           b.Winner,
		MonsterARelation: toMonsterResponse(b.MonsterARelation),
		MonsterBRelation: toMonsterResponse(b.MonsterBRelation),
		WinnerRelation:   toMonsterResponse(b.WinnerRelation),
		CreatedAt:        b.CreatedAt,
	}
}

func toImportResponse(imp *domain.MonsterImport) importResponse {
	return importResponse{
		ID:           imp.ID,
		Filename:     imp.Filename,
		MonsterCount: imp.MonsterCount,
		CreatedAt:    imp.CreatedAt,
	}
}
