// Package csvimport maps tabular monster files to domain monsters.
//
// The first record is a header naming the columns; matching is
// case-insensitive and column order is free. Any problem with the header or
// any row fails the whole file with domain.ErrWrongDataMapping.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"battle-of-monsters/internal/domain"
)

const (
	ColName     = "name"
	ColAttack   = "attack"
	ColDefense  = "defense"
	ColHP       = "hp"
	ColSpeed    = "speed"
	ColImageURL = "imageurl"
)

var requiredColumns = []string{ColName, ColAttack, ColDefense, ColHP, ColSpeed, ColImageURL}

const utf8BOM = "\ufeff"

// Parse reads every monster from r.
func Parse(r io.Reader) ([]domain.Monster, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header", domain.ErrWrongDataMapping)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrWrongDataMapping, err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var monsters []domain.Monster
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrWrongDataMapping, err)
		}

		line, _ := reader.FieldPos(0)
		m, err := parseRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", domain.ErrWrongDataMapping, line, err)
		}
		monsters = append(monsters, m)
	}

	return monsters, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		key := strings.ToLower(strings.TrimSpace(col))
		if _, dup := index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", domain.ErrWrongDataMapping, col)
		}
		index[key] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", domain.ErrWrongDataMapping, strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRecord(record []string, index map[string]int) (domain.Monster, error) {
	field := func(col string) string {
		return strings.TrimSpace(record[index[col]])
	}

	var ints [4]int
	for i, col := range []string{ColAttack, ColDefense, ColHP, ColSpeed} {
		v, err := strconv.Atoi(field(col))
		if err != nil {
			return domain.Monster{}, fmt.Errorf("column %s: %w", col, err)
		}
		ints[i] = v
	}

	m := domain.Monster{
		Name:     field(ColName),
		Attack:   ints[0],
		Defense:  ints[1],
		HP:       ints[2],
		Speed:    ints[3],
		ImageURL: field(ColImageURL),
	}
	if err := m.Validate(); err != nil {
		return domain.Monster{}, err
	}
	return m, nil
}
