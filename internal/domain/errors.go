package domain

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrMonsterNotFound  = errors.New("monster not found")
	ErrBattleNotFound   = errors.New("battle not found")
	ErrWrongDataMapping = errors.New("wrong data mapping")
	ErrUnsupportedFile  = errors.New("unsupported file extension")
)
