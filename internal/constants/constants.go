package constants

import (
	"math"
	"time"
)

const (
	DatabaseTimeout = 5 * time.Second
	ImportTimeout   = 30 * time.Second
	RequestTimeout  = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout    = 5 * time.Second
	ReadHeaderTimeout  = 10 * time.Second
	HealthcheckTimeout = 2 * time.Second
)

const (
	DefaultImportMaxBytes int64 = 10 << 20
	ImportFormField             = "file"
	ImportExtension             = ".csv"
)

// MaxStat bounds every monster stat; the migrations enforce the same limit.
const MaxStat = math.MaxInt32

const JSONKeyError = "error"

// Response messages kept stable for API clients.
const (
	MsgMissingID          = "Missing ID"
	MsgMonstersNotFound   = "One or both monsters not found."
	MsgBattleNotFound     = "Battle Not Found!"
	MsgMonsterNotFoundFmt = "The monster with ID = %d not found."
	MsgMonsterNull        = "Monster object is null"
	MsgWrongDataMapping   = "Wrong data mapping."
	MsgBadExtension       = "The extension is not supporting."
	MsgInvalidID          = "Invalid ID"
	MsgInvalidBody        = "Invalid request body"
	MsgInternal           = "internal server error"
)
