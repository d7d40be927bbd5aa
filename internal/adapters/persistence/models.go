package persistence

import (
	"time"
)

// GameModel represents the games table
type GameModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	Scenario    int16      `gorm:"column:scenario;not null"`
	Status      int16      `gorm:"column:status;not null"`
	TurnCount   int        `gorm:"column:turn_count;not null;default:0"`
	Seed        int64      `gorm:"column:seed;not null"` // uint64 bit pattern
	BoardWidth  int        `gorm:"column:board_width;not null"`
	BoardHeight int        `gorm:"column:board_height;not null"`
	HomeWorld   string     `gorm:"column:home_world;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;index;autoUpdateTime:false"`
	StartedAt   *time.Time `gorm:"column:started_at"`
	FinishedAt  *time.Time `gorm:"column:finished_at"`

	Bodies  []BodyModel   `gorm:"foreignKey:GameID;references:ID;constraint:OnDelete:CASCADE"`
	Players []PlayerModel `gorm:"foreignKey:GameID;references:ID;constraint:OnDelete:CASCADE"`
	Ships   []ShipModel   `gorm:"foreignKey:GameID;references:ID;constraint:OnDelete:CASCADE"`
}

func (GameModel) TableName() string {
	return "games"
}

// BodyModel represents the bodies table. Bodies never change once a board
// is built; gravity wells are derived from them on load.
type BodyModel struct {
	GameID        string  `gorm:"column:game_id;primaryKey"`
	Ordinal       int     `gorm:"column:ordinal;primaryKey;autoIncrement:false"`
	Name          string  `gorm:"column:name;not null"`
	Kind          int16   `gorm:"column:kind;not null"`
	X             int     `gorm:"column:x;not null"`
	Y             int     `gorm:"column:y;not null"`
	Radius        float64 `gorm:"column:radius;not null"`
	Landable      bool    `gorm:"column:landable;not null;default:false"`
	Gravity       int16   `gorm:"column:gravity;not null"`
	Orbiting      string  `gorm:"column:orbiting"`
	OrbitDistance float64 `gorm:"column:orbit_distance"`
}

func (BodyModel) TableName() string {
	return "bodies"
}

// PlayerModel represents the players table, one row per racer in
// registration order
type PlayerModel struct {
	GameID  string `gorm:"column:game_id;primaryKey"`
	Ordinal int    `gorm:"column:ordinal;primaryKey;autoIncrement:false"`
	Name    string `gorm:"column:name;not null"`
	Color   int16  `gorm:"column:color;not null"`
	State   int16  `gorm:"column:state;not null"`
}

func (PlayerModel) TableName() string {
	return "players"
}

// ShipModel represents the ships table. Ordinal matches the owning
// player's row.
type ShipModel struct {
	GameID        string `gorm:"column:game_id;primaryKey"`
	Ordinal       int    `gorm:"column:ordinal;primaryKey;autoIncrement:false"`
	Name          string `gorm:"column:name;not null"`
	Owner         string `gorm:"column:owner;not null"`
	State         int16  `gorm:"column:state;not null"`
	X             int    `gorm:"column:x;not null"`
	Y             int    `gorm:"column:y;not null"`
	VelocityX     int    `gorm:"column:velocity_x;not null"`
	VelocityY     int    `gorm:"column:velocity_y;not null"`
	Direction     int16  `gorm:"column:direction;not null"`
	Fuel          int    `gorm:"column:fuel;not null"`
	FuelCapacity  int    `gorm:"column:fuel_capacity;not null"`
	DisabledTurns int    `gorm:"column:disabled_turns;not null;default:0"`
	Orbiting      string `gorm:"column:orbiting"`
	RaceGoals     string `gorm:"column:race_goals;type:text"` // JSON array as text
	DeathReason   string `gorm:"column:death_reason"`
}

func (ShipModel) TableName() string {
	return "ships"
}

// AllModels lists every table for migration
func AllModels() []any {
	return []any{
		&GameModel{},
		&BodyModel{},
		&PlayerModel{},
		&ShipModel{},
	}
}
