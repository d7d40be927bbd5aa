package config

// GameConfig holds the rules and board generation settings new games use
type GameConfig struct {
	BoardWidth  int `mapstructure:"board_width" validate:"min=10,max=1000"`
	BoardHeight int `mapstructure:"board_height" validate:"min=10,max=1000"`

	// Fuel each ship carries; landing refills to this
	FuelCapacity int `mapstructure:"fuel_capacity" validate:"min=1"`

	// Fuel used by one thrust
	Burn int `mapstructure:"burn" validate:"min=0"`

	// Random bearings tried per body before falling back to its classic position
	PlacementRetries int `mapstructure:"placement_retries" validate:"min=1"`

	// Simulation ticks per second while playing
	TickRate float64 `mapstructure:"tick_rate" validate:"gt=0,lte=240"`

	// Seed for board generation and dice; 0 picks one from the clock
	Seed uint64 `mapstructure:"seed"`

	// Scenario used when none is given: classic or random
	Scenario string `mapstructure:"scenario" validate:"oneof=classic random"`

	// Optional YAML catalog replacing the built-in Sol system
	SystemFile string `mapstructure:"system_file" validate:"omitempty,file"`
}
