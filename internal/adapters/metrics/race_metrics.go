package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// RaceMetricsCollector handles turn, hazard and outcome metrics
type RaceMetricsCollector struct {
	turnsTotal       *prometheus.CounterVec
	fuelBurned       *prometheus.CounterVec
	hazardRolls      *prometheus.CounterVec
	crashesTotal     *prometheus.CounterVec
	gravityDecisions *prometheus.CounterVec
	gamesFinished    *prometheus.CounterVec
	gameLengthRounds prometheus.Histogram
}

// NewRaceMetricsCollector creates a new race metrics collector
func NewRaceMetricsCollector() *RaceMetricsCollector {
	return &RaceMetricsCollector{
		turnsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "turns_total",
				Help:      "Total number of ship turns started by scenario",
			},
			[]string{"scenario"},
		),

		fuelBurned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fuel_burned_units_total",
				Help:      "Total units of fuel burned by thrust",
			},
			[]string{"player"},
		),

		hazardRolls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "asteroid_rolls_total",
				Help:      "Asteroid field hazard rolls by die face",
			},
			[]string{"die", "outcome"},
		),

		crashesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ships_destroyed_total",
				Help:      "Ships destroyed by cause",
			},
			[]string{"cause"},
		),

		gravityDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "half_gravity_decisions_total",
				Help:      "Optional half gravity pulls accepted or declined",
			},
			[]string{"decision"},
		),

		gamesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "games_finished_total",
				Help:      "Games finished by outcome",
			},
			[]string{"outcome"},
		),

		gameLengthRounds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "game_length_rounds",
				Help:      "Rounds played before a game ended",
				Buckets:   []float64{5, 10, 20, 30, 40, 60, 80, 120},
			},
		),
	}
}

// Register registers all race metrics with the Prometheus registry
func (c *RaceMetricsCollector) Register() error {
	return register(
		c.turnsTotal,
		c.fuelBurned,
		c.hazardRolls,
		c.crashesTotal,
		c.gravityDecisions,
		c.gamesFinished,
		c.gameLengthRounds,
	)
}

// RecordTurn counts a ship starting its turn
func (c *RaceMetricsCollector) RecordTurn(scenario string) {
	c.turnsTotal.WithLabelValues(scenario).Inc()
}

// RecordFuelBurned adds fuel spent on thrust
func (c *RaceMetricsCollector) RecordFuelBurned(player string, units int) {
	c.fuelBurned.WithLabelValues(player).Add(float64(units))
}

// RecordHazardRoll counts an asteroid roll and whether it disabled the ship
func (c *RaceMetricsCollector) RecordHazardRoll(die, disabledTurns int) {
	outcome := "clear"
	if disabledTurns > 0 {
		outcome = "disabled"
	}
	c.hazardRolls.WithLabelValues(strconv.Itoa(die), outcome).Inc()
}

// RecordCrash counts a destroyed ship
func (c *RaceMetricsCollector) RecordCrash(cause string) {
	c.crashesTotal.WithLabelValues(cause).Inc()
}

// RecordGravityDecision counts an answer to a half gravity offer
func (c *RaceMetricsCollector) RecordGravityDecision(accepted bool) {
	decision := "declined"
	if accepted {
		decision = "accepted"
	}
	c.gravityDecisions.WithLabelValues(decision).Inc()
}

// RecordGameFinished counts a finished game and how long it ran
func (c *RaceMetricsCollector) RecordGameFinished(outcome string, rounds int) {
	c.gamesFinished.WithLabelValues(outcome).Inc()
	c.gameLengthRounds.Observe(float64(rounds))
}
