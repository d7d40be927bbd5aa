package simulation

// MetricsRecorder receives gameplay measurements. The prometheus adapter
// implements it; sessions without one record nothing.
type MetricsRecorder interface {
	RecordTurn(scenario string)
	RecordFuelBurned(player string, units int)
	RecordHazardRoll(die, disabledTurns int)
	RecordCrash(cause string)
	RecordGravityDecision(accepted bool)
	RecordGameFinished(outcome string, rounds int)
	RecordCommandExecution(commandName string, duration float64, success bool)
}

// Crash causes reported to RecordCrash
const (
	CauseSurface      = "surface"
	CauseAsteroids    = "asteroids"
	CauseSelfDestruct = "self_destruct"
)

// Game outcomes reported to RecordGameFinished
const (
	OutcomeWon     = "won"
	OutcomeAllLost = "everyone_died"
)

type nopMetrics struct{}

func (nopMetrics) RecordTurn(string) {}
func (nopMetrics) RecordFuelBurned(string, int) {}
func (nopMetrics) RecordHazardRoll(int, int) {}
func (nopMetrics) RecordCrash(string) {}
func (nopMetrics) RecordGravityDecision(bool) {}
func (nopMetrics) RecordGameFinished(string, int) {}
func (nopMetrics) RecordCommandExecution(string, float64, bool) {}
