package metrics_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacerover/spacerover-go/internal/adapters/metrics"
	"github.com/spacerover/spacerover-go/internal/application/common"
)

type pingQuery struct{}

type pingHandler struct {
	err error
}

func (h *pingHandler) Handle(context.Context, common.Request) (common.Response, error) {
	return "pong", h.err
}

func withRegistry(t *testing.T) {
	t.Helper()
	metrics.InitRegistry()
	t.Cleanup(func() { metrics.Registry = nil })
}

func TestGameMetrics_RecordsGameplay(t *testing.T) {
	withRegistry(t)
	m := metrics.NewGameMetrics()
	require.NoError(t, m.Register())

	m.RecordTurn("Classic")
	m.RecordTurn("Classic")
	m.RecordFuelBurned("Ada", 3)
	m.RecordHazardRoll(6, 2)
	m.RecordHazardRoll(2, 0)
	m.RecordCrash("surface")
	m.RecordGravityDecision(false)
	m.RecordGameFinished("won", 14)
	m.RecordCommandExecution("Launch", 0.0002, true)

	families, err := metrics.GetRegistry().Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"spacerover_game_turns_total",
		"spacerover_game_fuel_burned_units_total",
		"spacerover_game_asteroid_rolls_total",
		"spacerover_game_ships_destroyed_total",
		"spacerover_game_half_gravity_decisions_total",
		"spacerover_game_games_finished_total",
		"spacerover_game_game_length_rounds",
		"spacerover_game_commands_total",
		"spacerover_game_command_duration_seconds",
	} {
		assert.True(t, names[want], want)
	}
}

func TestGameMetrics_RegisterWithoutRegistryIsANoop(t *testing.T) {
	metrics.Registry = nil

	assert.NoError(t, metrics.NewGameMetrics().Register())
	assert.False(t, metrics.IsEnabled())
}

func TestGameMetrics_DoubleRegisterFails(t *testing.T) {
	withRegistry(t)
	m := metrics.NewGameMetrics()
	require.NoError(t, m.Register())

	assert.Error(t, m.Register())
}

func TestPrometheusMiddleware(t *testing.T) {
	withRegistry(t)
	collector := metrics.NewCommandMetricsCollector()
	require.NoError(t, collector.Register())

	m := common.NewMediator()
	m.RegisterMiddleware(metrics.PrometheusMiddleware(collector))
	handler := &pingHandler{}
	require.NoError(t, common.RegisterHandler[*pingQuery](m, handler))

	_, err := m.Send(context.Background(), &pingQuery{})
	require.NoError(t, err)
	handler.err = errors.New("boom")
	_, err = m.Send(context.Background(), &pingQuery{})
	require.Error(t, err)

	expected := `
# HELP spacerover_game_commands_total Total number of commands executed by type and status
# TYPE spacerover_game_commands_total counter
spacerover_game_commands_total{command="pingQuery",status="error"} 1
spacerover_game_commands_total{command="pingQuery",status="success"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(metrics.GetRegistry(), strings.NewReader(expected),
		"spacerover_game_commands_total"))
}

func TestPrometheusMiddleware_NilCollectorPassesThrough(t *testing.T) {
	mw := metrics.PrometheusMiddleware(nil)

	resp, err := mw(context.Background(), &pingQuery{}, (&pingHandler{}).Handle)

	require.NoError(t, err)
	assert.Equal(t, "pong", resp)
}

func TestServer_ServesRegistry(t *testing.T) {
	withRegistry(t)
	m := metrics.NewGameMetrics()
	require.NoError(t, m.Register())
	m.RecordCrash("asteroids")

	srv := metrics.NewServer("127.0.0.1:0", "/metrics", zerolog.Nop())
	require.NoError(t, srv.Start())
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `spacerover_game_ships_destroyed_total{cause="asteroids"} 1`)
}

func TestServer_RequiresRegistry(t *testing.T) {
	metrics.Registry = nil

	assert.Error(t, metrics.NewServer("127.0.0.1:0", "", zerolog.Nop()).Start())
}
