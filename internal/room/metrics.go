package room

import (
	"context"
	"sync"

	"ctchen222/tic-tac-toe-web/internal/game"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type roomMetrics struct {
	movesAccepted  metric.Int64Counter
	movesIgnored   metric.Int64Counter
	gamesFinished  metric.Int64Counter
	activeSessions metric.Int64UpDownCounter
}

var (
	metricsOnce sync.Once
	metricsInst *roomMetrics
)

// getMetrics creates the instruments on first use so that they bind to the
// meter provider installed by telemetry.InitOtel.
func getMetrics() *roomMetrics {
	metricsOnce.Do(func() {
		m, err := newRoomMetrics(otel.Meter("room"))
		if err != nil {
			otel.Handle(err)
			m, _ = newRoomMetrics(noop.NewMeterProvider().Meter("room"))
		}
		metricsInst = m
	})
	return metricsInst
}

func newRoomMetrics(meter metric.Meter) (*roomMetrics, error) {
	var (
		m   roomMetrics
		err error
	)
	if m.movesAccepted, err = meter.Int64Counter("tictactoe.moves.accepted",
		metric.WithDescription("Moves placed on a board")); err != nil {
		return nil, err
	}
	if m.movesIgnored, err = meter.Int64Counter("tictactoe.moves.ignored",
		metric.WithDescription("Cell clicks dropped without effect")); err != nil {
		return nil, err
	}
	if m.gamesFinished, err = meter.Int64Counter("tictactoe.games.finished",
		metric.WithDescription("Games that reached a win or a draw")); err != nil {
		return nil, err
	}
	if m.activeSessions, err = meter.Int64UpDownCounter("tictactoe.sessions.active",
		metric.WithDescription("Open browser sessions")); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *roomMetrics) moveAccepted(ctx context.Context) {
	m.movesAccepted.Add(ctx, 1)
}

func (m *roomMetrics) moveIgnored(ctx context.Context, reason string) {
	m.movesIgnored.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *roomMetrics) gameFinished(ctx context.Context, status game.Status) {
	m.gamesFinished.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(status))))
}

func (m *roomMetrics) sessionOpened(ctx context.Context) {
	m.activeSessions.Add(ctx, 1)
}

func (m *roomMetrics) sessionClosed(ctx context.Context) {
	m.activeSessions.Add(ctx, -1)
}
