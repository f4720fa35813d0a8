package engine

import (
	"context"
	"fmt"
	"numgame/experiments/metrics"
	"numgame/game"
	"time"

	"github.com/rs/zerolog/log"
)

// MaxMoves bounds a game in case the rules never reach the end number.
const MaxMoves = 64

type Agent interface {
	// FindMove returns the factor to play and the search metrics, if any
	FindMove(ctx context.Context, g *Game) (int, metrics.SearchMetric, error)
}

type Engine struct {
	ID     string
	Game   *Game
	Agents map[game.Player]Agent
}

func NewEngine(id string, g *Game, agents map[game.Player]Agent) *Engine {
	for _, p := range g.Players() {
		if agents[p] == nil {
			panic(fmt.Sprintf("no agent for %s", p))
		}
	}
	return &Engine{
		ID:     id,
		Game:   g,
		Agents: agents,
	}
}

// Run asks the agents for moves until the game is over and returns the winner.
func (e *Engine) Run(ctx context.Context) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	g := e.Game
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		Seed:           g.Seed(),
		StartingPlayer: g.Players()[0].String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting from %d", g.CurrentPlayer(), g.State().Number)

	for step := 1; !g.IsFinished(); step++ {
		if err := ctx.Err(); err != nil {
			return 0, gameMetric, moveMetrics, err
		}
		if step > MaxMoves {
			return 0, gameMetric, moveMetrics, fmt.Errorf("stopped after %d moves without a winner", MaxMoves)
		}

		player := g.CurrentPlayer()
		factor, searchMetric, err := e.Agents[player].FindMove(ctx, g)
		if err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", player, err)
		}
		if err := g.Play(factor); err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("%s played an illegal move: %w", player, err)
		}

		s := g.State()
		log.Info().
			Str("player", player.String()).
			Int("factor", factor).
			Int("number", s.Number).
			Int("points", s.Points).
			Int("bank", s.Bank).
			Msg("move played")

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Factor:       factor,
			SearchMetric: searchMetric,
		})
	}

	winner, err := g.Winner()
	if err != nil {
		return 0, gameMetric, moveMetrics, err
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Winner = winner.String()
	gameMetric.FinalPoints = g.State().Points
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over with %d points, %s wins", g.State().Points, winner)

	return winner, gameMetric, moveMetrics, nil
}
