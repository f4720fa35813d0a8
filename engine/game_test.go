package engine

import (
	"bytes"
	"numgame/game"
	"numgame/searcher"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	rules := game.NewStandardRules()

	t.Run("starting from a valid seed", func(t *testing.T) {
		g, err := NewGame(rules, game.Computer, 27, searcher.WithAlgorithm(searcher.AlphaBeta))

		require.NoError(t, err)
		require.Equal(t, game.NewState(27), g.State())
		require.Equal(t, game.TurnOrder{game.Computer, game.Human}, g.Players())
		require.Equal(t, game.Computer, g.CurrentPlayer())
		require.Equal(t, searcher.AlphaBeta, g.Algorithm())
		require.False(t, g.IsFinished())
	})

	t.Run("rejecting seeds outside the range", func(t *testing.T) {
		for _, seed := range []int{0, 19, 31, 1000} {
			_, err := NewGame(rules, game.Human, seed)

			require.ErrorIs(t, err, game.ErrInvalidSeed, "seed %d", seed)
		}
	})

	t.Run("rejecting unknown players", func(t *testing.T) {
		_, err := NewGame(rules, game.Player(7), 20)

		require.Error(t, err)
	})
}

func TestGamePlay(t *testing.T) {
	rules := game.NewStandardRules()

	t.Run("multiplying by three until the end", func(t *testing.T) {
		g, err := NewGame(rules, game.Human, 27)
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			require.NoError(t, g.Play(3))
		}

		require.True(t, g.IsFinished())
		require.Equal(t, game.State{Number: 6561, Points: -5, Bank: 0, Level: 5}, g.State())
		winner, err := g.Winner()
		require.NoError(t, err)
		require.Equal(t, game.Computer, winner, "Odd final points should go to the second player")

		history := g.History()
		require.Len(t, history, 5)
		require.Equal(t, game.Human, history[0].Player)
		require.Equal(t, game.Computer, history[1].Player)
		require.Equal(t, 81, history[0].State.Number)
	})

	t.Run("rejecting an invalid factor", func(t *testing.T) {
		g, err := NewGame(rules, game.Human, 20)
		require.NoError(t, err)

		err = g.Play(6)

		require.ErrorIs(t, err, game.ErrInvalidFactor)
		require.Equal(t, game.NewState(20), g.State(), "State should not change")
		require.Empty(t, g.History())
	})

	t.Run("rejecting moves after the end", func(t *testing.T) {
		g, err := NewGame(rules, game.Human, 30)
		require.NoError(t, err)
		for !g.IsFinished() {
			require.NoError(t, g.Play(5))
		}

		require.ErrorIs(t, g.Play(3), game.ErrGameOver)
		_, err = g.ComputerMove()
		require.ErrorIs(t, err, game.ErrGameOver)
	})

	t.Run("asking for the winner too early", func(t *testing.T) {
		g, err := NewGame(rules, game.Human, 20)
		require.NoError(t, err)

		_, err = g.Winner()

		require.ErrorIs(t, err, ErrGameNotOver)
	})
}

func TestGameComputerMove(t *testing.T) {
	rules := game.NewStandardRules()

	for _, algorithm := range []searcher.Algorithm{searcher.Minimax, searcher.AlphaBeta} {
		algorithm := algorithm
		t.Run("answering 20*3 with "+algorithm.String(), func(t *testing.T) {
			g, err := NewGame(rules, game.Human, 20, searcher.WithAlgorithm(algorithm))
			require.NoError(t, err)
			require.NoError(t, g.Play(3))
			require.Equal(t, game.Computer, g.CurrentPlayer())

			factor, err := g.ComputerMove()

			require.NoError(t, err)
			require.Equal(t, 3, factor)
			require.Equal(t, game.State{Number: 180, Points: 2, Bank: 2, Level: 2}, g.State())
			require.Equal(t, game.Human, g.CurrentPlayer())
		})
	}

	t.Run("computing without playing", func(t *testing.T) {
		g, err := NewGame(rules, game.Computer, 25)
		require.NoError(t, err)

		factor, result, err := g.ComputeMove()

		require.NoError(t, err)
		require.True(t, rules.IsValidFactor(factor))
		require.Equal(t, factor, rules.MinFactor+result.Index)
		require.Equal(t, game.NewState(25), g.State(), "ComputeMove should not play")
	})
}

func TestGameTrace(t *testing.T) {
	rules := game.NewStandardRules()

	t.Run("tracing the whole game", func(t *testing.T) {
		g, err := NewGame(rules, game.Human, 20)
		require.NoError(t, err)
		var buf bytes.Buffer

		require.NoError(t, g.Trace(&buf))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Greater(t, len(lines), 4)
		require.True(t, strings.HasPrefix(lines[0], "number: 20 "))
		require.Contains(t, lines[0], "algorithm:", "Root should carry its searched value")
	})

	t.Run("tracing a finished game", func(t *testing.T) {
		g, err := NewGame(rules, game.Human, 30)
		require.NoError(t, err)
		for !g.IsFinished() {
			require.NoError(t, g.Play(5))
		}
		var buf bytes.Buffer

		require.NoError(t, g.Trace(&buf))

		require.Equal(t, 1, strings.Count(buf.String(), "\n"))
		require.NotContains(t, buf.String(), "algorithm:")
	})
}
