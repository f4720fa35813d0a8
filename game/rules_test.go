package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRulesNext(t *testing.T) {
	rules := NewStandardRules()

	t.Run("even result divisible by five", func(t *testing.T) {
		got := rules.Next(NewState(20), 3)

		require.Equal(t, State{Number: 60, Points: 1, Bank: 1, Level: 1}, got,
			"60 is even and divisible by 5")
	})

	t.Run("odd result not divisible by five", func(t *testing.T) {
		got := rules.Next(NewState(27), 3)

		require.Equal(t, State{Number: 81, Points: -1, Bank: 0, Level: 1}, got,
			"81 is odd and not divisible by 5")
	})

	t.Run("just below the end number", func(t *testing.T) {
		got := rules.Next(State{Number: 999}, 3)

		require.Equal(t, State{Number: 2997, Points: -1, Bank: 0, Level: 1}, got,
			"Settlement should not apply below the end number")
		require.False(t, rules.IsTerminal(got))
	})

	t.Run("settlement on odd points adds the bank", func(t *testing.T) {
		got := rules.Next(State{Number: 1000}, 3)

		// 3000 is even (points 1) and divisible by 5 (bank 1); odd points gain the bank
		require.Equal(t, State{Number: 3000, Points: 2, Bank: 1, Level: 1}, got)
		require.True(t, rules.IsTerminal(got), "Reaching the end number exactly is terminal")
	})

	t.Run("settlement on even points subtracts the new bank", func(t *testing.T) {
		got := rules.Next(State{Number: 700, Points: 1, Bank: 2, Level: 3}, 5)

		// 3500 is even (points 2) and divisible by 5 (bank 3); even points lose the bank
		require.Equal(t, State{Number: 3500, Points: -1, Bank: 3, Level: 4}, got)
	})

	t.Run("deterministic", func(t *testing.T) {
		s := State{Number: 123, Points: -2, Bank: 4, Level: 7}
		for _, f := range rules.Factors() {
			require.Equal(t, rules.Next(s, f), rules.Next(s, f), "Same inputs should give the same state")
			require.Equal(t, s.Number*f, rules.Next(s, f).Number)
		}
	})

	t.Run("number increases and bank never decreases", func(t *testing.T) {
		frontier := []State{NewState(rules.MinStartNumber), NewState(rules.MaxStartNumber)}
		for len(frontier) > 0 {
			s := frontier[0]
			frontier = frontier[1:]
			if rules.IsTerminal(s) {
				continue
			}
			for _, f := range rules.Factors() {
				next := rules.Next(s, f)
				require.Greater(t, next.Number, s.Number)
				require.GreaterOrEqual(t, next.Bank, s.Bank)
				require.Equal(t, s.Level+1, next.Level)
				frontier = append(frontier, next)
			}
		}
	})
}

func TestRulesPlay(t *testing.T) {
	rules := NewStandardRules()

	t.Run("playing a legal factor", func(t *testing.T) {
		got, err := rules.Play(NewState(20), 5)

		require.NoError(t, err)
		require.Equal(t, rules.Next(NewState(20), 5), got)
	})

	t.Run("rejecting factors outside the legal range", func(t *testing.T) {
		for _, f := range []int{-3, 0, 1, 2, 6, 10} {
			got, err := rules.Play(NewState(20), f)

			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidFactor), "Should report an invalid factor for %d", f)
			require.Equal(t, NewState(20), got, "State should not change")
		}
	})

	t.Run("rejecting moves after the game ended", func(t *testing.T) {
		_, err := rules.Play(State{Number: 3000}, 3)

		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestRulesFactors(t *testing.T) {
	rules := NewStandardRules()

	require.Equal(t, []int{3, 4, 5}, rules.Factors(), "Factors should be ascending")
	require.True(t, rules.IsValidFactor(4))
	require.False(t, rules.IsValidFactor(2))
	require.Equal(t, 15000, rules.MaxNumber())
}

func TestRulesInvertedFactorBounds(t *testing.T) {
	rules := &Rules{EndNumber: 3000, MinStartNumber: 20, MaxStartNumber: 30, MinFactor: 5, MaxFactor: 3}

	require.NotPanics(t, func() {
		require.Empty(t, rules.Factors(), "No factor lies between 5 and 3")
	})
	require.False(t, rules.IsValidFactor(4))
}

func TestRulesIsValidSeed(t *testing.T) {
	rules := NewStandardRules()

	require.True(t, rules.IsValidSeed(20))
	require.True(t, rules.IsValidSeed(27))
	require.True(t, rules.IsValidSeed(30))
	require.False(t, rules.IsValidSeed(19))
	require.False(t, rules.IsValidSeed(31))
}

func TestFullGameByThrees(t *testing.T) {
	rules := NewStandardRules()
	s := NewState(27)

	for i := 0; i < 5; i++ {
		require.False(t, rules.IsTerminal(s), "Game should still run before move %d", i+1)
		s = rules.Next(s, 3)
	}

	// 81, 243, 729, 2187, 6561 are all odd and never divisible by 5
	require.Equal(t, State{Number: 6561, Points: -5, Bank: 0, Level: 5}, s)
	require.True(t, rules.IsTerminal(s))
	require.Equal(t, Computer, NewTurnOrder(Human).Winner(s), "-5 is odd so the second player wins")
}
