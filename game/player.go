package game

import (
	"fmt"
	"numgame/utils"
	"strings"
)

type Player int

const (
	Human Player = iota + 1
	Computer
)

func (p Player) String() string {
	switch p {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

func (p Player) Other() Player {
	if p == Human {
		return Computer
	}
	return Human
}

// ParsePlayer accepts "h", "human", "c" or "computer" in any case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "human":
		return Human, nil
	case "c", "computer":
		return Computer, nil
	}
	return 0, fmt.Errorf("unknown player %q", s)
}

// TurnOrder is fixed for a game's duration. Index 0 moves at even levels.
type TurnOrder [2]Player

func NewTurnOrder(first Player) TurnOrder {
	return TurnOrder{first, first.Other()}
}

// ToMove returns the player whose turn it is in s.
func (o TurnOrder) ToMove(s State) Player {
	return o[utils.Mod(s.Level, 2)]
}

// Winner maps the parity of the final (settled) points onto the turn order.
func (o TurnOrder) Winner(s State) Player {
	return o[utils.Mod(s.Points, 2)]
}
