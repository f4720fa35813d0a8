package player

import (
	"bufio"
	"fmt"
	"io"
	"numgame/game"
	"numgame/searcher"
	"strconv"
	"strings"
)

// Prompter asks the questions a console game needs. Every question is
// repeated until the answer is valid or the input ends.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *Prompter) ChooseSeed(rules *game.Rules) (int, error) {
	message := fmt.Sprintf("Enter a number from %d to %d: ", rules.MinStartNumber, rules.MaxStartNumber)
	return p.intInput(message, rules.MinStartNumber, rules.MaxStartNumber)
}

func (p *Prompter) ChooseFactor(rules *game.Rules) (int, error) {
	message := fmt.Sprintf("Enter a factor from %d to %d: ", rules.MinFactor, rules.MaxFactor)
	return p.intInput(message, rules.MinFactor, rules.MaxFactor)
}

func (p *Prompter) ChooseAlgorithm() (searcher.Algorithm, error) {
	fmt.Fprint(p.out, "Choose the computer's algorithm, minimax (m) or alpha-beta (a): ")
	for {
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		algorithm, err := searcher.ParseAlgorithm(line)
		if err == nil {
			return algorithm, nil
		}
		fmt.Fprint(p.out, "invalid choice, try again: ")
	}
}

func (p *Prompter) ChooseFirstPlayer() (game.Player, error) {
	fmt.Fprint(p.out, "Who starts, human (h) or computer (c): ")
	for {
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		player, err := game.ParsePlayer(line)
		if err == nil {
			return player, nil
		}
		fmt.Fprint(p.out, "invalid choice, try again: ")
	}
}

func (p *Prompter) PlayAgain() (bool, error) {
	fmt.Fprint(p.out, "Play again? (y/n): ")
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(line)
	return answer == "y" || answer == "yes", nil
}

// intInput reads integers until one falls in [lo, hi].
func (p *Prompter) intInput(message string, lo, hi int) (int, error) {
	fmt.Fprint(p.out, message)
	for {
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprint(p.out, "error, try again: ")
			continue
		}
		if n < lo || n > hi {
			fmt.Fprint(p.out, "invalid number, try again: ")
			continue
		}
		return n, nil
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("failed to read input: %w", io.EOF)
	}
	return strings.TrimSpace(p.in.Text()), nil
}
