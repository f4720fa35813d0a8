package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"numgame/engine"
	"numgame/experiments"
	"numgame/game"
	"numgame/meta"
	"numgame/player"
	"numgame/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play, trace or experiment")
	envFile := flag.String("env", ".env", "File with NUMGAME_* settings")
	depth := flag.Int("depth", 0, "Search depth, overrides NUMGAME_SEARCH_DEPTH")
	debug := flag.Bool("debug", false, "Print the game trees the computer searches")
	seed := flag.Int("seed", meta.MIN_START_NUMBER, "Starting number in trace mode")
	algorithm := flag.String("algorithm", "minimax", "Algorithm in trace mode")
	experimentName := flag.String("experiment", "algorithm", "Experiment to run: algorithm or depth")
	games := flag.Int("games", experiments.NumGames, "Games per match up in experiment mode")
	out := flag.String("out", "experiments", "Directory of experiment records")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := meta.Load(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if *depth > 0 {
		cfg.SearchDepth = *depth
	}
	cfg.Debug = cfg.Debug || *debug
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "play":
		err = play(ctx, cfg, os.Stdin, os.Stdout)
	case "trace":
		err = trace(cfg, *seed, *algorithm, os.Stdout)
	case "experiment":
		err = experiment(ctx, cfg, *experimentName, *games, *out)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

// play runs console games until the player declines another one.
func play(ctx context.Context, cfg meta.Config, in io.Reader, out io.Writer) error {
	rules := cfg.Rules()
	prompter := player.NewPrompter(in, out)

	for {
		first, err := prompter.ChooseFirstPlayer()
		if err != nil {
			return err
		}
		algorithm, err := prompter.ChooseAlgorithm()
		if err != nil {
			return err
		}
		seed, err := prompter.ChooseSeed(rules)
		if err != nil {
			return err
		}

		g, err := engine.NewGame(rules, first, seed,
			searcher.WithAlgorithm(algorithm),
			searcher.WithDepth(cfg.SearchDepth),
		)
		if err != nil {
			return err
		}

		var treeOut io.Writer
		if cfg.Debug {
			treeOut = out
			if err := g.Trace(out); err != nil {
				return err
			}
		}

		e := engine.NewEngine("", g, map[game.Player]engine.Agent{
			game.Human:    player.NewConsole(prompter),
			game.Computer: player.NewComputer(treeOut),
		})
		winner, _, _, err := e.Run(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Game over, final points: %d\nWinner: %s.\n", g.State().Points, winner)

		again, err := prompter.PlayAgain()
		if errors.Is(err, io.EOF) || (err == nil && !again) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// trace prints the full game tree from seed, annotated by the algorithm.
func trace(cfg meta.Config, seed int, name string, out io.Writer) error {
	algorithm, err := searcher.ParseAlgorithm(name)
	if err != nil {
		return err
	}
	g, err := engine.NewGame(cfg.Rules(), game.Human, seed, searcher.WithAlgorithm(algorithm))
	if err != nil {
		return err
	}
	return g.Trace(out)
}

func experiment(ctx context.Context, cfg meta.Config, name string, games int, dir string) error {
	opts := experiments.Options{
		Games: games,
		Seed:  experiments.SourceSeed,
		Dir:   dir,
	}

	var err error
	switch name {
	case "algorithm":
		_, err = experiments.RunAlgorithmExperiment(ctx, cfg.Rules(), opts)
	case "depth":
		_, err = experiments.RunDepthExperiment(ctx, cfg.Rules(), opts)
	default:
		err = fmt.Errorf("unknown experiment %q", name)
	}
	return err
}
