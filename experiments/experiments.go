package experiments

import (
	"context"
	"fmt"
	"numgame/engine"
	"numgame/experiments/metrics"
	"numgame/game"
	"numgame/player"
	"numgame/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames   = 30 // Per match up
	SourceSeed = 2024
)

type Options struct {
	Games       int    // Games per match up
	Seed        uint64 // Source of the sampled starting numbers
	Concurrency int    // Games played at once, unbounded when 0
	Dir         string // Root directory of the CSV records, nothing is written when empty
}

type Report struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Dir   string // Directory the records were written to
}

type fixture struct {
	first  metrics.AgentConfig
	second metrics.AgentConfig
	seed   int
}

// RunAlgorithmExperiment pits minimax against alpha-beta at equal depth.
// Both pick the same moves, so the records isolate the pruning savings.
func RunAlgorithmExperiment(ctx context.Context, rules *game.Rules, opts Options) (Report, error) {
	minimax := metrics.AgentConfig{ID: 1, Algorithm: searcher.Minimax.String(), Depth: searcher.DefaultDepth + 2}
	alphaBeta := metrics.AgentConfig{ID: 2, Algorithm: searcher.AlphaBeta.String(), Depth: searcher.DefaultDepth + 2}
	matchUps := [][2]metrics.AgentConfig{{minimax, alphaBeta}}

	return Run(ctx, "algorithm", rules, []metrics.AgentConfig{minimax, alphaBeta}, matchUps, opts)
}

// RunDepthExperiment pairs agents of increasing depth against the default depth.
func RunDepthExperiment(ctx context.Context, rules *game.Rules, opts Options) (Report, error) {
	baseline := metrics.AgentConfig{ID: 0, Algorithm: searcher.AlphaBeta.String(), Depth: searcher.DefaultDepth}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 1; depth <= 5; depth++ {
		config := metrics.AgentConfig{ID: depth, Algorithm: searcher.AlphaBeta.String(), Depth: depth}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return Run(ctx, "depth", rules, configs, matchUps, opts)
}

// Run plays opts.Games computer-vs-computer games per match up, alternating
// who moves first, and writes the records when opts.Dir is set. Each game
// owns its searchers and trees, so games run concurrently.
func Run(ctx context.Context, name string, rules *game.Rules, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, opts Options) (Report, error) {
	if opts.Games <= 0 {
		opts.Games = NumGames
	}

	// Seeds are drawn up front so results do not depend on scheduling
	rng := rand.New(rand.NewSource(opts.Seed))
	games := make([]fixture, 0, len(matchUps)*opts.Games)
	for _, matchUp := range matchUps {
		for i := 0; i < opts.Games; i++ {
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}
			seed := rules.MinStartNumber + rng.Intn(rules.MaxStartNumber-rules.MinStartNumber+1)
			games = append(games, fixture{first: first, second: second, seed: seed})
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", name, len(games))

	gameRecords := make([]metrics.GameRecord, len(games))
	moveRecords := make([][]metrics.MoveRecord, len(games))
	group, ctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		group.SetLimit(opts.Concurrency)
	}
	for i, g := range games {
		i, g := i, g
		group.Go(func() error {
			gameMetric, moveMetrics, err := runGame(ctx, rules, g)
			if err != nil {
				return fmt.Errorf("game %d of %s experiment: %w", i+1, name, err)
			}
			gameRecords[i] = metrics.GameRecord{
				Agent1:     g.first.ID,
				Agent2:     g.second.ID,
				GameMetric: gameMetric,
			}
			for _, mm := range moveMetrics {
				moveRecords[i] = append(moveRecords[i], metrics.MoveRecord{Game: gameMetric.ID, MoveMetric: mm})
			}
			log.Debug().Msgf("game %d of %d over, %s wins", i+1, len(games), gameMetric.Winner)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Games: gameRecords}
	for _, records := range moveRecords {
		report.Moves = append(report.Moves, records...)
	}
	for algorithm, summary := range Summarize(report.Moves) {
		log.Info().Msgf("%s: %d moves, %.1f evaluations and %.1f cutoffs per move", algorithm, summary.Moves, summary.EvaluationsPerMove(), summary.CutoffsPerMove())
	}

	if opts.Dir == "" {
		return report, nil
	}
	dir, err := write(opts.Dir, name, configs, report)
	if err != nil {
		return report, err
	}
	report.Dir = dir
	log.Info().Msgf("finished %s experiment, records in %s", name, dir)
	return report, nil
}

// runGame plays one game between two search agents. The first mover plays
// as the computer and the second as the human seat.
func runGame(ctx context.Context, rules *game.Rules, g fixture) (metrics.GameMetric, []metrics.MoveMetric, error) {
	match, err := engine.NewGame(rules, game.Computer, g.seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	first, err := newAgent(rules, g.first)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	second, err := newAgent(rules, g.second)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.NewEngine(uuid.NewString(), match, map[game.Player]engine.Agent{
		game.Computer: first,
		game.Human:    second,
	})
	_, gameMetric, moveMetrics, err := e.Run(ctx)
	return gameMetric, moveMetrics, err
}

func newAgent(rules *game.Rules, config metrics.AgentConfig) (engine.Agent, error) {
	algorithm, err := searcher.ParseAlgorithm(config.Algorithm)
	if err != nil {
		return nil, err
	}
	s := searcher.NewSearcher(rules,
		searcher.WithAlgorithm(algorithm),
		searcher.WithDepth(config.Depth),
		searcher.WithMetrics(),
	)
	return player.NewComputerWith(s, nil), nil
}

func write(root, name string, configs []metrics.AgentConfig, report Report) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(report.Games); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(report.Moves); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	return writer.Dir(), nil
}
