package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm   string
	Depth       int
	Duration    time.Duration
	Nodes       int // Distinct states in the built tree
	Evaluations int // Leaves scored by the heuristic
	Cutoffs     int // Sibling lists abandoned by alpha-beta
}

type MoveMetric struct {
	Step   int
	Player string
	Factor int
	SearchMetric
}

type GameMetric struct {
	ID             string
	Seed           int
	StartingPlayer string
	Winner         string
	FinalPoints    int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(algorithm string, depth int)
	AddNode()
	AddEvaluation()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	algorithm   string
	depth       int
	startTime   time.Time
	nodes       atomic.Int32
	evaluations atomic.Int32
	cutoffs     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters, so one collector can serve consecutive searches.
func (m *collector) Start(algorithm string, depth int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depth = depth
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:   m.algorithm,
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddEvaluation()                    {}
func (m *dummyCollector) AddCutoff()                        {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
