package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth       int
	Deadline    time.Duration // zero when unbounded
	Duration    time.Duration
	Nodes       int
	Leaves      int
	Cutoffs     int
	EvalTime    time.Duration // time spent inside the evaluator
	Interrupted bool
}

type MoveMetric struct {
	Step     int
	Player   string
	Move     string
	Value    int
	Captures int // pairs captured by this move
	Fallback bool
	Random   bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // empty on a draw or an unfinished game
	Outcome        string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int, deadline time.Duration)
	AddNode()
	AddLeaf(elapsed time.Duration)
	AddCutoff()
	SetInterrupted()
	Complete() SearchMetric
}

type collector struct {
	depth       int
	deadline    time.Duration
	startTime   time.Time
	nodes       atomic.Int64
	leaves      atomic.Int64
	cutoffs     atomic.Int64
	evalTime    atomic.Int64
	interrupted atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth int, deadline time.Duration) {
	m.startTime = time.Now()
	m.depth = depth
	m.deadline = deadline
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.evalTime.Store(0)
	m.interrupted.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf(elapsed time.Duration) {
	m.leaves.Add(1)
	m.evalTime.Add(int64(elapsed))
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetInterrupted() {
	m.interrupted.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Deadline:    m.deadline,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Leaves:      int(m.leaves.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		EvalTime:    time.Duration(m.evalTime.Load()),
		Interrupted: m.interrupted.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, deadline time.Duration) {}
func (m *dummyCollector) AddNode()                                {}
func (m *dummyCollector) AddLeaf(elapsed time.Duration)           {}
func (m *dummyCollector) AddCutoff()                              {}
func (m *dummyCollector) SetInterrupted()                         {}
func (m *dummyCollector) Complete() SearchMetric                  { return SearchMetric{} }
