package metrics

import (
	"fish/game"
	"math"
	"sync"
	"time"
)

type GameMetric struct {
	Turns   int
	Escaped int // Fish in the sea at the end
	Outcome game.Outcome
}

type SimulationMetric struct {
	Workers    int
	Seed       uint64
	StartTime  time.Time
	Duration   time.Duration
	Games      int
	TotalTurns int
	MinTurns   int
	MaxTurns   int
	Escaped    [game.NUM_COLORS + 1]int // Games by number of escaped fish
}

func (m SimulationMetric) MeanTurns() float64 {
	if m.Games == 0 {
		return 0
	}
	return float64(m.TotalTurns) / float64(m.Games)
}

func (m SimulationMetric) GamesPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Games) / m.Duration.Seconds()
}

type ThroughputRecord struct {
	Workers        int
	Games          int
	Duration       time.Duration
	GamesPerSecond float64
}

type Collector interface {
	Start(workers int, seed uint64)
	AddGame(metric GameMetric)
	Complete() SimulationMetric
}

type collector struct {
	sync.Mutex
	metric SimulationMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(workers int, seed uint64) {
	m.Lock()
	defer m.Unlock()

	m.metric = SimulationMetric{
		Workers:   workers,
		Seed:      seed,
		StartTime: time.Now(),
		MinTurns:  math.MaxInt,
	}
}

func (m *collector) AddGame(metric GameMetric) {
	m.Lock()
	defer m.Unlock()

	m.metric.Games++
	m.metric.TotalTurns += metric.Turns
	m.metric.MinTurns = min(m.metric.MinTurns, metric.Turns)
	m.metric.MaxTurns = max(m.metric.MaxTurns, metric.Turns)
	if metric.Escaped >= 0 && metric.Escaped <= game.NUM_COLORS {
		m.metric.Escaped[metric.Escaped]++
	}
}

func (m *collector) Complete() SimulationMetric {
	m.Lock()
	defer m.Unlock()

	metric := m.metric
	metric.Duration = time.Since(metric.StartTime)
	if metric.Games == 0 {
		metric.MinTurns = 0
	}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(workers int, seed uint64) {}
func (m *dummyCollector) AddGame(metric GameMetric)      {}
func (m *dummyCollector) Complete() SimulationMetric     { return SimulationMetric{} }
