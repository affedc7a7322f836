package searcher

import "time"

// Metric describes the work done by one search.
type Metric struct {
	StartTime time.Time
	Duration  time.Duration
	Depth     int
	Pruning   bool
	Nodes     int64 // Positions expanded below the root
	Leaves    int64 // Terminal or depth 0 positions scored
	Cutoffs   int64
	Ties      int // Root moves sharing the best value
}

type Collector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetTies(n int)
	Complete() Metric
}

// Searches are single threaded, so the counters need no synchronization.
type collector struct {
	metric Metric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, pruning bool) {
	m.metric = Metric{
		StartTime: time.Now(),
		Depth:     depth,
		Pruning:   pruning,
	}
}

func (m *collector) AddNode() {
	m.metric.Nodes++
}

func (m *collector) AddLeaf() {
	m.metric.Leaves++
}

func (m *collector) AddCutoff() {
	m.metric.Cutoffs++
}

func (m *collector) SetTies(n int) {
	m.metric.Ties = n
}

func (m *collector) Complete() Metric {
	m.metric.Duration = time.Since(m.metric.StartTime)
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                      {}
func (m *dummyCollector) AddLeaf()                      {}
func (m *dummyCollector) AddCutoff()                    {}
func (m *dummyCollector) SetTies(n int)                 {}
func (m *dummyCollector) Complete() Metric              { return Metric{} }
