package view

import "sync"

// Sink receives render instructions for one region.
type Sink interface {
	Render(ins Instruction)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ins Instruction)

func (f SinkFunc) Render(ins Instruction) {
	f(ins)
}

// Navigator is told about every screen change.
type Navigator interface {
	Navigate(state State)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(state State)

func (f NavigatorFunc) Navigate(state State) {
	f(state)
}

// Sinks routes instructions to per-region sinks. Regions without a sink discard their instructions.
type Sinks struct {
	regions   map[Region]Sink
	navigator Navigator
}

// NewSinks creates an empty router.
func NewSinks() *Sinks {
	return &Sinks{regions: make(map[Region]Sink)}
}

// With registers sink for region and returns the router.
func (s *Sinks) With(region Region, sink Sink) *Sinks {
	s.regions[region] = sink
	return s
}

// WithNavigator registers the screen change observer and returns the router.
func (s *Sinks) WithNavigator(n Navigator) *Sinks {
	s.navigator = n
	return s
}

// Render delivers ins to region's sink.
func (s *Sinks) Render(region Region, ins Instruction) {
	if sink, ok := s.regions[region]; ok && sink != nil {
		sink.Render(ins)
	}
}

// Navigate forwards state to the navigator.
func (s *Sinks) Navigate(state State) {
	if s.navigator != nil {
		s.navigator.Navigate(state)
	}
}

// Recorder is an in-memory sink for every region. It keeps the latest instruction
// per region and the full history in arrival order.
type Recorder struct {
	mu      sync.RWMutex
	latest  map[Region]Instruction
	history []Record
	states  []State
}

// Record is one delivered instruction.
type Record struct {
	Region      Region
	Instruction Instruction
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{latest: make(map[Region]Instruction)}
}

// Sinks returns a router that records every region and navigation.
func (r *Recorder) Sinks() *Sinks {
	sinks := NewSinks().WithNavigator(NavigatorFunc(r.navigate))
	for _, region := range Regions() {
		region := region
		sinks.With(region, SinkFunc(func(ins Instruction) {
			r.record(region, ins)
		}))
	}
	return sinks
}

func (r *Recorder) record(region Region, ins Instruction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latest[region] = ins
	r.history = append(r.history, Record{Region: region, Instruction: ins})
}

func (r *Recorder) navigate(state State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

// Latest returns the last instruction delivered to region, or nil.
func (r *Recorder) Latest(region Region) Instruction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest[region]
}

// History returns every delivered instruction in order.
func (r *Recorder) History() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Record(nil), r.history...)
}

// Of returns the instructions delivered to region in order.
func (r *Recorder) Of(region Region) []Instruction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Instruction
	for _, rec := range r.history {
		if rec.Region == region {
			out = append(out, rec.Instruction)
		}
	}
	return out
}

// States returns every navigated state in order.
func (r *Recorder) States() []State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]State(nil), r.states...)
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latest = make(map[Region]Instruction)
	r.history = nil
	r.states = nil
}
