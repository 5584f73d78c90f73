package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Scheduler runs registered systems through the fixed stage sequence once per tick
//
// Architecture:
//   - Single-threaded: systems in a stage run sequentially in registration order
//   - After every stage the world command buffer is flushed, so structural effects of
//     stage N are visible at the start of stage N+1 and never within stage N
//   - A tick always runs to completion; a panicking system is not recovered here
type Scheduler struct {
	world  *World
	stages [stageCount][]System
	time   *TimeResource

	started   bool
	tickCount uint64
	log       zerolog.Logger
}

// NewScheduler creates a scheduler bound to w and installs the TimeResource if missing
func NewScheduler(w *World) *Scheduler {
	tr, ok := GetResource[*TimeResource](w.Resources)
	if !ok {
		tr = &TimeResource{}
		AddResource(w.Resources, tr)
	}
	return &Scheduler{
		world: w,
		time:  tr,
		log:   w.Log.With().Str("component", "scheduler").Logger(),
	}
}

// AddSystem appends sys to a stage
// Panics on an undeclared stage, which is a wiring error
func (s *Scheduler) AddSystem(stage Stage, sys System) *Scheduler {
	if !stage.Valid() {
		panic(fmt.Sprintf("scheduler: unknown stage %d", stage))
	}
	if la, ok := sys.(LoggerAware); ok {
		la.SetLogger(s.world.Log.With().Str("system", sys.Name()).Str("stage", stage.String()).Logger())
	}
	s.stages[stage] = append(s.stages[stage], sys)
	return s
}

// AddSystems appends several systems to one stage in order
func (s *Scheduler) AddSystems(stage Stage, systems ...System) *Scheduler {
	for _, sys := range systems {
		s.AddSystem(stage, sys)
	}
	return s
}

// Systems returns a copy of the systems registered for a stage
func (s *Scheduler) Systems(stage Stage) []System {
	result := make([]System, len(s.stages[stage]))
	copy(result, s.stages[stage])
	return result
}

// Startup runs the startup stage once; Tick calls it implicitly
func (s *Scheduler) Startup() {
	if s.started {
		return
	}
	s.started = true
	s.runStage(StageStartup)
	s.log.Info().
		Int("entities", s.world.EntityCount()).
		Msg("startup complete")
}

// Tick advances the simulation by dt seconds through every stage
func (s *Scheduler) Tick(dt float64) {
	s.Startup()

	s.time.Update(dt)
	for _, stage := range TickStages {
		s.runStage(stage)
	}
	s.tickCount++
}

// TickCount returns the number of completed ticks
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount
}

// World returns the scheduled world
func (s *Scheduler) World() *World {
	return s.world
}

func (s *Scheduler) runStage(stage Stage) {
	var start time.Time
	trace := s.log.GetLevel() <= zerolog.TraceLevel
	if trace {
		start = time.Now()
	}

	for _, sys := range s.stages[stage] {
		sys.Update(s.world)
	}
	applied := s.world.Flush()

	if trace {
		s.log.Trace().
			Str("stage", stage.String()).
			Int("commands", applied).
			Dur("took", time.Since(start)).
			Msg("stage complete")
	}
}
