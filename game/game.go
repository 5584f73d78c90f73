package game

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-shooter/asset"
	"github.com/lixenwraith/vi-shooter/audio/cue"
	"github.com/lixenwraith/vi-shooter/component"
	"github.com/lixenwraith/vi-shooter/config"
	"github.com/lixenwraith/vi-shooter/core"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/event"
	"github.com/lixenwraith/vi-shooter/input"
	"github.com/lixenwraith/vi-shooter/parameter"
	"github.com/lixenwraith/vi-shooter/physics"
	"github.com/lixenwraith/vi-shooter/status"
	"github.com/lixenwraith/vi-shooter/system"
	"github.com/lixenwraith/vi-shooter/vmath"
)

// Game owns the world, its scheduler and the systems of one shooter session
type Game struct {
	World     *engine.World
	Scheduler *engine.Scheduler
	Assets    *asset.Server
	Config    config.World

	// Metrics is published at the end of every tick and may be read from any goroutine
	Metrics *status.Registry

	materials  *system.MaterialHandles
	playerLook system.Material
	spawn      *system.EnemySpawnSystem
	damage     *system.DamageSystem
	death      *system.DeathSystem
	bounds     *system.BoundsSystem
	log        zerolog.Logger
}

// Stats summarizes a session for logs and headless output
type Stats struct {
	Ticks      uint64
	Entities   int
	Waves      int
	Killed     int
	OutOfRange int
	Hits       int
	Spawned    int
	Despawned  int
}

// New builds a game world from cfg
// provider and player may be nil: the input and audio systems then do nothing
func New(cfg config.World, assets *asset.Server, provider input.Provider, player cue.Player, log zerolog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, eris.Wrap(err, "invalid game config")
	}
	if assets == nil {
		return nil, eris.New("asset server is required")
	}

	materials, err := system.LoadMaterials(assets, parameter.MaterialSprites...)
	if err != nil {
		return nil, eris.Wrap(err, "failed to load materials")
	}
	playerMaterials, err := system.LoadMaterials(assets, parameter.PlayerSprite)
	if err != nil {
		return nil, eris.Wrap(err, "failed to load player sprite")
	}

	w := engine.NewWorld(engine.WithLogger(log.With().Str("component", "world").Logger()))
	if provider != nil {
		engine.AddResource[input.Provider](w.Resources, provider)
	}
	if player != nil {
		engine.AddResource[cue.Player](w.Resources, player)
	}

	// Event logs registered up front so every reader finds them
	event.Register[event.Collision](w.Events)
	event.Register[event.Fired](w.Events)
	event.Register[event.Despawned](w.Events)

	g := &Game{
		World:      w,
		Scheduler:  engine.NewScheduler(w),
		Assets:     assets,
		Config:     cfg,
		Metrics:    status.NewRegistry(),
		materials:  materials,
		playerLook: playerMaterials.Materials[0],
		log:        log.With().Str("component", "game").Logger(),
	}
	g.registerSystems()

	g.log.Info().
		Str("broad_phase", cfg.BroadPhase).
		Float64("bounds_width", cfg.BoundsWidth).
		Float64("bounds_height", cfg.BoundsHeight).
		Msg("game created")
	return g, nil
}

func (g *Game) registerSystems() {
	cfg := g.Config

	wave := system.DefaultEnemyWave()
	wave.Health = cfg.StartingHealth
	wave.Damage = cfg.CollisionDamage

	g.spawn = system.NewEnemySpawnSystem(wave)
	g.damage = system.NewDamageSystem(system.RequireReceiverTag(component.TagLoseHealthOnCollide))
	g.death = system.NewDeathSystem()
	g.bounds = system.NewBoundsSystem()

	var broad physics.BroadPhase = physics.Pairwise{}
	if cfg.BroadPhase == parameter.BroadPhaseGrid {
		broad = physics.NewGrid(cfg.GridCellSize)
	}

	g.Scheduler.
		AddSystems(engine.StageStartup,
			engine.SystemFunc("insert_resources", g.insertResources),
			engine.SystemFunc("spawn_player", g.spawnPlayer),
		).
		AddSystems(engine.StageUpdate,
			system.NewInputSystem(),
			system.NewPlayerControlSystem(),
			system.NewWeaponSystem().WithLaserStats(cfg.LaserSpeed, cfg.CollisionDamage, cfg.StartingHealth),
			g.spawn,
			system.NewLaserMoveSystem(),
			system.NewEnvironmentMoveSystem(cfg.ScrollSpeed),
		).
		AddSystem(engine.StageDetection, system.NewCollisionSystem(broad)).
		AddSystem(engine.StageHandleEvents, g.damage).
		AddSystems(engine.StageCleanup,
			g.death,
			g.bounds,
			system.NewAudioCueSystem(),
			engine.SystemFunc("publish_metrics", g.publishMetrics),
		)
}

func (g *Game) insertResources(w *engine.World) {
	engine.AddResource(w.Resources, g.materials)
	engine.AddResource(w.Resources, &system.BoundingBox{Width: g.Config.BoundsWidth, Height: g.Config.BoundsHeight})
	engine.AddResource(w.Resources, system.NewEnemySpawnTimer(g.Config.SpawnInterval))
	engine.AddResource(w.Resources, &system.CollisionReader{})
}

func (g *Game) spawnPlayer(w *engine.World) {
	w.Commands().Spawn(
		engine.With(component.Player{Speed: g.Config.PlayerSpeed}),
		engine.With(component.Transform{Position: vmath.V2(parameter.PlayerStartX, parameter.PlayerStartY)}),
		engine.With(component.NewWeapon(
			vmath.V2(parameter.WeaponOffsetX, parameter.WeaponOffsetY),
			g.Config.WeaponCooldown,
			parameter.MaterialLaserBlue,
		)),
		engine.With(component.Sprite{Handle: g.playerLook.Handle}),
		engine.With(component.Extent{Width: g.playerLook.Width, Height: g.playerLook.Height}),
		engine.With(component.CollisionDamage{Amount: g.Config.CollisionDamage}),
		engine.With(component.Health{Value: g.Config.StartingHealth}),
		engine.With(component.DeathDespawn),
		engine.Tagged(component.TagLoseHealthOnCollide),
	)
}

func (g *Game) publishMetrics(w *engine.World) {
	stats := g.Stats()
	m := g.Metrics
	m.Counter("tick").Store(int64(stats.Ticks) + 1)
	m.Counter("entities").Store(int64(stats.Entities))
	m.Counter("waves").Store(int64(stats.Waves))
	m.Counter("killed").Store(int64(stats.Killed))
	m.Counter("hits").Store(int64(stats.Hits))
	if tr, ok := engine.GetResource[*engine.TimeResource](w.Resources); ok {
		m.Gauge("elapsed").Set(tr.Elapsed)
		m.Gauge("delta").Set(tr.Delta)
	}
}

// Tick advances the game by dt seconds
func (g *Game) Tick(dt float64) {
	g.Scheduler.Tick(dt)
}

// Clock wraps the scheduler in a wall-clock driver at the configured tick rate
func (g *Game) Clock(clock engine.TimeProvider) *engine.ClockScheduler {
	cs := engine.NewClockScheduler(g.Scheduler, clock, g.Config.TickInterval())
	cs.SetMaxDelta(parameter.MaxTickDelta)
	return cs
}

// Player returns the player ship, or NilEntity once it has been destroyed
func (g *Game) Player() core.Entity {
	for e := range engine.Query1[component.Player](g.World) {
		return e
	}
	return core.NilEntity
}

// Checksum hashes the world state
func (g *Game) Checksum() uint64 {
	return g.World.Checksum()
}

// Stats returns session counters
func (g *Game) Stats() Stats {
	spawned, despawned := g.World.Commands().Totals()
	hits, _ := g.damage.Stats()
	return Stats{
		Ticks:      g.Scheduler.TickCount(),
		Entities:   g.World.EntityCount(),
		Waves:      g.spawn.Waves(),
		Killed:     g.death.Killed(),
		OutOfRange: g.bounds.Removed(),
		Hits:       hits,
		Spawned:    spawned,
		Despawned:  despawned,
	}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("ticks", s.Ticks).
		Int("entities", s.Entities).
		Int("waves", s.Waves).
		Int("killed", s.Killed).
		Int("out_of_range", s.OutOfRange).
		Int("hits", s.Hits).
		Int("spawned", s.Spawned).
		Int("despawned", s.Despawned)
}
