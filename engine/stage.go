package engine

// Stage is a named phase of per-tick execution
// Stages run in declaration order; StageStartup runs once before the first tick
type Stage uint8

const (
	StageStartup Stage = iota
	StageUpdate
	StagePostUpdate
	StageDetection
	StageHandleEvents
	StageCleanup

	stageCount
)

// TickStages is the fixed per-tick sequence
var TickStages = [...]Stage{
	StageUpdate,
	StagePostUpdate,
	StageDetection,
	StageHandleEvents,
	StageCleanup,
}

func (s Stage) String() string {
	switch s {
	case StageStartup:
		return "startup"
	case StageUpdate:
		return "update"
	case StagePostUpdate:
		return "post_update"
	case StageDetection:
		return "detection"
	case StageHandleEvents:
		return "handle_events"
	case StageCleanup:
		return "cleanup"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a declared stage
func (s Stage) Valid() bool {
	return s < stageCount
}
