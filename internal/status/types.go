package status

// MaxComponents caps how many feed components a Snapshot carries.
// Feed order is preserved; anything past the cap is dropped.
const MaxComponents = 10

// MaxNameLen is the byte cap applied to component names.
const MaxNameLen = 47

// ComponentState is the health state a feed reports for one component.
type ComponentState int

const (
	StateOperational ComponentState = iota
	StateDegraded
	StatePartialOutage
	StateMajorOutage
	StateUnknown
)

// ParseComponentState maps a feed status string to a ComponentState.
// Unrecognized values map to StateUnknown rather than failing the cycle.
func ParseComponentState(s string) ComponentState {
	switch s {
	case "operational":
		return StateOperational
	case "degraded_performance":
		return StateDegraded
	case "partial_outage":
		return StatePartialOutage
	case "major_outage":
		return StateMajorOutage
	default:
		return StateUnknown
	}
}

// String returns a human-readable label for the state.
func (s ComponentState) String() string {
	switch s {
	case StateOperational:
		return "operational"
	case StateDegraded:
		return "degraded"
	case StatePartialOutage:
		return "partial outage"
	case StateMajorOutage:
		return "major outage"
	default:
		return "unknown"
	}
}

// Severity is the overall health level derived from component states and
// incident presence. Ordering matters: higher is worse.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityCritical
)

// String returns a human-readable label for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "ok"
	}
}

// severity returns a single component state's contribution to overall severity.
func (s ComponentState) severity() Severity {
	switch s {
	case StateMajorOutage:
		return SeverityCritical
	case StateDegraded, StatePartialOutage:
		return SeverityWarning
	default:
		return SeverityNone
	}
}

// ComponentStatus is one component's name and state for a single poll cycle.
type ComponentStatus struct {
	Name  string
	State ComponentState
}

// Snapshot is one poll cycle's complete, immutable status result.
//
// When Valid is false the fetch or decode failed: Components is empty,
// StatusLine carries the failure reason, Err carries the underlying
// error, and the severity fields must not be treated as a health update.
type Snapshot struct {
	Valid                  bool
	Components             []ComponentStatus
	AllOperational         bool
	WorstSeverity          Severity
	HasUnresolvedIncidents bool
	ChangedFromPrevious    bool
	StatusLine             string

	// Err is the fetch or decode error behind an invalid snapshot, nil
	// otherwise. One-shot consumers use it to report the precise cause.
	Err error
}

// Clone returns a deep copy. Snapshots are always copied, never shared,
// when they cross the poller/renderer boundary.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Components != nil {
		out.Components = make([]ComponentStatus, len(s.Components))
		copy(out.Components, s.Components)
	}
	return out
}

// Classify computes the overall severity for a component list plus the
// incidents flag. Unresolved incidents alone raise severity to at least
// Warning. AllOperational is defined as WorstSeverity == SeverityNone.
func Classify(components []ComponentStatus, hasIncidents bool) (worst Severity, allOperational bool) {
	for _, c := range components {
		if s := c.State.severity(); s > worst {
			worst = s
		}
	}
	if hasIncidents && worst < SeverityWarning {
		worst = SeverityWarning
	}
	return worst, worst == SeverityNone
}
