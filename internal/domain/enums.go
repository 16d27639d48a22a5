package domain

type Phase string

const (
	PhasePre    Phase = "pre"
	PhaseDuring Phase = "during"
	PhasePost   Phase = "post"
)

// ValidPhases is the canonical set of accepted phase strings.
var ValidPhases = map[string]bool{
	"pre": true, "during": true, "post": true,
}

type Origin string

const (
	OriginSeed   Origin = "seed"
	OriginCustom Origin = "custom"
)

// SessionState tracks where a session is in its lifecycle: no signed-in
// user, a load in flight, or data available for rendering.
type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateLoading         SessionState = "loading"
	StateReady           SessionState = "ready"
)

// CanTransition reports whether moving from s to next is a defined
// transition. Ready may return to loading (reload) or unauthenticated
// (sign-out); loading resolves to ready regardless of load outcome.
func (s SessionState) CanTransition(next SessionState) bool {
	switch s {
	case StateUnauthenticated:
		return next == StateLoading
	case StateLoading:
		return next == StateReady || next == StateUnauthenticated
	case StateReady:
		return next == StateLoading || next == StateUnauthenticated
	}
	return false
}
