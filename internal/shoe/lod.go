package shoe

import (
	"go.uber.org/zap"

	"github.com/maisonverte/vitrine/internal/logger"
	"github.com/maisonverte/vitrine/pkg/math"
)

// Distance thresholds for tier switching, in scene units from the
// camera to the shoe. Fixed constants, not adaptive to viewport.
const (
	mediumDistance = 5.0
	lowDistance    = 10.0
)

// TransitionRate is how fast the silhouette fade advances, in progress
// units per second. 2.0 means a full transition takes half a second.
const TransitionRate float32 = 2.0

// TierForDistance maps a camera distance to the detail tier rendered at
// that distance.
func TierForDistance(d float32) Tier {
	switch {
	case d < mediumDistance:
		return TierHigh
	case d < lowDistance:
		return TierMedium
	default:
		return TierLow
	}
}

// Transition tracks an in-flight silhouette change. Progress advances
// monotonically from 0 to 1; the mounted geometry swaps from From to To
// when progress crosses the midpoint.
type Transition struct {
	From     Silhouette
	To       Silhouette
	Progress float32
}

// TransitionOpacity computes the fade applied while a transition plays:
// a triangular ramp that is fully transparent at both endpoints and
// fully opaque at the midpoint. Visually this is a dip to transparent
// and back, since only one geometry set is mounted at a time.
func TransitionOpacity(progress float32) float32 {
	return 1 - math.Abs(progress-0.5)*2
}

// Group holds one geometry set per detail tier for the mounted
// silhouette, switched by camera distance, and plays the silhouette
// fade when the requested silhouette changes underneath it.
type Group struct {
	Base   *Material
	Accent *Material

	mounted    Silhouette
	sets       map[Tier]*GeometrySet
	transition *Transition
}

// NewGroup builds all three tiers for the starting silhouette.
func NewGroup(s Silhouette, base, accent *Material) *Group {
	g := &Group{
		Base:    base,
		Accent:  accent,
		mounted: s,
	}
	g.rebuild()
	return g
}

func (g *Group) rebuild() {
	g.sets = make(map[Tier]*GeometrySet, 3)
	for _, t := range Tiers() {
		g.sets[t] = Build(g.mounted, t)
	}
}

// Mounted returns the silhouette whose geometry is currently mounted.
// During a transition this stays the old silhouette until the midpoint.
func (g *Group) Mounted() Silhouette {
	return g.mounted
}

// Set returns the geometry set for a tier.
func (g *Group) Set(t Tier) *GeometrySet {
	return g.sets[t]
}

// ActiveSet returns the geometry set rendered at the given camera
// distance.
func (g *Group) ActiveSet(distance float32) *GeometrySet {
	return g.sets[TierForDistance(distance)]
}

// Transitioning reports whether a silhouette fade is in flight.
func (g *Group) Transitioning() bool {
	return g.transition != nil
}

// Transition returns the in-flight transition, or nil when stable.
func (g *Group) Transition() *Transition {
	return g.transition
}

// SetSilhouette requests a new silhouette. A change starts a fresh
// transition from whatever is mounted right now, even mid-flight, so an
// interrupted fade restarts at progress 0 with the current geometry as
// its starting point.
func (g *Group) SetSilhouette(s Silhouette) {
	target := g.mounted
	if g.transition != nil {
		target = g.transition.To
	}
	if s == target {
		return
	}
	g.transition = &Transition{From: g.mounted, To: s}
	logger.Debug("silhouette transition started",
		zap.String("from", string(g.mounted)),
		zap.String("to", string(s)))
}

// Update advances the transition by the elapsed frame time and writes
// the resulting opacity into both shared materials. At the fade
// midpoint the mounted geometry swaps to the target silhouette; at the
// end the group returns to the stable state at full opacity.
func (g *Group) Update(dt float32) {
	if g.transition == nil {
		g.Base.SetOpacity(1)
		g.Accent.SetOpacity(1)
		return
	}

	tr := g.transition
	tr.Progress += TransitionRate * dt
	if tr.Progress > 1 {
		tr.Progress = 1
	}

	if tr.Progress >= 0.5 && g.mounted != tr.To {
		g.mounted = tr.To
		g.rebuild()
	}

	opacity := TransitionOpacity(tr.Progress)
	if tr.Progress >= 1 {
		g.transition = nil
		opacity = 1
	}
	g.Base.SetOpacity(opacity)
	g.Accent.SetOpacity(opacity)
}

// MaterialFor returns the shared material a part draws with.
func (g *Group) MaterialFor(p *Part) *Material {
	if p.Accent {
		return g.Accent
	}
	return g.Base
}
