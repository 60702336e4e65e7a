package shoe

import "testing"

func newTestGroup(s Silhouette) *Group {
	base := NewMaterial(Leather, "#1A3C34", true)
	accent := NewMaterial(Glint, "#E1B75A", true)
	return NewGroup(s, base, accent)
}

func TestTierForDistance(t *testing.T) {
	tests := []struct {
		distance float32
		want     Tier
	}{
		{0, TierHigh},
		{4.9, TierHigh},
		{5, TierMedium},
		{9.9, TierMedium},
		{10, TierLow},
		{100, TierLow},
	}
	for _, tt := range tests {
		if got := TierForDistance(tt.distance); got != tt.want {
			t.Errorf("TierForDistance(%v) = %v, want %v", tt.distance, got, tt.want)
		}
	}
}

func TestTransitionOpacityTriangle(t *testing.T) {
	tests := []struct {
		progress float32
		want     float32
	}{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
		{1, 0},
	}
	for _, tt := range tests {
		got := TransitionOpacity(tt.progress)
		if got < tt.want-0.001 || got > tt.want+0.001 {
			t.Errorf("TransitionOpacity(%v) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestGroupBuildsAllTiers(t *testing.T) {
	g := newTestGroup(LowTop)
	for _, tier := range Tiers() {
		set := g.Set(tier)
		if set == nil {
			t.Fatalf("missing set for tier %v", tier)
		}
		if set.Silhouette != LowTop || set.Tier != tier {
			t.Errorf("set identity = %v/%v", set.Silhouette, set.Tier)
		}
	}
}

func TestGroupActiveSetByDistance(t *testing.T) {
	g := newTestGroup(LowTop)
	if g.ActiveSet(2).Tier != TierHigh {
		t.Error("near distance should select high tier")
	}
	if g.ActiveSet(7).Tier != TierMedium {
		t.Error("mid distance should select medium tier")
	}
	if g.ActiveSet(20).Tier != TierLow {
		t.Error("far distance should select low tier")
	}
}

func TestTransitionProgressMonotone(t *testing.T) {
	g := newTestGroup(LowTop)
	g.SetSilhouette(HighTop)

	var last float32
	for i := 0; i < 10 && g.Transitioning(); i++ {
		g.Update(0.05)
		tr := g.Transition()
		if tr == nil {
			break
		}
		if tr.Progress < last {
			t.Fatalf("progress went backwards: %v -> %v", last, tr.Progress)
		}
		last = tr.Progress
	}
}

func TestTransitionSwapsAtMidpoint(t *testing.T) {
	g := newTestGroup(LowTop)
	g.SetSilhouette(Running)

	g.Update(0.1) // progress 0.2
	if g.Mounted() != LowTop {
		t.Fatal("geometry swapped before the midpoint")
	}

	g.Update(0.2) // progress 0.6
	if g.Mounted() != Running {
		t.Fatal("geometry not swapped after the midpoint")
	}

	g.Update(0.3) // progress 1.0, settles
	if g.Transitioning() {
		t.Error("transition should be inert after completing")
	}
	if g.Base.Opacity != 1 {
		t.Errorf("stable opacity = %v, want 1", g.Base.Opacity)
	}
}

func TestTransitionOpacityWrites(t *testing.T) {
	g := newTestGroup(LowTop)
	g.SetSilhouette(HighTop)

	g.Update(0.125) // progress 0.25, opacity 0.5
	if g.Base.Opacity < 0.49 || g.Base.Opacity > 0.51 {
		t.Errorf("base opacity = %v, want ~0.5", g.Base.Opacity)
	}
	if g.Accent.Opacity != g.Base.Opacity {
		t.Error("base and accent opacity diverged")
	}
	if !g.Base.Transparent {
		t.Error("mid-fade materials should be flagged transparent")
	}
}

func TestSameSilhouetteIsNoop(t *testing.T) {
	g := newTestGroup(LowTop)
	g.SetSilhouette(LowTop)
	if g.Transitioning() {
		t.Error("requesting the mounted silhouette should not transition")
	}
}

func TestMidFlightChangeRestartsFromMounted(t *testing.T) {
	g := newTestGroup(HighTop)
	g.SetSilhouette(LowTop)
	g.Update(0.15) // progress 0.3, still high-top mounted

	g.SetSilhouette(Running)
	tr := g.Transition()
	if tr == nil {
		t.Fatal("expected a transition")
	}
	if tr.Progress != 0 {
		t.Errorf("interrupted transition progress = %v, want 0", tr.Progress)
	}
	if tr.From != HighTop {
		t.Errorf("interrupted transition from = %v, want the mounted high-top", tr.From)
	}

	// The new cycle's midpoint governs the swap, not the old one.
	g.Update(0.15) // progress 0.3 of the new cycle
	if g.Mounted() != HighTop {
		t.Error("geometry swapped on the old cycle's clock")
	}
	g.Update(0.15) // progress 0.6
	if g.Mounted() != Running {
		t.Error("geometry should swap to the new target at the new midpoint")
	}
}

func TestMaterialFor(t *testing.T) {
	g := newTestGroup(HighTop)
	set := g.ActiveSet(0)

	if g.MaterialFor(set.Part("body")) != g.Base {
		t.Error("body should draw with the base material")
	}
	if g.MaterialFor(set.Part("sole")) != g.Accent {
		t.Error("sole should draw with the accent material")
	}
}
