// Package shoe builds the procedural sneaker models shown on the stage:
// geometry assembly per silhouette and detail tier, material presets and
// custom shader selection, and the distance-switched detail controller
// with its silhouette transition fade.
package shoe

import (
	"go.uber.org/zap"

	"github.com/maisonverte/vitrine/internal/logger"
)

// Silhouette is the structural style of a shoe, independent of material
// and color.
type Silhouette string

const (
	HighTop Silhouette = "high-top"
	LowTop  Silhouette = "low-top"
	Running Silhouette = "running"
)

// Tier is a discrete detail level swapped by viewing distance.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// MaterialLabel names one of the catalog finishes.
type MaterialLabel string

const (
	Leather MaterialLabel = "leather"
	Nubuck  MaterialLabel = "nubuck"
	Glint   MaterialLabel = "glint"
	Knit    MaterialLabel = "knit"
)

// ParseSilhouette maps a string to a Silhouette. Unknown values fall
// back to low-top rather than erroring, so a stale config file or a bad
// flag value still produces a shoe.
func ParseSilhouette(s string) Silhouette {
	switch Silhouette(s) {
	case HighTop, LowTop, Running:
		return Silhouette(s)
	}
	logger.Debug("unknown silhouette, using low-top", zap.String("value", s))
	return LowTop
}

// ParseTier maps a string to a Tier, defaulting to high.
func ParseTier(s string) Tier {
	switch Tier(s) {
	case TierHigh, TierMedium, TierLow:
		return Tier(s)
	}
	logger.Debug("unknown detail tier, using high", zap.String("value", s))
	return TierHigh
}

// ParseMaterialLabel maps a string to a MaterialLabel. Unknown values
// fall back to leather; the material factory additionally falls back to
// the standard shading path for labels outside the catalog.
func ParseMaterialLabel(s string) MaterialLabel {
	switch MaterialLabel(s) {
	case Leather, Nubuck, Glint, Knit:
		return MaterialLabel(s)
	}
	logger.Debug("unknown material label, using leather", zap.String("value", s))
	return Leather
}

// Silhouettes lists every silhouette in display order.
func Silhouettes() []Silhouette {
	return []Silhouette{HighTop, LowTop, Running}
}

// Tiers lists every detail tier from most to least detailed.
func Tiers() []Tier {
	return []Tier{TierHigh, TierMedium, TierLow}
}

// MaterialLabels lists the catalog finishes in display order.
func MaterialLabels() []MaterialLabel {
	return []MaterialLabel{Leather, Nubuck, Glint, Knit}
}
