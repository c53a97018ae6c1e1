// Package leveling implements the Mee6-compatible XP curve. The formula must
// match the reference implementation exactly, since every existing user's
// displayed level is derived from already-stored XP.
package leveling

// XPForLevel returns the cumulative XP needed to reach the given level.
// The curve is 5/6 * L * (2L^2 + 27L + 91), which is the closed form of
// sum(5*l^2 + 50*l + 100) for l in [0, L).
func XPForLevel(level int64) int64 {
	if level <= 0 {
		return 0
	}
	return 5 * level * (2*level*level + 27*level + 91) / 6
}

// LevelInfo describes where a given XP total falls on the curve.
type LevelInfo struct {
	xp         int64
	level      int64
	percentage float64
}

// MaxLevel is where the level scan stops climbing. XPForLevel overflows
// int64 not far past this point, and no stored total reaches it anyway.
const MaxLevel = 900_000

// NewLevelInfo computes the level and progress fraction for an XP total.
// Negative XP is clamped to zero; totals past the top of the curve report
// MaxLevel with zero progress.
func NewLevelInfo(xp int64) LevelInfo {
	if xp < 0 {
		xp = 0
	}
	var level int64
	for level < MaxLevel && xp >= XPForLevel(level+1) {
		level++
	}
	floor := XPForLevel(level)
	ceil := XPForLevel(level + 1)
	info := LevelInfo{xp: xp, level: level}
	if xp < ceil {
		info.percentage = float64(xp-floor) / float64(ceil-floor)
	}
	return info
}

// XP returns the XP total this info was computed from.
func (l LevelInfo) XP() int64 { return l.xp }

// Level returns the whole level reached.
func (l LevelInfo) Level() int64 { return l.level }

// Percentage returns the fraction of progress toward the next level, in [0, 1).
func (l LevelInfo) Percentage() float64 { return l.percentage }
