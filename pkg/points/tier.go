package points

import "math"

// Tier is a named fixed-score level that replaces the base points formula.
type Tier int

const (
	TierNone Tier = iota
	TierMangan
	TierHaneman
	TierBaiman
	TierSanbaiman
	TierKazoeYakuman
)

// ManganThreshold is the lowest formula result that is promoted to mangan.
const ManganThreshold = 7900 / 4

type tierInfo struct {
	name       string
	basePoints int32
}

var tierInfos = map[Tier]tierInfo{
	TierNone:         {name: "none"},
	TierMangan:       {name: "mangan", basePoints: 2000},
	TierHaneman:      {name: "haneman", basePoints: 3000},
	TierBaiman:       {name: "baiman", basePoints: 4000},
	TierSanbaiman:    {name: "sanbaiman", basePoints: 6000},
	TierKazoeYakuman: {name: "kazoe yakuman", basePoints: 8000},
}

func (t Tier) String() string {
	if info, ok := tierInfos[t]; ok {
		return info.name
	}
	return "unknown"
}

// BasePoints returns the fixed base points of the tier, 0 for TierNone.
func (t Tier) BasePoints() int32 {
	return tierInfos[t].basePoints
}

// HanRange is an inclusive han range.
type HanRange struct {
	Min Han
	Max Han
}

func (r HanRange) Contains(han Han) bool {
	return han >= r.Min && han <= r.Max
}

type tierRange struct {
	han  HanRange
	tier Tier
}

// The ranges are disjoint, so the order only matters for lookup speed.
var tierRanges = [...]tierRange{
	{han: HanRange{Min: 5, Max: 5}, tier: TierMangan},
	{han: HanRange{Min: 6, Max: 7}, tier: TierHaneman},
	{han: HanRange{Min: 8, Max: 10}, tier: TierBaiman},
	{han: HanRange{Min: 11, Max: 12}, tier: TierSanbaiman},
	{han: HanRange{Min: 13, Max: math.MaxInt32}, tier: TierKazoeYakuman},
}

// TierOf returns the tier a han count belongs to regardless of fu.
func TierOf(han Han) (Tier, bool) {
	for _, r := range tierRanges {
		if r.han.Contains(han) {
			return r.tier, true
		}
	}
	return TierNone, false
}
