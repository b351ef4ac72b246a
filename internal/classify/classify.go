// Package classify scores arbitration rotations by how worth running they are.
// The verdict is a static function of node, mission type, and faction; it is
// recomputed from the live rotation every time and never stored.
package classify

import (
	"strings"

	"github.com/cephalon/ordis/internal/domain"
)

// Tier is the desirability verdict for an arbitration rotation.
type Tier int

const (
	// TierUnranked covers every node/type combination the table does not
	// mention. Nothing to see here.
	TierUnranked Tier = iota
	// TierMarginal rotations are runnable but not worth a ping.
	TierMarginal
	// TierTop rotations trigger the proactive alert.
	TierTop
)

// Nickname returns the chat verdict for the tier.
func (t Tier) Nickname() string {
	switch t {
	case TierTop:
		return "打它丫的"
	case TierMarginal:
		return "可以打但没必要"
	default:
		return "垃圾图/未定级"
	}
}

// rule is one row of the decision table. Node names are matched by substring
// because the upstream prefixes localized planet names onto the node, and the
// traditional and simplified spellings of some planets differ. A zero enemy
// matches any faction.
type rule struct {
	node  string
	typ   string
	enemy domain.Enemy
	tier  Tier
}

// rules is evaluated top to bottom, first match wins. Row order encodes
// priority: the Pluto rows must keep the Corpus row ahead of the catch-all so
// Corpus defense lands on Marginal while every other faction lands on Top.
var rules = []rule{
	{node: "穀神星", typ: "Defense", tier: TierTop},
	{node: "穀神星", typ: "Interception", tier: TierTop},
	{node: "賽德娜", typ: "Defense", tier: TierTop},
	{node: "水星", typ: "Interception", tier: TierTop},
	{node: "水星", typ: "Defense", tier: TierMarginal},
	{node: "冥王星", typ: "Defense", enemy: domain.EnemyCorpus, tier: TierMarginal},
	{node: "冥王星", typ: "Defense", tier: TierTop},
	{node: "冥王星", typ: "Dark Sector Defense", tier: TierTop},
	{node: "地球", typ: "Defense", tier: TierMarginal},
	{node: "地球", typ: "Interception", tier: TierMarginal},
	{node: "海王星", typ: "Defense", tier: TierMarginal},
	{node: "海王星", typ: "Interception", tier: TierMarginal},
	{node: "土星", typ: "Defense", tier: TierTop},
	{node: "土星", typ: "Interception", tier: TierMarginal},
	{node: "金星", typ: "Defense", tier: TierMarginal},
	{node: "虛空", typ: "Interception", tier: TierMarginal},
	{node: "虚空", typ: "Interception", tier: TierMarginal},
}

// Classify maps a rotation to its tier. Total and deterministic: exactly one
// tier comes back for any input, and timestamps play no part.
func Classify(a domain.Arbitration) Tier {
	for _, r := range rules {
		if !strings.Contains(a.Node, r.node) {
			continue
		}
		if a.TypeKey != r.typ {
			continue
		}
		if r.enemy != "" && a.Enemy != r.enemy {
			continue
		}
		return r.tier
	}
	return TierUnranked
}
