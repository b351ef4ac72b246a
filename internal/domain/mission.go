package domain

import "time"

// Enemy is the faction controlling an arbitration node.
type Enemy string

const (
	EnemyOrokin    Enemy = "Orokin"
	EnemyCorrupted Enemy = "Corrupted"
	EnemyInfested  Enemy = "Infested"
	EnemyCorpus    Enemy = "Corpus"
	EnemyGrineer   Enemy = "Grineer"
	EnemyTenno     Enemy = "Tenno"
)

// Nickname returns the group-chat slang for the faction.
func (e Enemy) Nickname() string {
	switch e {
	case EnemyOrokin:
		return "o佬"
	case EnemyCorrupted:
		return "堕落者"
	case EnemyInfested:
		return "i佬"
	case EnemyCorpus:
		return "c佬"
	case EnemyGrineer:
		return "g佬"
	case EnemyTenno:
		return "天..天诺?"
	default:
		return string(e)
	}
}

// Arbitration is one rotation of the hourly arbitration mission. The ID is an
// opaque token unique per rotation; a new rotation always carries a new ID.
type Arbitration struct {
	ID         string
	Activation time.Time
	Expiry     time.Time
	Node       string // localized node name, e.g. "卡西尼 (土星)"
	Type       string // localized mission type for display
	TypeKey    string // stable mission type key, e.g. "Defense"
	Enemy      Enemy
	Archwing   bool
	Sharkwing  bool
}

// Remaining returns the time until expiry relative to now. It is negative when
// the upstream serves a stale rotation.
func (a Arbitration) Remaining(now time.Time) time.Duration {
	return a.Expiry.Sub(now)
}
