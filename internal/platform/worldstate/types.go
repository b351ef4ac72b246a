package worldstate

import (
	"time"

	"github.com/cephalon/ordis/internal/domain"
)

// apiArbitration is the wire shape of the arbitration endpoint. Timestamps are
// ISO-8601 and parse as RFC 3339 directly.
type apiArbitration struct {
	ID         string    `json:"id"`
	Activation time.Time `json:"activation"`
	Expiry     time.Time `json:"expiry"`
	Node       string    `json:"node"`
	Type       string    `json:"type"`
	TypeKey    string    `json:"typeKey"`
	Enemy      string    `json:"enemy"`
	Archwing   bool      `json:"archwing"`
	Sharkwing  bool      `json:"sharkwing"`
}

func (a apiArbitration) toDomain() domain.Arbitration {
	return domain.Arbitration{
		ID:         a.ID,
		Activation: a.Activation,
		Expiry:     a.Expiry,
		Node:       a.Node,
		Type:       a.Type,
		TypeKey:    a.TypeKey,
		Enemy:      domain.Enemy(a.Enemy),
		Archwing:   a.Archwing,
		Sharkwing:  a.Sharkwing,
	}
}

// apiCetusCycle is the wire shape of the cetusCycle endpoint.
type apiCetusCycle struct {
	ID         string    `json:"id"`
	Activation time.Time `json:"activation"`
	Expiry     time.Time `json:"expiry"`
	IsDay      bool      `json:"isDay"`
	State      string    `json:"state"`
}

func (c apiCetusCycle) toDomain() domain.CetusCycle {
	return domain.CetusCycle{
		ID:         c.ID,
		Activation: c.Activation,
		Expiry:     c.Expiry,
		IsDay:      c.IsDay,
		State:      domain.CycleState(c.State),
	}
}
