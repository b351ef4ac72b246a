package domain

// OrderType is the direction of a marketplace order.
type OrderType string

const (
	OrderSell OrderType = "sell"
	OrderBuy  OrderType = "buy"
)

// UserStatus is the marketplace presence of the order's owner.
type UserStatus string

const (
	StatusInGame  UserStatus = "ingame"
	StatusOnline  UserStatus = "online"
	StatusOffline UserStatus = "offline"
)

// User is the owner of an order or auction.
type User struct {
	IngameName string
	Status     UserStatus
	Reputation int
}

// Order is a sell/buy listing for a catalog item. Orders are fetched fresh per
// query and never cached.
type Order struct {
	Platinum int
	Quantity int
	Type     OrderType
	Region   string
	Visible  bool
	User     User
	ModRank  *int // only set for ranked mods
}
