package domain

// Polarity is the mod slot polarity of a riven.
type Polarity string

const (
	PolarityNaramon Polarity = "naramon"
	PolarityMadurai Polarity = "madurai"
	PolarityVazarin Polarity = "vazarin"
)

// Nickname returns the shorthand players use for the polarity symbol.
func (p Polarity) Nickname() string {
	switch p {
	case PolarityNaramon:
		return "-"
	case PolarityMadurai:
		return "r"
	case PolarityVazarin:
		return "盾"
	default:
		return string(p)
	}
}

// RivenAttribute is one rolled stat line on a riven.
type RivenAttribute struct {
	Positive bool
	Value    float64
	URLName  string // canonical marketplace attribute id
}

// RivenItem describes the uniquely rolled mod inside an auction.
type RivenItem struct {
	Name         string
	MasteryLevel int
	ModRank      int
	ReRolls      int
	Polarity     Polarity
	Attributes   []RivenAttribute
}

// Auction is a riven sell listing. Ephemeral, same lifecycle as Order.
type Auction struct {
	BuyoutPrice   *int
	StartingPrice int
	Private       bool
	Visible       bool
	Closed        bool
	IsDirectSell  bool
	Item          RivenItem
	Owner         User
}

// EffectivePrice is the price used for ranking: the buyout price when the
// seller set one, otherwise the starting price.
func (a Auction) EffectivePrice() int {
	if a.BuyoutPrice != nil {
		return *a.BuyoutPrice
	}
	return a.StartingPrice
}
