package market

import "github.com/cephalon/ordis/internal/domain"

// The marketplace wraps every response in a "payload" envelope.

type itemsEnvelope struct {
	Payload struct {
		Items []apiItem `json:"items"`
	} `json:"payload"`
}

type apiItem struct {
	URLName  string `json:"url_name"`
	ItemName string `json:"item_name"`
}

type ordersEnvelope struct {
	Payload struct {
		Orders []apiOrder `json:"orders"`
	} `json:"payload"`
}

type apiUser struct {
	IngameName string `json:"ingame_name"`
	Status     string `json:"status"`
	Reputation int    `json:"reputation"`
}

func (u apiUser) toDomain() domain.User {
	return domain.User{
		IngameName: u.IngameName,
		Status:     domain.UserStatus(u.Status),
		Reputation: u.Reputation,
	}
}

type apiOrder struct {
	Platinum  int     `json:"platinum"`
	Quantity  int     `json:"quantity"`
	OrderType string  `json:"order_type"`
	Region    string  `json:"region"`
	Visible   bool    `json:"visible"`
	User      apiUser `json:"user"`
	ModRank   *int    `json:"mod_rank"`
}

func (o apiOrder) toDomain() domain.Order {
	return domain.Order{
		Platinum: o.Platinum,
		Quantity: o.Quantity,
		Type:     domain.OrderType(o.OrderType),
		Region:   o.Region,
		Visible:  o.Visible,
		User:     o.User.toDomain(),
		ModRank:  o.ModRank,
	}
}

type auctionsEnvelope struct {
	Payload struct {
		Auctions []apiAuction `json:"auctions"`
	} `json:"payload"`
}

type apiAuction struct {
	BuyoutPrice   *int           `json:"buyout_price"`
	StartingPrice int            `json:"starting_price"`
	Private       bool           `json:"private"`
	Visible       bool           `json:"visible"`
	Closed        bool           `json:"closed"`
	IsDirectSell  bool           `json:"is_direct_sell"`
	Item          apiAuctionItem `json:"item"`
	Owner         apiUser        `json:"owner"`
}

type apiAuctionItem struct {
	Name         string         `json:"name"`
	MasteryLevel int            `json:"mastery_level"`
	ModRank      int            `json:"mod_rank"`
	ReRolls      int            `json:"re_rolls"`
	Polarity     string         `json:"polarity"`
	Attributes   []apiAttribute `json:"attributes"`
}

type apiAttribute struct {
	Positive bool    `json:"positive"`
	Value    float64 `json:"value"`
	URLName  string  `json:"url_name"`
}

func (a apiAuction) toDomain() domain.Auction {
	attrs := make([]domain.RivenAttribute, 0, len(a.Item.Attributes))
	for _, attr := range a.Item.Attributes {
		attrs = append(attrs, domain.RivenAttribute{
			Positive: attr.Positive,
			Value:    attr.Value,
			URLName:  attr.URLName,
		})
	}
	return domain.Auction{
		BuyoutPrice:   a.BuyoutPrice,
		StartingPrice: a.StartingPrice,
		Private:       a.Private,
		Visible:       a.Visible,
		Closed:        a.Closed,
		IsDirectSell:  a.IsDirectSell,
		Item: domain.RivenItem{
			Name:         a.Item.Name,
			MasteryLevel: a.Item.MasteryLevel,
			ModRank:      a.Item.ModRank,
			ReRolls:      a.Item.ReRolls,
			Polarity:     domain.Polarity(a.Item.Polarity),
			Attributes:   attrs,
		},
		Owner: a.Owner.toDomain(),
	}
}
