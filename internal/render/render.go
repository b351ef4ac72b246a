// Package render turns domain records into the chat text the bot sends.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cephalon/ordis/internal/classify"
	"github.com/cephalon/ordis/internal/domain"
	"github.com/cephalon/ordis/internal/rank"
)

// Arbitration renders the live arbitration summary with the classifier's
// verdict. Remaining time is whole minutes and goes negative on stale data.
func Arbitration(a domain.Arbitration, now time.Time) string {
	return fmt.Sprintf(
		"节点: %s \n剩余时间(约): %d 分钟 \n类型: %s \n敌人: %s \n个人评价: %s",
		a.Node,
		int(a.Remaining(now).Minutes()),
		a.Type,
		a.Enemy.Nickname(),
		classify.Classify(a).Nickname(),
	)
}

// MissionAlert renders the proactive alert for a top-tier rotation.
func MissionAlert(a domain.Arbitration, now time.Time) string {
	return "好图!\n" + Arbitration(a, now)
}

// Cycle renders the day/night summary.
func Cycle(c domain.CetusCycle, now time.Time) string {
	return fmt.Sprintf(
		"目前状态: %s \n剩余时间(约): %d 分钟",
		c.State.Label(),
		int(c.Remaining(now).Minutes()),
	)
}

// CycleAlert is the fixed message sent when daytime is about to end.
func CycleAlert() string {
	return "3傻还有10分钟. 有人带我吗, 我打碎片位插碎片贼快"
}

// Orders renders ranked sell listings, one line per listing.
func Orders(orders []domain.Order) string {
	var b strings.Builder
	for _, o := range orders {
		fmt.Fprintf(&b, "%s 卖 $%d, 库存 %d 个", o.User.IngameName, o.Platinum, o.Quantity)
		if o.ModRank != nil {
			fmt.Fprintf(&b, " (%d 级)", *o.ModRank)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "~ 截至游戏中卖家价格最低前%d条", rank.TopOrders)
	return b.String()
}

// Auctions renders ranked riven auctions. Each auction gets a header line and
// one signed line per rolled attribute, with canonical attribute ids resolved
// back to display names.
func Auctions(queryName string, auctions []domain.Auction) string {
	var b strings.Builder
	for _, a := range auctions {
		fmt.Fprintf(&b, "%s %s %d段 %d洗 %d级 %s槽 $%d",
			queryName,
			a.Item.Name,
			a.Item.MasteryLevel,
			a.Item.ReRolls,
			a.Item.ModRank,
			a.Item.Polarity.Nickname(),
			a.EffectivePrice(),
		)
		for _, attr := range a.Item.Attributes {
			sign := ""
			if attr.Value >= 0 {
				sign = "+"
			}
			fmt.Fprintf(&b, "\n  %s%s %s",
				sign,
				strconv.FormatFloat(attr.Value, 'f', -1, 64),
				rank.AttributeDisplay(attr.URLName),
			)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "~ 截至游戏中卖家价格最低前%d条", rank.TopAuctions)
	return b.String()
}

// ItemNotFound renders the lookup-miss reply for catalog items.
func ItemNotFound(name string) string {
	return fmt.Sprintf("找不到在售物品 %s", name)
}

// RivenNotFound renders the lookup-miss reply for riven weapons.
func RivenNotFound(name string) string {
	return fmt.Sprintf("找不到在售的 %s 紫卡", name)
}

// AttributeNotFound renders the unresolved-attribute notice.
func AttributeNotFound(name string) string {
	return fmt.Sprintf("找不到词条: %s", name)
}

// SyncResult renders the outcome of a catalog sync.
func SyncResult(written int, total int64) string {
	return fmt.Sprintf("成功储存 %d 条数据, 数据库中共有 %d 条数据", written, total)
}
