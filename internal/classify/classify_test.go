package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cephalon/ordis/internal/domain"
)

func arb(node, typeKey string, enemy domain.Enemy) domain.Arbitration {
	return domain.Arbitration{
		ID:      "rot-1",
		Node:    node,
		TypeKey: typeKey,
		Enemy:   enemy,
	}
}

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		name    string
		node    string
		typeKey string
		enemy   domain.Enemy
		want    Tier
	}{
		{"ceres defense", "基西 (穀神星)", "Defense", domain.EnemyGrineer, TierTop},
		{"ceres interception", "德拉科 (穀神星)", "Interception", domain.EnemyGrineer, TierTop},
		{"ceres survival unranked", "基西 (穀神星)", "Survival", domain.EnemyGrineer, TierUnranked},
		{"sedna defense", "海德隆 (賽德娜)", "Defense", domain.EnemyGrineer, TierTop},
		{"sedna interception unranked", "海德隆 (賽德娜)", "Interception", domain.EnemyGrineer, TierUnranked},
		{"mercury interception", "奥丁 (水星)", "Interception", domain.EnemyGrineer, TierTop},
		{"mercury defense", "兰克斯 (水星)", "Defense", domain.EnemyGrineer, TierMarginal},
		{"pluto defense corpus", "外域 (冥王星)", "Defense", domain.EnemyCorpus, TierMarginal},
		{"pluto defense grineer", "外域 (冥王星)", "Defense", domain.EnemyGrineer, TierTop},
		{"pluto defense infested", "外域 (冥王星)", "Defense", domain.EnemyInfested, TierTop},
		{"pluto dark sector defense corpus", "塞克斯图斯 (冥王星)", "Dark Sector Defense", domain.EnemyCorpus, TierTop},
		{"earth defense", "灵薄狱 (地球)", "Defense", domain.EnemyGrineer, TierMarginal},
		{"earth interception", "西塔尼 (地球)", "Interception", domain.EnemyGrineer, TierMarginal},
		{"neptune defense", "海卫一 (海王星)", "Defense", domain.EnemyCorpus, TierMarginal},
		{"neptune interception", "拉瑞萨 (海王星)", "Interception", domain.EnemyCorpus, TierMarginal},
		{"saturn defense", "赫利妮 (土星)", "Defense", domain.EnemyGrineer, TierTop},
		{"saturn interception", "卡西尼 (土星)", "Interception", domain.EnemyGrineer, TierMarginal},
		{"venus defense", "缇丝芙涅 (金星)", "Defense", domain.EnemyCorpus, TierMarginal},
		{"venus interception unranked", "缇丝芙涅 (金星)", "Interception", domain.EnemyCorpus, TierUnranked},
		{"void interception traditional", "莫特 (虛空)", "Interception", domain.EnemyCorrupted, TierMarginal},
		{"void interception simplified", "莫特 (虚空)", "Interception", domain.EnemyCorrupted, TierMarginal},
		{"void defense unranked", "贝里 (虛空)", "Defense", domain.EnemyCorrupted, TierUnranked},
		{"unknown node", "阿波罗 (火星)", "Defense", domain.EnemyGrineer, TierUnranked},
		{"empty", "", "", "", TierUnranked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(arb(tt.node, tt.typeKey, tt.enemy))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyIgnoresTimestamps(t *testing.T) {
	a := arb("德拉科 (穀神星)", "Interception", domain.EnemyGrineer)
	b := a
	b.Activation = time.Now().Add(-2 * time.Hour)
	b.Expiry = time.Now().Add(-time.Hour)
	b.ID = "rot-2"

	assert.Equal(t, Classify(a), Classify(b))
}

func TestClassifyDeterministic(t *testing.T) {
	a := arb("外域 (冥王星)", "Defense", domain.EnemyCorpus)
	first := Classify(a)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(a))
	}
}

func TestTierNickname(t *testing.T) {
	assert.Equal(t, "打它丫的", TierTop.Nickname())
	assert.Equal(t, "可以打但没必要", TierMarginal.Nickname())
	assert.Equal(t, "垃圾图/未定级", TierUnranked.Nickname())
}
