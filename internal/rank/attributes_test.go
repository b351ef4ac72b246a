package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAttribute(t *testing.T) {
	id, ok := ResolveAttribute("暴率")
	assert.True(t, ok)
	assert.Equal(t, "critical_chance", id)

	_, ok = ResolveAttribute("不存在的词条")
	assert.False(t, ok)
}

func TestResolveAttributesPartial(t *testing.T) {
	ids, unresolved := ResolveAttributes([]string{"暴伤", "瞎写的", "多重"})
	assert.Equal(t, []string{"critical_damage", "multishot"}, ids)
	assert.Equal(t, []string{"瞎写的"}, unresolved)
}

func TestResolveAttributesAllKnown(t *testing.T) {
	ids, unresolved := ResolveAttributes([]string{"冰", "电", "火", "毒"})
	assert.Equal(t, []string{"cold_damage", "electric_damage", "heat_damage", "toxin_damage"}, ids)
	assert.Empty(t, unresolved)
}

func TestAttributeDisplayRoundTrip(t *testing.T) {
	assert.Equal(t, "暴率", AttributeDisplay("critical_chance"))
	assert.Equal(t, "滑行暴率", AttributeDisplay("critical_chance_on_slide_attack"))
}

func TestAttributeDisplaySharedIDFirstEntryWins(t *testing.T) {
	// 攻速 and 射速 share one canonical id; the reverse map keeps the first.
	assert.Equal(t, "攻速", AttributeDisplay("fire_rate_/_attack_speed"))
}

func TestAttributeDisplayFallsBackToID(t *testing.T) {
	assert.Equal(t, "some_new_stat", AttributeDisplay("some_new_stat"))
}
