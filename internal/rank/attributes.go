package rank

// The attribute dictionary maps the Chinese shorthand players type to the
// marketplace's canonical attribute ids, and back again for rendering. Both
// maps are built once from the same ordered table; where two shorthands share
// an id (攻速/射速), the first entry wins the reverse mapping.

type attrEntry struct {
	display string
	id      string
}

var attrTable = []attrEntry{
	{"弹药上限", "ammo_maximum"},
	{"c伤", "damage_vs_corpus"},
	{"g伤", "damage_vs_grineer"},
	{"i伤", "damage_vs_infested"},
	{"冰", "cold_damage"},
	{"初始连击", "channeling_damage"},
	{"重击效率", "channeling_efficiency"},
	{"连击时间", "combo_duration"},
	{"暴率", "critical_chance"},
	{"滑行暴率", "critical_chance_on_slide_attack"},
	{"暴伤", "critical_damage"},
	{"基伤", "base_damage_/_melee_damage"},
	{"电", "electric_damage"},
	{"火", "heat_damage"},
	{"处决", "finisher_damage"},
	{"攻速", "fire_rate_/_attack_speed"},
	{"射速", "fire_rate_/_attack_speed"},
	{"投射物", "projectile_speed"},
	{"冲击", "impact_damage"},
	{"弹匣", "magazine_capacity"},
	{"多重", "multishot"},
	{"毒", "toxin_damage"},
	{"穿透", "punch_through"},
	{"穿刺", "puncture_damage"},
	{"装填", "reload_speed"},
	{"范围", "range"},
	{"切割", "slash_damage"},
	{"触发几率", "status_chance"},
	{"触发时间", "status_duration"},
	{"后坐力", "recoil"},
	{"变焦", "zoom"},
	{"额外连击", "chance_to_gain_extra_combo_count"},
	{"连击几率", "chance_to_gain_combo_count"},
	{"无负", "none"},
	{"负", "has"},
}

var (
	attrByDisplay = make(map[string]string, len(attrTable))
	attrByID      = make(map[string]string, len(attrTable))
)

func init() {
	for _, e := range attrTable {
		attrByDisplay[e.display] = e.id
		if _, ok := attrByID[e.id]; !ok {
			attrByID[e.id] = e.display
		}
	}
}

// ResolveAttribute maps a display name to its canonical id.
func ResolveAttribute(display string) (string, bool) {
	id, ok := attrByDisplay[display]
	return id, ok
}

// ResolveAttributes maps a batch of display names to canonical ids. Names not
// in the dictionary come back in unresolved; the query proceeds with the rest.
func ResolveAttributes(displays []string) (ids, unresolved []string) {
	for _, d := range displays {
		if id, ok := attrByDisplay[d]; ok {
			ids = append(ids, id)
		} else {
			unresolved = append(unresolved, d)
		}
	}
	return ids, unresolved
}

// AttributeDisplay maps a canonical id back to its display name, falling back
// to the id itself when no reverse mapping exists.
func AttributeDisplay(id string) string {
	if d, ok := attrByID[id]; ok {
		return d
	}
	return id
}
