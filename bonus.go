package gamecat

// Bonus holds the experience requirement and reward for a rank.
type Bonus struct {
	Exp   string `yaml:"exp" json:"exp,omitempty"`
	Bonus string `yaml:"bonus" json:"bonus,omitempty"`
}

// BonusTable maps exact rank names to their bonus data. It fills in fields
// that rank pages omit or state ambiguously.
type BonusTable map[string]Bonus

// Lookup returns the bonus for a rank name. Exact matches are tried first,
// then names with an equal slug ("brigadier-general 4" finds
// "Brigadier General 4").
func (t BonusTable) Lookup(name string) (Bonus, bool) {
	if b, ok := t[name]; ok {
		return b, true
	}

	slug := Slugify(name)
	if slug == "" {
		return Bonus{}, false
	}
	for k, b := range t {
		if Slugify(k) == slug {
			return b, true
		}
	}
	return Bonus{}, false
}

// DefaultBonusTable returns the built-in bonus data.
// Deployments override it through the bonus_table configuration key.
func DefaultBonusTable() BonusTable {
	return BonusTable{
		"Brigadier General 4": {Exp: "1,500,000", Bonus: "AK-47-K-Yellow Fractal 60 days"},
	}
}
