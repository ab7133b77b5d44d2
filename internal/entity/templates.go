package entity

// ItemKind describes what using an item does.
type ItemKind string

const (
	ItemHeal   ItemKind = "heal"   // restore HealPercent of the user's max health
	ItemDamage ItemKind = "damage" // deal Damage to the opponent
)

// ItemDef is an immutable item definition from the catalog.
type ItemDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Kind        ItemKind `yaml:"kind"`
	HealPercent int      `yaml:"heal_percent"`
	Damage      int      `yaml:"damage"`
	Price       int      `yaml:"price"`
}

// MonsterTemplate is the immutable catalog entry a Monster is built from.
type MonsterTemplate struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Emoji      string            `yaml:"emoji"`
	ArenaRank  int               `yaml:"arena_rank"`
	MaxHealth  int               `yaml:"max_health"`
	Attributes Attributes        `yaml:"attributes"`
	Sounds     map[string]string `yaml:"sounds"`
	XPReward   int               `yaml:"xp_reward"`
	GoldReward int               `yaml:"gold_reward"`
}

// StartItem is an item a class begins with.
type StartItem struct {
	ID       string `yaml:"id"`
	Quantity int    `yaml:"quantity"`
}

// ClassDef defines a selectable player class.
type ClassDef struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Emoji      string      `yaml:"emoji"`
	Lore       string      `yaml:"lore"` // one-liner shown on class selection
	MaxHealth  int         `yaml:"max_health"`
	Attributes Attributes  `yaml:"attributes"`
	StartGold  int         `yaml:"start_gold"`
	StartItems []StartItem `yaml:"start_items"`
	Locked     bool        `yaml:"locked"` // must be unlocked before selection
}
