// Package catalog loads the static arena data (classes, monsters, items,
// perks, XP curve, power-up templates) from YAML into in-memory lookups.
package catalog

import (
	"arena-rpg/assets"
	"arena-rpg/internal/entity"
	"arena-rpg/internal/powerup"
	"arena-rpg/internal/progression"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("catalog: invalid")

// poolDoc is a perk pool as written in YAML: a tag and perk ids.
type poolDoc struct {
	Tag   string   `yaml:"tag"`
	Perks []string `yaml:"perks"`
}

type document struct {
	Classes      []entity.ClassDef         `yaml:"classes"`
	Monsters     []entity.MonsterTemplate  `yaml:"monsters"`
	Items        []entity.ItemDef          `yaml:"items"`
	Perks        []progression.Perk        `yaml:"perks"`
	PerkPools    []poolDoc                 `yaml:"perk_pools"`
	XPCurve      progression.CurveConfig   `yaml:"xp_curve"`
	LevelRewards []progression.LevelReward `yaml:"level_rewards"`
	PowerUps     []powerup.Template        `yaml:"powerups"`
}

// Catalog is the parsed, indexed catalog. It is read-only after Parse.
type Catalog struct {
	doc      document
	classes  map[string]entity.ClassDef
	monsters map[string]entity.MonsterTemplate
	items    map[string]entity.ItemDef
	perks    map[string]progression.Perk
	pools    map[string]progression.PerkPool
	curve    []int
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(assets.CatalogYAML)
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog and checks its cross references.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c := &Catalog{
		doc:      doc,
		classes:  make(map[string]entity.ClassDef, len(doc.Classes)),
		monsters: make(map[string]entity.MonsterTemplate, len(doc.Monsters)),
		items:    make(map[string]entity.ItemDef, len(doc.Items)),
		perks:    make(map[string]progression.Perk, len(doc.Perks)),
		pools:    make(map[string]progression.PerkPool, len(doc.PerkPools)),
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	c.curve = progression.GenerateCurve(doc.XPCurve)
	if err := progression.NewLogic(c.curve, nil).Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return c, nil
}

func (c *Catalog) index() error {
	for _, cl := range c.doc.Classes {
		if cl.ID == "" || cl.MaxHealth < 1 {
			return fmt.Errorf("%w: class %q needs an id and positive max_health", ErrInvalid, cl.ID)
		}
		if _, dup := c.classes[cl.ID]; dup {
			return fmt.Errorf("%w: duplicate class %q", ErrInvalid, cl.ID)
		}
		c.classes[cl.ID] = cl
	}
	for _, m := range c.doc.Monsters {
		if m.ID == "" || m.ArenaRank < 1 || m.MaxHealth < 1 {
			return fmt.Errorf("%w: monster %q needs an id, arena_rank >= 1 and positive max_health", ErrInvalid, m.ID)
		}
		if _, dup := c.monsters[m.ID]; dup {
			return fmt.Errorf("%w: duplicate monster %q", ErrInvalid, m.ID)
		}
		c.monsters[m.ID] = m
	}
	for _, it := range c.doc.Items {
		if it.ID == "" {
			return fmt.Errorf("%w: item without id", ErrInvalid)
		}
		if it.Kind != entity.ItemHeal && it.Kind != entity.ItemDamage {
			return fmt.Errorf("%w: item %q has unknown kind %q", ErrInvalid, it.ID, it.Kind)
		}
		if _, dup := c.items[it.ID]; dup {
			return fmt.Errorf("%w: duplicate item %q", ErrInvalid, it.ID)
		}
		c.items[it.ID] = it
	}
	for _, p := range c.doc.Perks {
		if p.ID == "" {
			return fmt.Errorf("%w: perk without id", ErrInvalid)
		}
		if _, dup := c.perks[p.ID]; dup {
			return fmt.Errorf("%w: duplicate perk %q", ErrInvalid, p.ID)
		}
		c.perks[p.ID] = p
	}
	for _, pd := range c.doc.PerkPools {
		pool := progression.PerkPool{Tag: pd.Tag}
		for _, id := range pd.Perks {
			p, ok := c.perks[id]
			if !ok {
				return fmt.Errorf("%w: pool %q references unknown perk %q", ErrInvalid, pd.Tag, id)
			}
			pool.Perks = append(pool.Perks, p)
		}
		c.pools[pd.Tag] = pool
	}
	for _, r := range c.doc.LevelRewards {
		for _, id := range r.Perks {
			if _, ok := c.perks[id]; !ok {
				return fmt.Errorf("%w: level %d reward names unknown perk %q", ErrInvalid, r.Level, id)
			}
		}
		for _, tag := range r.Pools {
			if _, ok := c.pools[tag]; !ok {
				return fmt.Errorf("%w: level %d reward names unknown pool %q", ErrInvalid, r.Level, tag)
			}
		}
	}
	if err := checkPowerUps(c.doc.PowerUps); err != nil {
		return err
	}
	for _, cl := range c.doc.Classes {
		for _, si := range cl.StartItems {
			if _, ok := c.items[si.ID]; !ok {
				return fmt.Errorf("%w: class %q starts with unknown item %q", ErrInvalid, cl.ID, si.ID)
			}
		}
	}
	return nil
}

// checkPowerUps rejects templates that could be offered but would do nothing.
func checkPowerUps(templates []powerup.Template) error {
	keys := make(map[string]bool, len(templates))
	for _, t := range templates {
		if t.Key == "" {
			return fmt.Errorf("%w: power-up without key", ErrInvalid)
		}
		if keys[t.Key] {
			return fmt.Errorf("%w: duplicate power-up %q", ErrInvalid, t.Key)
		}
		keys[t.Key] = true
		switch t.Kind {
		case powerup.KindAttribute, powerup.KindMonsterDebuff:
		case powerup.KindLoot:
			if t.Loot != powerup.LootGold && t.Loot != powerup.LootXP {
				return fmt.Errorf("%w: power-up %q has unknown loot %q", ErrInvalid, t.Key, t.Loot)
			}
		case powerup.KindUtility:
			if t.Utility != powerup.UtilityHeal && t.Utility != powerup.UtilityGold {
				return fmt.Errorf("%w: power-up %q has unknown utility %q", ErrInvalid, t.Key, t.Utility)
			}
		default:
			return fmt.Errorf("%w: power-up %q has unknown kind %q", ErrInvalid, t.Key, t.Kind)
		}
	}
	return nil
}

// Item implements action.ItemLookup.
func (c *Catalog) Item(id string) (entity.ItemDef, bool) {
	it, ok := c.items[id]
	return it, ok
}

func (c *Catalog) Class(id string) (entity.ClassDef, bool) {
	cl, ok := c.classes[id]
	return cl, ok
}

func (c *Catalog) Monster(id string) (entity.MonsterTemplate, bool) {
	m, ok := c.monsters[id]
	return m, ok
}

func (c *Catalog) Perk(id string) (progression.Perk, bool) {
	p, ok := c.perks[id]
	return p, ok
}

// Pool returns the perk pool tagged tag.
func (c *Catalog) Pool(tag string) (progression.PerkPool, bool) {
	p, ok := c.pools[tag]
	return p, ok
}

// Classes returns class definitions in file order.
func (c *Catalog) Classes() []entity.ClassDef {
	return append([]entity.ClassDef(nil), c.doc.Classes...)
}

// Items returns item definitions in file order.
func (c *Catalog) Items() []entity.ItemDef { return append([]entity.ItemDef(nil), c.doc.Items...) }

// Perks returns every perk in file order.
func (c *Catalog) Perks() []progression.Perk { return append([]progression.Perk(nil), c.doc.Perks...) }

// MonstersUpToRank returns templates with ArenaRank <= rank, sorted by rank
// then id.
func (c *Catalog) MonstersUpToRank(rank int) []entity.MonsterTemplate {
	var out []entity.MonsterTemplate
	for _, m := range c.doc.Monsters {
		if m.ArenaRank <= rank {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ArenaRank != out[j].ArenaRank {
			return out[i].ArenaRank < out[j].ArenaRank
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// XPCurve returns the cumulative thresholds generated from the xp_curve block.
func (c *Catalog) XPCurve() []int { return append([]int(nil), c.curve...) }

// Progression builds the level logic for this catalog.
func (c *Catalog) Progression() *progression.Logic {
	return progression.NewLogic(c.curve, c.doc.LevelRewards)
}

// PowerUpTemplates returns the configured templates, or the built-in set.
func (c *Catalog) PowerUpTemplates() []powerup.Template {
	if len(c.doc.PowerUps) == 0 {
		return powerup.DefaultTemplates
	}
	return append([]powerup.Template(nil), c.doc.PowerUps...)
}
