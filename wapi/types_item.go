package wapi

// Item is a single entry of the item database. Which optional fields are set
// depends on the item type.
type Item struct {
	InternalName    string            `json:"internalName"`
	Type            string            `json:"type"`
	SubType         string            `json:"subType,omitempty"`
	Icon            *ItemIcon         `json:"icon,omitempty"`
	Identified      *bool             `json:"identified,omitempty"`
	AllowCraftsman  *bool             `json:"allow_craftsman,omitempty"`
	ArmourMaterial  string            `json:"armourMaterial,omitempty"`
	AttackSpeed     string            `json:"attackSpeed,omitempty"`
	AverageDPS      *int              `json:"averageDPS,omitempty"`
	GatheringSpeed  *int              `json:"gatheringSpeed,omitempty"`
	Tier            *Value            `json:"tier,omitempty"`
	Rarity          string            `json:"rarity,omitempty"`
	MajorIDs        map[string]string `json:"majorIds,omitempty"`
	Craftable       []string          `json:"craftable,omitempty"`
	PowderSlots     *int              `json:"powderSlots,omitempty"`
	Lore            string            `json:"lore,omitempty"`
	DropRestriction string            `json:"dropRestriction,omitempty"`
	Restriction     string            `json:"restriction,omitempty"`
	RaidReward      *bool             `json:"raidReward,omitempty"`
	DropMeta        *DropMeta         `json:"dropMeta,omitempty"`
	Base            map[string]Value  `json:"base,omitempty"`
	Requirements    *ItemRequirements `json:"requirements,omitempty"`
	Identifications map[string]Value  `json:"identifications,omitempty"`

	ConsumableOnlyIDs           *ConsumableOnlyIDs           `json:"consumableOnlyIDs,omitempty"`
	IngredientPositionModifiers *IngredientPositionModifiers `json:"ingredientPositionModifiers,omitempty"`
	ItemOnlyIDs                 *ItemOnlyIDs                 `json:"itemOnlyIDs,omitempty"`
}

// Level returns the item's level requirement, or 0 when it has none
func (i *Item) Level() int {
	if i.Requirements == nil || i.Requirements.Level == nil {
		return 0
	}
	return *i.Requirements.Level
}

// ItemIcon value is either a string or an object
type ItemIcon struct {
	Value  Value  `json:"value"`
	Format string `json:"format"`
}

// ConsumableOnlyIDs applies to ingredients
type ConsumableOnlyIDs struct {
	Duration *int `json:"duration,omitempty"`
	Charges  *int `json:"charges,omitempty"`
}

// IngredientPositionModifiers applies to ingredients
type IngredientPositionModifiers struct {
	Left        *int `json:"left,omitempty"`
	Right       *int `json:"right,omitempty"`
	Above       *int `json:"above,omitempty"`
	Under       *int `json:"under,omitempty"`
	Touching    *int `json:"touching,omitempty"`
	NotTouching *int `json:"not_touching,omitempty"`
}

// ItemOnlyIDs applies to ingredients
type ItemOnlyIDs struct {
	DurabilityModifier      *int `json:"durability_modifier,omitempty"`
	StrengthRequirement     *int `json:"strength_requirement,omitempty"`
	DexterityRequirement    *int `json:"dexterity_requirement,omitempty"`
	IntelligenceRequirement *int `json:"intelligence_requirement,omitempty"`
	DefenceRequirement      *int `json:"defence_requirement,omitempty"`
	AgilityRequirement      *int `json:"agility_requirement,omitempty"`
}

// DropMeta describes where an item drops
type DropMeta struct {
	Coordinates []int  `json:"coordinates,omitempty"`
	Name        string `json:"name"`
	Type        Value  `json:"type"`
}

// ItemRequirements lists what is needed to use an item
type ItemRequirements struct {
	Level            *int        `json:"level,omitempty"`
	LevelRange       *LevelRange `json:"levelRange,omitempty"`
	Strength         *int        `json:"strength,omitempty"`
	Dexterity        *int        `json:"dexterity,omitempty"`
	Intelligence     *int        `json:"intelligence,omitempty"`
	Defence          *int        `json:"defence,omitempty"`
	Agility          *int        `json:"agility,omitempty"`
	Quest            string      `json:"quest,omitempty"`
	ClassRequirement string      `json:"classRequirement,omitempty"`
	Skills           []string    `json:"skills,omitempty"`
}

// LevelRange is an inclusive level range
type LevelRange struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// ItemDatabase is a page of the item database
type ItemDatabase struct {
	Controller PaginationController `json:"controller"`
	Results    map[string]Item      `json:"results"`
}

// PaginationController describes the current page
type PaginationController struct {
	Count    int             `json:"count"`
	Pages    int             `json:"pages"`
	Previous *int            `json:"prev,omitempty"`
	Current  int             `json:"current"`
	Next     *int            `json:"next,omitempty"`
	Links    PaginationLinks `json:"links"`
}

// HasNext reports whether another page exists
func (p *PaginationController) HasNext() bool {
	return p.Next != nil && p.Current < p.Pages
}

// PaginationLinks are absolute URLs of neighbouring pages
type PaginationLinks struct {
	Previous string `json:"prev,omitempty"`
	Next     string `json:"next,omitempty"`
}

// ItemMetadata lists the filters accepted by the item search
type ItemMetadata struct {
	Identifications []string    `json:"identifications"`
	MajorIDs        []string    `json:"majorIds"`
	Filters         ItemFilters `json:"filters"`
}

// ItemFilters groups the available item filters
type ItemFilters struct {
	Type       []string          `json:"type"`
	Advanced   AdvancedFilters   `json:"advanced"`
	Tier       TierFilters       `json:"tier"`
	LevelRange LevelRangeFilters `json:"levelRange"`
}

// AdvancedFilters lists sub-types per category
type AdvancedFilters struct {
	AttackSpeed []string `json:"attackSpeed"`
	Weapons     []string `json:"weapons"`
	Armour      []string `json:"armour"`
	Accessories []string `json:"accessories"`
	Tomes       []string `json:"tomes"`
	Tools       []string `json:"tools"`
	Crafting    []string `json:"crafting"`
	Gathering   []string `json:"gathering"`
}

// TierFilters lists rarities and ingredient tiers
type TierFilters struct {
	Items       []string `json:"items"`
	Ingredients []int    `json:"ingredients"`
}

// LevelRangeFilters holds the maximum level per category
type LevelRangeFilters struct {
	Items       int `json:"items"`
	Ingredients int `json:"ingredients"`
}
