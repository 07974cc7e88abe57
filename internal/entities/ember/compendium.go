package ember

// Compendium documents are the shared game content characters reference by
// ID. Characters store selections; the documents carry the effect codes.

// Ancestry is an ancestry document.
type Ancestry struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Options     []AncestryOption `json:"options,omitempty"`
}

// AncestryOption is one selectable ancestry benefit.
type AncestryOption struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Effects     []string    `json:"effects,omitempty"`
	Subchoices  []Subchoice `json:"subchoices,omitempty"`
}

// Subchoice is a nested pick inside an option.
type Subchoice struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Effects []string `json:"effects,omitempty"`
}

// FindOption returns the option with the given name.
func (a *Ancestry) FindOption(name string) (*AncestryOption, bool) {
	for i := range a.Options {
		if a.Options[i].Name == name {
			return &a.Options[i], true
		}
	}
	return nil, false
}

// Culture is a culture document. The player picks one option from each
// category.
type Culture struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Restrictions  []CultureOption `json:"restrictions,omitempty"`
	Benefits      []CultureOption `json:"benefits,omitempty"`
	StartingItems []CultureOption `json:"startingItems,omitempty"`
}

// CultureOption is one pickable culture entry.
type CultureOption struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Effects     []string `json:"effects,omitempty"`
}

// FindRestriction returns the restriction with the given name.
func (c *Culture) FindRestriction(name string) (*CultureOption, bool) {
	return findCultureOption(c.Restrictions, name)
}

// FindBenefit returns the benefit with the given name.
func (c *Culture) FindBenefit(name string) (*CultureOption, bool) {
	return findCultureOption(c.Benefits, name)
}

// FindStartingItem returns the starting item with the given name.
func (c *Culture) FindStartingItem(name string) (*CultureOption, bool) {
	return findCultureOption(c.StartingItems, name)
}

func findCultureOption(options []CultureOption, name string) (*CultureOption, bool) {
	for i := range options {
		if options[i].Name == name {
			return &options[i], true
		}
	}
	return nil, false
}

// TraitType labels a trait as positive or negative. The label is cosmetic;
// effect amounts carry their own sign.
type TraitType string

// Trait types.
const (
	TraitTypePositive TraitType = "positive"
	TraitTypeNegative TraitType = "negative"
)

// Trait is a trait document.
type Trait struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Type        TraitType     `json:"type"`
	Description string        `json:"description,omitempty"`
	Options     []TraitOption `json:"options,omitempty"`
}

// TraitOption is one selectable trait benefit or drawback.
type TraitOption struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Effects     []string    `json:"effects,omitempty"`
	Subchoices  []Subchoice `json:"subchoices,omitempty"`
}

// FindOption returns the option with the given name.
func (t *Trait) FindOption(name string) (*TraitOption, bool) {
	for i := range t.Options {
		if t.Options[i].Name == name {
			return &t.Options[i], true
		}
	}
	return nil, false
}

// Module is a module document: a tree of purchasable options keyed by
// location ("1", "2a", "2b", "3", ...). The leading digits are the tier.
type Module struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Options     []ModuleOption `json:"options,omitempty"`
}

// ModuleOption is one purchasable location in a module.
type ModuleOption struct {
	Location string   `json:"location"`
	Name     string   `json:"name"`
	Cost     int      `json:"cost"`
	Effects  []string `json:"effects,omitempty"`
}

// OptionAt returns the option at the given location.
func (m *Module) OptionAt(location string) (*ModuleOption, bool) {
	for i := range m.Options {
		if m.Options[i].Location == location {
			return &m.Options[i], true
		}
	}
	return nil, false
}

// TierOf parses the tier number from a location's leading digits. Returns
// false when the location has no leading digits.
func TierOf(location string) (int, bool) {
	tier := 0
	digits := 0
	for _, r := range location {
		if r < '0' || r > '9' {
			break
		}
		tier = tier*10 + int(r-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	return tier, true
}

// Item is an item document. Bonus maps are keyed by skill, attribute or
// mitigation ID; only equipped inventory entries contribute.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Basic  map[string]int `json:"basic,omitempty"`
	Weapon map[string]int `json:"weapon,omitempty"`
	Magic  map[string]int `json:"magic,omitempty"`
	Craft  map[string]int `json:"craft,omitempty"`

	Attributes map[string]int `json:"attributes,omitempty"`
	Mitigation map[string]int `json:"mitigation,omitempty"`

	Health   int `json:"health,omitempty"`
	Energy   int `json:"energy,omitempty"`
	Resolve  int `json:"resolve,omitempty"`
	Movement int `json:"movement,omitempty"`
}
