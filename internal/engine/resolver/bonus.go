package resolver

import (
	"strconv"
	"strings"

	"github.com/emberhollow/character-api/internal/entities/ember"
)

// SourceKind identifies which bonus producer emitted a descriptor. It exists
// for diagnostics and ordering, not semantics.
type SourceKind string

// Bonus sources.
const (
	SourceAncestry SourceKind = "ancestry"
	SourceCulture  SourceKind = "culture"
	SourceTrait    SourceKind = "trait"
	SourceModule   SourceKind = "module"
	SourceItem     SourceKind = "item"
)

// SourceOrder is the fixed order bonus sources apply in. Ordering is a policy
// choice: a later source's set overrides earlier adds, and adds after a set
// stack on top of it.
var SourceOrder = []SourceKind{
	SourceAncestry,
	SourceCulture,
	SourceTrait,
	SourceModule,
	SourceItem,
}

// Op is a descriptor operation.
type Op string

// Descriptor operations.
const (
	OpAdd Op = "add"
	OpSet Op = "set"
)

// Axis distinguishes the two numeric tracks a skill carries.
type Axis string

// Skill axes.
const (
	AxisValue  Axis = "value"
	AxisTalent Axis = "talent"
)

// Target groups.
const (
	groupAttributes = "attributes"
	groupSkills     = "skills"
	groupWeapon     = "weaponSkills"
	groupMagic      = "magicSkills"
	groupCrafting   = "craftingSkills"
	groupResources  = "resources"
	groupMitigation = "mitigation"
	groupMovement   = "movement"
)

// Target addresses one computed field.
type Target struct {
	Group string
	Key   string
	Axis  Axis
}

// Descriptor is the normalized, ephemeral unit of effect: one numeric change
// to one computed field. Descriptors are pure data; readers must emit them
// without mutating their inputs.
type Descriptor struct {
	Target Target
	Op     Op
	Amount int
	Source SourceKind
}

// traitGrantPrefix marks an effect code that grants a descriptive trait
// instead of a numeric bonus.
const traitGrantPrefix = "trait:"

// parseEffect parses a compact effect code into a descriptor. Codes look like
// "skills.stealth.value+2", "weaponSkills.unarmed.talent=3",
// "resources.health.max+10", "mitigation.cold+1", "attributes.physique+1",
// "movement-1". A '-' separator is an add of a negative amount. Returns false
// for anything that does not parse into a known target, op, and amount.
func parseEffect(code string, source SourceKind) (Descriptor, bool) {
	sep := strings.IndexAny(code, "+-=")
	if sep <= 0 || sep == len(code)-1 {
		return Descriptor{}, false
	}

	amount, err := strconv.Atoi(code[sep+1:])
	if err != nil {
		return Descriptor{}, false
	}

	op := OpAdd
	switch code[sep] {
	case '=':
		op = OpSet
	case '-':
		amount = -amount
	}

	target, ok := parseTarget(code[:sep])
	if !ok {
		return Descriptor{}, false
	}

	return Descriptor{Target: target, Op: op, Amount: amount, Source: source}, true
}

// parseTarget validates a dotted target path against the known computed tree.
func parseTarget(path string) (Target, bool) {
	parts := strings.Split(path, ".")

	switch parts[0] {
	case groupMovement:
		if len(parts) != 1 {
			return Target{}, false
		}
		return Target{Group: groupMovement}, true

	case groupAttributes:
		if len(parts) != 2 || !isAttribute(parts[1]) {
			return Target{}, false
		}
		return Target{Group: groupAttributes, Key: parts[1]}, true

	case groupMitigation:
		if len(parts) != 2 || !contains(ember.MitigationIDs, parts[1]) {
			return Target{}, false
		}
		return Target{Group: groupMitigation, Key: parts[1]}, true

	case groupResources:
		// Only the max is targetable; current is player state, not a stat.
		if len(parts) != 3 || parts[2] != "max" || !contains(ember.ResourceIDs, parts[1]) {
			return Target{}, false
		}
		return Target{Group: groupResources, Key: parts[1]}, true

	case groupSkills, groupWeapon, groupMagic, groupCrafting:
		if len(parts) != 3 || !isSkillOf(parts[0], parts[1]) {
			return Target{}, false
		}
		axis := Axis(parts[2])
		if axis != AxisValue && axis != AxisTalent {
			return Target{}, false
		}
		return Target{Group: parts[0], Key: parts[1], Axis: axis}, true
	}

	return Target{}, false
}

func isAttribute(id string) bool {
	return contains(ember.AttributeIDs, id)
}

func isSkillOf(group, id string) bool {
	switch group {
	case groupSkills:
		_, ok := ember.SkillAttributes[id]
		return ok
	case groupWeapon:
		return contains(ember.WeaponSkillIDs, id)
	case groupMagic:
		return contains(ember.MagicSkillIDs, id)
	case groupCrafting:
		return contains(ember.CraftingSkillIDs, id)
	}
	return false
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
