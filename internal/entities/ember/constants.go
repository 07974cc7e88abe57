package ember

// Attribute IDs. Attributes are dice-pool counts.
const (
	AttributePhysique  = "physique"
	AttributeFinesse   = "finesse"
	AttributeMind      = "mind"
	AttributeKnowledge = "knowledge"
	AttributeSocial    = "social"
)

// AttributeIDs lists every attribute in display order.
var AttributeIDs = []string{
	AttributePhysique,
	AttributeFinesse,
	AttributeMind,
	AttributeKnowledge,
	AttributeSocial,
}

// SkillAttributes maps each attribute-keyed skill to its governing attribute.
// The skill's dice-pool value is projected from that attribute during
// resolution.
var SkillAttributes = map[string]string{
	"fitness":    AttributePhysique,
	"might":      AttributePhysique,
	"endurance":  AttributePhysique,
	"deflection": AttributePhysique,

	"evasion":      AttributeFinesse,
	"stealth":      AttributeFinesse,
	"coordination": AttributeFinesse,
	"thievery":     AttributeFinesse,

	"resilience":    AttributeMind,
	"concentration": AttributeMind,
	"senses":        AttributeMind,
	"logic":         AttributeMind,

	"wildcraft": AttributeKnowledge,
	"academics": AttributeKnowledge,
	"magic":     AttributeKnowledge,
	"medicine":  AttributeKnowledge,

	"expression": AttributeSocial,
	"presence":   AttributeSocial,
	"insight":    AttributeSocial,
	"persuasion": AttributeSocial,
}

// WeaponSkillIDs lists the talent-keyed weapon skills.
var WeaponSkillIDs = []string{
	"unarmed",
	"throwing",
	"simpleMeleeWeapons",
	"simpleRangedWeapons",
	"complexMeleeWeapons",
	"complexRangedWeapons",
}

// MagicSkillIDs lists the talent-keyed magic skills.
var MagicSkillIDs = []string{
	"black",
	"primal",
	"divine",
	"metamagic",
	"mysticism",
}

// CraftingSkillIDs lists the talent-keyed crafting skills.
var CraftingSkillIDs = []string{
	"engineering",
	"fabrication",
	"alchemy",
	"cooking",
	"glyphcraft",
	"bioshaping",
}

// Resource IDs.
const (
	ResourceHealth  = "health"
	ResourceEnergy  = "energy"
	ResourceResolve = "resolve"
	ResourceMorale  = "morale"
)

// ResourceIDs lists every resource in display order.
var ResourceIDs = []string{
	ResourceHealth,
	ResourceEnergy,
	ResourceResolve,
	ResourceMorale,
}

// BaseResourceMax holds the unmodified maximum for each resource. Effective
// maxima are these baselines plus bonuses, recomputed every resolution.
var BaseResourceMax = map[string]int{
	ResourceHealth:  20,
	ResourceEnergy:  5,
	ResourceResolve: 20,
	ResourceMorale:  10,
}

// MitigationIDs lists the damage mitigation types. All start at zero.
var MitigationIDs = []string{
	"physical",
	"heat",
	"cold",
	"electric",
	"dark",
	"divine",
	"aetheric",
	"psychic",
	"toxic",
}

// BaseMovement is the unmodified movement speed.
const BaseMovement = 5

// Persisted stat bounds.
const (
	MinAttribute = 1
	MaxAttribute = 4
	MinTalent    = 0
	MaxTalent    = 4
)
