package cvss

// AttackVector is the AV base metric
type AttackVector byte

const (
	AttackVectorInvalid AttackVector = iota
	AttackVectorNetwork
	AttackVectorAdjacent
	AttackVectorLocal
	AttackVectorPhysical
)

// AttackComplexity is the AC base metric
type AttackComplexity byte

const (
	AttackComplexityInvalid AttackComplexity = iota
	AttackComplexityLow
	AttackComplexityHigh
)

// PrivilegesRequired is the PR base metric
type PrivilegesRequired byte

const (
	PrivilegesRequiredInvalid PrivilegesRequired = iota
	PrivilegesRequiredNone
	PrivilegesRequiredLow
	PrivilegesRequiredHigh
)

// UserInteraction is the UI base metric
type UserInteraction byte

const (
	UserInteractionInvalid UserInteraction = iota
	UserInteractionNone
	UserInteractionRequired
)

// Scope is the S base metric, it selects the formula branch and carries no weight
type Scope byte

const (
	ScopeInvalid Scope = iota
	ScopeUnchanged
	ScopeChanged
)

// Impact is shared by the Confidentiality, Integrity and Availability metrics
type Impact byte

const (
	ImpactInvalid Impact = iota
	ImpactNone
	ImpactLow
	ImpactHigh
)

type level struct {
	code string
	name string
}

var attackVectorMap = map[AttackVector]level{
	AttackVectorNetwork:  {"N", "Network"},
	AttackVectorAdjacent: {"A", "Adjacent"},
	AttackVectorLocal:    {"L", "Local"},
	AttackVectorPhysical: {"P", "Physical"},
}

var attackComplexityMap = map[AttackComplexity]level{
	AttackComplexityLow:  {"L", "Low"},
	AttackComplexityHigh: {"H", "High"},
}

var privilegesRequiredMap = map[PrivilegesRequired]level{
	PrivilegesRequiredNone: {"N", "None"},
	PrivilegesRequiredLow:  {"L", "Low"},
	PrivilegesRequiredHigh: {"H", "High"},
}

var userInteractionMap = map[UserInteraction]level{
	UserInteractionNone:     {"N", "None"},
	UserInteractionRequired: {"R", "Required"},
}

var scopeMap = map[Scope]level{
	ScopeUnchanged: {"U", "Unchanged"},
	ScopeChanged:   {"C", "Changed"},
}

var impactMap = map[Impact]level{
	ImpactNone: {"N", "None"},
	ImpactLow:  {"L", "Low"},
	ImpactHigh: {"H", "High"},
}

func (av AttackVector) String() string { return attackVectorMap[av].code }

// Name returns the long form, e.g. "Network"
func (av AttackVector) Name() string { return attackVectorMap[av].name }

func (av AttackVector) IsValid() bool {
	_, ok := attackVectorMap[av]
	return ok
}

func (av AttackVector) weight() float64 {
	switch av {
	case AttackVectorNetwork:
		return 0.85
	case AttackVectorAdjacent:
		return 0.62
	case AttackVectorLocal:
		return 0.55
	case AttackVectorPhysical:
		return 0.20
	}
	return 0
}

func (ac AttackComplexity) String() string { return attackComplexityMap[ac].code }
func (ac AttackComplexity) Name() string   { return attackComplexityMap[ac].name }

func (ac AttackComplexity) IsValid() bool {
	_, ok := attackComplexityMap[ac]
	return ok
}

func (ac AttackComplexity) weight() float64 {
	switch ac {
	case AttackComplexityLow:
		return 0.77
	case AttackComplexityHigh:
		return 0.44
	}
	return 0
}

func (pr PrivilegesRequired) String() string { return privilegesRequiredMap[pr].code }
func (pr PrivilegesRequired) Name() string   { return privilegesRequiredMap[pr].name }

func (pr PrivilegesRequired) IsValid() bool {
	_, ok := privilegesRequiredMap[pr]
	return ok
}

// weight depends on the scope of the same vector
func (pr PrivilegesRequired) weight(s Scope) float64 {
	switch pr {
	case PrivilegesRequiredNone:
		return 0.85
	case PrivilegesRequiredLow:
		if s == ScopeChanged {
			return 0.68
		}
		return 0.62
	case PrivilegesRequiredHigh:
		if s == ScopeChanged {
			return 0.50
		}
		return 0.27
	}
	return 0
}

func (ui UserInteraction) String() string { return userInteractionMap[ui].code }
func (ui UserInteraction) Name() string   { return userInteractionMap[ui].name }

func (ui UserInteraction) IsValid() bool {
	_, ok := userInteractionMap[ui]
	return ok
}

func (ui UserInteraction) weight() float64 {
	switch ui {
	case UserInteractionNone:
		return 0.85
	case UserInteractionRequired:
		return 0.62
	}
	return 0
}

func (s Scope) String() string { return scopeMap[s].code }
func (s Scope) Name() string   { return scopeMap[s].name }

func (s Scope) IsValid() bool {
	_, ok := scopeMap[s]
	return ok
}

func (i Impact) String() string { return impactMap[i].code }
func (i Impact) Name() string   { return impactMap[i].name }

func (i Impact) IsValid() bool {
	_, ok := impactMap[i]
	return ok
}

func (i Impact) weight() float64 {
	switch i {
	case ImpactLow:
		return 0.22
	case ImpactHigh:
		return 0.56
	}
	return 0
}

// lookup finds the member of a domain carrying the given letter code
func lookup[T comparable](m map[T]level, code string) (T, bool) {
	for k, v := range m {
		if v.code == code {
			return k, true
		}
	}
	var zero T
	return zero, false
}
