package engine

// RuleTable is the rule-registration mechanism from spec §4.6: a
// registry, populated before parsing begins, that says which grammar
// method names push a CST node (rules) and which run in the caller's
// node (helpers). Rule-ness is therefore a static property of the
// method, known up front, not something inferred from control flow at
// parse time.
type RuleTable struct {
	names map[string]bool
}

// NewRuleTable builds a registry naming every rule method a grammar
// dialect declares. Any method invoked through a Grammar that isn't
// listed here is treated as a helper.
func NewRuleTable(ruleNames ...string) *RuleTable {
	rt := &RuleTable{names: make(map[string]bool, len(ruleNames))}
	for _, name := range ruleNames {
		rt.names[name] = true
	}
	return rt
}

// Extend returns a new table containing rt's rules plus more, without
// mutating rt. This is how a dialect that embeds another (ES2015 over
// ES5) grows the rule set without disturbing the base dialect's table.
func (rt *RuleTable) Extend(ruleNames ...string) *RuleTable {
	merged := make(map[string]bool, len(rt.names)+len(ruleNames))
	for name := range rt.names {
		merged[name] = true
	}
	for _, name := range ruleNames {
		merged[name] = true
	}
	return &RuleTable{names: merged}
}

// IsRule reports whether name was registered as a rule.
func (rt *RuleTable) IsRule(name string) bool {
	return rt.names[name]
}
