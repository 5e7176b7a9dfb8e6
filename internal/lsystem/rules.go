package lsystem

import (
	"errors"
	"fmt"
)

// Axiom is the sentence every generation starts from.
const Axiom = "F"

var (
	ErrEmptyTrigger     = errors.New("rule trigger is empty")
	ErrMultiCharTrigger = errors.New("rule trigger must be a single symbol")
	ErrDuplicateTrigger = errors.New("duplicate rule trigger")
)

// Rule rewrites one trigger symbol into a replacement string.
type Rule struct {
	Trigger     string
	Replacement string
}

// RuleTable maps trigger symbols to their replacements.
// The zero value is an empty table in which every symbol passes through.
type RuleTable struct {
	rules map[byte]string
}

// NewRuleTable builds a table from pairs, see Set.
func NewRuleTable(pairs ...Rule) (*RuleTable, error) {
	t := &RuleTable{}
	if err := t.Set(pairs); err != nil {
		return nil, err
	}
	return t, nil
}

// Set validates pairs and replaces the whole table with them. On error the
// previous table is left untouched.
func (t *RuleTable) Set(pairs []Rule) error {
	next := make(map[byte]string, len(pairs))
	for i, p := range pairs {
		sym, err := triggerSymbol(p.Trigger)
		if err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
		if _, dup := next[sym]; dup {
			return fmt.Errorf("rule %d %q: %w", i, p.Trigger, ErrDuplicateTrigger)
		}
		next[sym] = p.Replacement
	}
	t.rules = next
	return nil
}

// Lookup returns the replacement for sym and whether a rule exists.
func (t *RuleTable) Lookup(sym byte) (string, bool) {
	if t == nil {
		return "", false
	}
	r, ok := t.rules[sym]
	return r, ok
}

// Len reports the number of rules.
func (t *RuleTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// ValidateTrigger reports whether s can be used as a rule trigger.
func ValidateTrigger(s string) error {
	_, err := triggerSymbol(s)
	return err
}

func triggerSymbol(s string) (byte, error) {
	switch {
	case len(s) == 0:
		return 0, ErrEmptyTrigger
	case len(s) > 1:
		return 0, fmt.Errorf("%q: %w", s, ErrMultiCharTrigger)
	}
	return s[0], nil
}
