package lsystem

import "strings"

// Rewrite applies rules once, left to right. Symbols without a rule are
// copied unchanged. No bound is enforced here; use NextLen to check the
// size of the result before producing it.
func Rewrite(current string, rules *RuleTable) string {
	var b strings.Builder
	b.Grow(NextLen(current, rules))
	for i := 0; i < len(current); i++ {
		if r, ok := rules.Lookup(current[i]); ok {
			b.WriteString(r)
			continue
		}
		b.WriteByte(current[i])
	}
	return b.String()
}

// NextLen returns the length Rewrite(current, rules) would have.
func NextLen(current string, rules *RuleTable) int {
	n := 0
	for i := 0; i < len(current); i++ {
		if r, ok := rules.Lookup(current[i]); ok {
			n += len(r)
			continue
		}
		n++
	}
	return n
}
