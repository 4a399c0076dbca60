// core/wiki/polymerid.go
package wiki

import (
	"regexp"
	"strings"
)

var abbrRe = regexp.MustCompile(`\(([A-Z]+)\)`)

// polymerRules derive a short polymer identifier from a display name.
// Evaluated in order, first match wins; the fallback is the uppercased first
// three characters.
var polymerRules = []func(name string) (string, bool){
	func(name string) (string, bool) {
		if m := abbrRe.FindStringSubmatch(name); m != nil {
			return m[1], true
		}
		return "", false
	},
	prefixRule("polyethylene terephthalate", "PET"),
	prefixRule("polyurethane", "PUR"),
}

func prefixRule(prefix, id string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			return id, true
		}
		return "", false
	}
}

// PolymerID maps a polymer display name to its short identifier.
func PolymerID(name string) string {
	for _, rule := range polymerRules {
		if id, ok := rule(name); ok {
			return id
		}
	}
	if len(name) > 3 {
		name = name[:3]
	}
	return strings.ToUpper(name)
}
