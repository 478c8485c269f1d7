package constants

import "strings"

// PartyCodes are the party tokens that appear in contest titles and
// candidate rows, either bare or parenthesized.
var PartyCodes = []string{"Dem", "Rep", "Lib", "Grn", "Gre", "Ind", "NP", "Nonpartisan"}

var partySet = func() map[string]string {
	m := make(map[string]string, len(PartyCodes))
	for _, p := range PartyCodes {
		m[strings.ToUpper(p)] = strings.ToUpper(p)
	}
	return m
}()

// CanonicalParty uppercases a party token and reports whether it is a
// known party code.
func CanonicalParty(token string) (string, bool) {
	p, ok := partySet[strings.ToUpper(strings.TrimSpace(token))]
	return p, ok
}
