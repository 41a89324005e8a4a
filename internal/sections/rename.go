package sections

import "strings"

// ApplyRenames rewrites every banner titled rule.From into the canonical
// banner of rule.To. The whole banner is replaced, so its dash rules come out
// canonical too; a \r ending the old suffix line is kept. Rules whose title
// does not occur are no-ops.
func ApplyRenames(doc string, rules []RenameRule) (string, bool) {
	out, n := applyRenames(doc, rules, compileOnDemand{})
	return out, n > 0
}

func applyRenames(doc string, rules []RenameRule, m matchers) (string, int) {
	total := 0
	for _, rule := range rules {
		re := m.banner(rule.From)
		locs := re.FindAllStringIndex(doc, -1)
		if len(locs) == 0 {
			continue
		}
		total += len(locs)
		banner := Render(rule.To)
		doc = re.ReplaceAllStringFunc(doc, func(old string) string {
			if strings.HasSuffix(old, "\r") {
				return banner + "\r"
			}
			return banner
		})
	}
	return doc, total
}
