package extract

import (
	"regexp"
	"strings"
)

// Personal names in this domain are 2-4 CJK ideographs with nothing else.
var reHanName = regexp.MustCompile(`^\p{Han}{2,4}$`)

// isLikelyPersonName reports whether a candidate string plausibly denotes a
// person. Candidate lines can satisfy the ideograph-length pattern while
// actually being boilerplate fragments, so the deny-token gate runs first.
func (e *Extractor) isLikelyPersonName(s string) bool {
	if s == "" {
		return false
	}
	for _, tok := range e.prof.NameDenyTokens {
		if strings.Contains(s, tok) {
			return false
		}
	}
	return reHanName.MatchString(s)
}

// extractDrawer scans for the issuer keyword line. The name is either on the
// keyword line itself (after stripping the keyword and separator colons) or
// on the line immediately below it. Later keyword occurrences are tried when
// an earlier one yields nothing; no valid candidate anywhere falls back to
// the profile default.
func (e *Extractor) extractDrawer(lines []string) string {
	for i, line := range lines {
		if !strings.Contains(line, e.prof.DrawerKeyword) {
			continue
		}
		cur := strings.ReplaceAll(line, e.prof.DrawerKeyword, "")
		cur = strings.ReplaceAll(cur, ":", "")
		cur = strings.ReplaceAll(cur, "：", "")
		cur = strings.TrimSpace(cur)
		if e.isLikelyPersonName(cur) {
			return cur
		}
		if i+1 < len(lines) && e.isLikelyPersonName(lines[i+1]) {
			return lines[i+1]
		}
	}
	return e.prof.DefaultDrawer
}
