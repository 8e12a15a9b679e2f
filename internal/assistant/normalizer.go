package assistant

import (
	"regexp"
	"sort"
	"strings"
)

// typoFixes maps common misspellings to their canonical form. Matched as
// whole words, case-insensitively. Corrections never map onto another key,
// which keeps Normalize idempotent.
var typoFixes = map[string]string{
	"slary":      "salary",
	"salry":      "salary",
	"sallary":    "salary",
	"emplyee":    "employee",
	"employe":    "employee",
	"emloyee":    "employee",
	"emplyees":   "employees",
	"employes":   "employees",
	"payrol":     "payroll",
	"payrolll":   "payroll",
	"paymet":     "payment",
	"paymnet":    "payment",
	"paymets":    "payments",
	"comapny":    "company",
	"compnay":    "company",
	"compny":     "company",
	"averge":     "average",
	"avrage":     "average",
	"avarage":    "average",
	"higest":     "highest",
	"highst":     "highest",
	"lowset":     "lowest",
	"bitcion":    "bitcoin",
	"bitcon":     "bitcoin",
	"bitoin":     "bitcoin",
	"etherum":    "ethereum",
	"etheruem":   "ethereum",
	"ethreum":    "ethereum",
	"aptoss":     "aptos",
	"atpos":      "aptos",
	"pirce":      "price",
	"prise":      "price",
	"departmnet": "department",
	"depatment":  "department",
	"fonder":     "founder",
	"foudner":    "founder",
}

var typoPattern = compileTypoPattern()

func compileTypoPattern() *regexp.Regexp {
	words := make([]string, 0, len(typoFixes))
	for w := range typoFixes {
		words = append(words, regexp.QuoteMeta(w))
	}
	// Longest first so "emplyees" is not eaten by "emplyee".
	sort.Slice(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	return regexp.MustCompile(`(?i)\b(` + strings.Join(words, "|") + `)\b`)
}

// Normalize corrects known misspellings in the raw message. Unknown words
// pass through unchanged; the function is total and idempotent.
func Normalize(raw string) string {
	return typoPattern.ReplaceAllStringFunc(raw, func(match string) string {
		if fixed, ok := typoFixes[strings.ToLower(match)]; ok {
			return fixed
		}
		return match
	})
}

// stopWords are dropped during keyword extraction.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"has": true, "have": true, "what": true, "when": true, "where": true,
	"who": true, "why": true, "how": true, "this": true, "that": true,
	"with": true, "about": true, "does": true, "much": true, "many": true,
	"please": true, "tell": true, "show": true, "give": true,
}

var punctuation = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

// ExtractKeywords lower-cases the text, strips punctuation, splits on
// whitespace, and drops stop words and tokens shorter than three
// characters. Duplicates are collapsed, first appearance wins.
func ExtractKeywords(text string) []string {
	cleaned := punctuation.ReplaceAllString(strings.ToLower(text), " ")

	seen := make(map[string]bool)
	var keywords []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) <= 2 || stopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
	}
	return keywords
}
