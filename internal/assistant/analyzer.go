package assistant

import (
	"regexp"
	"sort"
	"strings"
)

// Analysis is the classification of a single message.
type Analysis struct {
	Topics   []string // every matching topic rule, in rule order
	Entities []string // recognized entities in order of appearance, deduplicated
	Intent   string   // single winner, defaults to "general"
}

// HasTopic reports whether the analysis carries the given topic tag.
func (a Analysis) HasTopic(tag string) bool {
	for _, t := range a.Topics {
		if t == tag {
			return true
		}
	}
	return false
}

// HasEntity reports whether the analysis carries the given entity tag.
func (a Analysis) HasEntity(tag string) bool {
	for _, e := range a.Entities {
		if e == tag {
			return true
		}
	}
	return false
}

// Topic tags.
const (
	TopicGreeting   = "greeting"
	TopicGratitude  = "gratitude"
	TopicPricing    = "pricing"
	TopicATH        = "ath"
	TopicATL        = "atl"
	TopicFoundation = "foundation"
	TopicEmployees  = "employees"
	TopicSalary     = "salary"
	TopicPayroll    = "payroll"
	TopicPayments   = "payments"
	TopicCompany    = "company"
	TopicComparison = "comparison"
)

// Intent tags.
const (
	IntentGeneral     = "general"
	IntentGreeting    = "greeting"
	IntentQuestion    = "question"
	IntentComparison  = "comparison"
	IntentDataRequest = "data_request"
)

type topicRule struct {
	re  *regexp.Regexp
	tag string
}

// topicRules is evaluated in order; every matching rule contributes its tag.
var topicRules = []topicRule{
	{regexp.MustCompile(`(?i)\b(hi|hello|hey|gm|good (morning|afternoon|evening))\b`), TopicGreeting},
	{regexp.MustCompile(`(?i)\b(thanks|thank you|thx|appreciate)\b`), TopicGratitude},
	{regexp.MustCompile(`(?i)\b(price|worth|cost|value|trading|market cap)\b`), TopicPricing},
	{regexp.MustCompile(`(?i)\b(ath|all.?time.?high|highest price|peak price)\b`), TopicATH},
	{regexp.MustCompile(`(?i)\b(atl|all.?time.?low|lowest price|bottom)\b`), TopicATL},
	{regexp.MustCompile(`(?i)\b(founder|founded|created by|ceo|foundation)\b`), TopicFoundation},
	{regexp.MustCompile(`(?i)\b(employee|employees|staff|team member|headcount|workforce)\b`), TopicEmployees},
	{regexp.MustCompile(`(?i)\b(salary|salaries|paid|earning|compensation|wage)\b`), TopicSalary},
	{regexp.MustCompile(`(?i)\bpayroll\b`), TopicPayroll},
	{regexp.MustCompile(`(?i)\b(payment|payments|transaction|transfer|disbursement)\b`), TopicPayments},
	{regexp.MustCompile(`(?i)\b(company|organization|business|startup)\b`), TopicCompany},
	{regexp.MustCompile(`(?i)\b(versus|vs\.?|compare|better than|difference between)\b`), TopicComparison},
}

type intentRule struct {
	re  *regexp.Regexp
	tag string
}

// intentRules is evaluated in order and the LAST matching rule wins, so
// more specific rules belong later in the list.
var intentRules = []intentRule{
	{regexp.MustCompile(`(?i)^\s*(hi|hello|hey|gm)\b`), IntentGreeting},
	{regexp.MustCompile(`(?i)\b(what|how|who|when|where|why|which)\b|\?`), IntentQuestion},
	{regexp.MustCompile(`(?i)\b(list|show|give me|display|overview|breakdown)\b`), IntentDataRequest},
	{regexp.MustCompile(`(?i)\b(versus|vs\.?|compare|better than|difference between)\b`), IntentComparison},
}

// Entity tags for supported cryptocurrencies.
const (
	EntityAptos    = "aptos"
	EntityBitcoin  = "bitcoin"
	EntityEthereum = "ethereum"
	EntityFounder  = "founder"
)

type vocabEntry struct {
	re  *regexp.Regexp
	tag string
}

// entityVocab covers cryptocurrencies, known people, and departments.
var entityVocab = []vocabEntry{
	{regexp.MustCompile(`(?i)\b(aptos|apt)\b`), EntityAptos},
	{regexp.MustCompile(`(?i)\b(bitcoin|btc)\b`), EntityBitcoin},
	{regexp.MustCompile(`(?i)\b(ethereum|eth|ether)\b`), EntityEthereum},
	{regexp.MustCompile(`(?i)\b(founder|mo shaikh|avery ching)\b`), EntityFounder},
	{regexp.MustCompile(`(?i)\bengineering\b`), "engineering"},
	{regexp.MustCompile(`(?i)\bmarketing\b`), "marketing"},
	{regexp.MustCompile(`(?i)\bsales\b`), "sales"},
	{regexp.MustCompile(`(?i)\bdesign\b`), "design"},
	{regexp.MustCompile(`(?i)\bfinance\b`), "finance"},
	{regexp.MustCompile(`(?i)\b(hr|human resources)\b`), "hr"},
	{regexp.MustCompile(`(?i)\boperations\b`), "operations"},
}

// Analyze classifies a message into topics, entities, and an intent. It is
// pure and total: unrecognized input yields empty tag sets and the
// "general" intent.
func Analyze(message string) Analysis {
	a := Analysis{Intent: IntentGeneral}

	for _, rule := range topicRules {
		if rule.re.MatchString(message) {
			a.Topics = append(a.Topics, rule.tag)
		}
	}

	// Entities ordered by position of first appearance in the message.
	type hit struct {
		pos int
		tag string
	}
	var hits []hit
	seen := make(map[string]bool)
	for _, v := range entityVocab {
		loc := v.re.FindStringIndex(message)
		if loc == nil || seen[v.tag] {
			continue
		}
		seen[v.tag] = true
		hits = append(hits, hit{pos: loc[0], tag: strings.ToLower(v.tag)})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	for _, h := range hits {
		a.Entities = append(a.Entities, h.tag)
	}

	for _, rule := range intentRules {
		if rule.re.MatchString(message) {
			a.Intent = rule.tag
		}
	}

	return a
}
