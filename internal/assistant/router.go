package assistant

import (
	"regexp"

	"github.com/chainpay-labs/paybot/internal/payroll"
)

// Reply kinds, recorded with every turn.
const (
	KindCompany      = "company_intelligence"
	KindMarket       = "market_data"
	KindContinuation = "context_continuation"
	KindGenerative   = "generative"
	KindFallback     = "fallback"
)

// Reply is the finalized output of one turn.
type Reply struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

// routeInput carries everything a handler may consult for one turn.
type routeInput struct {
	Message   string // normalized message
	Analysis  Analysis
	Analytics payroll.Analytics
	Snapshot  payroll.Snapshot
	Session   *Session
}

// companyRule pairs a message pattern with a deterministic response builder.
// The table is evaluated in order and the first match wins.
type companyRule struct {
	match   *regexp.Regexp
	respond func(in *routeInput) string
}

var companyRules = []companyRule{
	{
		regexp.MustCompile(`(?i)\b(thanks|thank you|thx|appreciate (it|that))\b`),
		func(in *routeInput) string { return gratitudeResponse(in.Snapshot.CompanyName) },
	},
	{
		// Bare greeting only; "hi, what's the APT price" falls through.
		regexp.MustCompile(`(?i)^\s*(hi|hello|hey|gm|good (morning|afternoon|evening))[\s!.,]*$`),
		func(in *routeInput) string { return greetingResponse(in.Snapshot.CompanyName, in.Analytics) },
	},
	{
		regexp.MustCompile(`(?i)salar(y|ies).{0,20}\b(overview|report|summary)\b|\b(overview|report|summary)\b.{0,20}salar(y|ies)`),
		func(in *routeInput) string { return salaryOverviewResponse(in.Snapshot.CompanyName, in.Analytics) },
	},
	{
		regexp.MustCompile(`(?i)\b(company('s)?|our) name\b|\bname of (the |our )?company\b`),
		func(in *routeInput) string { return companyNameResponse(in.Snapshot.CompanyName) },
	},
	{
		regexp.MustCompile(`(?i)what (does|do) (the |our |this )?company (do|make|sell)|what is (the |our )?company about`),
		func(in *routeInput) string { return companyDoesResponse(in.Snapshot.CompanyName, in.Analytics) },
	},
	{
		regexp.MustCompile(`(?i)\bcompany overview\b|\boverview of (the|our) company\b|tell me about (the|our|my) company`),
		func(in *routeInput) string { return companyOverviewResponse(in.Snapshot.CompanyName, in.Analytics) },
	},
	{
		regexp.MustCompile(`(?i)how many (employees|people|staff)|\b(employee|staff) count\b|\bheadcount\b|number of employees`),
		func(in *routeInput) string { return employeeCountResponse(in.Snapshot.CompanyName, in.Analytics) },
	},
	{
		regexp.MustCompile(`(?i)\b(highest|top|best)[- ]?(paid|earning|earner|salary)\b|who (earns|makes) the most`),
		func(in *routeInput) string { return highestPaidResponse(in.Analytics) },
	},
	{
		regexp.MustCompile(`(?i)\b(lowest|least)[- ]?(paid|earning|earner|salary)\b|who (earns|makes) the least`),
		func(in *routeInput) string { return lowestPaidResponse(in.Analytics) },
	},
	{
		regexp.MustCompile(`(?i)\b(newest|latest|most recent|last) (employee|hire|team member)\b|who (joined|was hired) (last|most recently)`),
		func(in *routeInput) string { return newestEmployeeResponse(in.Analytics) },
	},
	{
		regexp.MustCompile(`(?i)\b(list|show|all)\b.{0,20}\b(employees|staff|team)\b|\bemployee (list|roster)\b|\broster\b`),
		func(in *routeInput) string { return rosterResponse(in.Snapshot.CompanyName, in.Snapshot) },
	},
	{
		regexp.MustCompile(`(?i)\b(last|latest|most recent) (payment|transaction|transfer|disbursement)\b`),
		func(in *routeInput) string { return lastPaymentResponse(in.Analytics) },
	},
	{
		regexp.MustCompile(`(?i)\baverage salar(y|ies)\b|\bsalary average\b|\b(salary|department) breakdown\b|breakdown by department`),
		func(in *routeInput) string { return averageSalaryResponse(in.Analytics) },
	},
}

// supportedSymbols are the currencies the market tier can resolve.
var supportedSymbols = map[string]bool{
	EntityAptos:    true,
	EntityBitcoin:  true,
	EntityEthereum: true,
}

// wantsMarket reports whether the analysis asks for market data directly.
func wantsMarket(a Analysis) bool {
	return a.HasTopic(TopicATH) || a.HasTopic(TopicATL) || a.HasTopic(TopicPricing)
}

// wantsFounder reports whether the analysis asks who founded the network.
func wantsFounder(a Analysis) bool {
	return a.HasEntity(EntityFounder) || a.HasTopic(TopicFoundation)
}

// factTypeFor maps the analysis to the market fact being requested.
func factTypeFor(a Analysis) string {
	switch {
	case a.HasTopic(TopicATH):
		return "ath"
	case a.HasTopic(TopicATL):
		return "atl"
	default:
		return "price"
	}
}

// resolveSubject picks the currency a market question is about: the first
// supported symbol mentioned, else the session's sticky primary subject.
func resolveSubject(a Analysis, c *Context) string {
	for _, e := range a.Entities {
		if supportedSymbols[e] {
			return e
		}
	}
	return c.PrimarySubject
}

// recentMarketTopic scans the last n turns, most recent first, for a market
// topic and returns the corresponding fact type.
func recentMarketTopic(m *Memory, n int) (string, bool) {
	recent := m.Recent(n)
	for i := len(recent) - 1; i >= 0; i-- {
		for _, topic := range recent[i].Topics {
			switch topic {
			case TopicATH:
				return "ath", true
			case TopicATL:
				return "atl", true
			case TopicPricing:
				return "price", true
			}
		}
	}
	return "", false
}
