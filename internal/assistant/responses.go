package assistant

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/chainpay-labs/paybot/internal/market"
	"github.com/chainpay-labs/paybot/internal/payroll"
)

// usd formats a dollar amount with thousands separators and two decimals
// for small amounts, whole dollars otherwise.
func usd(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	var s string
	if v < 1000 {
		s = strconv.FormatFloat(v, 'f', 2, 64)
	} else {
		whole := strconv.FormatInt(int64(v+0.5), 10)
		var b strings.Builder
		for i, r := range whole {
			if i > 0 && (len(whole)-i)%3 == 0 {
				b.WriteByte(',')
			}
			b.WriteRune(r)
		}
		s = b.String()
	}

	if neg {
		return "-$" + s
	}
	return "$" + s
}

// compactUSD renders large amounts in B/M/K scale for market figures.
func compactUSD(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.1fK", v/1e3)
	default:
		return usd(v)
	}
}

func companyLabel(name string) string {
	if name == "" {
		return "your company"
	}
	return name
}

const founderResponse = "Aptos was founded by Mo Shaikh and Avery Ching, " +
	"former Meta engineers who led work on the Diem blockchain before " +
	"launching the Aptos network in October 2022."

func gratitudeResponse(company string) string {
	return fmt.Sprintf("You're welcome! Happy to help with anything else about %s's payroll or the market.", companyLabel(company))
}

func greetingResponse(company string, a payroll.Analytics) string {
	if a.TotalEmployees == 0 {
		return fmt.Sprintf("Hey! I'm the %s payroll assistant. There's no employee data on record yet — once you add your team I can break down salaries, payments, and more.", companyLabel(company))
	}
	return fmt.Sprintf("Hey! I'm the %s payroll assistant. You have %d employees on record with a total payroll of %s — ask me anything about salaries, payments, or the market.",
		companyLabel(company), a.TotalEmployees, usd(a.TotalPayroll))
}

func companyNameResponse(company string) string {
	if company == "" {
		return "I don't have a company name on record yet."
	}
	return fmt.Sprintf("Your company is %s.", company)
}

func companyDoesResponse(company string, a payroll.Analytics) string {
	if a.TotalEmployees == 0 {
		return fmt.Sprintf("%s runs its payroll on-chain through ChainPay. It's just getting set up — no employees on record yet.", companyLabel(company))
	}
	return fmt.Sprintf("%s runs its payroll on-chain through ChainPay, paying a team of %d across %d departments directly on the Aptos network.",
		companyLabel(company), a.TotalEmployees, len(a.Departments))
}

func companyOverviewResponse(company string, a payroll.Analytics) string {
	if a.TotalEmployees == 0 {
		return fmt.Sprintf("%s has no employees on record yet. Add your team and I can give you a full payroll breakdown.", companyLabel(company))
	}
	return fmt.Sprintf("%s at a glance: %d employees (%d active), total payroll %s, average salary %s, completed payments %s across %d transactions.",
		companyLabel(company), a.TotalEmployees, a.ActiveCount, usd(a.TotalPayroll), usd(a.AverageSalary), usd(a.CompletedTotal), a.CompletedCount)
}

func employeeCountResponse(company string, a payroll.Analytics) string {
	switch a.TotalEmployees {
	case 0:
		return fmt.Sprintf("%s has no employees on record yet.", companyLabel(company))
	case 1:
		return fmt.Sprintf("%s has 1 employee on record.", companyLabel(company))
	default:
		return fmt.Sprintf("%s has %d employees on record, %d of them active.", companyLabel(company), a.TotalEmployees, a.ActiveCount)
	}
}

func highestPaidResponse(a payroll.Analytics) string {
	if a.HighestPaid == nil {
		return "There are no employees on record yet, so there's no highest-paid employee."
	}
	e := a.HighestPaid
	return fmt.Sprintf("%s is your highest-paid employee at %s%s — that's %.1f%% of total payroll.",
		e.Name, usd(e.Salary), roleSuffix(e), a.PayrollShare(e.Salary))
}

func lowestPaidResponse(a payroll.Analytics) string {
	if a.LowestPaid == nil {
		return "There are no employees on record yet, so there's no lowest-paid employee."
	}
	e := a.LowestPaid
	return fmt.Sprintf("%s is your lowest-paid employee at %s%s — %.1f%% of total payroll.",
		e.Name, usd(e.Salary), roleSuffix(e), a.PayrollShare(e.Salary))
}

func roleSuffix(e *payroll.Employee) string {
	switch {
	case e.Designation != "" && e.Department != "":
		return fmt.Sprintf(" (%s, %s)", e.Designation, e.Department)
	case e.Designation != "":
		return fmt.Sprintf(" (%s)", e.Designation)
	case e.Department != "":
		return fmt.Sprintf(" (%s)", e.Department)
	default:
		return ""
	}
}

func newestEmployeeResponse(a payroll.Analytics) string {
	if a.NewestEmployee == nil {
		return "There are no employees on record yet."
	}
	e := a.NewestEmployee
	if e.CreatedAt.IsZero() {
		return fmt.Sprintf("%s%s is your most recent hire.", e.Name, roleSuffix(e))
	}
	return fmt.Sprintf("%s%s is your most recent hire, added on %s.", e.Name, roleSuffix(e), e.CreatedAt.Format("January 2, 2006"))
}

func rosterResponse(company string, snap payroll.Snapshot) string {
	if len(snap.Employees) == 0 {
		return fmt.Sprintf("%s has no employees on record yet.", companyLabel(company))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s has %d employees:\n", companyLabel(company), len(snap.Employees))
	for _, e := range snap.Employees {
		fmt.Fprintf(&b, "• %s%s — %s\n", e.Name, roleSuffix(&e), usd(e.Salary))
	}
	return strings.TrimRight(b.String(), "\n")
}

func lastPaymentResponse(a payroll.Analytics) string {
	if a.LastPayment == nil {
		return "No payments on record yet."
	}
	p := a.LastPayment
	when := ""
	if !p.CreatedAt.IsZero() {
		when = " on " + p.CreatedAt.Format("January 2, 2006")
	}
	return fmt.Sprintf("The last payment was %s (%s)%s.", usd(p.Amount), p.Status, when)
}

func salaryOverviewResponse(company string, a payroll.Analytics) string {
	if a.TotalEmployees == 0 {
		return fmt.Sprintf("%s has no salary data yet — add employees first.", companyLabel(company))
	}
	return fmt.Sprintf("Salary overview for %s: total payroll %s across %d employees, average %s, ranging from %s to %s.",
		companyLabel(company), usd(a.TotalPayroll), a.TotalEmployees, usd(a.AverageSalary), usd(a.MinSalary), usd(a.MaxSalary))
}

func averageSalaryResponse(a payroll.Analytics) string {
	if a.TotalEmployees == 0 {
		return "There's no salary data yet, so I can't compute an average."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "The average salary is %s. By department:\n", usd(a.AverageSalary))

	names := make([]string, 0, len(a.Departments))
	for name := range a.Departments {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := a.Departments[name]
		fmt.Fprintf(&b, "• %s: %d employees, average %s\n", name, d.Count, usd(d.AverageSalary))
	}
	return strings.TrimRight(b.String(), "\n")
}

func priceResponse(q *market.Quote) string {
	return fmt.Sprintf("%s is trading at %s (%+.1f%% in 24h, %+.1f%% over 7 days). Market cap %s, rank #%d, 24h volume %s.",
		q.Name, usd(q.Price), q.Change24h, q.Change7d, compactUSD(q.MarketCap), q.Rank, compactUSD(q.Volume24h))
}

func athResponse(q *market.Quote) string {
	return fmt.Sprintf("%s hit its all-time high of %s on %s. It's currently %s, %.1f%% below that peak.",
		q.Name, usd(q.ATH), q.ATHDate.Format("January 2, 2006"), usd(q.Price), -q.FromATHPct)
}

func atlResponse(q *market.Quote) string {
	return fmt.Sprintf("%s bottomed at its all-time low of %s on %s. It's currently %s, up %.1f%% from that low.",
		q.Name, usd(q.ATL), q.ATLDate.Format("January 2, 2006"), usd(q.Price), q.FromATLPct)
}

// Fallback phrases, grouped by situation. One is chosen uniformly at random.

var greetingFallbacks = []string{
	"Hello! Ask me about your team, payroll, or crypto prices.",
	"Hi there! I can break down salaries, payments, and market data — what would you like to know?",
	"Hey! What can I look up for you today?",
}

var analysisFallbacks = []string{
	"Let me think about that differently — could you point me at the employees, payments, or market data you're interested in?",
	"I've been tracking our conversation but that one didn't map to anything I know. Try asking about payroll figures or a specific coin.",
	"Interesting question. I'm best with payroll analytics and market prices — can you rephrase it in those terms?",
}

var clarifyFallbacks = []string{
	"I'm not sure I follow. Could you rephrase that?",
	"Can you give me a bit more detail? I can answer questions about employees, payments, and crypto prices.",
	"I didn't catch that — try asking about your payroll or a supported coin like Aptos, Bitcoin, or Ethereum.",
}
