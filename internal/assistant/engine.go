// Package assistant implements the conversational engine behind the
// ChainPay dashboard chat: typo normalization, pattern-based message
// analysis, per-session context tracking, payroll analytics templating, and
// a tiered response router that only reaches for a generative model when no
// deterministic answer exists.
package assistant

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/chainpay-labs/paybot/internal/llm"
	"github.com/chainpay-labs/paybot/internal/market"
	"github.com/chainpay-labs/paybot/internal/payroll"
)

// Engine routes messages to responses. It is stateless across calls: all
// conversational state lives in the Session passed to Respond, so one
// Engine can serve any number of independent sessions.
type Engine struct {
	gen    llm.Provider // optional; nil skips the generative tier
	model  string
	oracle market.Oracle // optional; nil downgrades market questions to fallback
}

// New creates an engine with the given capabilities. Either may be nil.
func New(gen llm.Provider, model string, oracle market.Oracle) *Engine {
	return &Engine{gen: gen, model: model, oracle: oracle}
}

// Respond processes one turn. It always returns a reply: malformed input,
// missing data, and external failures all degrade to templated text rather
// than errors. Session state is updated only after the reply is finalized.
// Callers must not run concurrent turns against the same Session.
func (e *Engine) Respond(ctx context.Context, s *Session, message string, snap payroll.Snapshot) Reply {
	raw := strings.TrimSpace(message)
	corrected := Normalize(raw)
	analysis := Analyze(corrected)

	in := &routeInput{
		Message:   corrected,
		Analysis:  analysis,
		Analytics: payroll.BuildAnalytics(snap),
		Snapshot:  snap,
		Session:   s,
	}

	reply := e.route(ctx, in)

	s.Memory.Record(Turn{
		Message:   corrected,
		Response:  reply.Text,
		Kind:      reply.Kind,
		Timestamp: time.Now().UTC(),
		Topics:    analysis.Topics,
		Entities:  analysis.Entities,
		Intent:    analysis.Intent,
		Subject:   s.Context.PrimarySubject,
	})
	// The question window keeps the user's words, not the corrected form.
	s.Context.update(raw, analysis, s.Memory.Len())

	return reply
}

// route walks the decision tiers in priority order.
func (e *Engine) route(ctx context.Context, in *routeInput) Reply {
	// Tier 1: deterministic company-intelligence templates.
	for _, rule := range companyRules {
		if rule.match.MatchString(in.Message) {
			return Reply{Text: rule.respond(in), Kind: KindCompany}
		}
	}

	// Tier 2: direct market answers.
	if wantsMarket(in.Analysis) {
		return e.marketAnswer(ctx, in, factTypeFor(in.Analysis), KindMarket)
	}
	if wantsFounder(in.Analysis) {
		return Reply{Text: founderResponse, Kind: KindMarket}
	}

	// Tier 3: follow-up questions inherit the recent market thread.
	if in.Session.Memory.Len() > 2 && in.Analysis.Intent == IntentQuestion {
		if factType, ok := recentMarketTopic(&in.Session.Memory, 3); ok {
			return e.marketAnswer(ctx, in, factType, KindContinuation)
		}
	}

	// Tier 4: generative delegation.
	if e.gen != nil {
		if text, err := e.generate(ctx, in); err != nil {
			log.Printf("assistant: generative tier failed: %v", err)
		} else if text != "" {
			return Reply{Text: text, Kind: KindGenerative}
		}
	}

	// Tier 5: canned fallback.
	return Reply{Text: e.fallbackText(in), Kind: KindFallback}
}

// marketAnswer resolves the subject currency and answers from the oracle.
// Oracle failures are logged and downgraded to fallback.
func (e *Engine) marketAnswer(ctx context.Context, in *routeInput, factType, kind string) Reply {
	subject := resolveSubject(in.Analysis, &in.Session.Context)

	if e.oracle == nil {
		return Reply{Text: e.fallbackText(in), Kind: KindFallback}
	}

	quote, err := e.oracle.Lookup(ctx, subject)
	if err != nil {
		log.Printf("assistant: market lookup for %q failed: %v", subject, err)
		return Reply{Text: e.fallbackText(in), Kind: KindFallback}
	}

	var text string
	var value float64
	switch factType {
	case "ath":
		text, value = athResponse(quote), quote.ATH
	case "atl":
		text, value = atlResponse(quote), quote.ATL
	default:
		text, value = priceResponse(quote), quote.Price
	}

	in.Session.Context.establishFact(fmt.Sprintf("%s_%s", subject, factType), value)
	return Reply{Text: text, Kind: kind}
}

const generativeSystemPrompt = `You are the payroll assistant inside the ChainPay dashboard, a blockchain payroll product on the Aptos network. Answer briefly and concretely using the company context provided. If the context doesn't contain the answer, say what you do know and what's missing. Never invent payroll figures.`

// generate delegates the message plus rendered company context to the
// configured text-generation provider.
func (e *Engine) generate(ctx context.Context, in *routeInput) (string, error) {
	resp, err := e.gen.Complete(ctx, llm.CompletionRequest{
		Model: e.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: generativeSystemPrompt},
			{Role: llm.RoleUser, Content: buildContextPrompt(in)},
		},
		MaxTokens:   512,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

// buildContextPrompt renders analytics, established facts, and recent
// conversation for the generative tier.
func buildContextPrompt(in *routeInput) string {
	var b strings.Builder
	a := in.Analytics

	b.WriteString("## Company\n")
	fmt.Fprintf(&b, "Name: %s\n", companyLabel(in.Snapshot.CompanyName))
	fmt.Fprintf(&b, "Employees: %d (%d active)\n", a.TotalEmployees, a.ActiveCount)
	if a.TotalEmployees > 0 {
		fmt.Fprintf(&b, "Total payroll: %s, average salary: %s\n", usd(a.TotalPayroll), usd(a.AverageSalary))
	}
	if a.CompletedCount > 0 {
		fmt.Fprintf(&b, "Completed payments: %d totalling %s, pending: %d\n", a.CompletedCount, usd(a.CompletedTotal), a.PendingCount)
	}

	facts := in.Session.Context.EstablishedFact
	if len(facts) > 0 {
		b.WriteString("\n## Established facts\n")
		for key, value := range facts {
			fmt.Fprintf(&b, "- %s = %.4f\n", key, value)
		}
	}

	if recent := in.Session.Memory.Recent(5); len(recent) > 0 {
		b.WriteString("\n## Recent conversation\n")
		for _, turn := range recent {
			fmt.Fprintf(&b, "user: %s\nassistant: %s\n", turn.Message, turn.Response)
		}
	}

	fmt.Fprintf(&b, "\n## New message\n%s\n", in.Message)
	return b.String()
}

// fallbackText selects a canned phrase for the situation, uniformly at
// random within its group.
func (e *Engine) fallbackText(in *routeInput) string {
	var group []string
	switch {
	case in.Analysis.HasTopic(TopicGreeting):
		group = greetingFallbacks
	case in.Session.Memory.Len() > 3:
		group = analysisFallbacks
	default:
		group = clarifyFallbacks
	}
	return group[rand.IntN(len(group))]
}
