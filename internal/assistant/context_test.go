package assistant

import "testing"

func TestPhaseThresholds(t *testing.T) {
	tests := []struct {
		turns int
		want  Phase
	}{
		{0, PhaseInitial},
		{2, PhaseInitial},
		{3, PhaseExploring},
		{6, PhaseExploring},
		{7, PhaseDeepDive},
		{50, PhaseDeepDive},
	}
	for _, tt := range tests {
		if got := phaseFor(tt.turns); got != tt.want {
			t.Errorf("phaseFor(%d) = %q, want %q", tt.turns, got, tt.want)
		}
	}
}

func TestPhaseMonotonic(t *testing.T) {
	order := map[Phase]int{PhaseInitial: 0, PhaseExploring: 1, PhaseDeepDive: 2}
	prev := PhaseInitial
	for turns := 0; turns < 30; turns++ {
		cur := phaseFor(turns)
		if order[cur] < order[prev] {
			t.Fatalf("phase regressed from %q to %q at %d turns", prev, cur, turns)
		}
		prev = cur
	}
}

func TestContextDefaults(t *testing.T) {
	c := newContext()
	if c.PrimarySubject != EntityAptos {
		t.Errorf("expected default subject aptos, got %q", c.PrimarySubject)
	}
	if c.CurrentTopic != EntityAptos {
		t.Errorf("expected default topic aptos, got %q", c.CurrentTopic)
	}
	if c.Phase != PhaseInitial {
		t.Errorf("expected initial phase, got %q", c.Phase)
	}
}

func TestContextSubjectPriority(t *testing.T) {
	c := newContext()

	// Bitcoin outranks ethereum and aptos when several are mentioned.
	c.update("btc vs eth", Analyze("is btc better than eth?"), 1)
	if c.PrimarySubject != EntityBitcoin {
		t.Errorf("expected bitcoin, got %q", c.PrimarySubject)
	}

	// No recognized entity: subject is sticky.
	c.update("what about that", Analyze("what about that"), 2)
	if c.PrimarySubject != EntityBitcoin {
		t.Errorf("expected sticky bitcoin, got %q", c.PrimarySubject)
	}

	// ATH topic without an entity implies the house token.
	c.update("all time high?", Analyze("what was the all time high?"), 3)
	if c.PrimarySubject != EntityAptos {
		t.Errorf("expected aptos via ath topic, got %q", c.PrimarySubject)
	}
}

func TestContextRecentQuestionsBounded(t *testing.T) {
	c := newContext()
	messages := []string{"one", "two", "three", "four", "five", "six", "seven"}
	for i, m := range messages {
		c.update(m, Analyze(m), i+1)
	}

	if len(c.RecentQuestions) != maxRecentQuestions {
		t.Fatalf("expected %d recent questions, got %d", maxRecentQuestions, len(c.RecentQuestions))
	}
	if c.RecentQuestions[0] != "three" || c.RecentQuestions[4] != "seven" {
		t.Errorf("unexpected window %v", c.RecentQuestions)
	}
}

func TestContextCurrentTopicFirstWins(t *testing.T) {
	c := newContext()
	c.update("price and employees", Analyze("price of aptos and our employees"), 1)
	if c.CurrentTopic != TopicPricing {
		t.Errorf("expected first topic %q, got %q", TopicPricing, c.CurrentTopic)
	}
}

func TestEstablishFact(t *testing.T) {
	c := newContext()
	c.establishFact("aptos_price", 8.42)
	c.establishFact("aptos_price", 8.50) // last write per key wins

	if got := c.EstablishedFact["aptos_price"]; got != 8.50 {
		t.Errorf("expected 8.50, got %f", got)
	}
}
