package assistant

// Phase describes how deep into a conversation a session is.
type Phase string

const (
	PhaseInitial   Phase = "initial"   // turns 0-2
	PhaseExploring Phase = "exploring" // turns 3-6
	PhaseDeepDive  Phase = "deep_dive" // turns 7+
)

// phaseFor derives the conversation phase from the number of completed
// turns. It is the only source of truth for the phase.
func phaseFor(turns int) Phase {
	switch {
	case turns <= 2:
		return PhaseInitial
	case turns <= 6:
		return PhaseExploring
	default:
		return PhaseDeepDive
	}
}

// maxRecentQuestions bounds the rolling window of raw user messages.
const maxRecentQuestions = 5

// Context is the rolling conversational state of one session. It is updated
// only after a turn's response has been finalized.
type Context struct {
	CurrentTopic    string             `json:"current_topic"`
	PrimarySubject  string             `json:"primary_subject"`
	UserIntent      string             `json:"user_intent"`
	Phase           Phase              `json:"phase"`
	EstablishedFact map[string]float64 `json:"established_facts"`
	RecentQuestions []string           `json:"recent_questions"`
}

func newContext() Context {
	return Context{
		CurrentTopic:    EntityAptos,
		PrimarySubject:  EntityAptos,
		Phase:           PhaseInitial,
		EstablishedFact: make(map[string]float64),
	}
}

// update folds one completed turn into the context. The primary subject is
// sticky: it only changes when the message names a recognized currency (or
// asks about extremes, which implies the house token).
func (c *Context) update(message string, a Analysis, memoryLen int) {
	switch {
	case a.HasEntity(EntityBitcoin):
		c.PrimarySubject = EntityBitcoin
	case a.HasEntity(EntityEthereum):
		c.PrimarySubject = EntityEthereum
	case a.HasEntity(EntityAptos) || a.HasTopic(TopicATH) || a.HasTopic(TopicATL):
		c.PrimarySubject = EntityAptos
	}

	if len(a.Topics) > 0 {
		c.CurrentTopic = a.Topics[0]
	}
	c.UserIntent = a.Intent
	c.Phase = phaseFor(memoryLen)

	c.RecentQuestions = append(c.RecentQuestions, message)
	if len(c.RecentQuestions) > maxRecentQuestions {
		c.RecentQuestions = c.RecentQuestions[len(c.RecentQuestions)-maxRecentQuestions:]
	}
}

// establishFact records a resolved numeric data point (e.g. a looked-up
// price) under a "<entity>_<kind>" key for reuse later in the session.
func (c *Context) establishFact(key string, value float64) {
	c.EstablishedFact[key] = value
}
