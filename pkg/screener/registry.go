package screener

import (
	"sort"
)

// Symptom domain keys as produced by the engine's structured extractor.
const (
	SymptomSuicideIdeation = "suicide_ideation"
	SymptomDepression      = "depression"
	SymptomAnxiety         = "anxiety"
	SymptomTrauma          = "trauma"
	SymptomSubstance       = "substance"
	SymptomEating          = "eating"
	SymptomStress          = "stress"
	SymptomWorry           = "worry"
	SymptomImpulsivity     = "impulsivity"
	SymptomSocialAnxiety   = "social_anxiety"
	SymptomMania           = "mania"
	SymptomAttention       = "attention"
	SymptomSleep           = "sleep"
	SymptomLowWellbeing    = "low_wellbeing"
)

// symptomOrder fixes the canonical priority of symptom domains. Safety
// screeners always come first; the remainder follow interview order.
var symptomOrder = []string{
	SymptomSuicideIdeation,
	SymptomDepression,
	SymptomAnxiety,
	SymptomTrauma,
	SymptomSubstance,
	SymptomEating,
	SymptomStress,
	SymptomWorry,
	SymptomImpulsivity,
	SymptomSocialAnxiety,
	SymptomMania,
	SymptomAttention,
	SymptomSleep,
	SymptomLowWellbeing,
}

// symptomScreeners maps symptom domains to mandatory screeners. The mapping
// is fixed clinical data, not learned behavior.
var symptomScreeners = map[string][]string{
	SymptomSuicideIdeation: {CSSRS},
	SymptomDepression:      {PHQ9},
	SymptomAnxiety:         {GAD7},
	SymptomTrauma:          {PCPTSD5},
	SymptomSubstance:       {AUDITC, DAST10},
	SymptomEating:          {SCOFF},
	SymptomStress:          {PSS10},
	SymptomWorry:           {PSWQ8},
	SymptomImpulsivity:     {BIS15},
	SymptomSocialAnxiety:   {SPIN},
	SymptomMania:           {MDQ},
	SymptomAttention:       {ASRSA},
	SymptomSleep:           {ISI},
	SymptomLowWellbeing:    {WHO5},
}

// Registry is the immutable library of screening instruments. Construct it
// once at startup and share it; all lookups are read-only.
type Registry struct {
	byID map[string]*Screener
}

// NewRegistry builds the registry with every built-in instrument.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]*Screener)}
	for _, s := range []*Screener{
		phq9(), gad7(), cssrs(), pcptsd5(), auditc(), dast10(), scoff(),
		pss10(), pswq8(), bis15(), spin(), mdq(), asrsA(), isi(), who5(),
	} {
		r.byID[s.ID] = s
	}
	return r
}

// List returns all instrument identifiers in lexical order.
func (r *Registry) List() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Get returns the instrument with the given identifier.
func (r *Registry) Get(id string) (*Screener, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, &ValidationError{ScreenerID: id, Message: "unknown screener"}
	}
	return s, nil
}

// RequiredFor maps detected symptom domains to the mandatory screeners, in
// canonical priority order (safety screeners first), without duplicates.
func (r *Registry) RequiredFor(symptoms map[string]bool) []string {
	var required []string
	seen := make(map[string]bool)
	for _, domain := range symptomOrder {
		if !symptoms[domain] {
			continue
		}
		for _, id := range symptomScreeners[domain] {
			if !seen[id] {
				seen[id] = true
				required = append(required, id)
			}
		}
	}
	return required
}
