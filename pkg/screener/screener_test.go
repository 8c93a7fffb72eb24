package screener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryContainsAllInstruments(t *testing.T) {
	r := NewRegistry()

	ids := r.List()
	assert.Len(t, ids, 15)

	for _, id := range []string{PHQ9, GAD7, CSSRS, PCPTSD5, AUDITC, DAST10,
		SCOFF, PSS10, PSWQ8, BIS15, SPIN, MDQ, ASRSA, ISI, WHO5} {
		s, err := r.Get(id)
		require.NoError(t, err, "instrument %s should be registered", id)
		assert.Equal(t, id, s.ID)
		assert.NotEmpty(t, s.Questions)
	}
}

func TestGetUnknownScreener(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("MMPI-2")
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateRejectsMalformedVectors(t *testing.T) {
	r := NewRegistry()
	phq, err := r.Get(PHQ9)
	require.NoError(t, err)

	// Wrong length
	_, err = phq.Score([]int{1, 2, 3})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	// Out-of-range value
	_, err = phq.Score([]int{0, 0, 0, 0, 0, 0, 0, 0, 4})
	require.ErrorAs(t, err, &ve)

	// Negative value
	_, err = phq.Score([]int{0, 0, 0, 0, -1, 0, 0, 0, 0})
	require.ErrorAs(t, err, &ve)
}

func TestPHQ9SeverityBands(t *testing.T) {
	r := NewRegistry()
	phq, err := r.Get(PHQ9)
	require.NoError(t, err)

	tests := []struct {
		name      string
		responses []int
		score     int
		severity  string
	}{
		{"all zeros", []int{0, 0, 0, 0, 0, 0, 0, 0, 0}, 0, SeverityMinimal},
		{"upper minimal", []int{1, 1, 1, 1, 0, 0, 0, 0, 0}, 4, SeverityMinimal},
		{"lower mild", []int{1, 1, 1, 1, 1, 0, 0, 0, 0}, 5, SeverityMild},
		{"upper mild", []int{1, 1, 1, 1, 1, 1, 1, 1, 1}, 9, SeverityMild},
		{"lower moderate", []int{2, 1, 1, 1, 1, 1, 1, 1, 1}, 10, SeverityModerate},
		{"upper moderate", []int{2, 2, 2, 2, 2, 2, 1, 1, 0}, 14, SeverityModerate},
		{"moderately severe", []int{2, 2, 2, 2, 2, 2, 2, 2, 2}, 18, SeverityModeratelySevere},
		{"lower severe", []int{3, 3, 3, 3, 3, 3, 2, 0, 0}, 20, SeveritySevere},
		{"maximum", []int{3, 3, 3, 3, 3, 3, 3, 3, 3}, 27, SeveritySevere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := phq.Score(tt.responses)
			require.NoError(t, err)
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, 27, result.MaxScore)
			assert.Equal(t, tt.severity, result.Severity)
		})
	}
}

func TestScoringIsDeterministic(t *testing.T) {
	r := NewRegistry()
	gad, err := r.Get(GAD7)
	require.NoError(t, err)

	responses := []int{2, 1, 3, 0, 2, 1, 2}
	first, err := gad.Score(responses)
	require.NoError(t, err)
	second, err := gad.Score(responses)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScoreWithinBounds(t *testing.T) {
	// Every accepted vector scores within [0, MaxScore]. Exercise each
	// instrument with its minimal and maximal vectors plus a midpoint.
	r := NewRegistry()
	for _, id := range r.List() {
		s, err := r.Get(id)
		require.NoError(t, err)

		vectors := [][]int{minVector(s), maxVector(s), midVector(s)}
		for _, v := range vectors {
			result, err := s.Score(v)
			require.NoError(t, err, "screener %s vector %v", id, v)
			assert.GreaterOrEqual(t, result.Score, 0, "screener %s", id)
			assert.LessOrEqual(t, result.Score, result.MaxScore, "screener %s", id)
			assert.Len(t, result.ItemScores, len(s.Questions), "screener %s", id)
		}
	}
}

func TestPSS10ReverseScoringInvolution(t *testing.T) {
	r := NewRegistry()
	pss, err := r.Get(PSS10)
	require.NoError(t, err)

	responses := []int{3, 2, 4, 1, 0, 3, 2, 4, 1, 3}
	direct, err := pss.Score(responses)
	require.NoError(t, err)

	// Reversal is an involution: applying it twice is the identity, so
	// scoring the doubly-reversed vector equals scoring the original.
	reversed := reverseItems(reverseItems(responses, []int{4, 5, 7, 8}, 4), []int{4, 5, 7, 8}, 4)
	again, err := pss.Score(reversed)
	require.NoError(t, err)
	assert.Equal(t, direct.Score, again.Score)
	assert.Equal(t, direct.ItemScores, again.ItemScores)
}

func TestCSSRSRiskLevels(t *testing.T) {
	r := NewRegistry()
	c, err := r.Get(CSSRS)
	require.NoError(t, err)

	tests := []struct {
		name      string
		responses []int
		severity  string
	}{
		{"no ideation", []int{0, 0, 0, 0, 0, 0}, SeverityMinimal},
		{"passive wish", []int{1, 0, 0, 0, 0, 0}, SeverityLow},
		{"active ideation", []int{1, 1, 0, 0, 0, 0}, SeverityLow},
		{"ideation with method", []int{1, 1, 1, 0, 0, 0}, SeverityModerate},
		{"ideation with intent", []int{1, 1, 1, 1, 0, 0}, SeverityHigh},
		{"plan", []int{1, 1, 1, 0, 1, 0}, SeverityHigh},
		{"recent behavior only", []int{0, 0, 0, 0, 0, 1}, SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := c.Score(tt.responses)
			require.NoError(t, err)
			assert.Equal(t, tt.severity, result.Severity)
		})
	}
}

func TestSCOFFPositiveScreen(t *testing.T) {
	r := NewRegistry()
	s, err := r.Get(SCOFF)
	require.NoError(t, err)

	result, err := s.Score([]int{1, 1, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, SeverityPositive, result.Severity)

	result, err = s.Score([]int{1, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, SeverityNegative, result.Severity)
}

func TestDAST10ReverseScoredItem(t *testing.T) {
	r := NewRegistry()
	d, err := r.Get(DAST10)
	require.NoError(t, err)

	// Item 3 ("always able to stop") answered Yes contributes 0; answered
	// No contributes 1.
	able, err := d.Score([]int{0, 0, 1, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, able.Score)

	unable, err := d.Score([]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, unable.Score)

	substantial, err := d.Score([]int{1, 1, 0, 1, 1, 1, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 6, substantial.Score)
	assert.Equal(t, "substantial", substantial.Severity)
}

func TestBIS15Subscales(t *testing.T) {
	r := NewRegistry()
	b, err := r.Get(BIS15)
	require.NoError(t, err)

	all2 := make([]int, 15)
	for i := range all2 {
		all2[i] = 2
	}
	result, err := b.Score(all2)
	require.NoError(t, err)

	require.NotNil(t, result.Subscales)
	total := result.Subscales["attention"] + result.Subscales["motor"] + result.Subscales["non_planning"]
	assert.Equal(t, result.Score, total, "subscales partition the total score")
}

func TestSPINSubscalesPartitionTotal(t *testing.T) {
	r := NewRegistry()
	s, err := r.Get(SPIN)
	require.NoError(t, err)

	vec := make([]int, 17)
	for i := range vec {
		vec[i] = i % 5
	}
	result, err := s.Score(vec)
	require.NoError(t, err)

	total := result.Subscales["fear"] + result.Subscales["avoidance"] + result.Subscales["physiological"]
	assert.Equal(t, result.Score, total)
}

func TestMDQGates(t *testing.T) {
	r := NewRegistry()
	m, err := r.Get(MDQ)
	require.NoError(t, err)

	sevenSymptoms := []int{1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0}

	positive, err := m.Score(append(append([]int{}, sevenSymptoms...), 1, 2))
	require.NoError(t, err)
	assert.Equal(t, SeverityPositive, positive.Severity)

	// Without co-occurrence the screen is negative even with 7 symptoms.
	noCoOccur, err := m.Score(append(append([]int{}, sevenSymptoms...), 0, 3))
	require.NoError(t, err)
	assert.Equal(t, SeverityNegative, noCoOccur.Severity)

	// Minor impairment fails the third gate.
	minorImpair, err := m.Score(append(append([]int{}, sevenSymptoms...), 1, 1))
	require.NoError(t, err)
	assert.Equal(t, SeverityNegative, minorImpair.Severity)
}

func TestRequiredForPriorityOrder(t *testing.T) {
	r := NewRegistry()

	required := r.RequiredFor(map[string]bool{
		SymptomSleep:           true,
		SymptomAnxiety:         true,
		SymptomSuicideIdeation: true,
		SymptomDepression:      true,
		SymptomSubstance:       true,
	})

	// Safety screeners first, then symptom order.
	assert.Equal(t, []string{CSSRS, PHQ9, GAD7, AUDITC, DAST10, ISI}, required)
}

func TestRequiredForIgnoresFalseDomains(t *testing.T) {
	r := NewRegistry()

	required := r.RequiredFor(map[string]bool{
		SymptomDepression: false,
		SymptomTrauma:     true,
	})
	assert.Equal(t, []string{PCPTSD5}, required)

	assert.Empty(t, r.RequiredFor(nil))
}

// minVector builds the lowest accepted response vector for an instrument.
func minVector(s *Screener) []int {
	out := make([]int, len(s.Questions))
	for i, q := range s.Questions {
		low := q.Options[0].Value
		for _, o := range q.Options {
			if o.Value < low {
				low = o.Value
			}
		}
		out[i] = low
	}
	return out
}

// maxVector builds the highest accepted response vector.
func maxVector(s *Screener) []int {
	out := make([]int, len(s.Questions))
	for i, q := range s.Questions {
		high := q.Options[0].Value
		for _, o := range q.Options {
			if o.Value > high {
				high = o.Value
			}
		}
		out[i] = high
	}
	return out
}

// midVector picks the middle enumerated option for each question.
func midVector(s *Screener) []int {
	out := make([]int, len(s.Questions))
	for i, q := range s.Questions {
		out[i] = q.Options[len(q.Options)/2].Value
	}
	return out
}
