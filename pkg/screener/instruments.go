package screener

import (
	"fmt"

	"github.com/meridianhealth/intake/pkg/models"
)

// Severity labels shared across instruments. Instruments with graded bands
// use the minimal..severe ladder; binary screens use positive/negative.
const (
	SeverityMinimal          = "minimal"
	SeverityMild             = "mild"
	SeverityModerate         = "moderate"
	SeverityModeratelySevere = "moderately_severe"
	SeveritySevere           = "severe"
	SeverityLow              = "low"
	SeverityHigh             = "high"
	SeverityPositive         = "positive_screen"
	SeverityNegative         = "negative_screen"
)

// Canonical instrument identifiers.
const (
	PHQ9    = "PHQ-9"
	GAD7    = "GAD-7"
	CSSRS   = "C-SSRS"
	PCPTSD5 = "PC-PTSD-5"
	AUDITC  = "AUDIT-C"
	DAST10  = "DAST-10"
	SCOFF   = "SCOFF"
	PSS10   = "PSS-10"
	PSWQ8   = "PSWQ-8"
	BIS15   = "BIS-15"
	SPIN    = "SPIN"
	MDQ     = "MDQ"
	ASRSA   = "ASRS-A"
	ISI     = "ISI"
	WHO5    = "WHO-5"
)

// Shared option sets.

func frequency4() []models.Option {
	return []models.Option{
		{Value: 0, Label: "Not at all"},
		{Value: 1, Label: "Several days"},
		{Value: 2, Label: "More than half the days"},
		{Value: 3, Label: "Nearly every day"},
	}
}

func yesNo() []models.Option {
	return []models.Option{
		{Value: 0, Label: "No"},
		{Value: 1, Label: "Yes"},
	}
}

func often5() []models.Option {
	return []models.Option{
		{Value: 0, Label: "Never"},
		{Value: 1, Label: "Almost never"},
		{Value: 2, Label: "Sometimes"},
		{Value: 3, Label: "Fairly often"},
		{Value: 4, Label: "Very often"},
	}
}

func typical5() []models.Option {
	return []models.Option{
		{Value: 1, Label: "Not at all typical of me"},
		{Value: 2, Label: "Slightly typical of me"},
		{Value: 3, Label: "Somewhat typical of me"},
		{Value: 4, Label: "Moderately typical of me"},
		{Value: 5, Label: "Very typical of me"},
	}
}

func rarely4() []models.Option {
	return []models.Option{
		{Value: 1, Label: "Rarely / never"},
		{Value: 2, Label: "Occasionally"},
		{Value: 3, Label: "Often"},
		{Value: 4, Label: "Almost always / always"},
	}
}

func bothered5() []models.Option {
	return []models.Option{
		{Value: 0, Label: "Not at all"},
		{Value: 1, Label: "A little bit"},
		{Value: 2, Label: "Somewhat"},
		{Value: 3, Label: "Very much"},
		{Value: 4, Label: "Extremely"},
	}
}

func questions(texts []string, opts func() []models.Option) []Question {
	qs := make([]Question, len(texts))
	for i, t := range texts {
		qs[i] = Question{N: i + 1, Text: t, Options: opts()}
	}
	return qs
}

func phq9() *Screener {
	texts := []string{
		"Little interest or pleasure in doing things?",
		"Feeling down, depressed, or hopeless?",
		"Trouble falling or staying asleep, or sleeping too much?",
		"Feeling tired or having little energy?",
		"Poor appetite or overeating?",
		"Feeling bad about yourself, or that you are a failure or have let yourself or your family down?",
		"Trouble concentrating on things, such as reading the newspaper or watching television?",
		"Moving or speaking so slowly that other people could have noticed? Or the opposite, being so fidgety or restless that you have been moving around a lot more than usual?",
		"Thoughts that you would be better off dead, or of hurting yourself in some way?",
	}
	bands := []band{
		{0, 4, SeverityMinimal, "Symptoms do not suggest clinically significant depression."},
		{5, 9, SeverityMild, "Mild depressive symptoms; watchful waiting and repeat screening are appropriate."},
		{10, 14, SeverityModerate, "Moderate depression; treatment planning with counseling or pharmacotherapy should be considered."},
		{15, 19, SeverityModeratelySevere, "Moderately severe depression; active treatment with pharmacotherapy and/or psychotherapy is indicated."},
		{20, 27, SeveritySevere, "Severe depression; immediate initiation of pharmacotherapy and expedited referral to a mental health specialist is indicated."},
	}
	return &Screener{
		ID:          PHQ9,
		Description: "Patient Health Questionnaire-9: depression severity over the last two weeks.",
		Questions:   questions(texts, frequency4),
		score: func(items []int) *models.ScoredResult {
			s := sum(items)
			b := bandFor(bands, s)
			return &models.ScoredResult{
				ID:                   PHQ9,
				Score:                s,
				MaxScore:             27,
				Severity:             b.severity,
				Interpretation:       fmt.Sprintf("PHQ-9 total %d/27 indicates %s depression.", s, label(b.severity)),
				ClinicalSignificance: b.significance,
				ItemScores:           append([]int(nil), items...),
			}
		},
	}
}

func gad7() *Screener {
	texts := []string{
		"Feeling nervous, anxious, or on edge?",
		"Not being able to stop or control worrying?",
		"Worrying too much about different things?",
		"Trouble relaxing?",
		"Being so restless that it is hard to sit still?",
		"Becoming easily annoyed or irritable?",
		"Feeling afraid, as if something awful might happen?",
	}
	bands := []band{
		{0, 4, SeverityMinimal, "Symptoms do not suggest clinically significant anxiety."},
		{5, 9, SeverityMild, "Mild anxiety; monitor and re-screen at follow-up."},
		{10, 14, SeverityModerate, "Moderate anxiety; further evaluation and treatment planning are warranted."},
		{15, 21, SeveritySevere, "Severe anxiety; active treatment is warranted."},
	}
	return &Screener{
		ID:          GAD7,
		Description: "Generalized Anxiety Disorder-7: anxiety severity over the last two weeks.",
		Questions:   questions(texts, frequency4),
		score: func(items []int) *models.ScoredResult {
			s := sum(items)
			b := bandFor(bands, s)
			return &models.ScoredResult{
				ID:                   GAD7,
				Score:                s,
				MaxScore:             21,
				Severity:             b.severity,
				Interpretation:       fmt.Sprintf("GAD-7 total %d/21 indicates %s anxiety.", s, label(b.severity)),
				ClinicalSignificance: b.significance,
				ItemScores:           append([]int(nil), items...),
			}
		},
	}
}

func cssrs() *Screener {
	texts := []string{
		"In the past month, have you wished you were dead or wished you could go to sleep and not wake up?",
		"In the past month, have you had any actual thoughts of killing yourself?",
		"Have you been thinking about how you might do this?",
		"Have you had these thoughts and had some intention of acting on them?",
		"Have you started to work out or worked out the details of how to kill yourself? Do you intend to carry out this plan?",
		"In the past three months, have you done anything, started to do anything, or prepared to do anything to end your life?",
	}
	return &Screener{
		ID:          CSSRS,
		Description: "Columbia Suicide Severity Rating Scale (screen version): suicidal ideation and behavior.",
		Questions:   questions(texts, yesNo),
		score: func(items []int) *models.ScoredResult {
			s := sum(items)
			// Items 4-6 (intent, plan, behavior) define high risk; item 3
			// (method) defines moderate; items 1-2 alone are low risk.
			severity := SeverityMinimal
			significance := "No current suicidal ideation reported."
			switch {
			case items[3] == 1 || items[4] == 1 || items[5] == 1:
				severity = SeverityHigh
				significance = "Ideation with intent, plan, or recent suicidal behavior. Immediate safety evaluation by a clinician is required before the patient leaves care."
			case items[2] == 1:
				severity = SeverityModerate
				significance = "Ideation with method but without stated intent or plan. Same-day clinical evaluation and safety planning are indicated."
			case items[0] == 1 || items[1] == 1:
				severity = SeverityLow
				significance = "Passive ideation or wish to be dead without method, intent, or plan. Safety planning and follow-up screening are indicated."
			}
			return &models.ScoredResult{
				ID:                   CSSRS,
				Score:                s,
				MaxScore:             6,
				Severity:             severity,
				Interpretation:       fmt.Sprintf("C-SSRS screen endorsed %d of 6 items; risk level %s.", s, severity),
				ClinicalSignificance: significance,
				ItemScores:           append([]int(nil), items...),
			}
		},
	}
}

func pcptsd5() *Screener {
	texts := []string{
		"In the past month, have you had nightmares about the event(s) or thought about the event(s) when you did not want to?",
		"Tried hard not to think about the event(s) or went out of your way to avoid situations that reminded you of the event(s)?",
		"Been constantly on guard, watchful, or easily startled?",
		"Felt numb or detached from people, activities, or your surroundings?",
		"Felt guilty or unable to stop blaming yourself or others for the event(s) or any problems the event(s) may have caused?",
	}
	return &Screener{
		ID:          PCPTSD5,
		Description: "Primary Care PTSD Screen for DSM-5.",
		Questions:   questions(texts, yesNo),
		score: func(items []int) *models.ScoredResult {
			s := sum(items)
			severity := SeverityNegative
			significance := "Below the PC-PTSD-5 cut point; PTSD is unlikely but re-screen if trauma exposure continues."
			if s >= 3 {
				severity = SeverityPositive
				significance = "At or above the PC-PTSD-5 cut point; probable PTSD. Full diagnostic evaluation is indicated."
			}
			return &models.ScoredResult{
				ID:                   PCPTSD5,
				Score:                s,
				MaxScore:             5,
				Severity:             severity,
				Interpretation:       fmt.Sprintf("PC-PTSD-5 total %d/5 (%s).", s, label(severity)),
				ClinicalSignificance: significance,
				ItemScores:           append([]int(nil), items...),
			}
		},
	}
}

func auditc() *Screener {
	freq := []models.Option{
		{Value: 0, Label: "Never"},
		{Value: 1, Label: "Monthly or less"},
		{Value: 2, Label: "2-4 times a month"},
		{Value: 3, Label: "2-3 times a week"},
		{Value: 4, Label: "4 or more times a week"},
	}
	amount := []models.Option{
		{Value: 0, Label: "1 or 2"},
		{Value: 1, Label: "3 or 4"},
		{Value: 2, Label: "5 or 6"},
		{Value: 3, Label: "7 to 9"},
		{Value: 4, Label: "10 or more"},
	}
	binge := []models.Option{
		{Value: 0, Label: "Never"},
		{Value: 1, Label: "Less than monthly"},
		{Value: 2, Label: "Monthly"},
		{Value: 3, Label: "Weekly"},
		{Value: 4, Label: "Daily or almost daily"},
	}
	bands := []band{
		{0, 3, SeverityLow, "Low-risk drinking pattern."},
		{4, 7, SeverityModerate, "Positive screen for hazardous drinking; brief intervention and full AUDIT are indicated."},
		{8, 12, SeverityHigh, "High-risk drinking consistent with alcohol use disorder; referral for assessment and treatment is indicated."},
	}
	return &Screener{
		ID:          AUDITC,
		Description: "Alcohol Use Disorders Identification Test - Consumption (AUDIT-C).",
		Questions: []Question{
			{N: 1, Text: "How often do you have a drink containing alcohol?", Options: freq},
			{N: 2, Text: "How many drinks containing alcohol do you have on a typical day when you are drinking?", Options: amount},
			{N: 3, Text: "How often do you have six or more drinks on one occasion?", Options: binge},
		},
		score: func(items []int) *models.ScoredResult {
			s := sum(items)
			b := bandFor(bands, s)
			return &models.ScoredResult{
				ID:                   AUDITC,
				Score:                s,
				MaxScore:             12,
				Severity:             b.severity,
				Interpretation:       fmt.Sprintf("AUDIT-C total %d/12 indicates %s risk drinking.", s, label(b.severity)),
				ClinicalSignificance: b.significance,
				ItemScores:           append([]int(nil), items...),
			}
		},
	}
}

func dast10() *Screener {
	texts := []string{
		"Have you used drugs other than those required for medical reasons?",
		"Do you abuse more than one drug at a time?",
		"Are you always able to stop using drugs when you want to?",
		"Have you had blackouts or flashbacks as a result of drug use?",
		"Do you ever feel bad or guilty about your drug use?",
		"Does your spouse (or parents) ever complain about your involvement with drugs?",
		"Have you neglected your family because of your use of drugs?",
		"Have you engaged in illegal activities in order to obtain drugs?",
		"Have you ever experienced withdrawal symptoms when you stopped taking drugs?",
		"Have you had medical problems as a result of your drug use?",
	}
	bands := []band{
		{0, 0, SeverityMinimal, "No problems related to drug use reported."},
		{1, 2, SeverityLow, "Low level of problems related to drug use; monitor and re-assess."},
		{3, 5, SeverityModerate, "Moderate level of drug-related problems; further investigation is indicated."},
		{6, 8, "substantial", "Substantial level of drug-related problems; intensive assessment is indicated."},
		{9, 10, SeveritySevere, "Severe level of drug-related problems; intensive assessment and treatment referral are indicated."},
	}
	return &Screener{
		ID:          DAST10,
		Description: "Drug Abuse Screening Test (DAST-10).",
		Questions:   questions(texts, yesNo),
		score: func(items []int) *models.ScoredResult {
			// Item 3 is keyed in the healthy direction and reverse-scored.
			scored := reverseItems(items, []int{3}, 1)
			s := sum(scored)
			b := bandFor(bands, s)
			return &models.ScoredResult{
				ID:                   DAST10,
				Score:                s,
				MaxScore:             10,
				Severity:             b.severity,
				Interpretation:       fmt.Sprintf("DAST-10 total %d/10 indicates a %s level of drug-related problems.", s, label(b.severity)),
				ClinicalSignificance: b.significance,
				ItemScores:           scored,
			}
		},
	}
}

func scoff() *Screener {
	texts := []string{
		"Do you make yourself sick because you feel uncomfortably full?",
		"Do you worry you have lost control over how much you eat?",
		"Have you recently lost more than one stone (14 lb / 6.4 kg) in a three-month period?",
		"Do you believe yourself to be fat when others say you are too thin?",
		"Would you say that food dominates your life?",
	}
	return &Screener{
		ID:          SCOFF,
		Description: "SCOFF questionnaire: eating disorder screen.",
		Questions:   questions(texts, yesNo),
		score: func(items []int) *models.ScoredResult {
			s := sum(items)
			severity := SeverityNegative
			significance := "Below the SCOFF cut point; an eating disorder is unlikely."
			if s >= 2 {
				severity = SeverityPositive
				significance = "Two or more positive responses indicate a likely case of anorexia nervosa or bulimia; specialist assessment is indicated."
			}
			return &models.ScoredResult{
				ID:                   SCOFF,
				Score:                s,
				MaxScore:             5,
				Severity:             severity,
				Interpretation:       fmt.Sprintf("SCOFF total %d/5 (%s).", s, label(severity)),
				ClinicalSignificance: significance,
				ItemScores:           append([]int(nil), items...),
			}
		},
	}
}

func pss10() *Screener {
	texts := []string{
		"In the last month, how often have you been upset because of something that happened unexpectedly?",
		"How often have you felt that you were unable to control the important things in your life?",
		"How often have you felt nervous and stressed?",
		"How often have you felt confident about your ability to handle your personal problems?",
		"How often have you felt that things were going your way?",
		"How often have you found that you could not cope with all the things that you had to do?",
		"How often have you been able to control irritations in your life?",
		"How often have you felt that you were on top of things?",
		"How often have you been angered because of things that were outside of your control?",
		"How often have you felt difficulties were piling up so high that you could not overcome them?",
	}
	bands := []band{
		{0, 13, SeverityLow, "Low perceived stress."},
		{14, 26, SeverityModerate, "Moderate perceived stress; stress-management support may be helpful."},
		{27, 40, SeverityHigh, "High perceived stress; evaluation for stress-related conditions is indicated."},
	}
	return &Screener{
		ID:          PSS10,
		Description: "Perceived Stress Scale (PSS-10).",
		Questions:   questions(texts, often5),
		score: func(items []int) *models.ScoredResult {
			// Positively framed items 4, 5, 7, 8 reversed against max 4.
			scored := reverseItems(items, []int{4, 5, 7, 8}, 4)
			s := sum(scored)
			b := bandFor(bands, s)
			return &models.ScoredResult{
				ID:                   PSS10,
				Score:                s,
				MaxScore:             40,
				Severity:             b.severity,
				Interpretation:       fmt.Sprintf("PSS-10 total %d/40 indicates %s perceived stress.", s, label(b.severity)),
				ClinicalSignificance: b.significance,
				ItemScores:           scored,
			}
		},
	}
}

func pswq8() *Screener {
	texts := []string{
		"My worries overwhelm me.",
		"Many situations make me worry.",
		"I know I should not worry about things, but I just cannot help it.",
		"When I am under pressure I worry a lot.",
		"I am always worrying about something.",
		"As soon as I finish one task, I start to worry about everything else I have to do.",
		"I have been a worrier all my life.",
		"I notice that I have been worrying about things.",
	}
	bands := []band{
		{8, 20, SeverityLow, "Worry within the normal range."},
		{21, 29, SeverityModerate, "Elevated trait worry; consider evaluation for generalized anxiety."},
		{30, 40, SeverityHigh, "High trait worry consistent with generalized anxiety disorder; full evaluation is indicated."},
	}
	return &Screener{
		ID:          PSWQ8,
		Description: "Penn State Worry Questionnaire, abbreviated (PSWQ-8).",
		Questions:   questions(texts, typical5),
		score: func(items []int) *models.ScoredResult {
			// Item 8 is reverse-scored against max 6 (1..5 scale).
			scored := reverseItems(items, []int{8}, 6)
			s := sum(scored)
			b := bandFor(bands, s)
			return &models.ScoredResult{
				ID:                   PSWQ8,
				Score:                s,
				MaxScore:             40,
				Severity:             b.severity,
				Interpretation:       fmt.Sprintf("PSWQ-8 total %d/40 indicates %s trait worry.", s, label(b.severity)),
				ClinicalSignificance: b.significance,
				ItemScores:           scored,
			}
		},
	}
}

func bis15() *Screener {
	texts := []string{
		"I do things without thinking.",
		"I plan tasks carefully.",
		"I am self-controlled.",
		"I say things without thinking.",
		"I act on the spur of the moment.",
		"I squirm at plays or lectures.",
		"I am restless at the theater or lectures.",
		"I act on impulse.",
		"I buy things on impulse.",
		"I fidget at plays or lectures.",
		"I concentrate easily.",
		"I am a careful thinker.",
		"I save regularly.",
		"I plan for job security.",
		"I plan for the future.",
	}
	bands := []band{
		{15, 34, SeverityLow, "Impulsiveness within the normal range."},
		{35, 44, SeverityModerate, "Moderately elevated impulsiveness."},
		{45, 60, SeverityHigh, "Highly elevated impulsiveness; clinical evaluation is indicated."},
	}
	return &Screener{
		ID:          BIS15,
		Description: "Barratt Impulsiveness Scale, short form (BIS-15).",
		Questions:   questions(texts, rarely4),
		score: func(items []int) *models.ScoredResult {
			// Items keyed in the controlled direction are reversed against
			// max 5 (1..4 scale).
			scored := reverseItems(items, []int{2, 3, 11, 12, 13, 14}, 5)
			s := sum(scored)
			b := bandFor(bands, s)
			return &models.ScoredResult{
				ID:                   BIS15,
				Score:                s,
				MaxScore:             60,
				Severity:             b.severity,
				Interpretation:       fmt.Sprintf("BIS-15 total %d/60 indicates %s impulsiveness.", s, label(b.severity)),
				ClinicalSignificance: b.significance,
				ItemScores:           scored,
				Subscales: map[string]int{
					"attention":    subscaleSum(scored, []int{6, 7, 10, 11, 12}),
					"motor":        subscaleSum(scored, []int{1, 4, 5, 8, 9}),
					"non_planning": subscaleSum(scored, []int{2, 3, 13, 14, 15}),
				},
			}
		},
	}
}

func spin() *Screener {
	texts := []string{
		"I am afraid of people in authority.",
		"I am bothered by blushing in front of people.",
		"Parties and social events scare me.",
		"I avoid talking to people I do not know.",
		"Being criticized scares me a lot.",
		"I avoid doing things or speaking to people for fear of embarrassment.",
		"Sweating in front of people causes me distress.",
		"I avoid going to parties.",
		"I avoid activities in which I am the center of attention.",
		"Talking to strangers scares me.",
		"I avoid having to give speeches.",
		"I would do anything to avoid being criticized.",
		"Heart palpitations bother me when I am around people.",
		"I am afraid of doing things when people might be watching.",
		"Being embarrassed or looking stupid are among my worst fears.",
		"I avoid speaking to anyone in authority.",
		"Trembling or shaking in front of others is distressing to me.",
	}
	bands := []band{
		{0, 20, SeverityMinimal, "Social anxiety symptoms below the clinical threshold."},
		{21, 30, SeverityMild, "Mild social anxiety."},
		{31, 40, SeverityModerate, "Moderate social anxiety; evaluation for social anxiety disorder is indicated."},
		{41, 50, SeveritySevere, "Severe social anxiety; treatment is indicated."},
		{51, 68, "very_severe", "Very severe social anxiety; treatment is indicated."},
	}
	return &Screener{
		ID:          SPIN,
		Description: "Social Phobia Inventory (SPIN).",
		Questions:   questions(texts, bothered5),
		score: func(items []int) *models.ScoredResult {
			s := sum(items)
			b := bandFor(bands, s)
			return &models.ScoredResult{
				ID:                   SPIN,
				Score:                s,
				MaxScore:             68,
				Severity:             b.severity,
				Interpretation:       fmt.Sprintf("SPIN total %d/68 indicates %s social anxiety.", s, label(b.severity)),
				ClinicalSignificance: b.significance,
				ItemScores:           append([]int(nil), items...),
				Subscales: map[string]int{
					"fear":          subscaleSum(items, []int{1, 3, 5, 10, 14, 15}),
					"avoidance":     subscaleSum(items, []int{4, 6, 8, 9, 11, 12, 16}),
					"physiological": subscaleSum(items, []int{2, 7, 13, 17}),
				},
			}
		},
	}
}

func mdq() *Screener {
	symptomTexts := []string{
		"Has there ever been a period of time when you were not your usual self and you felt so good or so hyper that other people thought you were not your normal self, or you were so hyper that you got into trouble?",
		"...you were so irritable that you shouted at people or started fights or arguments?",
		"...you felt much more self-confident than usual?",
		"...you got much less sleep than usual and found you did not really miss it?",
		"...you were much more talkative or spoke much faster than usual?",
		"...thoughts raced through your head or you could not slow your mind down?",
		"...you were so easily distracted by things around you that you had trouble concentrating or staying on track?",
		"...you had much more energy than usual?",
		"...you were much more active or did many more things than usual?",
		"...you were much more social or outgoing than usual?",
		"...you were much more interested in sex than usual?",
		"...you did things that were unusual for you or that other people might have thought were excessive, foolish, or risky?",
		"...spending money got you or your family into trouble?",
	}
	impairment := []models.Option{
		{Value: 0, Label: "No problem"},
		{Value: 1, Label: "Minor problem"},
		{Value: 2, Label: "Moderate problem"},
		{Value: 3, Label: "Serious problem"},
	}
	qs := questions(symptomTexts, yesNo)
	qs = append(qs,
		Question{N: 14, Text: "If you checked YES to more than one of the above, have several of these ever happened during the same period of time?", Options: yesNo()},
		Question{N: 15, Text: "How much of a problem did any of these cause you?", Options: impairment},
	)
	return &Screener{
		ID:          MDQ,
		Description: "Mood Disorder Questionnaire: bipolar spectrum screen.",
		Questions:   qs,
		score: func(items []int) *models.ScoredResult {
			symptoms := sum(items[:13])
			coOccur := items[13]
			impair := items[14]
			positive := symptoms >= 7 && coOccur == 1 && impair >= 2
			severity := SeverityNegative
			significance := "Below the MDQ screening criteria; bipolar disorder is unlikely on this screen."
			if positive {
				severity = SeverityPositive
				significance = "Meets all three MDQ criteria (7+ symptoms, co-occurrence, moderate or serious impairment); evaluation for bipolar spectrum disorder is indicated."
			}
			return &models.ScoredResult{
				ID:                   MDQ,
				Score:                symptoms,
				MaxScore:             13,
				Severity:             severity,
				Interpretation:       fmt.Sprintf("MDQ: %d/13 symptoms endorsed (%s).", symptoms, label(severity)),
				ClinicalSignificance: significance,
				ItemScores:           append([]int(nil), items...),
			}
		},
	}
}

func asrsA() *Screener {
	texts := []string{
		"How often do you have trouble wrapping up the final details of a project, once the challenging parts have been done?",
		"How often do you have difficulty getting things in order when you have to do a task that requires organization?",
		"How often do you have problems remembering appointments or obligations?",
		"When you have a task that requires a lot of thought, how often do you avoid or delay getting started?",
		"How often do you fidget or squirm with your hands or feet when you have to sit down for a long time?",
		"How often do you feel overly active and compelled to do things, like you were driven by a motor?",
	}
	return &Screener{
		ID:          ASRSA,
		Description: "Adult ADHD Self-Report Scale, Part A screen.",
		Questions:   questions(texts, often5),
		score: func(items []int) *models.ScoredResult {
			s := sum(items)
			severity := SeverityNegative
			significance := "Below the ASRS Part A threshold; adult ADHD is unlikely on this screen."
			if s >= 14 {
				severity = SeverityPositive
				significance = "Symptoms consistent with adult ADHD; full diagnostic evaluation is indicated."
			}
			return &models.ScoredResult{
				ID:                   ASRSA,
				Score:                s,
				MaxScore:             24,
				Severity:             severity,
				Interpretation:       fmt.Sprintf("ASRS Part A total %d/24 (%s).", s, label(severity)),
				ClinicalSignificance: significance,
				ItemScores:           append([]int(nil), items...),
			}
		},
	}
}

func isi() *Screener {
	severityOpts := []models.Option{
		{Value: 0, Label: "None"},
		{Value: 1, Label: "Mild"},
		{Value: 2, Label: "Moderate"},
		{Value: 3, Label: "Severe"},
		{Value: 4, Label: "Very severe"},
	}
	degreeOpts := []models.Option{
		{Value: 0, Label: "Not at all"},
		{Value: 1, Label: "A little"},
		{Value: 2, Label: "Somewhat"},
		{Value: 3, Label: "Much"},
		{Value: 4, Label: "Very much"},
	}
	bands := []band{
		{0, 7, SeverityMinimal, "No clinically significant insomnia."},
		{8, 14, SeverityMild, "Subthreshold insomnia; sleep hygiene guidance may be sufficient."},
		{15, 21, SeverityModerate, "Clinical insomnia of moderate severity; treatment is indicated."},
		{22, 28, SeveritySevere, "Severe clinical insomnia; treatment is indicated."},
	}
	return &Screener{
		ID:          ISI,
		Description: "Insomnia Severity Index.",
		Questions: []Question{
			{N: 1, Text: "Rate the current severity of your difficulty falling asleep.", Options: severityOpts},
			{N: 2, Text: "Rate the current severity of your difficulty staying asleep.", Options: severityOpts},
			{N: 3, Text: "Rate the current severity of your problem waking up too early.", Options: severityOpts},
			{N: 4, Text: "How satisfied or dissatisfied are you with your current sleep pattern?", Options: degreeOpts},
			{N: 5, Text: "How noticeable to others do you think your sleep problem is in terms of impairing the quality of your life?", Options: degreeOpts},
			{N: 6, Text: "How worried or distressed are you about your current sleep problem?", Options: degreeOpts},
			{N: 7, Text: "To what extent do you consider your sleep problem to interfere with your daily functioning currently?", Options: degreeOpts},
		},
		score: func(items []int) *models.ScoredResult {
			s := sum(items)
			b := bandFor(bands, s)
			return &models.ScoredResult{
				ID:                   ISI,
				Score:                s,
				MaxScore:             28,
				Severity:             b.severity,
				Interpretation:       fmt.Sprintf("ISI total %d/28 indicates %s insomnia.", s, label(b.severity)),
				ClinicalSignificance: b.significance,
				ItemScores:           append([]int(nil), items...),
			}
		},
	}
}

func who5() *Screener {
	opts := []models.Option{
		{Value: 0, Label: "At no time"},
		{Value: 1, Label: "Some of the time"},
		{Value: 2, Label: "Less than half of the time"},
		{Value: 3, Label: "More than half of the time"},
		{Value: 4, Label: "Most of the time"},
		{Value: 5, Label: "All of the time"},
	}
	texts := []string{
		"I have felt cheerful and in good spirits.",
		"I have felt calm and relaxed.",
		"I have felt active and vigorous.",
		"I woke up feeling fresh and rested.",
		"My daily life has been filled with things that interest me.",
	}
	qs := make([]Question, len(texts))
	for i, t := range texts {
		qs[i] = Question{N: i + 1, Text: t, Options: opts}
	}
	return &Screener{
		ID:          WHO5,
		Description: "WHO-5 Well-Being Index (last two weeks).",
		Questions:   qs,
		score: func(items []int) *models.ScoredResult {
			s := sum(items)
			severity := "adequate_wellbeing"
			significance := "Well-being within the normal range."
			if s <= 12 {
				severity = "low_wellbeing"
				significance = "Raw score of 12 or below indicates poor well-being; further assessment for depression is indicated."
			}
			return &models.ScoredResult{
				ID:                   WHO5,
				Score:                s,
				MaxScore:             25,
				Severity:             severity,
				Interpretation:       fmt.Sprintf("WHO-5 raw score %d/25 (%s).", s, label(severity)),
				ClinicalSignificance: significance,
				ItemScores:           append([]int(nil), items...),
			}
		},
	}
}

// label renders a severity token for prose interpolation.
func label(severity string) string {
	out := make([]byte, len(severity))
	for i := 0; i < len(severity); i++ {
		if severity[i] == '_' {
			out[i] = ' '
		} else {
			out[i] = severity[i]
		}
	}
	return string(out)
}
