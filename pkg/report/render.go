package report

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/meridianhealth/intake/pkg/models"
)

// Audience selects which rendering of the report a document targets.
type Audience string

const (
	// AudiencePatient gets a plain-language summary without raw scores.
	AudiencePatient Audience = "patient"
	// AudienceClinician gets the full report including screener detail.
	AudienceClinician Audience = "clinician"
)

// Renderer turns a report into a document for one audience. The default
// renderer emits formatted text; deployments plug in a PDF renderer here.
type Renderer interface {
	Render(report *models.IntakeReport, audience Audience) ([]byte, error)
}

// Artifacts renders both audience documents and base64-encodes them for the
// terminal stream frame.
func Artifacts(r Renderer, report *models.IntakeReport) (*models.Artifacts, error) {
	patient, err := r.Render(report, AudiencePatient)
	if err != nil {
		return nil, fmt.Errorf("rendering patient document: %w", err)
	}
	clinician, err := r.Render(report, AudienceClinician)
	if err != nil {
		return nil, fmt.Errorf("rendering clinician document: %w", err)
	}
	return &models.Artifacts{
		PatientPDF:   base64.StdEncoding.EncodeToString(patient),
		ClinicianPDF: base64.StdEncoding.EncodeToString(clinician),
	}, nil
}

// TextRenderer is the built-in formatted-text renderer.
type TextRenderer struct{}

func (TextRenderer) Render(report *models.IntakeReport, audience Audience) ([]byte, error) {
	switch audience {
	case AudiencePatient:
		return renderPatient(report), nil
	case AudienceClinician:
		return renderClinician(report), nil
	default:
		return nil, fmt.Errorf("unknown audience %q", audience)
	}
}

func renderPatient(report *models.IntakeReport) []byte {
	var b strings.Builder
	b.WriteString("YOUR INTAKE SUMMARY\n")
	b.WriteString("===================\n\n")
	b.WriteString("Thank you for completing your intake conversation. ")
	b.WriteString("This summary was shared with your care team.\n\n")
	if report.ChiefComplaint != "" {
		b.WriteString("What brought you in:\n")
		b.WriteString(report.ChiefComplaint + "\n\n")
	}
	if len(report.RecommendedNext) > 0 {
		b.WriteString("Next steps:\n")
		for _, step := range report.RecommendedNext {
			b.WriteString("  - " + step + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("If you are in crisis or thinking about harming yourself, call or text 988 now.\n")
	return []byte(b.String())
}

func renderClinician(report *models.IntakeReport) []byte {
	var b strings.Builder
	b.WriteString("PSYCHIATRIC INTAKE REPORT\n")
	b.WriteString("=========================\n\n")
	fmt.Fprintf(&b, "Session: %s\n", report.SessionToken)
	if report.PatientID != nil {
		fmt.Fprintf(&b, "Patient: %s\n", *report.PatientID)
	}
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04 MST"))

	section(&b, "Chief Complaint", report.ChiefComplaint)
	section(&b, "History of Present Illness", report.HistoryOfIllness)
	section(&b, "Mental Status Examination", report.MentalStatusExam)

	if len(report.SymptomSummary) > 0 {
		b.WriteString("SYMPTOM SUMMARY\n---------------\n")
		domains := make([]string, 0, len(report.SymptomSummary))
		for d := range report.SymptomSummary {
			domains = append(domains, d)
		}
		sort.Strings(domains)
		for _, d := range domains {
			fmt.Fprintf(&b, "%s: %s\n", d, report.SymptomSummary[d])
		}
		b.WriteString("\n")
	}

	if len(report.ScreenerResults) > 0 {
		b.WriteString("SCREENING INSTRUMENTS\n---------------------\n")
		ids := make([]string, 0, len(report.ScreenerResults))
		for id := range report.ScreenerResults {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			r := report.ScreenerResults[id]
			fmt.Fprintf(&b, "%s: %d/%d, %s\n  %s\n", id, r.Score, r.MaxScore, r.Severity, r.ClinicalSignificance)
		}
		b.WriteString("\n")
	}

	section(&b, "Risk Assessment", report.RiskAssessment)
	if len(report.RiskFlags) > 0 {
		b.WriteString("RISK FLAGS\n----------\n")
		for _, f := range report.RiskFlags {
			fmt.Fprintf(&b, "[%s] %s: %s\n", f.At.Format("2006-01-02 15:04"), f.Kind, f.Detail)
		}
		b.WriteString("\n")
	}

	section(&b, "Clinical Impression", report.ClinicalImpression)
	if len(report.RecommendedNext) > 0 {
		b.WriteString("RECOMMENDED NEXT STEPS\n----------------------\n")
		for i, step := range report.RecommendedNext {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}
	return []byte(b.String())
}

func section(b *strings.Builder, heading, body string) {
	if body == "" {
		return
	}
	b.WriteString(strings.ToUpper(heading) + "\n")
	b.WriteString(strings.Repeat("-", len(heading)) + "\n")
	b.WriteString(body + "\n\n")
}
