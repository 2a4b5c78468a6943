package components

import (
	"strings"

	"github.com/Toup95/AgriDetec-test/internal/api"
	"github.com/Toup95/AgriDetec-test/internal/i18n"
	"github.com/Toup95/AgriDetec-test/ui/styles"
)

const confidenceBarCells = 30

func RenderResult(lang string, result *api.AnalysisResult, analysisError string) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle().Render(i18n.T(lang, "result.title")) + "\n\n")

	if analysisError != "" {
		b.WriteString(styles.ErrorStyle().Render(analysisError) + "\n\n")
		b.WriteString(styles.HintStyle().Render(i18n.T(lang, "result.again")) + "\n")
		return b.String()
	}
	if result == nil {
		b.WriteString(styles.HintStyle().Render(i18n.T(lang, "result.unknown")) + "\n")
		return b.String()
	}

	name := result.DiseaseName
	if name == "" {
		name = i18n.T(lang, "result.unknown")
	}
	tier := api.TierFor(result.Confidence)
	b.WriteString(styles.TierStyle(tier).Render("  "+name) + "\n\n")

	label := styles.LabelStyle()
	b.WriteString(label.Render("  "+i18n.T(lang, "result.confidence")+": ") +
		styles.TierStyle(tier).Render(api.FormatPercent(result.Confidence)) + "\n")
	b.WriteString("  " + renderConfidenceBar(result.Confidence) + "\n\n")

	b.WriteString(label.Render("  "+i18n.T(lang, "result.severity")+": ") + orUnspecified(lang, result.Severity) + "\n")
	b.WriteString(label.Render("  "+i18n.T(lang, "result.crop")+": ") + orUnspecified(lang, result.AffectedCrop) + "\n\n")

	if result.IsHealthy() {
		b.WriteString(styles.TierStyle(api.TierGood).Render("  "+i18n.T(lang, "result.healthy")) + "\n\n")
	} else {
		b.WriteString(renderTreatments(lang, result))
		b.WriteString(renderPrevention(lang, result))
	}

	b.WriteString(styles.HintStyle().Render(i18n.T(lang, "result.again")) + "\n")
	return b.String()
}

func renderConfidenceBar(confidence float64) string {
	filled := int(confidence * confidenceBarCells)
	if filled > confidenceBarCells {
		filled = confidenceBarCells
	}
	bar := styles.TierStyle(api.TierFor(confidence)).Render(strings.Repeat("█", filled))
	track := styles.BarTrackStyle().Render(strings.Repeat("░", confidenceBarCells-filled))
	return bar + track
}

func renderTreatments(lang string, result *api.AnalysisResult) string {
	if len(result.Treatments) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.TitleStyle().Render(i18n.T(lang, "result.treatments")) + "\n")
	for _, treatment := range result.Treatments {
		line := "  • " + treatment.Name
		if treatment.Organic {
			line += " (bio)"
		}
		b.WriteString(styles.LabelStyle().Render(line) + "\n")
		if treatment.Description != "" {
			b.WriteString(styles.HintStyle().Render("    "+treatment.Description) + "\n")
		}
		if treatment.Application != "" {
			b.WriteString(styles.HintStyle().Render("    "+treatment.Application) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func renderPrevention(lang string, result *api.AnalysisResult) string {
	if len(result.PreventionTips) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.TitleStyle().Render(i18n.T(lang, "result.prevention")) + "\n")
	for _, tip := range result.PreventionTips {
		b.WriteString(styles.LabelStyle().Render("  • "+tip) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func orUnspecified(lang, value string) string {
	if value == "" {
		return i18n.T(lang, "result.unspecified")
	}
	return value
}
