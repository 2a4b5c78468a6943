package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Toup95/AgriDetec-test/internal/api"
	"github.com/Toup95/AgriDetec-test/internal/i18n"
	"github.com/Toup95/AgriDetec-test/internal/models"
	"github.com/Toup95/AgriDetec-test/ui/styles"
)

const (
	topDiseaseLimit  = 5
	diseaseBarCells  = 24
	minBarPercent    = 5.0
	counterPlacehold = "—"
)

func RenderDashboard(lang string, snapshot models.Snapshot, dots int) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle().Render(i18n.T(lang, "dashboard.title")) + "\n\n")

	if snapshot.DashboardLoading {
		b.WriteString(styles.HintStyle().Render(i18n.T(lang, "dashboard.loading")+strings.Repeat(".", dots)) + "\n")
		return b.String()
	}

	stats := snapshot.Dashboard
	if stats == nil {
		// Failure or never loaded: placeholders everywhere, no partial
		// numbers.
		b.WriteString(renderCounters(lang, counterPlacehold, counterPlacehold, counterPlacehold, counterPlacehold))
		b.WriteString("\n" + styles.HintStyle().Render(i18n.T(lang, "dashboard.empty")) + "\n")
		return b.String()
	}

	b.WriteString(renderCounters(lang,
		fmt.Sprintf("%d", stats.TotalDetections),
		fmt.Sprintf("%d", stats.ActiveUsers),
		fmt.Sprintf("%d", stats.DiseasesDetected),
		fmt.Sprintf("%.1f%%", stats.SuccessRate),
	))

	top := RankTopDiseases(stats.TopDiseases, topDiseaseLimit)
	if len(top) > 0 {
		b.WriteString("\n" + styles.TitleStyle().Render(i18n.T(lang, "dashboard.top")) + "\n")
		maxCount := top[0].Count
		for _, disease := range top {
			b.WriteString(renderDiseaseBar(disease, maxCount) + "\n")
		}
	}
	return b.String()
}

func renderCounters(lang, total, users, diseases, success string) string {
	label := styles.LabelStyle()
	var b strings.Builder
	b.WriteString(label.Render("  "+i18n.T(lang, "dashboard.total")+": ") + total + "\n")
	b.WriteString(label.Render("  "+i18n.T(lang, "dashboard.users")+": ") + users + "\n")
	b.WriteString(label.Render("  "+i18n.T(lang, "dashboard.diseases")+": ") + diseases + "\n")
	b.WriteString(label.Render("  "+i18n.T(lang, "dashboard.success")+": ") + success + "\n")
	return b.String()
}

// RankTopDiseases sorts descending by count, ties keeping their
// original order, and caps the list at n.
func RankTopDiseases(diseases []api.TopDisease, n int) []api.TopDisease {
	ranked := make([]api.TopDisease, len(diseases))
	copy(ranked, diseases)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// BarPercent scales a count against the set maximum, with a 5% floor so
// small entries stay visible.
func BarPercent(count, max int) float64 {
	if max <= 0 {
		return 0
	}
	percent := float64(count) / float64(max) * 100
	if percent < minBarPercent {
		percent = minBarPercent
	}
	return percent
}

func renderDiseaseBar(disease api.TopDisease, maxCount int) string {
	percent := BarPercent(disease.Count, maxCount)
	filled := int(percent/100*diseaseBarCells + 0.5)
	if filled < 1 {
		filled = 1
	}
	if filled > diseaseBarCells {
		filled = diseaseBarCells
	}
	bar := styles.BarStyle().Render(strings.Repeat("█", filled)) +
		styles.BarTrackStyle().Render(strings.Repeat("░", diseaseBarCells-filled))
	return fmt.Sprintf("  %-28s %s %d", disease.Name, bar, disease.Count)
}
