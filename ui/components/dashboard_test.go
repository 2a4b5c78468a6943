package components

import (
	"math"
	"testing"

	"github.com/Toup95/AgriDetec-test/internal/api"
)

func TestRankTopDiseases(t *testing.T) {
	in := []api.TopDisease{
		{Name: "A", Count: 5},
		{Name: "B", Count: 9},
		{Name: "C", Count: 2},
	}
	ranked := RankTopDiseases(in, 5)

	want := []string{"B", "A", "C"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].Name, name)
		}
	}
	// Input order must be preserved.
	if in[0].Name != "A" {
		t.Error("RankTopDiseases must not mutate its input")
	}
}

func TestRankTopDiseasesStableTies(t *testing.T) {
	in := []api.TopDisease{
		{Name: "first", Count: 3},
		{Name: "second", Count: 3},
		{Name: "third", Count: 3},
	}
	ranked := RankTopDiseases(in, 5)
	for i, want := range []string{"first", "second", "third"} {
		if ranked[i].Name != want {
			t.Errorf("tie order broken at %d: got %s, want %s", i, ranked[i].Name, want)
		}
	}
}

func TestRankTopDiseasesCap(t *testing.T) {
	in := make([]api.TopDisease, 8)
	for i := range in {
		in[i] = api.TopDisease{Name: "d", Count: i}
	}
	if got := len(RankTopDiseases(in, 5)); got != 5 {
		t.Errorf("expected 5 entries, got %d", got)
	}
}

func TestBarPercent(t *testing.T) {
	cases := []struct {
		count, max int
		want       float64
	}{
		{9, 9, 100},
		{5, 9, 55.6},
		{2, 9, 22.2},
		{0, 9, 5}, // floor
		{1, 100, 5},
		{3, 0, 0}, // degenerate max
	}
	for _, tc := range cases {
		got := BarPercent(tc.count, tc.max)
		if math.Abs(got-tc.want) > 0.05 {
			t.Errorf("BarPercent(%d, %d) = %.2f, want %.2f", tc.count, tc.max, got, tc.want)
		}
	}
}
