package recommend

import (
	"math"
	"sort"
	"strings"
)

// Recommend filters courses whose description contains any interest
// keyword (case-sensitive), inner-joins them with ratings on course code,
// orders the rows by instructor rating descending then workload ascending,
// and keeps the first MaxResults.
//
// Sort keys come from the rating row. A NaN key sorts after every number.
// Rows with equal keys keep join order: ratings order, then course order.
// The workload preference is accepted and ignored.
func Recommend(interests []string, pref WorkloadPreference, courses []CourseRecord, ratings []RatingRecord) Result {
	filtered := filterByInterests(interests, courses)
	if len(filtered) == 0 {
		return Result{}
	}

	joined := join(filtered, ratings)

	sort.SliceStable(joined, func(i, j int) bool {
		a, b := joined[i].Rating, joined[j].Rating
		if c := compareKey(a.InstructorRating, b.InstructorRating, true); c != 0 {
			return c < 0
		}
		return compareKey(a.Workload, b.Workload, false) < 0
	})

	if len(joined) > MaxResults {
		joined = joined[:MaxResults]
	}
	return joined
}

// compareKey returns -1 when x sorts before y, 1 when after and 0 when
// they tie. NaN sorts last in either direction.
func compareKey(x, y float64, descending bool) int {
	xn, yn := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xn && yn:
		return 0
	case xn:
		return 1
	case yn:
		return -1
	case x == y:
		return 0
	case (x > y) == descending:
		return -1
	}
	return 1
}

// MatchesInterests reports whether description contains at least one
// non-empty keyword
func MatchesInterests(description string, interests []string) bool {
	for _, kw := range interests {
		if kw != "" && strings.Contains(description, kw) {
			return true
		}
	}
	return false
}

func filterByInterests(interests []string, courses []CourseRecord) []CourseRecord {
	var out []CourseRecord
	for _, c := range courses {
		if MatchesInterests(c.Description, interests) {
			out = append(out, c)
		}
	}
	return out
}

// join is an inner join keyed on trimmed course code; blank codes never match
func join(courses []CourseRecord, ratings []RatingRecord) Result {
	byCode := make(map[string][]CourseRecord, len(courses))
	for _, c := range courses {
		code := strings.TrimSpace(c.CourseCode)
		if code == "" {
			continue
		}
		byCode[code] = append(byCode[code], c)
	}

	joined := Result{}
	for _, r := range ratings {
		code := strings.TrimSpace(r.CourseCode)
		if code == "" {
			continue
		}
		for _, c := range byCode[code] {
			joined = append(joined, Recommendation{Course: c, Rating: r})
		}
	}
	return joined
}
