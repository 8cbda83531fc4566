package recommend

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendScenario(t *testing.T) {
	courses := []CourseRecord{
		{CourseCode: "CSE100", Description: "data structures algorithms", InstructorRating: 4.5, Workload: 3.0},
		{CourseCode: "CSE101", Description: "intro programming", InstructorRating: 4.8, Workload: 4.0},
	}
	ratings := []RatingRecord{
		{CourseCode: "CSE100", InstructorRating: 4.5, Workload: 3.0},
		{CourseCode: "CSE101", InstructorRating: 4.8, Workload: 4.0},
	}

	got := Recommend([]string{"algorithms"}, "", courses, ratings)

	want := Result{{Course: courses[0], Rating: ratings[0]}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestRecommendOrdering(t *testing.T) {
	courses := []CourseRecord{
		{CourseCode: "A", Description: "machine learning"},
		{CourseCode: "B", Description: "deep learning"},
		{CourseCode: "C", Description: "learning theory"},
	}
	ratings := []RatingRecord{
		{CourseCode: "A", Instructor: "a1", InstructorRating: 4.0, Workload: 5},
		{CourseCode: "B", Instructor: "b1", InstructorRating: 4.9, Workload: 9},
		{CourseCode: "C", Instructor: "c1", InstructorRating: 4.0, Workload: 2},
		{CourseCode: "A", Instructor: "a2", InstructorRating: 4.9, Workload: 6},
	}

	got := Recommend([]string{"learning"}, "low", courses, ratings)

	var order []string
	for _, r := range got {
		order = append(order, r.Rating.Instructor)
	}
	assert.Equal(t, []string{"a2", "b1", "c1", "a1"}, order)
}

func TestRecommendTiesKeepJoinOrder(t *testing.T) {
	courses := []CourseRecord{{CourseCode: "X", Description: "art"}, {CourseCode: "Y", Description: "art"}}
	ratings := []RatingRecord{
		{CourseCode: "Y", Instructor: "first", InstructorRating: 4, Workload: 4},
		{CourseCode: "X", Instructor: "second", InstructorRating: 4, Workload: 4},
	}

	got := Recommend([]string{"art"}, "", courses, ratings)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Rating.Instructor)
	assert.Equal(t, "second", got[1].Rating.Instructor)
}

func TestRecommendFilterSemantics(t *testing.T) {
	courses := []CourseRecord{
		{CourseCode: "BIOL1", Description: "Genetics and Evolution"},
		{CourseCode: "BIOL2", Description: "cell biology"},
		{CourseCode: "BIOL3", Description: "ecology"},
	}
	ratings := []RatingRecord{
		{CourseCode: "BIOL1", InstructorRating: 3},
		{CourseCode: "BIOL2", InstructorRating: 2},
		{CourseCode: "BIOL3", InstructorRating: 1},
	}

	// case-sensitive
	assert.Empty(t, Recommend([]string{"genetics"}, "", courses, ratings))

	// any keyword matches
	got := Recommend([]string{"Genetics", "ecology"}, "", courses, ratings)
	require.Len(t, got, 2)
	assert.Equal(t, "BIOL1", got[0].Course.CourseCode)
	assert.Equal(t, "BIOL3", got[1].Course.CourseCode)

	// empty keywords never match everything
	assert.Empty(t, Recommend([]string{""}, "", courses, ratings))
}

func TestRecommendJoinSemantics(t *testing.T) {
	courses := []CourseRecord{
		{CourseCode: "CSE11", Description: "java"},
		{CourseCode: "", Description: "java"},
		{CourseCode: "CSE12", Description: "java"},
	}
	ratings := []RatingRecord{
		{CourseCode: "CSE11", Instructor: "x", InstructorRating: 4},
		{CourseCode: "CSE11", Instructor: "y", InstructorRating: 3},
		{CourseCode: "", Instructor: "blank", InstructorRating: 5},
		{CourseCode: "CSE99", Instructor: "z", InstructorRating: 5},
	}

	got := Recommend([]string{"java"}, "", courses, ratings)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "CSE11", r.Course.CourseCode)
	}
}

func TestRecommendEmptyInputs(t *testing.T) {
	courses := []CourseRecord{{CourseCode: "A", Description: "anything"}}
	ratings := []RatingRecord{{CourseCode: "A", InstructorRating: 5}}

	assert.Empty(t, Recommend(nil, "", courses, ratings))
	assert.Empty(t, Recommend([]string{}, "", courses, ratings))
	assert.Empty(t, Recommend([]string{"anything"}, "", nil, ratings))
	assert.Empty(t, Recommend([]string{"anything"}, "", courses, nil))
	assert.NotNil(t, Recommend([]string{"anything"}, "", courses, nil))
}

func TestRecommendWorkloadPreferenceIsInert(t *testing.T) {
	courses, ratings := randomTables(rand.New(rand.NewSource(7)), 20, 60)
	interests := []string{"topic1", "topic3"}

	base := Recommend(interests, "", courses, ratings)
	assert.Equal(t, base, Recommend(interests, "low", courses, ratings))
	assert.Equal(t, base, Recommend(interests, "high", courses, ratings))
}

func TestRecommendNaNSortsLast(t *testing.T) {
	nan := math.NaN()
	var courses []CourseRecord
	for _, code := range []string{"A", "B", "C", "D", "E", "F"} {
		courses = append(courses, CourseRecord{CourseCode: code, Description: "algorithms"})
	}
	ratings := []RatingRecord{
		{CourseCode: "A", InstructorRating: 4, Workload: 2},
		{CourseCode: "B", InstructorRating: nan, Workload: 1},
		{CourseCode: "C", InstructorRating: 5, Workload: 3},
		{CourseCode: "D", InstructorRating: 3, Workload: 1},
		{CourseCode: "E", InstructorRating: 4.5, Workload: 2},
		{CourseCode: "F", InstructorRating: 4, Workload: nan},
	}

	got := Recommend([]string{"algorithms"}, "", courses, ratings)

	var codes []string
	for _, r := range got {
		codes = append(codes, r.Rating.CourseCode)
	}
	// F ties A on rating and loses on its NaN workload; B falls off the end
	assert.Equal(t, []string{"C", "E", "A", "F", "D"}, codes)
}

// Randomized check of bounded length, sort order and filter correctness
func TestRecommendProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		courses, ratings := randomTables(rnd, rnd.Intn(15), rnd.Intn(40))
		interests := []string{fmt.Sprintf("topic%d", rnd.Intn(5))}

		got := Recommend(interests, "", courses, ratings)

		assert.LessOrEqual(t, len(got), MaxResults)
		for i := 1; i < len(got); i++ {
			a, b := got[i-1].Rating, got[i].Rating
			ok := a.InstructorRating > b.InstructorRating ||
				(a.InstructorRating == b.InstructorRating && a.Workload <= b.Workload)
			assert.True(t, ok, "rows %d and %d out of order: %+v %+v", i-1, i, a, b)
		}
		for _, r := range got {
			assert.True(t, MatchesInterests(r.Course.Description, interests))
			assert.Equal(t, r.Course.CourseCode, r.Rating.CourseCode)
		}

		// the full join size bounds the result exactly
		matched := 0
		for _, r := range ratings {
			for _, c := range courses {
				if c.CourseCode == r.CourseCode && MatchesInterests(c.Description, interests) {
					matched++
				}
			}
		}
		expected := matched
		if expected > MaxResults {
			expected = MaxResults
		}
		assert.Equal(t, expected, len(got))
	}
}

func TestMatchesInterests(t *testing.T) {
	assert.True(t, MatchesInterests("intro to algorithms", []string{"graphs", "algo"}))
	assert.False(t, MatchesInterests("intro to algorithms", []string{"Algo"}))
	assert.False(t, MatchesInterests("intro", nil))
}

func randomTables(rnd *rand.Rand, nCourses, nRatings int) ([]CourseRecord, []RatingRecord) {
	courses := make([]CourseRecord, nCourses)
	for i := range courses {
		courses[i] = CourseRecord{
			CourseCode:  fmt.Sprintf("C%d", i),
			Description: fmt.Sprintf("about topic%d and topic%d", rnd.Intn(5), rnd.Intn(5)),
		}
	}
	ratings := make([]RatingRecord, nRatings)
	for i := range ratings {
		ratings[i] = RatingRecord{
			CourseCode:       fmt.Sprintf("C%d", rnd.Intn(nCourses+1)),
			InstructorRating: float64(rnd.Intn(5)) + 1,
			Workload:         float64(rnd.Intn(4)) * 2.5,
		}
	}
	return courses, ratings
}
