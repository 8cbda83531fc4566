package recommend

// MaxResults bounds the length of a Result
const MaxResults = 5

// WorkloadPreference is the caller's stated workload preference.
// It is accepted by Recommend but does not affect filtering or ranking.
type WorkloadPreference string

// CourseRecord is one row of the course catalog dataset
type CourseRecord struct {
	CourseCode       string  `json:"course_code"`
	Description      string  `json:"description"`
	InstructorRating float64 `json:"instructor_rating"`
	Workload         float64 `json:"workload"`
}

// RatingRecord is one (course, instructor) evaluation row
type RatingRecord struct {
	CourseCode       string  `json:"course_code"`
	Instructor       string  `json:"instructor"`
	InstructorRating float64 `json:"instructor_rating"`
	Workload         float64 `json:"workload"`
}

// Recommendation is one joined course × rating row
type Recommendation struct {
	Course CourseRecord `json:"course"`
	Rating RatingRecord `json:"rating"`
}

// Result is a ranked list of at most MaxResults recommendations
type Result []Recommendation
