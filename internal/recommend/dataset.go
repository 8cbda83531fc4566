package recommend

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"sjsage522/courseadvisor/pkg/errors"
)

// LoadCourses reads a course catalog CSV. Required columns: course_code,
// description. Optional: instructor_rating, workload.
func LoadCourses(r io.Reader, source string) ([]CourseRecord, error) {
	t, err := readTable(r, source, "course_code", "description")
	if err != nil {
		return nil, err
	}

	courses := make([]CourseRecord, 0, len(t.rows))
	for i, row := range t.rows {
		rating, err := t.float(row, "instructor_rating")
		if err != nil {
			return nil, t.rowError(i, err)
		}
		workload, err := t.float(row, "workload")
		if err != nil {
			return nil, t.rowError(i, err)
		}
		courses = append(courses, CourseRecord{
			CourseCode:       t.str(row, "course_code"),
			Description:      t.str(row, "description"),
			InstructorRating: rating,
			Workload:         workload,
		})
	}
	return courses, nil
}

// LoadRatings reads an instructor evaluation CSV. Required columns:
// course_code, instructor_rating, workload. Optional: instructor.
func LoadRatings(r io.Reader, source string) ([]RatingRecord, error) {
	t, err := readTable(r, source, "course_code", "instructor_rating", "workload")
	if err != nil {
		return nil, err
	}

	ratings := make([]RatingRecord, 0, len(t.rows))
	for i, row := range t.rows {
		rating, err := t.float(row, "instructor_rating")
		if err != nil {
			return nil, t.rowError(i, err)
		}
		workload, err := t.float(row, "workload")
		if err != nil {
			return nil, t.rowError(i, err)
		}
		ratings = append(ratings, RatingRecord{
			CourseCode:       t.str(row, "course_code"),
			Instructor:       t.str(row, "instructor"),
			InstructorRating: rating,
			Workload:         workload,
		})
	}
	return ratings, nil
}

// LoadCoursesFile opens path and calls LoadCourses
func LoadCoursesFile(path string) ([]CourseRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewDataset(path, "failed to open course catalog", err)
	}
	defer f.Close()
	return LoadCourses(f, path)
}

// LoadRatingsFile opens path and calls LoadRatings
func LoadRatingsFile(path string) ([]RatingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewDataset(path, "failed to open ratings", err)
	}
	defer f.Close()
	return LoadRatings(f, path)
}

type table struct {
	source  string
	columns map[string]int
	rows    [][]string
}

func readTable(r io.Reader, source string, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.NewDataset(source, "malformed CSV", err)
	}
	if len(records) == 0 {
		return nil, errors.NewDataset(source, "missing header row", nil)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, errors.NewDataset(source, fmt.Sprintf("missing column %q", name), nil)
		}
	}

	return &table{source: source, columns: columns, rows: records[1:]}, nil
}

func (t *table) str(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// float parses a numeric cell; a blank or absent cell reads as zero.
// NaN and infinities are rejected.
func (t *table) float(row []string, column string) (float64, error) {
	v := t.str(row, column)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", column, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("column %s: non-finite value %q", column, v)
	}
	return f, nil
}

func (t *table) rowError(i int, err error) error {
	// header is line 1
	return errors.NewDataset(t.source, fmt.Sprintf("invalid value on line %d", i+2), err)
}
