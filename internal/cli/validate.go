package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/validator"
)

func checkID(kind, id string) error {
	if !validator.ValidRecordID(id) {
		return fmt.Errorf("invalid %s ID %q: use 1-32 letters, digits, '.', '_' or '-'", kind, id)
	}
	return nil
}

func checkYear(year int) error {
	if year < 2000 || year > 2100 {
		return fmt.Errorf("year %d out of range 2000-2100", year)
	}
	return nil
}

func parseDegree(raw string) (model.DegreeProgram, error) {
	d := model.DegreeProgram(strings.ToUpper(raw))
	if !slices.Contains([]model.DegreeProgram{model.DegreeBachelor, model.DegreeMaster, model.DegreeDoctorate}, d) {
		return "", fmt.Errorf("unknown degree %q: want BACHELOR, MASTER or DOCTORATE", raw)
	}
	return d, nil
}

func parseSemester(raw string) (model.Semester, error) {
	s := model.Semester(strings.ToUpper(raw))
	if !slices.Contains([]model.Semester{model.SemesterFirst, model.SemesterSecond, model.SemesterSummer, model.SemesterWinter}, s) {
		return "", fmt.Errorf("unknown semester %q: want FIRST, SECOND, SUMMER or WINTER", raw)
	}
	return s, nil
}
