package handler

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/response"
	"github.com/stemsi/curriculum-backend/internal/validator"
)

// recordIDParam reads a string record key from the path, answering 400 when
// it is malformed.
func recordIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if !validator.ValidRecordID(id) {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return "", false
	}
	return id, true
}

// lookupKeyParam reads a student key for read-only lookups. Any non-empty
// key is accepted; an unknown one simply matches no records.
func lookupKeyParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return "", false
	}
	return id, true
}

// bindJSON binds the request body into dst. A body that is not valid JSON
// for dst answers INVALID_PAYLOAD; one that fails validation answers
// VALIDATION_ERROR with per-field messages.
func bindJSON(c *gin.Context, dst interface{}) bool {
	fields := validator.Bind(c, dst)
	if fields == nil {
		return true
	}
	if validator.Malformed(fields) {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
	} else {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
	}
	return false
}

// rowIDParam reads a numeric link-row ID from the path.
func rowIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// queryFilters collects optional integer and boolean query filters, keeping
// a field error for each value that does not parse.
type queryFilters struct {
	c      *gin.Context
	fields map[string]string
}

func newQueryFilters(c *gin.Context) *queryFilters {
	return &queryFilters{c: c}
}

func (q *queryFilters) intValue(key string) int {
	raw := q.c.Query(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		q.fail(key, key+" must be a non-negative integer")
		return 0
	}
	return n
}

func (q *queryFilters) boolValue(key string) *bool {
	raw := q.c.Query(key)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		q.fail(key, key+" must be true or false")
		return nil
	}
	return &b
}

func (q *queryFilters) fail(key, msg string) {
	if q.fields == nil {
		q.fields = make(map[string]string)
	}
	q.fields[key] = msg
}

// done answers 400 with every collected field error and reports whether the
// handler may continue.
func (q *queryFilters) done() bool {
	if q.fields != nil {
		response.FailWithFields(q.c, http.StatusBadRequest, response.ErrValidation, q.fields)
		return false
	}
	return true
}

// oneOf returns the query value when it is empty or one of allowed.
func (q *queryFilters) oneOf(key string, allowed ...string) string {
	raw := q.c.Query(key)
	if raw == "" || slices.Contains(allowed, raw) {
		return raw
	}
	q.fail(key, key+" must be one of "+strings.Join(allowed, ", "))
	return ""
}

var semesters = []string{
	string(model.SemesterFirst),
	string(model.SemesterSecond),
	string(model.SemesterSummer),
	string(model.SemesterWinter),
}
