package sqlitestore

import (
	"database/sql"
	"fmt"
)

// schema is applied on every open; each statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		student_id     TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		admission_year INTEGER NOT NULL,
		degree_program TEXT NOT NULL,
		major          TEXT NOT NULL,
		email          TEXT NOT NULL DEFAULT '',
		phone          TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		course_id   TEXT PRIMARY KEY,
		course_name TEXT NOT NULL,
		credit      INTEGER NOT NULL CHECK(credit > 0),
		year        INTEGER NOT NULL,
		semester    TEXT NOT NULL,
		is_required INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS programs (
		program_id   TEXT PRIMARY KEY,
		program_name TEXT NOT NULL,
		year         INTEGER NOT NULL,
		semester     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS exchanges (
		exchange_id TEXT PRIMARY KEY,
		year        INTEGER NOT NULL,
		round       INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS enrollments (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id TEXT NOT NULL REFERENCES students(student_id) ON DELETE CASCADE,
		course_id  TEXT NOT NULL REFERENCES courses(course_id) ON DELETE CASCADE,
		grade      TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS program_participations (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id TEXT NOT NULL REFERENCES students(student_id) ON DELETE CASCADE,
		program_id TEXT NOT NULL REFERENCES programs(program_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS exchange_attendances (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id  TEXT NOT NULL REFERENCES students(student_id) ON DELETE CASCADE,
		exchange_id TEXT NOT NULL REFERENCES exchanges(exchange_id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_student ON enrollments(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_program_participations_student ON program_participations(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_exchange_attendances_student ON exchange_attendances(student_id)`,
}

// Migrate creates any missing tables and indexes.
func Migrate(db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
