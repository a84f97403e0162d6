// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists analyzed discipline records in SQLite. A record is
// written in one transaction together with its sections, software, section
// links, bibliography and outcome codes; deleting the file row cascades to
// all of them.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// ErrNotFound is returned when no record is stored under the requested id.
var ErrNotFound = errors.New("record not found")

// uploadDateLayout sorts lexically in time order.
const uploadDateLayout = "2006-01-02T15:04:05.000000Z07:00"

// Literature list markers stored in literature.lit_category.
const (
	litMain       = "main"
	litAdditional = "additional"
)

// Store manages the curriculum SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path, creating the parent
// directory and the schema when missing.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS files (
			id TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			upload_date TEXT NOT NULL,
			file_size INTEGER DEFAULT 0,
			status TEXT DEFAULT 'processed'
		)`,
		`CREATE TABLE IF NOT EXISTS disciplines (
			id TEXT PRIMARY KEY,
			file_id TEXT NOT NULL REFERENCES files(id) ON DELETE CASCADE,
			name TEXT NOT NULL DEFAULT 'Без названия',
			direction TEXT DEFAULT '',
			edu_program TEXT DEFAULT '',
			edu_level TEXT DEFAULT '',
			period TEXT DEFAULT '-',
			volume TEXT DEFAULT '-',
			volume_details TEXT DEFAULT '',
			goals TEXT DEFAULT '',
			description TEXT DEFAULT '',
			category TEXT DEFAULT 'technical'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_disciplines_file_id ON disciplines(file_id)`,
		`CREATE TABLE IF NOT EXISTS sections (
			id TEXT PRIMARY KEY,
			discipline_id TEXT NOT NULL REFERENCES disciplines(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			content TEXT DEFAULT '',
			hours_lectures TEXT DEFAULT '0',
			hours_practice TEXT DEFAULT '0',
			hours_labs TEXT DEFAULT '0',
			hours_self_study TEXT DEFAULT '0',
			section_order INTEGER DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS software (
			id TEXT PRIMARY KEY,
			discipline_id TEXT NOT NULL REFERENCES disciplines(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			software_order INTEGER DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS section_software (
			section_id TEXT NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
			software_id TEXT NOT NULL REFERENCES software(id) ON DELETE CASCADE,
			link_order INTEGER DEFAULT 0,
			PRIMARY KEY (section_id, software_id)
		)`,
		`CREATE TABLE IF NOT EXISTS literature (
			id TEXT PRIMARY KEY,
			discipline_id TEXT NOT NULL REFERENCES disciplines(id) ON DELETE CASCADE,
			raw TEXT DEFAULT '',
			number TEXT,
			title TEXT DEFAULT '',
			authors TEXT DEFAULT '',
			year TEXT DEFAULT '',
			publisher TEXT DEFAULT '',
			url TEXT DEFAULT '',
			doi TEXT DEFAULT '',
			isbn TEXT DEFAULT '',
			pages TEXT DEFAULT '',
			entry_type TEXT DEFAULT 'unknown',
			lit_category TEXT DEFAULT 'main',
			lit_order INTEGER DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS outcomes (
			id TEXT PRIMARY KEY,
			discipline_id TEXT NOT NULL REFERENCES disciplines(id) ON DELETE CASCADE,
			code TEXT NOT NULL,
			outcome_order INTEGER DEFAULT 0
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save writes rec under info.ID in a single transaction. UploadDate and
// Status are filled in by the store; the completed FileInfo is returned.
// Any failure rolls back the whole record.
func (s *Store) Save(ctx context.Context, info types.FileInfo, rec *types.DisciplineRecord) (types.FileInfo, error) {
	if info.ID == "" {
		return info, errors.New("saving record: empty file id")
	}
	if rec == nil {
		rec = types.NewDisciplineRecord()
	}
	info.UploadDate = s.now().UTC().Format(uploadDateLayout)
	info.Status = types.FileProcessed
	info.DisciplineName = rec.Name
	info.Category = rec.Category

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return info, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO files (id, filename, upload_date, file_size, status) VALUES (?, ?, ?, ?, ?)`,
		info.ID, info.Filename, info.UploadDate, info.FileSize, string(info.Status),
	); err != nil {
		return info, fmt.Errorf("inserting file: %w", err)
	}

	discID := newID()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO disciplines
			(id, file_id, name, direction, edu_program, edu_level, period, volume,
			 volume_details, goals, description, category)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		discID, info.ID, rec.Name, rec.Direction, rec.Program, rec.Level,
		rec.Period, rec.Volume, rec.VolumeDetails, rec.Goals, rec.Description,
		string(rec.Category),
	); err != nil {
		return info, fmt.Errorf("inserting discipline: %w", err)
	}

	swIDs := make(map[string]string, len(rec.Software))
	for i, name := range rec.Software {
		if _, dup := swIDs[name]; dup {
			continue
		}
		id := newID()
		swIDs[name] = id
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO software (id, discipline_id, name, software_order) VALUES (?, ?, ?, ?)`,
			id, discID, name, i,
		); err != nil {
			return info, fmt.Errorf("inserting software %q: %w", name, err)
		}
	}

	for i, sec := range rec.Sections {
		secID := newID()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sections
				(id, discipline_id, name, content, hours_lectures, hours_practice,
				 hours_labs, hours_self_study, section_order)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			secID, discID, sec.Name, sec.Content, sec.Hours.Lectures,
			sec.Hours.Practice, sec.Hours.Labs, sec.Hours.SelfStudy, i,
		); err != nil {
			return info, fmt.Errorf("inserting section %d: %w", i, err)
		}
		for j, name := range sec.LinkedSoftware {
			swID, ok := swIDs[name]
			if !ok {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO section_software (section_id, software_id, link_order) VALUES (?, ?, ?)`,
				secID, swID, j,
			); err != nil {
				return info, fmt.Errorf("linking section %d to %q: %w", i, name, err)
			}
		}
	}

	if err := insertLiterature(ctx, tx, discID, litMain, rec.Literature.Main); err != nil {
		return info, err
	}
	if err := insertLiterature(ctx, tx, discID, litAdditional, rec.Literature.Additional); err != nil {
		return info, err
	}

	for i, code := range rec.Outcomes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO outcomes (id, discipline_id, code, outcome_order) VALUES (?, ?, ?, ?)`,
			newID(), discID, code, i,
		); err != nil {
			return info, fmt.Errorf("inserting outcome %q: %w", code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return info, fmt.Errorf("committing record: %w", err)
	}
	return info, nil
}

func insertLiterature(ctx context.Context, tx *sql.Tx, discID, list string, entries []types.LiteratureEntry) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO literature
			(id, discipline_id, raw, number, title, authors, year, publisher,
			 url, doi, isbn, pages, entry_type, lit_category, lit_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing literature insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		authorsJSON, err := json.Marshal(e.Authors)
		if err != nil {
			return fmt.Errorf("encoding authors: %w", err)
		}
		var number sql.NullString
		if e.Number != nil {
			number = sql.NullString{String: *e.Number, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			newID(), discID, e.Raw, number, e.Title, string(authorsJSON), e.Year,
			e.Publisher, e.URL, e.DOI, e.ISBN, e.Pages, string(e.EntryType), list, i,
		); err != nil {
			return fmt.Errorf("inserting %s literature %d: %w", list, i, err)
		}
	}
	return nil
}

// Load reads the record stored under fileID. It returns ErrNotFound when
// no such record exists.
func (s *Store) Load(ctx context.Context, fileID string) (*types.DisciplineRecord, error) {
	rec := types.NewDisciplineRecord()
	var (
		discID   string
		category string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, direction, edu_program, edu_level, period, volume,
			volume_details, goals, description, category
		 FROM disciplines WHERE file_id = ?`, fileID,
	).Scan(&discID, &rec.Name, &rec.Direction, &rec.Program, &rec.Level,
		&rec.Period, &rec.Volume, &rec.VolumeDetails, &rec.Goals,
		&rec.Description, &category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, fileID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying discipline: %w", err)
	}
	rec.Category = types.Category(category)

	if rec.Software, err = s.strings(ctx,
		`SELECT name FROM software WHERE discipline_id = ? ORDER BY software_order`, discID); err != nil {
		return nil, fmt.Errorf("querying software: %w", err)
	}
	if rec.Outcomes, err = s.strings(ctx,
		`SELECT code FROM outcomes WHERE discipline_id = ? ORDER BY outcome_order`, discID); err != nil {
		return nil, fmt.Errorf("querying outcomes: %w", err)
	}
	if rec.Sections, err = s.sections(ctx, discID); err != nil {
		return nil, err
	}
	if err := s.literature(ctx, discID, &rec.Literature); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) sections(ctx context.Context, discID string) ([]types.Section, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, content, hours_lectures, hours_practice, hours_labs, hours_self_study
		 FROM sections WHERE discipline_id = ? ORDER BY section_order`, discID)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	defer rows.Close()

	var ids []string
	sections := []types.Section{}
	for rows.Next() {
		var (
			id  string
			sec types.Section
		)
		if err := rows.Scan(&id, &sec.Name, &sec.Content, &sec.Hours.Lectures,
			&sec.Hours.Practice, &sec.Hours.Labs, &sec.Hours.SelfStudy); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		ids = append(ids, id)
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	rows.Close()

	for i, id := range ids {
		linked, err := s.strings(ctx,
			`SELECT sw.name FROM software sw
			 JOIN section_software ss ON sw.id = ss.software_id
			 WHERE ss.section_id = ? ORDER BY ss.link_order`, id)
		if err != nil {
			return nil, fmt.Errorf("querying section software: %w", err)
		}
		sections[i].LinkedSoftware = linked
	}
	return sections, nil
}

func (s *Store) literature(ctx context.Context, discID string, set *types.LiteratureSet) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT raw, number, title, authors, year, publisher, url, doi, isbn,
			pages, entry_type, lit_category
		 FROM literature WHERE discipline_id = ? ORDER BY lit_order`, discID)
	if err != nil {
		return fmt.Errorf("querying literature: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e           types.LiteratureEntry
			number      sql.NullString
			authorsJSON string
			entryType   string
			list        string
		)
		if err := rows.Scan(&e.Raw, &number, &e.Title, &authorsJSON, &e.Year,
			&e.Publisher, &e.URL, &e.DOI, &e.ISBN, &e.Pages, &entryType, &list); err != nil {
			return fmt.Errorf("scanning literature: %w", err)
		}
		if number.Valid {
			e.Number = &number.String
		}
		if authorsJSON != "" {
			if err := json.Unmarshal([]byte(authorsJSON), &e.Authors); err != nil {
				return fmt.Errorf("decoding authors of %q: %w", e.Raw, err)
			}
		}
		if e.Authors == nil {
			e.Authors = []string{}
		}
		e.EntryType = types.EntryType(entryType)

		if list == litMain {
			set.Main = append(set.Main, e)
		} else {
			set.Additional = append(set.Additional, e)
		}
	}
	return rows.Err()
}

// strings runs a single-column query and returns the values in row order,
// never nil.
func (s *Store) strings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// List returns every stored file, newest first.
func (s *Store) List(ctx context.Context) ([]types.FileInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT f.id, f.filename, f.upload_date, f.file_size, f.status,
			COALESCE(d.name, ''), COALESCE(d.category, 'technical')
		 FROM files f LEFT JOIN disciplines d ON d.file_id = f.id
		 ORDER BY f.upload_date DESC, f.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying files: %w", err)
	}
	defer rows.Close()

	files := []types.FileInfo{}
	for rows.Next() {
		var (
			fi       types.FileInfo
			status   string
			category string
		)
		if err := rows.Scan(&fi.ID, &fi.Filename, &fi.UploadDate, &fi.FileSize,
			&status, &fi.DisciplineName, &category); err != nil {
			return nil, fmt.Errorf("scanning file: %w", err)
		}
		fi.Status = types.FileStatus(status)
		fi.Category = types.Category(category)
		files = append(files, fi)
	}
	return files, rows.Err()
}

// Delete removes the file and everything stored for it. Deleting an
// unknown id is not an error.
func (s *Store) Delete(ctx context.Context, fileID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM files WHERE id = ?`, fileID); err != nil {
		return fmt.Errorf("deleting file %s: %w", fileID, err)
	}
	return nil
}

// newID returns a time-ordered row identifier.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
