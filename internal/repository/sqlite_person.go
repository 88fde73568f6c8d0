package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/quorum/internal/db"
	"github.com/alexanderramin/quorum/internal/domain"
)

// SQLitePersonRepo implements PersonRepo using a SQLite database.
type SQLitePersonRepo struct {
	db db.DBTX
}

// NewSQLitePersonRepo creates a new SQLitePersonRepo.
func NewSQLitePersonRepo(conn db.DBTX) *SQLitePersonRepo {
	return &SQLitePersonRepo{db: conn}
}

const personColumns = `id, name, team, email, role, created_at, updated_at`

func (r *SQLitePersonRepo) Create(ctx context.Context, p *domain.Person) error {
	query := `INSERT INTO people (` + personColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, personArgs(p)...)
	if err != nil {
		return fmt.Errorf("inserting person: %w", err)
	}
	return nil
}

// Upsert inserts the person or replaces name, team, email and role of an
// existing row, keeping its created_at.
func (r *SQLitePersonRepo) Upsert(ctx context.Context, p *domain.Person) error {
	query := `INSERT INTO people (` + personColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			team = excluded.team,
			email = excluded.email,
			role = excluded.role,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, personArgs(p)...)
	if err != nil {
		return fmt.Errorf("upserting person: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE id = ?`
	p, err := scanPerson(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("person %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning person: %w", err)
	}
	return p, nil
}

func (r *SQLitePersonRepo) List(ctx context.Context) ([]*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people ORDER BY name, id`
	return r.queryPeople(ctx, "listing people", query)
}

func (r *SQLitePersonRepo) ListByTeam(ctx context.Context, team string) ([]*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE team = ? ORDER BY name, id`
	return r.queryPeople(ctx, "listing team", query, team)
}

func (r *SQLitePersonRepo) ListByRoles(ctx context.Context, roles []domain.Role) ([]*domain.Person, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	args := make([]any, len(roles))
	for i, role := range roles {
		args[i] = string(role)
	}
	query := `SELECT ` + personColumns + ` FROM people WHERE role IN (` + placeholders(len(roles)) + `) ORDER BY name, id`
	return r.queryPeople(ctx, "listing people by role", query, args...)
}

// SearchByName matches a case-insensitive substring of the name.
func (r *SQLitePersonRepo) SearchByName(ctx context.Context, q string) ([]*domain.Person, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, nil
	}
	query := `SELECT ` + personColumns + ` FROM people
		WHERE INSTR(LOWER(name), LOWER(?)) > 0 ORDER BY name, id`
	return r.queryPeople(ctx, "searching people", query, q)
}

func (r *SQLitePersonRepo) ListTeams(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT team FROM people WHERE team != '' ORDER BY team`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []string
	for rows.Next() {
		var team string
		if err := rows.Scan(&team); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teams: %w", err)
	}
	return teams, nil
}

func (r *SQLitePersonRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("person %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLitePersonRepo) queryPeople(ctx context.Context, op, query string, args ...any) ([]*domain.Person, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var people []*domain.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning person row: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating people: %w", err)
	}
	return people, nil
}

func personArgs(p *domain.Person) []any {
	return []any{
		p.ID,
		p.Name,
		p.Team,
		p.Email,
		string(p.Role),
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*domain.Person, error) {
	var p domain.Person
	var role, createdAtStr, updatedAtStr string
	if err := row.Scan(&p.ID, &p.Name, &p.Team, &p.Email, &role, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}
	p.Role = domain.Role(role)

	var parseErr error
	p.CreatedAt, parseErr = parseTime(createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = parseTime(updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &p, nil
}
