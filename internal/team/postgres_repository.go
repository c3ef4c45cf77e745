package team

import (
	"context"
	"fmt"

	"github.com/connecthq/registrar/internal/database"
)

// PostgresRepository implements Repository on top of database.DB.
type PostgresRepository struct {
	db *database.DB
}

// NewRepository creates a new Repository backed by the given handle.
func NewRepository(db *database.DB) Repository {
	return &PostgresRepository{db: db}
}

// Insert adds a team using q, which may be a transaction. The name is stored
// as given; callers trim it.
func Insert(ctx context.Context, q database.DBTX, t *Team) error {
	query := `
		INSERT INTO teams (name)
		VALUES ($1)
		RETURNING id, created_at`

	err := q.QueryRowContext(ctx, query, t.Name).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		if database.Classify(err) == database.ViolationUnique {
			return ErrDuplicateTeamName
		}
		return fmt.Errorf("inserting team: %w", err)
	}

	return nil
}

// Create inserts a new team record.
func (r *PostgresRepository) Create(ctx context.Context, t *Team) error {
	return Insert(ctx, r.db.Conn(), t)
}

// List retrieves teams ordered by name with their member counts.
func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]Team, error) {
	query := `
		SELECT t.id, t.name, t.created_at, COUNT(r.id) AS member_count
		FROM teams t
		LEFT JOIN registrations r ON r.team_id = t.id
		GROUP BY t.id, t.name, t.created_at`

	var args []any
	if filter.AvailableOnly {
		query += `
		HAVING COUNT(r.id) < $1`
		args = append(args, MaxMembers)
	}
	query += `
		ORDER BY t.name ASC`

	rows, err := r.db.Conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.MemberCount); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team rows: %w", err)
	}

	if teams == nil {
		teams = []Team{}
	}

	return teams, nil
}

// Delete removes a team by id. Registrations of the team are removed by the
// ON DELETE CASCADE constraint. Deleting a missing id is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Conn().ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}
	return nil
}

// Count returns the number of teams.
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting teams: %w", err)
	}
	return n, nil
}

// CountAvailable returns the number of teams below MaxMembers.
func (r *PostgresRepository) CountAvailable(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*) FROM (
			SELECT t.id
			FROM teams t
			LEFT JOIN registrations r ON r.team_id = t.id
			GROUP BY t.id
			HAVING COUNT(r.id) < $1
		) open_teams`

	var n int
	if err := r.db.Conn().QueryRowContext(ctx, query, MaxMembers).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting available teams: %w", err)
	}
	return n, nil
}
