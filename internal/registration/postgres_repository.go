package registration

import (
	"context"
	"fmt"

	"github.com/connecthq/registrar/internal/database"
	"github.com/connecthq/registrar/internal/team"
)

// PostgresRepository implements Repository on top of database.DB.
type PostgresRepository struct {
	db *database.DB
}

// NewRepository creates a new Repository backed by the given handle.
func NewRepository(db *database.DB) Repository {
	return &PostgresRepository{db: db}
}

// Create inserts a registration, creating newTeam in the same transaction
// when it is given.
func (r *PostgresRepository) Create(ctx context.Context, reg *Registration, newTeam *team.Team) error {
	if newTeam == nil {
		return insert(ctx, r.db.Conn(), reg)
	}

	return r.db.InTx(ctx, func(tx database.DBTX) error {
		if err := team.Insert(ctx, tx, newTeam); err != nil {
			return err
		}
		reg.TeamID = &newTeam.ID
		reg.TeamName = &newTeam.Name
		return insert(ctx, tx, reg)
	})
}

func insert(ctx context.Context, q database.DBTX, reg *Registration) error {
	query := `
		INSERT INTO registrations (name, email, workplace, project_idea, team_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := q.QueryRowContext(ctx, query,
		reg.Name,
		reg.Email,
		reg.Workplace,
		reg.ProjectIdea,
		reg.TeamID,
	).Scan(&reg.ID, &reg.CreatedAt)
	if err != nil {
		if database.Classify(err) == database.ViolationUnique {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("inserting registration: %w", err)
	}

	return nil
}

// List returns every registration with its team name, teams by name with
// unaffiliated registrants last, newest first within a team.
func (r *PostgresRepository) List(ctx context.Context) ([]Registration, error) {
	query := `
		SELECT r.id, r.name, r.email, r.workplace, r.project_idea, r.created_at,
		       r.team_id, t.name AS team_name
		FROM registrations r
		LEFT JOIN teams t ON r.team_id = t.id
		ORDER BY t.name ASC NULLS LAST, r.created_at DESC`

	rows, err := r.db.Conn().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing registrations: %w", err)
	}
	defer rows.Close()

	var regs []Registration
	for rows.Next() {
		var reg Registration
		err := rows.Scan(
			&reg.ID,
			&reg.Name,
			&reg.Email,
			&reg.Workplace,
			&reg.ProjectIdea,
			&reg.CreatedAt,
			&reg.TeamID,
			&reg.TeamName,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning registration row: %w", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating registration rows: %w", err)
	}

	if regs == nil {
		regs = []Registration{}
	}

	return regs, nil
}

// UpdateTeam sets or clears the team of a registration. An unknown team id
// fails on the foreign key; an unknown registration id changes nothing.
func (r *PostgresRepository) UpdateTeam(ctx context.Context, id int64, teamID *int64) error {
	query := `
		UPDATE registrations
		SET team_id = $1
		WHERE id = $2`

	if _, err := r.db.Conn().ExecContext(ctx, query, teamID, id); err != nil {
		return fmt.Errorf("updating registration team: %w", err)
	}
	return nil
}

// Delete removes a registration. Deleting a missing id is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Conn().ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting registration: %w", err)
	}
	return nil
}

// ListEntrants returns name and workplace of every registrant, newest first.
func (r *PostgresRepository) ListEntrants(ctx context.Context) ([]Entrant, error) {
	query := `
		SELECT name, workplace
		FROM registrations
		ORDER BY created_at DESC`

	rows, err := r.db.Conn().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing entrants: %w", err)
	}
	defer rows.Close()

	var entrants []Entrant
	for rows.Next() {
		var e Entrant
		if err := rows.Scan(&e.Name, &e.Workplace); err != nil {
			return nil, fmt.Errorf("scanning entrant row: %w", err)
		}
		entrants = append(entrants, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entrant rows: %w", err)
	}

	return entrants, nil
}

// Count returns the number of registrations.
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting registrations: %w", err)
	}
	return n, nil
}

// CountIndividuals returns the number of registrations without a team.
func (r *PostgresRepository) CountIndividuals(ctx context.Context) (int, error) {
	var n int
	err := r.db.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations WHERE team_id IS NULL`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting individual registrations: %w", err)
	}
	return n, nil
}
