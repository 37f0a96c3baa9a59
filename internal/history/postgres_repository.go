package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dynamicweb/dynamicweb/internal/blueprint"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new Repository backed by the given connection pool.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// allColumns is the ordered list of columns scanned from the generations table.
const allColumns = `id, session_id, idea, model, provider, outcome, error_message, blueprint, latency_ms, created_at`

// scanGeneration scans a single Generation from a row.
func scanGeneration(row pgx.Row) (*Generation, error) {
	var g Generation
	var rawBlueprint []byte
	err := row.Scan(
		&g.ID, &g.SessionID, &g.Idea, &g.Model, &g.Provider,
		&g.Outcome, &g.ErrorMessage, &rawBlueprint, &g.LatencyMS, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning generation row: %w", err)
	}

	if len(rawBlueprint) > 0 {
		var bp blueprint.Blueprint
		if err := json.Unmarshal(rawBlueprint, &bp); err != nil {
			return nil, fmt.Errorf("decoding stored blueprint for %s: %w", g.ID, err)
		}
		g.Blueprint = &bp
	}
	return &g, nil
}

// Record inserts a generation record.
func (r *PostgresRepository) Record(ctx context.Context, g *Generation) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	var rawBlueprint *string
	if g.Blueprint != nil {
		encoded, err := blueprint.Encode(g.Blueprint)
		if err != nil {
			return fmt.Errorf("encoding blueprint: %w", err)
		}
		s := string(encoded)
		rawBlueprint = &s
	}

	query := `
		INSERT INTO generations (id, session_id, idea, model, provider, outcome, error_message, blueprint, latency_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9)
		RETURNING created_at`

	err := r.pool.QueryRow(ctx, query,
		g.ID, g.SessionID, g.Idea, g.Model, g.Provider,
		g.Outcome, g.ErrorMessage, rawBlueprint, g.LatencyMS,
	).Scan(&g.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting generation: %w", err)
	}
	return nil
}

// GetByID retrieves a single generation by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Generation, error) {
	query := fmt.Sprintf(`SELECT %s FROM generations WHERE id = $1`, allColumns)
	return scanGeneration(r.pool.QueryRow(ctx, query, id))
}

// List retrieves generations newest first, optionally filtered by outcome.
func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]Generation, error) {
	var (
		where []string
		args  []any
	)
	if filter.Outcome != nil {
		args = append(args, *filter.Outcome)
		where = append(where, fmt.Sprintf("outcome = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM generations`, allColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, filter.limit())
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing generations: %w", err)
	}
	defer rows.Close()

	generations := []Generation{}
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		generations = append(generations, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating generation rows: %w", err)
	}

	return generations, nil
}
