package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/auditkeeper/internal/dbx"
	"github.com/google/uuid"
)

// PostgresRepository stores every collection in one records table,
// discriminated by a collection column, with the document itself in a
// JSONB column. Equality filters use JSONB containment.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, c Collection, data json.RawMessage) (string, error) {

	query :=
		`INSERT INTO records (id, collection, data)
		 VALUES ($1, $2, $3)
		 `

	id := uuid.NewString()

	if _, err := r.db.ExecContext(ctx, query, id, string(c), data); err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) Query(ctx context.Context, c Collection, filter map[string]string, limit int) ([]Record, error) {

	query :=
		`SELECT id, data FROM records
		 WHERE collection = $1
		 `
	args := []any{string(c)}

	if len(filter) > 0 {
		match, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("filter error: %w", err)
		}
		query += ` AND data @> $2`
		args = append(args, match)
	}

	query += ` ORDER BY created_at`

	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Data); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
