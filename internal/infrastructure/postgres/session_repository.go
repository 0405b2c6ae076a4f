package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

const sessionColumns = `id, lot_id, plate, COALESCE(category_id::text, ''), category_name, hourly_price,
	operator_id, entry_at, exit_at, amount, status, created_at, updated_at`

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create persiste la entrada. El índice único parcial (lot_id, plate) WHERE status = 'open'
// impide dos sesiones abiertas para la misma placa.
func (r *SessionRepo) Create(ctx context.Context, s *entity.Session) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sessions (id, lot_id, plate, category_id, category_name, hourly_price, operator_id,
			entry_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.LotID, s.Plate, s.CategoryID, s.CategoryName, s.HourlyPrice, s.OperatorID,
		s.EntryAt, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la placa %s ya está dentro", domain.ErrConflict, s.Plate)
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por ID. (nil, nil) si no existe.
func (r *SessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	s, err := scanSession(r.q.QueryRow(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

// GetOpenByPlate sesión abierta de la placa en el parqueadero, si existe.
func (r *SessionRepo) GetOpenByPlate(ctx context.Context, lotID, plate string) (*entity.Session, error) {
	s, err := scanSession(r.q.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE lot_id = $1 AND plate = $2 AND status = 'open'`,
		lotID, plate))
	if err != nil {
		return nil, fmt.Errorf("get open session by plate: %w", err)
	}
	return s, nil
}

// Close registra salida y monto. Solo afecta sesiones abiertas: si otra petición la cerró
// primero devuelve domain.ErrConflict.
func (r *SessionRepo) Close(ctx context.Context, s *entity.Session) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE sessions SET exit_at = $2, amount = $3, status = $4, updated_at = $5
		WHERE id = $1 AND status = 'open'`,
		s.ID, s.ExitAt, s.Amount, s.Status, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: la sesión ya está cerrada", domain.ErrConflict)
	}
	return nil
}

// List lista sesiones del parqueadero, las más recientes primero.
func (r *SessionRepo) List(ctx context.Context, f repository.SessionFilter) ([]*entity.Session, error) {
	where := []string{"lot_id = $1"}
	args := []any{f.LotID}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM sessions WHERE %s ORDER BY entry_at DESC LIMIT $%d OFFSET $%d`,
		sessionColumns, strings.Join(where, " AND "), len(args)-1, len(args))
	return r.query(ctx, query, args...)
}

// ListForShift sesiones que se cruzan con [from, to).
func (r *SessionRepo) ListForShift(ctx context.Context, lotID, operatorID string, from, to time.Time) ([]*entity.Session, error) {
	return r.query(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE lot_id = $1
		  AND ($2 = '' OR operator_id::text = $2)
		  AND entry_at < $4
		  AND (exit_at IS NULL OR exit_at >= $3)
		ORDER BY entry_at`,
		lotID, operatorID, from, to)
}

// CountOpenByCategory número de sesiones abiertas que usan la categoría.
func (r *SessionRepo) CountOpenByCategory(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM sessions WHERE category_id = $1 AND status = 'open'`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count open sessions: %w", err)
	}
	return n, nil
}

// Delete elimina la sesión.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Session, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSession(row pgx.Row) (*entity.Session, error) {
	var s entity.Session
	err := row.Scan(&s.ID, &s.LotID, &s.Plate, &s.CategoryID, &s.CategoryName, &s.HourlyPrice,
		&s.OperatorID, &s.EntryAt, &s.ExitAt, &s.Amount, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
