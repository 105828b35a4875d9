package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// MobilizationRepository is the Postgres-backed journal of shortfall offers
// and issued mobilization requests. It is an audit record only: inventory
// and donor counts stay authoritative in the external services.
type MobilizationRepository struct {
	db          *dbpg.DB
	strategy    retry.Strategy
	offerWindow time.Duration
}

func NewMobilizationRepo(db *dbpg.DB, offerWindow time.Duration) *MobilizationRepository {
	return &MobilizationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		offerWindow: offerWindow,
	}
}

func (r *MobilizationRepository) Create(ctx context.Context, rec *domain.MobilizationRecord) error {
	query := `INSERT INTO mobilization_requests (id, blood_type, volume_ml, shortfall_ml, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rec.ID, rec.BloodType, rec.VolumeMl, rec.ShortfallMl,
		rec.Status, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mobilization request: %w", err)
	}

	return nil
}

func (r *MobilizationRepository) GetByID(ctx context.Context, id string) (*domain.MobilizationRecord, error) {
	query := `SELECT id, blood_type, volume_ml, shortfall_ml, status, created_at, updated_at
			  FROM mobilization_requests
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get mobilization request: %w", err)
	}

	var rec domain.MobilizationRecord
	if err = row.Scan(
		&rec.ID, &rec.BloodType, &rec.VolumeMl, &rec.ShortfallMl,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMobilizationNotFound
		}
		return nil, fmt.Errorf("scan mobilization request: %w", err)
	}

	return &rec, nil
}

func (r *MobilizationRepository) MarkRequested(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, domain.MobilizationRequestedStatus)
}

func (r *MobilizationRepository) MarkFailed(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, domain.MobilizationFailedStatus)
}

// setStatus moves an offered row to its next state. The offered-state guard
// in the WHERE clause makes the transition atomic against concurrent calls.
func (r *MobilizationRepository) setStatus(ctx context.Context, id string, status domain.MobilizationStatus) error {
	query := `UPDATE mobilization_requests
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, status, pq.Array(domain.OpenMobilizationStatuses),
	)
	if err != nil {
		return fmt.Errorf("update mobilization status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mobilization rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM mobilization_requests WHERE id = $1)`
		row, checkErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if checkErr != nil || row.Scan(&exists) != nil || !exists {
			return domain.ErrMobilizationNotFound
		}
		return domain.ErrMobilizationNotOffered
	}

	return nil
}

// LapseExpired marks offers older than the configured window as lapsed.
// Rows already requested or failed are never touched.
func (r *MobilizationRepository) LapseExpired(ctx context.Context) ([]*domain.MobilizationRecord, error) {
	query := `UPDATE mobilization_requests
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND created_at + make_interval(secs => $3) < now()
			  RETURNING id, blood_type, volume_ml, shortfall_ml, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.MobilizationOfferedStatus, domain.MobilizationLapsedStatus,
		r.offerWindow.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("lapse expired offers: %w", err)
	}
	defer rows.Close()

	var res []*domain.MobilizationRecord
	for rows.Next() {
		var rec domain.MobilizationRecord
		if err = rows.Scan(
			&rec.ID, &rec.BloodType, &rec.VolumeMl, &rec.ShortfallMl,
			&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lapsed offer: %w", err)
		}

		res = append(res, &rec)
	}

	return res, rows.Err()
}

func (r *MobilizationRepository) List(ctx context.Context) ([]*domain.MobilizationRecord, error) {
	query := `SELECT id, blood_type, volume_ml, shortfall_ml, status, created_at, updated_at
			  FROM mobilization_requests
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list mobilization requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.MobilizationRecord
	for rows.Next() {
		var rec domain.MobilizationRecord
		if err = rows.Scan(
			&rec.ID, &rec.BloodType, &rec.VolumeMl, &rec.ShortfallMl,
			&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan mobilization request: %w", err)
		}
		res = append(res, &rec)
	}

	return res, rows.Err()
}
