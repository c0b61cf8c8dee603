package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	intdb "flyaway/internal/db"
	"flyaway/internal/domain"
)

const submissionsTable = "reservation_submissions"

// Submission is one stored reservation payload.
type Submission struct {
	Reference      string
	ContactEmail   string
	PassengerCount int
	Payload        []byte
	GrandTotal     int64
	CreatedAt      time.Time
}

type ReservationRepository struct {
	DB *sql.DB
}

// EnsureSchema creates the submissions table when it is missing.
func (r ReservationRepository) EnsureSchema(ctx context.Context) error {
	if intdb.HasTable(ctx, r.DB, submissionsTable) {
		return nil
	}
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS reservation_submissions (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			reference CHAR(36) NOT NULL UNIQUE,
			contact_email VARCHAR(255) NULL,
			passenger_count INT NOT NULL,
			payload JSON NOT NULL,
			grand_total BIGINT NOT NULL,
			created_at DATETIME NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create %s: %w", submissionsTable, err)
	}
	return nil
}

func (r ReservationRepository) Insert(ctx context.Context, s Submission) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reservation_submissions (reference, contact_email, passenger_count, payload, grand_total, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.Reference, intdb.NullIfEmpty(s.ContactEmail), s.PassengerCount, s.Payload, s.GrandTotal, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert submission %s: %w", s.Reference, err)
	}
	return nil
}

func (r ReservationRepository) GetByReference(ctx context.Context, reference string) (Submission, error) {
	var (
		s     Submission
		email sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT reference, contact_email, passenger_count, payload, grand_total, created_at
		FROM reservation_submissions
		WHERE reference = ?
		LIMIT 1`, reference).Scan(&s.Reference, &email, &s.PassengerCount, &s.Payload, &s.GrandTotal, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Submission{}, domain.NotFoundError{Resource: "submission", Err: err}
	}
	if err != nil {
		return Submission{}, fmt.Errorf("get submission %s: %w", reference, err)
	}
	s.ContactEmail = email.String
	return s, nil
}
