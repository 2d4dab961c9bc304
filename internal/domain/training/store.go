package training

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/db"
)

const recordColumns = `id, employee_id, training_name, to_char(completion_date, 'YYYY-MM-DD'), to_char(expiry_date, 'YYYY-MM-DD'), certificate_url, created_at`

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) ListRecords(ctx context.Context) ([]contract.TrainingRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+recordColumns+`
    FROM training_records
    ORDER BY created_at DESC, id DESC
  `)
	if err != nil {
		return nil, errors.Wrap(err, "list training records")
	}
	defer rows.Close()

	out := []contract.TrainingRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, errors.Wrap(rows.Err(), "list training records")
}

func (s *Store) CreateRecord(ctx context.Context, in contract.TrainingRecordInput, completion time.Time, expiry *time.Time) (contract.TrainingRecord, error) {
	rec, err := scanRecord(s.DB.QueryRow(ctx, `
    INSERT INTO training_records (employee_id, training_name, completion_date, expiry_date, certificate_url)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING `+recordColumns,
		in.EmployeeID, in.TrainingName, completion, expiry, in.CertificateURL,
	))
	if err != nil {
		return contract.TrainingRecord{}, errors.Wrap(err, "insert training record")
	}
	return rec, nil
}

func scanRecord(row db.RowScanner) (contract.TrainingRecord, error) {
	var rec contract.TrainingRecord
	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.TrainingName, &rec.CompletionDate, &rec.ExpiryDate, &rec.CertificateURL, &rec.CreatedAt)
	return rec, err
}
