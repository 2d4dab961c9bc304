package discipline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/db"
)

const recordColumns = `id, employee_id, to_char(incident_date, 'YYYY-MM-DD'), description, action_taken, created_at`

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) ListRecords(ctx context.Context) ([]contract.DisciplinaryRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+recordColumns+`
    FROM disciplinary_records
    ORDER BY created_at DESC, id DESC
  `)
	if err != nil {
		return nil, errors.Wrap(err, "list disciplinary records")
	}
	defer rows.Close()

	out := []contract.DisciplinaryRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, errors.Wrap(rows.Err(), "list disciplinary records")
}

func (s *Store) CreateRecord(ctx context.Context, in contract.DisciplinaryRecordInput, incidentDate time.Time) (contract.DisciplinaryRecord, error) {
	rec, err := scanRecord(s.DB.QueryRow(ctx, `
    INSERT INTO disciplinary_records (employee_id, incident_date, description, action_taken)
    VALUES ($1,$2,$3,$4)
    RETURNING `+recordColumns,
		in.EmployeeID, incidentDate, in.Description, in.ActionTaken,
	))
	if err != nil {
		return contract.DisciplinaryRecord{}, errors.Wrap(err, "insert disciplinary record")
	}
	return rec, nil
}

func scanRecord(row db.RowScanner) (contract.DisciplinaryRecord, error) {
	var rec contract.DisciplinaryRecord
	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.IncidentDate, &rec.Description, &rec.ActionTaken, &rec.CreatedAt)
	return rec, err
}
