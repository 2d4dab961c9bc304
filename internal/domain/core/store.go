package core

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"hrdesk/internal/contract"
	cryptoutil "hrdesk/internal/platform/crypto"
	"hrdesk/internal/platform/db"
)

const employeeColumns = `id, first_name, last_name, email, id_number, id_number_enc, position, department, is_active, created_at`

type Store struct {
	DB     *pgxpool.Pool
	Cipher *cryptoutil.FieldCipher
}

func NewStore(pool *pgxpool.Pool, cipher *cryptoutil.FieldCipher) *Store {
	return &Store{DB: pool, Cipher: cipher}
}

func (s *Store) ListEmployees(ctx context.Context) ([]contract.Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY created_at DESC, id DESC
  `)
	if err != nil {
		return nil, errors.Wrap(err, "list employees")
	}
	defer rows.Close()

	out := []contract.Employee{}
	for rows.Next() {
		emp, err := s.scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, errors.Wrap(rows.Err(), "list employees")
}

func (s *Store) GetEmployee(ctx context.Context, id int64) (contract.Employee, bool, error) {
	emp, err := s.scanEmployee(s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return contract.Employee{}, false, nil
	}
	if err != nil {
		return contract.Employee{}, false, err
	}
	return emp, true, nil
}

func (s *Store) CreateEmployee(ctx context.Context, in contract.EmployeeInput) (contract.Employee, error) {
	plain, sealed, err := s.sealIDNumber(in.IDNumber)
	if err != nil {
		return contract.Employee{}, err
	}
	emp, err := s.scanEmployee(s.DB.QueryRow(ctx, `
    INSERT INTO employees (first_name, last_name, email, id_number, id_number_enc, position, department, is_active)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING `+employeeColumns,
		in.FirstName, in.LastName, in.Email, plain, sealed, in.Position, in.Department, in.Active(),
	))
	if err != nil {
		return contract.Employee{}, errors.Wrap(err, "insert employee")
	}
	return emp, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, id int64, patch contract.EmployeePatch) (contract.Employee, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return contract.Employee{}, errors.Wrap(err, "begin employee update")
	}
	defer tx.Rollback(ctx)

	emp, err := s.scanEmployee(tx.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
    FOR UPDATE
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return contract.Employee{}, ErrEmployeeNotFound
	}
	if err != nil {
		return contract.Employee{}, err
	}

	patch.Apply(&emp)
	plain, sealed, err := s.sealIDNumber(emp.IDNumber)
	if err != nil {
		return contract.Employee{}, err
	}
	updated, err := s.scanEmployee(tx.QueryRow(ctx, `
    UPDATE employees
    SET first_name = $1,
        last_name = $2,
        email = $3,
        id_number = $4,
        id_number_enc = $5,
        position = $6,
        department = $7,
        is_active = $8
    WHERE id = $9
    RETURNING `+employeeColumns,
		emp.FirstName, emp.LastName, emp.Email, plain, sealed, emp.Position, emp.Department, emp.IsActive, id,
	))
	if err != nil {
		return contract.Employee{}, errors.Wrap(err, "update employee")
	}
	if err := tx.Commit(ctx); err != nil {
		return contract.Employee{}, errors.Wrap(err, "commit employee update")
	}
	return updated, nil
}

// sealIDNumber returns the values for the id_number and id_number_enc columns.
func (s *Store) sealIDNumber(idNumber string) (string, []byte, error) {
	if !s.Cipher.Enabled() {
		return idNumber, nil, nil
	}
	sealed, err := s.Cipher.Seal(idNumber)
	if err != nil {
		return "", nil, errors.Wrap(err, "seal id number")
	}
	return "", sealed, nil
}

func (s *Store) scanEmployee(row db.RowScanner) (contract.Employee, error) {
	var emp contract.Employee
	var plainID string
	var sealedID []byte
	if err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &plainID, &sealedID,
		&emp.Position, &emp.Department, &emp.IsActive, &emp.CreatedAt,
	); err != nil {
		return contract.Employee{}, err
	}
	idNumber, err := s.Cipher.Open(sealedID, plainID)
	if err != nil {
		return contract.Employee{}, errors.Wrapf(err, "open id number for employee %d", emp.ID)
	}
	emp.IDNumber = idNumber
	return emp, nil
}
