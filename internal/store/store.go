// Package store persists payroll data and chat history in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chainpay-labs/paybot/internal/db"
	"github.com/chainpay-labs/paybot/internal/payroll"
)

// Store manages persistence of employees, payments and chat sessions.
type Store struct {
	db *db.DB
}

// New creates a store backed by the given database.
func New(database *db.DB) *Store {
	return &Store{db: database}
}

// SaveEmployee inserts or updates an employee. A missing ID gets a fresh UUID.
func (s *Store) SaveEmployee(ctx context.Context, e payroll.Employee) (*payroll.Employee, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = "active"
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO employees (id, name, designation, department, salary, status, wallet, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   designation = excluded.designation,
		   department = excluded.department,
		   salary = excluded.salary,
		   status = excluded.status,
		   wallet = excluded.wallet`,
		e.ID, e.Name, e.Designation, e.Department, e.Salary, e.Status, e.Wallet, e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("saving employee: %w", err)
	}
	return &e, nil
}

// GetEmployee retrieves an employee by ID, or nil when not found.
func (s *Store) GetEmployee(ctx context.Context, id string) (*payroll.Employee, error) {
	var e payroll.Employee
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, designation, department, salary, status, wallet, created_at
		 FROM employees WHERE id = ?`, id,
	).Scan(&e.ID, &e.Name, &e.Designation, &e.Department, &e.Salary, &e.Status, &e.Wallet, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting employee: %w", err)
	}
	return &e, nil
}

// ListEmployees returns all employees ordered by creation time.
func (s *Store) ListEmployees(ctx context.Context) ([]payroll.Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, designation, department, salary, status, wallet, created_at
		 FROM employees ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying employees: %w", err)
	}
	defer rows.Close()

	var employees []payroll.Employee
	for rows.Next() {
		var e payroll.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Designation, &e.Department, &e.Salary, &e.Status, &e.Wallet, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// DeleteEmployee removes an employee. Payments referencing it are kept with
// a cleared employee_id.
func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	return nil
}

// SavePayment inserts or updates a payment record.
func (s *Store) SavePayment(ctx context.Context, p payroll.Payment) (*payroll.Payment, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = payroll.PaymentPending
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	var employeeID sql.NullString
	if p.EmployeeID != "" {
		employeeID = sql.NullString{String: p.EmployeeID, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, employee_id, amount, status, tx_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   amount = excluded.amount,
		   status = excluded.status,
		   tx_hash = excluded.tx_hash`,
		p.ID, employeeID, p.Amount, p.Status, p.TxHash, p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("saving payment: %w", err)
	}
	return &p, nil
}

// ListPayments returns all payments ordered by creation time, newest last.
func (s *Store) ListPayments(ctx context.Context) ([]payroll.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, amount, status, tx_hash, created_at
		 FROM payments ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying payments: %w", err)
	}
	defer rows.Close()

	var payments []payroll.Payment
	for rows.Next() {
		var p payroll.Payment
		var employeeID sql.NullString
		if err := rows.Scan(&p.ID, &employeeID, &p.Amount, &p.Status, &p.TxHash, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}
		p.EmployeeID = employeeID.String
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Snapshot loads the full payroll state for the assistant.
func (s *Store) Snapshot(ctx context.Context, companyName string) (payroll.Snapshot, error) {
	employees, err := s.ListEmployees(ctx)
	if err != nil {
		return payroll.Snapshot{}, err
	}
	payments, err := s.ListPayments(ctx)
	if err != nil {
		return payroll.Snapshot{}, err
	}
	return payroll.Snapshot{
		Employees:   employees,
		Payments:    payments,
		CompanyName: companyName,
	}, nil
}

// ChatSession is a persisted conversation.
type ChatSession struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatTurn is one persisted exchange within a session.
type ChatTurn struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSession creates a new chat session row.
func (s *Store) CreateSession(ctx context.Context) (*ChatSession, error) {
	now := time.Now().UTC()
	sess := ChatSession{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (id, created_at, updated_at) VALUES (?, ?, ?)`,
		sess.ID, sess.CreatedAt, sess.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &sess, nil
}

// EnsureSession inserts a session row for a caller-chosen ID if none exists.
func (s *Store) EnsureSession(ctx context.Context, id string) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (id, created_at, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		id, now, now,
	)
	if err != nil {
		return fmt.Errorf("ensuring session: %w", err)
	}
	return nil
}

// GetSession retrieves a chat session, or nil when not found.
func (s *Store) GetSession(ctx context.Context, id string) (*ChatSession, error) {
	var sess ChatSession
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, updated_at FROM chat_sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.CreatedAt, &sess.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return &sess, nil
}

// AddTurn appends an exchange to a session and bumps its updated_at.
func (s *Store) AddTurn(ctx context.Context, turn ChatTurn) (*ChatTurn, error) {
	if turn.ID == "" {
		turn.ID = uuid.New().String()
	}
	turn.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_turns (id, session_id, message, response, kind, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		turn.ID, turn.SessionID, turn.Message, turn.Response, turn.Kind, turn.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("adding turn: %w", err)
	}

	s.db.ExecContext(ctx, `UPDATE chat_sessions SET updated_at = ? WHERE id = ?`, turn.CreatedAt, turn.SessionID)

	return &turn, nil
}

// GetTurns returns all turns for a session, oldest first.
func (s *Store) GetTurns(ctx context.Context, sessionID string) ([]ChatTurn, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, message, response, kind, created_at
		 FROM chat_turns WHERE session_id = ? ORDER BY created_at ASC, id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying turns: %w", err)
	}
	defer rows.Close()

	var turns []ChatTurn
	for rows.Next() {
		var t ChatTurn
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Message, &t.Response, &t.Kind, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// CountSessions returns the total number of chat sessions.
func (s *Store) CountSessions(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_sessions`).Scan(&count)
	return count, err
}
