package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Store persists reminder tasks in PostgreSQL.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new task and returns it with the assigned ID and
// creation timestamp.
func (s *Store) Create(ctx context.Context, t Task) (*Task, error) {
	row := s.db.QueryRowContext(
		ctx,
		`INSERT INTO tasks (task, time_phrase, scheduled_at, phone, email)
         VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
         RETURNING id, created_at`,
		t.Text, t.TimePhrase, t.ScheduledAt, t.Phone, t.Email,
	)

	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}
	return &t, nil
}

// ListPending returns all incomplete tasks sorted by scheduled time.
// Ordinal task references ("delete task 2") are positions in this list.
func (s *Store) ListPending(ctx context.Context) ([]Task, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, task, time_phrase, scheduled_at,
                COALESCE(phone, ''), COALESCE(email, ''),
                notification_sent, completed, created_at
         FROM tasks
         WHERE completed = FALSE
         ORDER BY scheduled_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// Due returns incomplete tasks scheduled at or before now that have not
// had a notification attempt yet.
func (s *Store) Due(ctx context.Context, now time.Time) ([]Task, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, task, time_phrase, scheduled_at,
                COALESCE(phone, ''), COALESCE(email, ''),
                notification_sent, completed, created_at
         FROM tasks
         WHERE scheduled_at <= $1
           AND notification_sent = FALSE
           AND completed = FALSE
         ORDER BY scheduled_at ASC, id ASC`,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query due tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// MarkNotified records that a delivery attempt was made, successful or
// not. The single-row UPDATE is what guarantees at most one attempt.
func (s *Store) MarkNotified(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE tasks SET notification_sent = TRUE WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark task %d notified: %w", id, err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("task %d not found", id)
	}
	return nil
}

// Complete marks a task as done, removing it from listings and from
// due-sweep eligibility.
func (s *Store) Complete(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE tasks SET completed = TRUE WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete task %d: %w", id, err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("task %d not found", id)
	}
	return nil
}

// Delete removes a task permanently.
func (s *Store) Delete(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("task %d not found", id)
	}
	return nil
}

func scanTasks(rows *sql.Rows) ([]Task, error) {
	var list []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Text, &t.TimePhrase, &t.ScheduledAt,
			&t.Phone, &t.Email,
			&t.NotificationSent, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
