package taskrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/moneyflow/internal/domain"
	"github.com/GlebRadaev/moneyflow/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const taskColumns = "id, sender_id, receiver_account_no, amount, scheduled_date, due_at, status, result, reason, created_at, updated_at"

func (r *Repository) Create(ctx context.Context, task *domain.ScheduledTask) (*domain.ScheduledTask, error) {
	query := `
        INSERT INTO scheduled_tasks (id, sender_id, receiver_account_no, amount, scheduled_date, due_at, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, task.ID, task.SenderID, task.ReceiverAccountNo, task.Amount, task.ScheduledDate, task.DueAt, task.Status).
		Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		zap.L().Error("can't create scheduled task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.ScheduledTask, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM scheduled_tasks
        WHERE id = $1
    `
	task, err := r.scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find scheduled task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

// ClaimDue flips due pending tasks to processing and returns them. The
// UPDATE claims each task exactly once even with concurrent pollers.
func (r *Repository) ClaimDue(ctx context.Context, now time.Time, limit uint32) ([]domain.ScheduledTask, error) {
	query := `
        UPDATE scheduled_tasks
        SET status = 'processing', updated_at = $1
        WHERE id IN (
            SELECT id FROM scheduled_tasks
            WHERE status = 'pending' AND due_at <= $1
            ORDER BY due_at ASC
            LIMIT $2
            FOR UPDATE SKIP LOCKED
        )
        RETURNING ` + taskColumns + `
    `
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't claim due tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.ScheduledTask
	for rows.Next() {
		var task domain.ScheduledTask
		var result []byte
		err := rows.Scan(&task.ID, &task.SenderID, &task.ReceiverAccountNo, &task.Amount, &task.ScheduledDate,
			&task.DueAt, &task.Status, &result, &task.Reason, &task.CreatedAt, &task.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan claimed task row", zap.Error(err))
			return nil, err
		}
		task.Result = result
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *Repository) MarkSuccess(ctx context.Context, id string, result json.RawMessage) error {
	query := `
        UPDATE scheduled_tasks
        SET status = 'success', result = $1, updated_at = now()
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, result, id); err != nil {
		zap.L().Error("can't mark task success", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id string, reason string) error {
	query := `
        UPDATE scheduled_tasks
        SET status = 'failed', reason = $1, updated_at = now()
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, reason, id); err != nil {
		zap.L().Error("can't mark task failed", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanTask(row pgx.Row) (*domain.ScheduledTask, error) {
	var task domain.ScheduledTask
	var result []byte
	err := row.Scan(&task.ID, &task.SenderID, &task.ReceiverAccountNo, &task.Amount, &task.ScheduledDate,
		&task.DueAt, &task.Status, &result, &task.Reason, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}
	task.Result = result
	return &task, nil
}
