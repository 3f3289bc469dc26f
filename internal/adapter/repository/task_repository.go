package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetingbot-team/meetingbot/internal/domain/entities"
	"github.com/meetingbot-team/meetingbot/internal/domain/repositories"
)

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &taskRepository{db: db}
}

// CreateBatch bulk-inserts tasks
func (r *taskRepository) CreateBatch(ctx context.Context, tasks []*entities.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

// List retrieves a user's tasks with pagination plus the total count
func (r *taskRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Task, int64, error) {
	var tasks []*entities.Task
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Task{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("due_date ASC").
		Limit(limit).
		Offset(offset).
		Find(&tasks).Error
	return tasks, total, err
}

// FindByMeetingID retrieves all tasks referencing the given meeting
func (r *taskRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Task, error) {
	var tasks []*entities.Task
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

// CountByStatus counts a user's tasks per status
func (r *taskRepository) CountByStatus(ctx context.Context, userID uuid.UUID) (map[entities.TaskStatus]int64, error) {
	var rows []struct {
		Status entities.TaskStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// FindOverdue retrieves non-completed tasks due before the given time,
// each enriched with the owning meeting's title via a left join.
func (r *taskRepository) FindOverdue(ctx context.Context, userID uuid.UUID, before time.Time) ([]entities.OverdueTask, error) {
	var rows []entities.OverdueTask
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.id                          AS id,
		       t.title                       AS title,
		       t.due_date                    AS due_date,
		       COALESCE(m.id::text, '')      AS meeting_id,
		       COALESCE(m.title, '')         AS meeting_title
		FROM tasks t
		LEFT JOIN meetings m ON m.id = t.meeting_id
		WHERE t.user_id = ? AND t.due_date < ? AND t.status <> ?
		ORDER BY t.due_date ASC`,
		userID, before, entities.TaskStatusCompleted).
		Scan(&rows).Error
	return rows, err
}
