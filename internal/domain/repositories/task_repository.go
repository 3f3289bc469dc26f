package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/meetingbot-team/meetingbot/internal/domain/entities"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// CreateBatch bulk-inserts tasks
	CreateBatch(ctx context.Context, tasks []*entities.Task) error

	// List retrieves a user's tasks with pagination plus the total count
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Task, int64, error)

	// FindByMeetingID retrieves all tasks referencing the given meeting
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Task, error)

	// CountByStatus counts a user's tasks per status; absent statuses are omitted
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[entities.TaskStatus]int64, error)

	// FindOverdue retrieves non-completed tasks due before the given time,
	// each enriched with the owning meeting's title
	FindOverdue(ctx context.Context, userID uuid.UUID, before time.Time) ([]entities.OverdueTask, error)
}
