package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bvtech/attendance-server/models"
)

// AttendanceRepository is the data-access contract for attendance sessions.
type AttendanceRepository interface {
	Create(ctx context.Context, att *models.Attendance) (InsertResult, error)
	CloseSession(ctx context.Context, id uint, endTime, totalWork string) (UpdateResult, error)
	ListByEmail(ctx context.Context, email string) ([]models.Attendance, error)
	ListFiltered(ctx context.Context, email string, fromDate, toDate *int64) ([]models.Attendance, error)
	GetByID(ctx context.Context, id uint) (*models.Attendance, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepository creates the MySQL-backed attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

// Create stores the caller-supplied session verbatim. Date and start time are
// trusted from the client; nothing is stamped server-side.
func (r *attendanceRepo) Create(ctx context.Context, att *models.Attendance) (InsertResult, error) {
	att.ID = 0
	if err := r.db.WithContext(ctx).Create(att).Error; err != nil {
		return InsertResult{}, err
	}
	return InsertResult{Acknowledged: true, InsertedID: att.ID}, nil
}

// CloseSession sets the end time and total-work duration on a session, leaving
// every other field untouched. Ownership is enforced at the route level, not here.
func (r *attendanceRepo) CloseSession(ctx context.Context, id uint, endTime, totalWork string) (UpdateResult, error) {
	tx := r.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"end_time":   endTime,
			"total_work": totalWork,
		})
	if tx.Error != nil {
		return UpdateResult{}, tx.Error
	}
	return UpdateResult{Acknowledged: true, MatchedCount: tx.RowsAffected, ModifiedCount: tx.RowsAffected}, nil
}

// ListByEmail returns every session for an email, newest first.
func (r *attendanceRepo) ListByEmail(ctx context.Context, email string) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

// ListFiltered applies the optional email and inclusive date-range filters,
// newest first. The caller normalizes the range: both bounds or neither.
func (r *attendanceRepo) ListFiltered(ctx context.Context, email string, fromDate, toDate *int64) ([]models.Attendance, error) {
	q := r.db.WithContext(ctx).Model(&models.Attendance{})
	if fromDate != nil && toDate != nil {
		q = q.Where("date >= ? AND date <= ?", *fromDate, *toDate)
	}
	if email != "" {
		q = q.Where("email = ?", email)
	}
	var rows []models.Attendance
	err := q.Order("id DESC").Find(&rows).Error
	return rows, err
}

func (r *attendanceRepo) GetByID(ctx context.Context, id uint) (*models.Attendance, error) {
	var att models.Attendance
	err := r.db.WithContext(ctx).First(&att, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}
