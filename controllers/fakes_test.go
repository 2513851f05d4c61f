package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/bvtech/attendance-server/models"
	"github.com/bvtech/attendance-server/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeEmployeeRepo is an in-memory EmployeeRepository keyed by email.
type fakeEmployeeRepo struct {
	byEmail map[string]*models.Employee
	nextID  uint
	seq     int64

	claims  []string
	updates []models.Employee
	deletes []uint
	err     error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byEmail: map[string]*models.Employee{}}
}

func (f *fakeEmployeeRepo) put(emp models.Employee) *models.Employee {
	f.nextID++
	emp.ID = f.nextID
	f.byEmail[emp.Email] = &emp
	return &emp
}

func (f *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	emp, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *emp
	return &cp, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp *models.Employee) (repository.InsertResult, error) {
	if f.err != nil {
		return repository.InsertResult{}, f.err
	}
	f.seq++
	emp.EmployeeID = repository.FormatEmployeeID("#B&V", f.seq)
	emp.Role = models.RoleEmployee
	emp.Image = ""
	emp.IsAccount = false
	stored := f.put(*emp)
	emp.ID = stored.ID
	return repository.InsertResult{Acknowledged: true, InsertedID: stored.ID}, nil
}

func (f *fakeEmployeeRepo) Claim(ctx context.Context, email, phone, image string) (repository.UpdateResult, error) {
	if f.err != nil {
		return repository.UpdateResult{}, f.err
	}
	f.claims = append(f.claims, email)
	emp, ok := f.byEmail[email]
	if !ok {
		return repository.UpdateResult{Acknowledged: true}, nil
	}
	emp.Phone = phone
	emp.Image = image
	emp.IsAccount = true
	return repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id uint, emp models.Employee) (repository.UpdateResult, error) {
	if f.err != nil {
		return repository.UpdateResult{}, f.err
	}
	emp.ID = id
	f.updates = append(f.updates, emp)
	for email, existing := range f.byEmail {
		if existing.ID == id {
			delete(f.byEmail, email)
			existing.Name = emp.Name
			existing.Designation = emp.Designation
			existing.Email = emp.Email
			existing.Phone = emp.Phone
			f.byEmail[emp.Email] = existing
			return repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return repository.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id uint) (repository.DeleteResult, error) {
	if f.err != nil {
		return repository.DeleteResult{}, f.err
	}
	f.deletes = append(f.deletes, id)
	for email, existing := range f.byEmail {
		if existing.ID == id {
			delete(f.byEmail, email)
			return repository.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return repository.DeleteResult{Acknowledged: true}, nil
}

func (f *fakeEmployeeRepo) ListAll(ctx context.Context) ([]models.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Employee
	for _, emp := range f.byEmail {
		out = append(out, *emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListNames(ctx context.Context) ([]models.EmployeeName, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.EmployeeName
	for _, emp := range f.byEmail {
		out = append(out, models.EmployeeName{ID: emp.ID, Name: emp.Name, Email: emp.Email, EmployeeID: emp.EmployeeID})
	}
	return out, nil
}

func (f *fakeEmployeeRepo) RoleOf(ctx context.Context, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if emp, ok := f.byEmail[email]; ok {
		return emp.Role, nil
	}
	return "", nil
}

type closeCall struct {
	id        uint
	endTime   string
	totalWork string
}

type filterCall struct {
	email    string
	fromDate *int64
	toDate   *int64
}

// fakeAttendanceRepo is an in-memory AttendanceRepository; rows returned
// newest-first like the real implementation.
type fakeAttendanceRepo struct {
	rows   []models.Attendance
	nextID uint

	closes  []closeCall
	filters []filterCall
	err     error
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att *models.Attendance) (repository.InsertResult, error) {
	if f.err != nil {
		return repository.InsertResult{}, f.err
	}
	f.nextID++
	att.ID = f.nextID
	f.rows = append(f.rows, *att)
	return repository.InsertResult{Acknowledged: true, InsertedID: att.ID}, nil
}

func (f *fakeAttendanceRepo) CloseSession(ctx context.Context, id uint, endTime, totalWork string) (repository.UpdateResult, error) {
	if f.err != nil {
		return repository.UpdateResult{}, f.err
	}
	f.closes = append(f.closes, closeCall{id: id, endTime: endTime, totalWork: totalWork})
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].EndTime = endTime
			f.rows[i].TotalWork = totalWork
			return repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return repository.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeAttendanceRepo) ListByEmail(ctx context.Context, email string) ([]models.Attendance, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Attendance
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].Email == email {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListFiltered(ctx context.Context, email string, fromDate, toDate *int64) ([]models.Attendance, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.filters = append(f.filters, filterCall{email: email, fromDate: fromDate, toDate: toDate})
	var out []models.Attendance
	for i := len(f.rows) - 1; i >= 0; i-- {
		row := f.rows[i]
		if fromDate != nil && toDate != nil && (row.Date < *fromDate || row.Date > *toDate) {
			continue
		}
		if email != "" && row.Email != email {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id uint) (*models.Attendance, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, row := range f.rows {
		if row.ID == id {
			cp := row
			return &cp, nil
		}
	}
	return nil, nil
}
