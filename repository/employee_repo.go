package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bvtech/attendance-server/models"
)

const employeeSequence = "employee_id"

// EmployeeRepository is the data-access contract for employee records.
type EmployeeRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)
	Create(ctx context.Context, emp *models.Employee) (InsertResult, error)
	Claim(ctx context.Context, email, phone, image string) (UpdateResult, error)
	Update(ctx context.Context, id uint, emp models.Employee) (UpdateResult, error)
	Delete(ctx context.Context, id uint) (DeleteResult, error)
	ListAll(ctx context.Context) ([]models.Employee, error)
	ListNames(ctx context.Context) ([]models.EmployeeName, error)
	RoleOf(ctx context.Context, email string) (string, error)
}

type employeeRepo struct {
	db     *gorm.DB
	prefix string
}

// NewEmployeeRepository creates the MySQL-backed employee repository. prefix is
// prepended to generated employee identifiers.
func NewEmployeeRepository(db *gorm.DB, prefix string) EmployeeRepository {
	return &employeeRepo{db: db, prefix: prefix}
}

// FormatEmployeeID renders the nth generated identifier, zero padded to at
// least two digits ("#B&V01", "#B&V11", "#B&V123").
func FormatEmployeeID(prefix string, n int64) string {
	return fmt.Sprintf("%s%02d", prefix, n)
}

func (r *employeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *employeeRepo) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var emp models.Employee
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// Create assigns the next sequential employee identifier and inserts the
// record. Role, image and account flag are stamped server-side regardless of
// the incoming payload. The sequence row is bumped under a row lock so
// concurrent creations cannot hand out the same identifier.
func (r *employeeRepo) Create(ctx context.Context, emp *models.Employee) (InsertResult, error) {
	var res InsertResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq models.Sequence
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(models.Sequence{Name: employeeSequence}).
			FirstOrCreate(&seq).Error; err != nil {
			return err
		}
		seq.Value++
		if err := tx.Model(&models.Sequence{}).
			Where("name = ?", employeeSequence).
			Update("value", seq.Value).Error; err != nil {
			return err
		}

		emp.ID = 0
		emp.EmployeeID = FormatEmployeeID(r.prefix, seq.Value)
		emp.Role = models.RoleEmployee
		emp.Image = ""
		emp.IsAccount = false

		if err := tx.Create(emp).Error; err != nil {
			return err
		}
		res = InsertResult{Acknowledged: true, InsertedID: emp.ID}
		return nil
	})
	return res, err
}

// Claim activates a pre-provisioned record: phone and image are filled in and
// the account flag flips to true. It never creates records; a zero matched
// count means no record carries the email.
func (r *employeeRepo) Claim(ctx context.Context, email, phone, image string) (UpdateResult, error) {
	tx := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"phone":      phone,
			"image":      image,
			"is_account": true,
		})
	if tx.Error != nil {
		return UpdateResult{}, tx.Error
	}
	return UpdateResult{Acknowledged: true, MatchedCount: tx.RowsAffected, ModifiedCount: tx.RowsAffected}, nil
}

func (r *employeeRepo) Update(ctx context.Context, id uint, emp models.Employee) (UpdateResult, error) {
	tx := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        emp.Name,
			"designation": emp.Designation,
			"email":       emp.Email,
			"phone":       emp.Phone,
		})
	if tx.Error != nil {
		return UpdateResult{}, tx.Error
	}
	return UpdateResult{Acknowledged: true, MatchedCount: tx.RowsAffected, ModifiedCount: tx.RowsAffected}, nil
}

func (r *employeeRepo) Delete(ctx context.Context, id uint) (DeleteResult, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Employee{})
	if tx.Error != nil {
		return DeleteResult{}, tx.Error
	}
	return DeleteResult{Acknowledged: true, DeletedCount: tx.RowsAffected}, nil
}

func (r *employeeRepo) ListAll(ctx context.Context) ([]models.Employee, error) {
	var emps []models.Employee
	err := r.db.WithContext(ctx).Order("id ASC").Find(&emps).Error
	return emps, err
}

func (r *employeeRepo) ListNames(ctx context.Context) ([]models.EmployeeName, error) {
	var names []models.EmployeeName
	err := r.db.WithContext(ctx).Model(&models.Employee{}).
		Select("id", "name", "email", "employee_id").
		Order("id ASC").
		Scan(&names).Error
	return names, err
}

// RoleOf returns the stored role for an email, or "" when no record exists.
func (r *employeeRepo) RoleOf(ctx context.Context, email string) (string, error) {
	var role string
	err := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("email = ?", email).
		Select("role").
		Limit(1).
		Scan(&role).Error
	if err != nil {
		return "", err
	}
	return role, nil
}

// SeedAdmins forces the admin role onto the configured employee records. The
// admin role is never reachable through the creation payload, so this is the
// only way records become admins.
func SeedAdmins(ctx context.Context, db *gorm.DB, emails []string) error {
	for _, email := range emails {
		if err := db.WithContext(ctx).Model(&models.Employee{}).
			Where("email = ?", email).
			Update("role", models.RoleAdmin).Error; err != nil {
			return err
		}
	}
	return nil
}
