package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bvtech/attendance-server/models"
)

func employeeRouter(repo *fakeEmployeeRepo) *gin.Engine {
	c := NewEmployeeController(repo)
	r := gin.New()
	r.GET("/api/admin/employee", c.List)
	r.POST("/api/admin/employee", c.Create)
	r.PUT("/api/admin/employee/:id", c.Update)
	r.DELETE("/api/admin/employee/:id", c.Delete)
	r.GET("/api/admin/employeeName", c.ListNames)
	return r
}

func TestCreateEmployeeAssignsSequentialIDs(t *testing.T) {
	repo := newFakeEmployeeRepo()
	r := employeeRouter(repo)

	for i := 1; i <= 11; i++ {
		body := fmt.Sprintf(`{"name":"E%d","designation":"dev","email":"e%d@x.com","phone":"1"}`, i, i)
		w := serve(r, http.MethodPost, "/api/admin/employee", body, "")
		if w.Code != http.StatusOK {
			t.Fatalf("create %d: status = %d", i, w.Code)
		}
	}

	if got := repo.byEmail["e1@x.com"].EmployeeID; got != "#B&V01" {
		t.Errorf("1st employeeId = %q, want #B&V01", got)
	}
	if got := repo.byEmail["e11@x.com"].EmployeeID; got != "#B&V11" {
		t.Errorf("11th employeeId = %q, want #B&V11", got)
	}
}

func TestCreateEmployeeForcesServerFields(t *testing.T) {
	repo := newFakeEmployeeRepo()
	r := employeeRouter(repo)

	// role/image/isAccount in the payload are ignored even if sent
	w := serve(r, http.MethodPost, "/api/admin/employee",
		`{"name":"Eve","designation":"dev","email":"eve@x.com","phone":"1","role":"admin","image":"x","isAccount":true}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	emp := repo.byEmail["eve@x.com"]
	if emp.Role != models.RoleEmployee || emp.Image != "" || emp.IsAccount {
		t.Errorf("server-side fields not forced: %+v", emp)
	}
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	repo := newFakeEmployeeRepo()
	r := employeeRouter(repo)

	body := `{"name":"A","designation":"dev","email":"a@x.com","phone":"1"}`
	if w := serve(r, http.MethodPost, "/api/admin/employee", body, ""); w.Code != http.StatusOK {
		t.Fatalf("first create: status = %d", w.Code)
	}

	w := serve(r, http.MethodPost, "/api/admin/employee", body, "")
	if w.Code != http.StatusOK {
		t.Fatalf("second create: status = %d, want 200 conflict-style body", w.Code)
	}
	if resp := decode(t, w); resp["isEmailExist"] != true {
		t.Errorf("body = %v, want isEmailExist:true", resp)
	}
	if len(repo.byEmail) != 1 {
		t.Errorf("duplicate persisted: %d records", len(repo.byEmail))
	}
}

func TestUpdateEmployeeEmailCollision(t *testing.T) {
	repo := newFakeEmployeeRepo()
	a := repo.put(models.Employee{Name: "A", Email: "a@x.com"})
	repo.put(models.Employee{Name: "B", Email: "b@x.com"})
	r := employeeRouter(repo)

	// taking another record's email is a conflict
	w := serve(r, http.MethodPut, fmt.Sprintf("/api/admin/employee/%d", a.ID),
		`{"name":"A","designation":"dev","email":"b@x.com","phone":"1"}`, "")
	if resp := decode(t, w); resp["isEmailExist"] != true {
		t.Errorf("body = %v, want isEmailExist:true", resp)
	}
	if len(repo.updates) != 0 {
		t.Error("colliding update must not reach the store")
	}

	// keeping your own email is not
	w = serve(r, http.MethodPut, fmt.Sprintf("/api/admin/employee/%d", a.ID),
		`{"name":"A2","designation":"dev","email":"a@x.com","phone":"1"}`, "")
	if resp := decode(t, w); resp["matchedCount"] != float64(1) {
		t.Errorf("body = %v, want matchedCount 1", resp)
	}
	if repo.byEmail["a@x.com"].Name != "A2" {
		t.Error("update did not apply")
	}
}

func TestDeleteEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	emp := repo.put(models.Employee{Name: "A", Email: "a@x.com"})
	r := employeeRouter(repo)

	w := serve(r, http.MethodDelete, fmt.Sprintf("/api/admin/employee/%d", emp.ID), "", "")
	if resp := decode(t, w); resp["deletedCount"] != float64(1) {
		t.Errorf("body = %v, want deletedCount 1", resp)
	}
	if len(repo.byEmail) != 0 {
		t.Error("record not deleted")
	}
}

func TestDeleteEmployeeBadID(t *testing.T) {
	r := employeeRouter(newFakeEmployeeRepo())
	w := serve(r, http.MethodDelete, "/api/admin/employee/not-a-number", "", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestListNamesProjection(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.put(models.Employee{Name: "A", Email: "a@x.com", EmployeeID: "#B&V01", Phone: "0123456789", Designation: "dev"})
	r := employeeRouter(repo)

	w := serve(r, http.MethodGet, "/api/admin/employeeName", "", "")
	var names []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &names); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("got %d rows", len(names))
	}
	row := names[0]
	for _, key := range []string{"id", "name", "email", "employeeId"} {
		if _, ok := row[key]; !ok {
			t.Errorf("projection missing %q: %v", key, row)
		}
	}
	if _, ok := row["phone"]; ok {
		t.Errorf("projection leaked phone: %v", row)
	}
}
