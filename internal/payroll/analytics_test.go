package payroll

import (
	"math"
	"testing"
	"time"
)

func TestBuildAnalyticsEmptySnapshot(t *testing.T) {
	a := BuildAnalytics(Snapshot{CompanyName: "X"})

	if a.TotalEmployees != 0 {
		t.Errorf("expected 0 employees, got %d", a.TotalEmployees)
	}
	if a.AverageSalary != 0 {
		t.Errorf("expected 0 average salary, got %f", a.AverageSalary)
	}
	if a.HighestPaid != nil || a.LowestPaid != nil {
		t.Error("expected nil extremes for empty snapshot")
	}
	if a.LastPayment != nil {
		t.Error("expected nil last payment for empty snapshot")
	}
	if math.IsNaN(a.AverageSalary) || math.IsInf(a.AverageSalary, 0) {
		t.Error("average salary must not be NaN or Inf")
	}
}

func TestBuildAnalyticsAggregates(t *testing.T) {
	snap := Snapshot{
		CompanyName: "ChainPay",
		Employees: []Employee{
			{Name: "Alice", Department: "Engineering", Salary: 1000, Status: "active"},
			{Name: "Bob", Department: "Engineering", Salary: 5000, Status: "active"},
			{Name: "Cara", Department: "", Salary: 2000},
		},
	}

	a := BuildAnalytics(snap)

	if a.TotalEmployees != 3 {
		t.Fatalf("expected 3 employees, got %d", a.TotalEmployees)
	}
	if a.TotalPayroll != 8000 {
		t.Errorf("expected payroll 8000, got %f", a.TotalPayroll)
	}
	if got := a.AverageSalary; math.Abs(got-8000.0/3.0) > 1e-9 {
		t.Errorf("unexpected average salary %f", got)
	}
	if a.HighestPaid == nil || a.HighestPaid.Name != "Bob" {
		t.Errorf("expected Bob as highest paid, got %+v", a.HighestPaid)
	}
	if a.LowestPaid == nil || a.LowestPaid.Name != "Alice" {
		t.Errorf("expected Alice as lowest paid, got %+v", a.LowestPaid)
	}
	if a.MinSalary != 1000 || a.MaxSalary != 5000 {
		t.Errorf("unexpected salary range [%f, %f]", a.MinSalary, a.MaxSalary)
	}
	if a.ActiveCount != 2 {
		t.Errorf("expected 2 active, got %d", a.ActiveCount)
	}

	eng := a.Departments["Engineering"]
	if eng.Count != 2 || eng.TotalSalary != 6000 || eng.AverageSalary != 3000 {
		t.Errorf("unexpected engineering stats %+v", eng)
	}
	unassigned := a.Departments["Unassigned"]
	if unassigned.Count != 1 || unassigned.TotalSalary != 2000 {
		t.Errorf("unexpected unassigned stats %+v", unassigned)
	}
}

func TestBuildAnalyticsSalaryTiesKeepInputOrder(t *testing.T) {
	snap := Snapshot{
		Employees: []Employee{
			{Name: "First", Salary: 3000},
			{Name: "Second", Salary: 3000},
		},
	}

	a := BuildAnalytics(snap)

	if a.HighestPaid.Name != "First" {
		t.Errorf("expected tie to keep first employee, got %s", a.HighestPaid.Name)
	}
	if a.LowestPaid.Name != "First" {
		t.Errorf("expected tie to keep first employee, got %s", a.LowestPaid.Name)
	}
}

func TestBuildAnalyticsEmployeeTimestamps(t *testing.T) {
	t1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	snap := Snapshot{
		Employees: []Employee{
			{Name: "Mid", CreatedAt: t1},
			{Name: "New", CreatedAt: t2},
			{Name: "NoDate"}, // zero timestamp sorts as oldest
		},
	}

	a := BuildAnalytics(snap)

	if a.NewestEmployee.Name != "New" {
		t.Errorf("expected New as newest, got %s", a.NewestEmployee.Name)
	}
	if a.OldestEmployee.Name != "NoDate" {
		t.Errorf("expected NoDate as oldest, got %s", a.OldestEmployee.Name)
	}
}

func TestBuildAnalyticsPayments(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	snap := Snapshot{
		Payments: []Payment{
			{ID: "a", Amount: 100, Status: PaymentCompleted, CreatedAt: t2},
			{ID: "b", Amount: 200, Status: PaymentCompleted, CreatedAt: t1},
			{ID: "c", Amount: 300, Status: PaymentPending, CreatedAt: t1},
			{ID: "d", Amount: 400, Status: PaymentFailed, CreatedAt: t1},
		},
	}

	a := BuildAnalytics(snap)

	if a.CompletedTotal != 300 || a.CompletedCount != 2 {
		t.Errorf("unexpected completed rollup: total=%f count=%d", a.CompletedTotal, a.CompletedCount)
	}
	if a.PendingCount != 1 {
		t.Errorf("expected 1 pending, got %d", a.PendingCount)
	}
	if a.LastPayment == nil || a.LastPayment.ID != "a" {
		t.Errorf("expected payment a (latest timestamp) as last, got %+v", a.LastPayment)
	}
}

func TestBuildAnalyticsLastPaymentWithoutTimestamps(t *testing.T) {
	snap := Snapshot{
		Payments: []Payment{
			{ID: "a", Amount: 100, Status: PaymentCompleted},
			{ID: "b", Amount: 200, Status: PaymentCompleted},
		},
	}

	a := BuildAnalytics(snap)

	// With no timestamps, the last entry in input order wins.
	if a.LastPayment == nil || a.LastPayment.ID != "b" {
		t.Errorf("expected payment b as last, got %+v", a.LastPayment)
	}
}

func TestPayrollShare(t *testing.T) {
	a := Analytics{TotalPayroll: 8000}
	if got := a.PayrollShare(5000); math.Abs(got-62.5) > 1e-9 {
		t.Errorf("expected 62.5, got %f", got)
	}

	var empty Analytics
	if got := empty.PayrollShare(5000); got != 0 {
		t.Errorf("expected 0 share for empty payroll, got %f", got)
	}
}
