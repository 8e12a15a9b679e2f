package payroll

// DepartmentStats aggregates the employees of one department.
type DepartmentStats struct {
	Count         int     `json:"count"`
	TotalSalary   float64 `json:"total_salary"`
	AverageSalary float64 `json:"average_salary"`
}

// Analytics holds aggregates derived from a Snapshot. Pointer fields are nil
// when the snapshot has no employees (or no payments).
type Analytics struct {
	TotalEmployees int     `json:"total_employees"`
	ActiveCount    int     `json:"active_count"`
	TotalPayroll   float64 `json:"total_payroll"`
	AverageSalary  float64 `json:"average_salary"`

	HighestPaid *Employee `json:"highest_paid,omitempty"`
	LowestPaid  *Employee `json:"lowest_paid,omitempty"`

	Departments map[string]DepartmentStats `json:"departments"`

	MinSalary float64 `json:"min_salary"`
	MaxSalary float64 `json:"max_salary"`

	NewestEmployee *Employee `json:"newest_employee,omitempty"`
	OldestEmployee *Employee `json:"oldest_employee,omitempty"`

	CompletedTotal float64 `json:"completed_total"`
	CompletedCount int     `json:"completed_count"`
	PendingCount   int     `json:"pending_count"`

	LastPayment *Payment `json:"last_payment,omitempty"`
}

// unassignedDepartment is the bucket for employees without a department.
const unassignedDepartment = "Unassigned"

// BuildAnalytics computes aggregates from the given snapshot. It is a pure
// function: no caching, no mutation of the snapshot, and it never fails.
// Missing salaries are treated as 0 and missing timestamps sort as oldest.
func BuildAnalytics(snap Snapshot) Analytics {
	a := Analytics{
		Departments: make(map[string]DepartmentStats),
	}

	a.TotalEmployees = len(snap.Employees)
	for i := range snap.Employees {
		emp := &snap.Employees[i]
		salary := emp.Salary
		a.TotalPayroll += salary
		if emp.Status == "active" {
			a.ActiveCount++
		}

		// Ties keep the first employee in input order.
		if a.HighestPaid == nil || salary > a.HighestPaid.Salary {
			a.HighestPaid = emp
		}
		if a.LowestPaid == nil || salary < a.LowestPaid.Salary {
			a.LowestPaid = emp
		}

		// Zero timestamps sort as oldest.
		if a.NewestEmployee == nil || emp.CreatedAt.After(a.NewestEmployee.CreatedAt) {
			a.NewestEmployee = emp
		}
		if a.OldestEmployee == nil || emp.CreatedAt.Before(a.OldestEmployee.CreatedAt) {
			a.OldestEmployee = emp
		}

		dept := emp.Department
		if dept == "" {
			dept = unassignedDepartment
		}
		stats := a.Departments[dept]
		stats.Count++
		stats.TotalSalary += salary
		a.Departments[dept] = stats
	}

	for name, stats := range a.Departments {
		stats.AverageSalary = stats.TotalSalary / float64(stats.Count)
		a.Departments[name] = stats
	}

	if a.TotalEmployees > 0 {
		a.AverageSalary = a.TotalPayroll / float64(a.TotalEmployees)
		a.MinSalary = a.LowestPaid.Salary
		a.MaxSalary = a.HighestPaid.Salary
	}

	for i := range snap.Payments {
		p := &snap.Payments[i]
		switch p.Status {
		case PaymentCompleted:
			a.CompletedTotal += p.Amount
			a.CompletedCount++
		case PaymentPending:
			a.PendingCount++
		}

		// Latest timestamp wins; among equal (or zero) timestamps the later
		// entry in input order wins, so untimestamped data keeps the old
		// "last element" answer.
		if a.LastPayment == nil || !p.CreatedAt.Before(a.LastPayment.CreatedAt) {
			a.LastPayment = p
		}
	}

	return a
}

// PayrollShare returns the percentage of total payroll the given salary
// represents, or 0 when there is no payroll.
func (a Analytics) PayrollShare(salary float64) float64 {
	if a.TotalPayroll <= 0 {
		return 0
	}
	return salary / a.TotalPayroll * 100
}
