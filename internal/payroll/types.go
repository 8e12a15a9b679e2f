package payroll

import "time"

// PaymentStatus is the settlement state of an on-chain payment.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
)

// Employee is a single payroll record.
type Employee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	Department  string    `json:"department"`
	Salary      float64   `json:"salary"`
	Status      string    `json:"status"` // "active" or anything else
	Wallet      string    `json:"wallet,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Payment is a single payroll disbursement.
type Payment struct {
	ID         string        `json:"id"`
	Amount     float64       `json:"amount"`
	Status     PaymentStatus `json:"status"`
	EmployeeID string        `json:"employee_id"`
	TxHash     string        `json:"tx_hash,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Snapshot is the company data the assistant reasons over. It is supplied
// fresh on every call and never retained by the engine.
type Snapshot struct {
	Employees   []Employee `json:"employees"`
	Payments    []Payment  `json:"payments"`
	CompanyName string     `json:"company_name"`
}
