package models

// Employee represents an employee of a company. The company reference is
// checked at write time only; deleting a company leaves its employees in
// place with a dangling company_id.
type Employee struct {
	BaseModel
	FirstName string `json:"first_name" gorm:"size:255;not null" validate:"required,max=255"`
	LastName  string `json:"last_name" gorm:"size:255;not null" validate:"required,max=255"`
	CompanyID uint   `json:"company_id" gorm:"not null;index" validate:"required"`
	Email     string `json:"email" gorm:"uniqueIndex;size:255;not null" validate:"required,email,max=255"`
	Phone     string `json:"phone" gorm:"uniqueIndex;size:255;not null" validate:"required,max=255"`

	// Relationships
	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// FullName derives the display name from first and last name; it is computed
// on read and never stored.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
