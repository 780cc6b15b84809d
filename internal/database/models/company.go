package models

// Company represents a company with a stored logo and its employees
type Company struct {
	BaseModel
	Name    string `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Email   string `json:"email" gorm:"uniqueIndex;size:255;not null" validate:"required,email,max=255"`
	Logo    string `json:"logo" gorm:"size:255;not null"`
	Website string `json:"website" gorm:"uniqueIndex;size:255;not null" validate:"required,url"`

	// Relationships
	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
