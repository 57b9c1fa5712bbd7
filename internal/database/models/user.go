package models

// User is an account that can sign in and belong to teams and projects
type User struct {
	BaseModel
	Name         string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
