package model

import "strings"

type Role string

const (
	Student Role = "student"
	Teacher Role = "teacher"
	Admin   Role = "admin"
)

type User struct {
	BaseModel
	FirstName  string  `gorm:"size:150" json:"firstName"`
	SecondName string  `gorm:"size:150" json:"secondName"`
	LastName   *string `gorm:"size:150" json:"lastName,omitempty"`
	Email      string  `gorm:"size:100;unique;not null" json:"email"`
	Password   string  `gorm:"size:100;not null" json:"-"`
	Role       Role    `gorm:"type:enum('student','teacher','admin');default:'student'" json:"role"`
	Avatar     string  `gorm:"size:255" json:"avatar"`
	IsActive   bool    `gorm:"default:true" json:"isActive"`
	IsVerified bool    `gorm:"default:false" json:"isVerified"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsStudent() bool { return u.Role == Student }
func (u *User) IsTeacher() bool { return u.Role == Teacher }
func (u *User) IsAdmin() bool   { return u.Role == Admin }

func (u *User) FullName() string {
	parts := []string{u.SecondName, u.FirstName}
	if u.LastName != nil {
		parts = append(parts, *u.LastName)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
