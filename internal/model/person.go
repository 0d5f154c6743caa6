package model

import (
	"fmt"
	"time"
)

// Status is the closed set of relationship labels a Person carries.
type Status string

const (
	StatusSingle         Status = "Single"
	StatusInRelationship Status = "In Relationship"
	StatusComplicated    Status = "Complicated"
	StatusMarried        Status = "Married"
)

// Statuses lists every valid Status in display order.
var Statuses = []Status{
	StatusSingle,
	StatusInRelationship,
	StatusComplicated,
	StatusMarried,
}

// Valid reports whether s is one of the known labels.
func (s Status) Valid() bool {
	switch s {
	case StatusSingle, StatusInRelationship, StatusComplicated, StatusMarried:
		return true
	}
	return false
}

// ParseStatus converts a raw label into a Status, rejecting unknown labels.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}

// Person is one profile in the queryable collection. Values are never
// mutated once a store has provisioned them.
type Person struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Seq       int       `gorm:"column:seq;not null;uniqueIndex" json:"seq"`
	FirstName string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;not null" json:"last_name"`
	Email     string    `gorm:"column:email" json:"email"`
	Phone     string    `gorm:"column:phone" json:"phone"`
	Age       int       `gorm:"column:age;not null" json:"age"`
	Visits    int       `gorm:"column:visits;not null" json:"visits"`
	Status    Status    `gorm:"column:status;not null;index" json:"status"`
	Progress  int       `gorm:"column:progress;not null" json:"progress"`
	City      string    `gorm:"column:city" json:"city"`
	Country   string    `gorm:"column:country" json:"country"`
	Company   string    `gorm:"column:company" json:"company"`
	JobTitle  string    `gorm:"column:job_title" json:"job_title"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName keeps GORM from pluralising Person to "people".
func (Person) TableName() string {
	return "persons"
}

// Validate checks the invariants every stored record must hold.
func (p Person) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("person at seq %d has no id", p.Seq)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("person %s: unknown status %q", p.ID, p.Status)
	}
	if p.CreatedAt.IsZero() {
		return fmt.Errorf("person %s: missing created_at", p.ID)
	}
	return nil
}
