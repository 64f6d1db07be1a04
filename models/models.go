package models

import "time"

// Record holds the columns every table carries.
type Record struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All lists every model for AutoMigrate, users first for the foreign keys.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Goal{},
		&DietPlan{},
		&Order{},
		&ScannedFood{},
	}
}

type enum map[string]struct{}

func newEnum(values ...string) enum {
	e := make(enum, len(values))
	for _, v := range values {
		e[v] = struct{}{}
	}
	return e
}

func (e enum) has(v string) bool {
	_, ok := e[v]
	return ok
}
