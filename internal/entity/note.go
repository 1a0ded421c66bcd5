package entity

import (
	"time"

	"github.com/asaskevich/govalidator"
)

type Note struct {
	ID        int       `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	NoteInsert
}

type NoteInsert struct {
	Title    string `db:"title" json:"title" valid:"required"`
	Content  string `db:"content" json:"content"`
	Priority string `db:"priority" json:"priority"`
}

func (ni *NoteInsert) Validate() error {
	_, err := govalidator.ValidateStruct(ni)
	return err
}
