package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document holds the fields every persisted entity shares. The id is a
// string so the same struct serves the Mongo (ObjectID hex) and the SQL
// (uuid) drivers.
// swagger:model
type Document struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"_id"`
	CreatedAt time.Time `gorm:"index" bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = GenerateID()
	}
	return
}

// Touch stamps the timestamps the way the document store expects them.
func (d *Document) Touch(now time.Time) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
}

func GenerateID() string {
	return uuid.New().String()
}

// ContainsID reports whether id is present in ids.
func ContainsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// AppendID appends id unless it is already present ($addToSet semantics).
func AppendID(ids []string, id string) []string {
	if ContainsID(ids, id) {
		return ids
	}
	return append(ids, id)
}

// RemoveID drops every occurrence of id ($pull semantics).
func RemoveID(ids []string, id string) []string {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
