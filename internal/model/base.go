package model

import (
	"crypto/rand"
	"math/big"
	"time"

	"gorm.io/gorm"
)

type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SymbolModel gives an entity an opaque random string primary key.
type SymbolModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(16)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	lowerAlphanum = "abcdefghijklmnopqrstuvwxyz0123456789"
	mixedAlphanum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// SymbolIDLength is the length of the string primary keys used by
	// courses and posts.
	SymbolIDLength = 16

	// InviteCodeLength is the length of course invite codes.
	InviteCodeLength = 8

	// maxIDAttempts bounds the collision retry loop in BeforeCreate.
	maxIDAttempts = 5
)

// BeforeCreate assigns a collision-checked random id. Explicitly set ids
// are kept as-is. Fails with ErrGenerationExhausted when every attempt
// collides with an existing row.
func (b *SymbolModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID != "" {
		return nil
	}

	table := tx.Statement.Table
	for i := 0; i < maxIDAttempts; i++ {
		id := RandomString(SymbolIDLength, true)
		var count int64
		err := tx.Session(&gorm.Session{NewDB: true}).
			Table(table).
			Where("id = ?", id).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			b.ID = id
			return nil
		}
	}
	return ErrGenerationExhausted
}

// RandomString returns a cryptographically random string of the given
// length. Upper case letters are included unless useUpperCase is false.
func RandomString(length int, useUpperCase bool) string {
	charset := mixedAlphanum
	if !useUpperCase {
		charset = lowerAlphanum
	}

	b := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken
			panic(err)
		}
		b[i] = charset[n.Int64()]
	}
	return string(b)
}

// NewInviteCode returns a lowercase invite code for a course.
func NewInviteCode() string {
	return RandomString(InviteCodeLength, false)
}
