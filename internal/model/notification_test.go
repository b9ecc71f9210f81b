package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationUserMarkAsRead(t *testing.T) {
	n := &NotificationUser{UserID: 1}
	first := time.Now()

	n.MarkAsRead(first)
	assert.True(t, n.IsRead)
	require.NotNil(t, n.ReadAt)
	assert.Equal(t, first, *n.ReadAt)

	// Marking again keeps the original timestamp.
	n.MarkAsRead(first.Add(time.Hour))
	assert.Equal(t, first, *n.ReadAt)
}

func TestUserFullName(t *testing.T) {
	u := &User{FirstName: "Ivan", SecondName: "Petrov"}
	assert.Equal(t, "Petrov Ivan", u.FullName())

	u.LastName = strp("Sergeevich")
	assert.Equal(t, "Petrov Ivan Sergeevich", u.FullName())
}
