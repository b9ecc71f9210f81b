package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminUser() *User {
	return &User{BaseModel: BaseModel{ID: 3}, Role: Admin}
}

func TestCanUserDelete(t *testing.T) {
	creatorOnly := &Course{DeletePermission: DeleteCreatorOnly}
	allTeachers := &Course{DeletePermission: DeleteAllTeachers}
	nobody := &Course{DeletePermission: DeleteNobody}

	teacher := teacherUser()
	student := studentUser()
	admin := adminUser()

	assert.True(t, creatorOnly.CanUserDelete(teacher, Membership{IsCreator: true}))
	assert.False(t, creatorOnly.CanUserDelete(teacher, Membership{IsTeacher: true}))

	assert.True(t, allTeachers.CanUserDelete(teacher, Membership{IsTeacher: true}))
	assert.False(t, allTeachers.CanUserDelete(teacher, Membership{}))
	assert.False(t, allTeachers.CanUserDelete(student, Membership{IsStudent: true}))

	assert.False(t, nobody.CanUserDelete(teacher, Membership{IsCreator: true}))
	assert.True(t, nobody.CanUserDelete(admin, Membership{}))
}

func TestCanUserComment(t *testing.T) {
	all := &Course{ConfigPermission: ConfigAll}
	commentsOnly := &Course{ConfigPermission: ConfigStudentsOnlyComments}
	teachersOnly := &Course{ConfigPermission: ConfigTeachersOnlyPublish}

	teacher := teacherUser()
	student := studentUser()

	assert.True(t, all.CanUserComment(student, Membership{IsStudent: true}))
	assert.True(t, commentsOnly.CanUserComment(student, Membership{IsStudent: true}))

	assert.False(t, teachersOnly.CanUserComment(student, Membership{IsStudent: true}))
	assert.True(t, teachersOnly.CanUserComment(teacher, Membership{IsTeacher: true}))
	assert.False(t, teachersOnly.CanUserComment(teacher, Membership{}))
	assert.True(t, teachersOnly.CanUserComment(adminUser(), Membership{}))
}

func TestCanUserPublish(t *testing.T) {
	all := &Course{ConfigPermission: ConfigAll}
	commentsOnly := &Course{ConfigPermission: ConfigStudentsOnlyComments}
	teachersOnly := &Course{ConfigPermission: ConfigTeachersOnlyPublish}

	teacher := teacherUser()
	student := studentUser()

	assert.True(t, all.CanUserPublish(student, Membership{IsStudent: true}))

	// Students may comment but not publish under students_only_comments.
	assert.False(t, commentsOnly.CanUserPublish(student, Membership{IsStudent: true}))
	assert.True(t, commentsOnly.CanUserPublish(teacher, Membership{IsTeacher: true}))

	assert.False(t, teachersOnly.CanUserPublish(student, Membership{IsStudent: true}))
	assert.True(t, teachersOnly.CanUserPublish(teacher, Membership{IsTeacher: true}))
}

func TestInviteLifecycle(t *testing.T) {
	now := time.Now()

	inv := &Invite{Status: InvitePending}
	inv.Accept(now)
	assert.Equal(t, InviteAccepted, inv.Status)
	require.NotNil(t, inv.AcceptedAt)
	assert.Equal(t, now, *inv.AcceptedAt)

	rejected := &Invite{Status: InvitePending}
	rejected.Reject()
	assert.Equal(t, InviteRejected, rejected.Status)
	assert.Nil(t, rejected.AcceptedAt)
}

func TestMembershipOnCourse(t *testing.T) {
	assert.False(t, Membership{}.OnCourse())
	assert.True(t, Membership{IsCreator: true}.OnCourse())
	assert.True(t, Membership{IsTeacher: true}.OnCourse())
	assert.True(t, Membership{IsStudent: true}.OnCourse())
}

func TestRandomString(t *testing.T) {
	s := RandomString(SymbolIDLength, true)
	assert.Len(t, s, SymbolIDLength)

	lower := RandomString(64, false)
	assert.Len(t, lower, 64)
	for _, r := range lower {
		assert.False(t, r >= 'A' && r <= 'Z', "lowercase charset produced %q", r)
	}

	// Collisions across a handful of draws would indicate a broken source.
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := RandomString(SymbolIDLength, true)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestNewInviteCode(t *testing.T) {
	code := NewInviteCode()
	assert.Len(t, code, InviteCodeLength)
	for _, r := range code {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'), "unexpected rune %q", r)
	}
}
