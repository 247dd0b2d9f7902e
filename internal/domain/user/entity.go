package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the local identity record. Exactly one row exists per identity
// provider subject; it is created lazily on the first verified-token
// sighting. Role is authoritative here, never taken from token claims.
type User struct {
	id        uuid.UUID
	subject   uuid.UUID
	email     Email
	name      string
	role      Role
	createdAt time.Time
}

func NewUser(subject uuid.UUID, email Email, name string, role Role) *User {
	if name == "" {
		name = email.LocalPart()
	}
	return &User{
		id:      uuid.New(),
		subject: subject,
		email:   email,
		name:    name,
		role:    role,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Subject() uuid.UUID   { return u.subject }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
