package rating

import "context"

// Locker serializes rating updates per user across processes. Release must
// be called once the updating transaction has finished.
type Locker interface {
	LockUsers(ctx context.Context, userIDs ...uint) (release func(context.Context) error, err error)
}

type noLocks struct{}

// NoLocks is used when no Redis is configured; the profile row locks taken
// by LockProfiles are then the only serialization.
func NoLocks() Locker { return noLocks{} }

func (noLocks) LockUsers(context.Context, ...uint) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
