package myuuid

import "github.com/google/uuid"

//go:generate mockgen -source=api.go -package myuuid -destination uuider_mock.go UUIDer
type UUIDer interface {
	Create() string
}

type RealUUIDer struct{}

func (u RealUUIDer) Create() string {
	return uuid.New().String()
}

// IsValid reports whether value is a well-formed generated token.
func IsValid(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
