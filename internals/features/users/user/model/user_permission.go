package model

import (
	"fmt"
	"strings"
)

// Permission adalah level akses user; urutannya total (Student < Teacher).
type Permission int

const (
	PermissionStudent Permission = 1
	PermissionTeacher Permission = 2
)

func (p Permission) String() string {
	switch p {
	case PermissionStudent:
		return "student"
	case PermissionTeacher:
		return "teacher"
	default:
		return fmt.Sprintf("permission(%d)", int(p))
	}
}

func (p Permission) Valid() bool {
	return p == PermissionStudent || p == PermissionTeacher
}

func (p Permission) AtLeast(other Permission) bool {
	return p >= other
}

// ParsePermission menerima nama ("teacher") atau angka ("2").
func ParsePermission(s string) (Permission, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student", "1":
		return PermissionStudent, nil
	case "teacher", "2":
		return PermissionTeacher, nil
	}
	return 0, fmt.Errorf("unknown permission %q", s)
}
