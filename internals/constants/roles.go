package constants

import "fmt"

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "Only teachers can %s"
	ErrNotAuthenticated      = "Not authenticated"
)

// RoleErrorTeacher("modify subjects") → "Only teachers can modify subjects"
func RoleErrorTeacher(action string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, action)
}

// ==========================
// Pesan per fitur
// ==========================
var (
	TeacherOnlySearchUsers    = RoleErrorTeacher("search users")
	TeacherOnlyModifySubjects = RoleErrorTeacher("modify subjects")
	TeacherOnlyCreateClasses  = RoleErrorTeacher("create classes")
	TeacherOnlyPublicEvents   = RoleErrorTeacher("create public events")
	TeacherOnlyDefault        = RoleErrorTeacher("access this resource")
)
