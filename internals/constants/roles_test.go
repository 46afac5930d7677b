package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleErrorTeacher(t *testing.T) {
	assert.Equal(t, "Only teachers can modify subjects", RoleErrorTeacher("modify subjects"))
	assert.Equal(t, "Only teachers can access this resource", TeacherOnlyDefault)
}
