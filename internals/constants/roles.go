package constants

import "fmt"

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// Role error message templates
const (
	ErrOnlyTeachersCanAccess = "Only teachers may access %s."
	ErrOnlyStudentsCanAccess = "Only students may access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

var AllRoles = []string{
	RoleStudent,
	RoleTeacher,
}
