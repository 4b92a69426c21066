// file: internals/features/users/auth/dto/auth_dto.go
package dto

// RegisterStudentRequest: the email is restricted to the institutional domain and
// must be free in both principal tables.
type RegisterStudentRequest struct {
	Firstname  string `json:"firstname" validate:"required,max=255"`
	Lastname   string `json:"lastname" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,email"`
	StudentNum string `json:"student_num" validate:"required"`
	Program    string `json:"program" validate:"required,oneof=BSCS BSIT BSEMC BSIS"`
	Password   string `json:"password" validate:"required,min=8"`
}

type RegisterTeacherRequest struct {
	Firstname string `json:"firstname" validate:"required,max=255"`
	Lastname  string `json:"lastname" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthResponse is returned on register and login.
type AuthResponse struct {
	Message     string `json:"message"`
	UserType    string `json:"user_type"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	StudentID   *int64 `json:"studentID,omitempty"`
	TeacherID   *int64 `json:"teacherID,omitempty"`
}
