package models

type RegisterUserRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address" binding:"required"`
	DOB         string `json:"dob" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	Role        string `json:"role"`
}

type RegisterDoctorRequest struct {
	FullName       string `json:"fullName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	LicenseNumber  string `json:"licenseNumber" binding:"required"`
	ClinicAddress  string `json:"clinicAddress" binding:"required"`
	Role           string `json:"role"`
}

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	MFACode  string `json:"mfaCode"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
