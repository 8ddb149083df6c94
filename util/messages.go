package util

const (
	SERVER_ERROR              = "Server error"
	INVALID_CREDENTIALS       = "Invalid credentials"
	INVALID_MFA_CODE          = "Invalid MFA code"
	INVALID_OR_EXPIRED_OTP    = "Invalid OTP or OTP expired"
	FAILED_TO_SEND_OTP        = "Failed to send OTP email"
	FAILED_TO_SEND_MFA        = "Failed to send MFA code"
	USER_ALREADY_EXISTS       = "User already exists"
	DOCTOR_EMAIL_EXISTS       = "Doctor with this email already exists"
	DOCTOR_LICENSE_EXISTS     = "Doctor with this license number already exists"
	USER_NOT_FOUND            = "User not found"
	DOCTOR_NOT_FOUND          = "Doctor not found"
	APPOINTMENT_NOT_FOUND     = "Appointment not found"
	SLOT_NOT_AVAILABLE        = "Slot not available"
	INVALID_ROLE              = "Invalid role"
	INVALID_DATE              = "Invalid date, expected YYYY-MM-DD"
	INVALID_STATUS            = "Invalid status, expected confirmed, completed or cancelled"
	INVALID_ID                = "Invalid id"
	NO_TOKEN_PROVIDED         = "No token provided"
	TOKEN_EXPIRED_OR_INVALID  = "Token expired or invalid"
	ACCESS_DENIED             = "Access denied"
	MFA_CODE_SENT             = "MFA code sent to email"
	OTP_SENT                  = "OTP sent to your email"
	OTP_VERIFIED              = "OTP verified successfully"
	PASSWORD_RESET_SUCCESSFUL = "Password reset successful"
	LOGIN_SUCCESSFUL          = "Login successful"
	USER_REGISTERED           = "User registered successfully"
	DOCTOR_REGISTERED         = "Doctor registered successfully"
	INVALID_REQUEST           = "Invalid request body"
	DOCTORS_FETCHED           = "Doctors fetched successfully"
	AVAILABILITY_FETCHED      = "Availability fetched successfully"
	PROFILE_FETCHED           = "Profile fetched successfully"
	SLOTS_ADDED               = "Default slots added"
	SLOT_BOOKED               = "Slot booked successfully"
	APPOINTMENT_CREATED       = "Appointment created successfully"
	APPOINTMENTS_FETCHED      = "Appointments fetched successfully"
	APPOINTMENT_UPDATED       = "Appointment updated successfully"
	APPOINTMENT_DELETED       = "Appointment deleted successfully"
)

// Collection names
const (
	UserCollection        = "users"
	DoctorCollection      = "doctors"
	AppointmentCollection = "appointments"
)

// Cache keys
const (
	DoctorListKey = "DOCTORS:all"
)
