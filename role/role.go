package role

const (
	Patient = "patient"
	Admin   = "admin"
	Doctor  = "doctor"
)

// UserRoles are the roles a patient-side account may register with.
var UserRoles = []string{Patient, Admin}

// DoctorRoles are the roles a doctor account may register with.
var DoctorRoles = []string{Doctor, Admin}

/*
* Empty role falls back to the default of the account kind
* Anything outside the allowed list is rejected
 */
func Resolve(requested string, allowed []string) (string, bool) {
	if requested == "" {
		return allowed[0], true
	}
	for _, r := range allowed {
		if r == requested {
			return r, true
		}
	}
	return "", false
}
