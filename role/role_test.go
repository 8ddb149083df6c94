package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	r, ok := Resolve("", UserRoles)
	assert.True(t, ok)
	assert.Equal(t, Patient, r)

	r, ok = Resolve("", DoctorRoles)
	assert.True(t, ok)
	assert.Equal(t, Doctor, r)

	r, ok = Resolve(Admin, DoctorRoles)
	assert.True(t, ok)
	assert.Equal(t, Admin, r)

	_, ok = Resolve(Doctor, UserRoles)
	assert.False(t, ok)

	_, ok = Resolve("nurse", DoctorRoles)
	assert.False(t, ok)
}
