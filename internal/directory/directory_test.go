package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialtiesAndDoctors(t *testing.T) {
	svc := New()

	assert.Len(t, svc.Specialties(), 6)
	assert.Len(t, svc.Doctors(), 4)
}

func TestDoctorByID(t *testing.T) {
	svc := New()

	d, ok := svc.DoctorByID("1")
	require.True(t, ok)
	assert.Equal(t, "Cardiology", d.Specialty)

	_, ok = svc.DoctorByID("999")
	assert.False(t, ok)
}

func TestDoctorsBySpecialty(t *testing.T) {
	svc := New()

	matched := svc.DoctorsBySpecialty("Pediatrics")
	require.Len(t, matched, 1)
	assert.Equal(t, "Dr. Emily Rodriguez", matched[0].Name)

	assert.Empty(t, svc.DoctorsBySpecialty("Dermatology"))
}

func TestSpecialtyByID(t *testing.T) {
	svc := New()

	sp, ok := svc.SpecialtyByID("oncology")
	require.True(t, ok)
	assert.Equal(t, "Oncology", sp.Name)

	_, ok = svc.SpecialtyByID("unknown")
	assert.False(t, ok)
}
