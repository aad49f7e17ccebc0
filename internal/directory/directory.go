// Package directory serves the hospital's static reference data: the
// specialty catalogue and the doctor roster. The data is compiled in; there
// is no backing store to fail.
package directory

import "vitalis-server/internal/models"

// Service exposes read-only lookups over the reference data.
type Service struct {
	specialties []models.Specialty
	doctors     []models.Doctor
}

func New() *Service {
	return &Service{
		specialties: specialties,
		doctors:     doctors,
	}
}

// Specialties returns the full specialty catalogue.
func (s *Service) Specialties() []models.Specialty {
	out := make([]models.Specialty, len(s.specialties))
	copy(out, s.specialties)
	return out
}

// Doctors returns the full doctor roster.
func (s *Service) Doctors() []models.Doctor {
	out := make([]models.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out
}

// DoctorByID returns the doctor with the given id, or false when unknown.
func (s *Service) DoctorByID(id string) (models.Doctor, bool) {
	for _, d := range s.doctors {
		if d.ID == id {
			return d, true
		}
	}
	return models.Doctor{}, false
}

// DoctorsBySpecialty returns all doctors practicing the named specialty.
func (s *Service) DoctorsBySpecialty(name string) []models.Doctor {
	var out []models.Doctor
	for _, d := range s.doctors {
		if d.Specialty == name {
			out = append(out, d)
		}
	}
	return out
}

// SpecialtyByID returns the specialty with the given id, or false when unknown.
func (s *Service) SpecialtyByID(id string) (models.Specialty, bool) {
	for _, sp := range s.specialties {
		if sp.ID == id {
			return sp, true
		}
	}
	return models.Specialty{}, false
}
