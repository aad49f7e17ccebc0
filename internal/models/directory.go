// internal/models/directory.go
package models

// Doctor is a static directory record for the hospital's medical staff.
type Doctor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Experience   string   `json:"experience"`
	Education    string   `json:"education"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Availability []string `json:"availability"`
	Bio          string   `json:"bio,omitempty"`
}

// Specialty is a static directory record for a hospital department.
type Specialty struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Icon            string   `json:"icon"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Symptoms        []string `json:"symptoms,omitempty"`
	Procedures      []string `json:"procedures,omitempty"`
}
