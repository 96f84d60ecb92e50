package domain

import "pestlinkgw/internal/shared/normalization"

// Technician is the stable technician record.
type Technician struct {
	TechnicianID string `json:"technicianId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Telephone    string `json:"telephone"`
	Specialty    string `json:"specialty"`
	Active       bool   `json:"active"`
}

// TechnicianFromPayload reconciles a raw backend element into a Technician.
func TechnicianFromPayload(raw map[string]any) Technician {
	active := true
	if value, ok := normalization.FirstValue(raw, "active", "isActive", "is_active"); ok {
		active = normalization.AsBool(value)
	}
	return Technician{
		TechnicianID: normalization.FirstID(raw, "technicianId", "id", "technician_id", "_id"),
		Name:         normalization.FirstString(raw, "name", "technicianName", "technician_name", "fullName"),
		Email:        normalization.FirstString(raw, "email", "technicianEmail"),
		Telephone:    normalization.FirstString(raw, "telephone", "phone", "phoneNumber"),
		Specialty:    normalization.FirstString(raw, "specialty", "speciality", "role"),
		Active:       active,
	}
}

// TechnicianInput carries the fields a caller may supply when creating or
// updating a technician.
type TechnicianInput struct {
	Name      string
	Email     string
	Telephone string
	Specialty string
	Password  string
}

func (in TechnicianInput) Payload() map[string]any {
	return normalization.CleanOptional(map[string]any{
		"name":      in.Name,
		"email":     in.Email,
		"telephone": in.Telephone,
		"specialty": in.Specialty,
		"password":  in.Password,
	})
}
