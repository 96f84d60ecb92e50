package domain

import "pestlinkgw/internal/shared/normalization"

// BaitType is a rodenticide bait product available to technicians.
type BaitType struct {
	BaitTypeID       string `json:"baitTypeId"`
	Name             string `json:"name"`
	ActiveIngredient string `json:"activeIngredient,omitempty"`
	Unit             string `json:"unit,omitempty"`
}

// BaitTypeFromPayload reconciles a raw backend element into a BaitType.
func BaitTypeFromPayload(raw map[string]any) BaitType {
	return BaitType{
		BaitTypeID:       normalization.FirstID(raw, "baitTypeId", "id", "bait_type_id", "_id"),
		Name:             normalization.FirstString(raw, "name", "baitName", "bait_name"),
		ActiveIngredient: normalization.FirstString(raw, "activeIngredient", "active_ingredient", "ingredient"),
		Unit:             normalization.FirstString(raw, "unit", "measureUnit"),
	}
}

// Chemical is an insecticide or disinfection product.
type Chemical struct {
	ChemicalID  string `json:"chemicalId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit,omitempty"`
}

// ChemicalFromPayload reconciles a raw backend element into a Chemical.
func ChemicalFromPayload(raw map[string]any) Chemical {
	return Chemical{
		ChemicalID:  normalization.FirstID(raw, "chemicalId", "id", "chemical_id", "_id"),
		Name:        normalization.FirstString(raw, "name", "chemicalName", "chemical_name"),
		Description: normalization.FirstString(raw, "description", "details"),
		Unit:        normalization.FirstString(raw, "unit", "measureUnit"),
	}
}

// MaterialInput carries the fields for registering a new bait type or chemical.
type MaterialInput struct {
	Name             string
	ActiveIngredient string
	Description      string
	Unit             string
}

func (in MaterialInput) Payload() map[string]any {
	return normalization.CleanOptional(map[string]any{
		"name":             in.Name,
		"activeIngredient": in.ActiveIngredient,
		"description":      in.Description,
		"unit":             in.Unit,
	})
}
