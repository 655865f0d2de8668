package converter

import (
	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/domain/entity"
	"caregiver-marketplace/internal/domain/pricing"
)

// CaregiverToResponse converts a Caregiver entity to CaregiverResponse DTO
func CaregiverToResponse(caregiver *entity.Caregiver) *dto.CaregiverResponse {
	if caregiver == nil {
		return nil
	}

	response := &dto.CaregiverResponse{
		ID:           caregiver.ID,
		Name:         caregiver.Name,
		Rating:       caregiver.Rating,
		Age:          caregiver.Age,
		Contact:      caregiver.Contact,
		Gender:       string(caregiver.Gender),
		Location:     caregiver.Location,
		Area:         caregiver.Area,
		Languages:    append([]string{}, caregiver.Languages...),
		CareTypes:    append([]string{}, caregiver.CareTypes...),
		Packages:     make([]dto.PackageResponse, len(caregiver.Packages)),
		Availability: make([]dto.AvailabilityResponse, len(caregiver.Availability)),
		CreatedAt:    caregiver.CreatedAt,
	}

	for i, pkg := range caregiver.Packages {
		response.Packages[i] = dto.PackageResponse{Name: pkg.Name, Price: pkg.Price}
	}
	for i, slot := range caregiver.Availability {
		response.Availability[i] = dto.AvailabilityResponse{
			StartDate: slot.StartDate.Format(pricing.DateLayout),
			EndDate:   slot.EndDate.Format(pricing.DateLayout),
		}
	}

	return response
}

// CaregiversToResponses converts a slice of Caregiver entities to slice of CaregiverResponse DTOs
func CaregiversToResponses(caregivers []entity.Caregiver) []dto.CaregiverResponse {
	responses := make([]dto.CaregiverResponse, len(caregivers))
	for i := range caregivers {
		responses[i] = *CaregiverToResponse(&caregivers[i])
	}
	return responses
}
