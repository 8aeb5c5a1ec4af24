// file: mappers/player_mapper.go
package mappers

import (
	"time"

	"RunClub/dto"
	"RunClub/models"
	"RunClub/utils"
)

func MapPlayerToItemResp(p models.Player) dto.PlayerItemResp {
	resp := dto.PlayerItemResp{
		ID:            p.ID,
		FullName:      p.FullName,
		Email:         p.Email,
		ContactNumber: p.ContactNumber,
		CategoryTitle: "N/A",
		Status:        string(p.VerificationStatus),
		Bib:           utils.FormatBib(p.BibNumber),
		RegisteredAt:  p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if p.Event != nil {
		resp.EventTitle = p.Event.Title
	}
	if p.Category != nil {
		resp.CategoryTitle = p.Category.Title
	}
	return resp
}

func MapPlayersToItemResps(players []models.Player) []dto.PlayerItemResp {
	items := make([]dto.PlayerItemResp, 0, len(players))
	for _, p := range players {
		items = append(items, MapPlayerToItemResp(p))
	}
	return items
}

func MapPlayerToDetailResp(p models.Player) dto.PlayerDetailResp {
	resp := dto.PlayerDetailResp{
		ID:              p.ID,
		FullName:        p.FullName,
		ContactNumber:   p.ContactNumber,
		Email:           p.Email,
		Gender:          string(p.Gender),
		BloodGroup:      string(p.BloodGroup),
		Address:         p.Address,
		EmergencyName:   p.EmergencyName,
		EmergencyNumber: p.EmergencyNumber,
		EventID:         p.EventID,
		CategoryID:      p.CategoryID,
		CategoryTitle:   "N/A",
		PhotoPath:       p.PhotoPath,
		DocumentPath:    p.DocumentPath,
		Status:          string(p.VerificationStatus),
		BibNumber:       p.BibNumber,
		Bib:             utils.FormatBib(p.BibNumber),
		RejectionReason: p.RejectionReason,
	}
	if p.DateOfBirth != nil {
		resp.DateOfBirth = p.DateOfBirth.Format("2006-01-02")
	}
	if p.Event != nil {
		resp.EventTitle = p.Event.Title
	}
	if p.Category != nil {
		resp.CategoryTitle = p.Category.Title
	}
	if p.VerifiedAt != nil {
		s := p.VerifiedAt.Format(time.RFC3339)
		resp.VerifiedAt = &s
	}
	return resp
}
