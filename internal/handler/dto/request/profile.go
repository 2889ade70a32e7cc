package request

import (
	"strings"

	"marketplace-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	Nickname  *string `json:"nickname"`
	BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateProfileRequest) ToInput() (commands.UpdateProfileInput, error) {
	birthDate, err := parseDate(r.BirthDate)
	if err != nil {
		return commands.UpdateProfileInput{}, err
	}
	return commands.UpdateProfileInput{
		Nickname:  r.Nickname,
		BirthDate: birthDate,
	}, nil
}

// ParseIDList reads a comma separated id list such as "?ids=a,b".
func ParseIDList(raw string) ([]uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
