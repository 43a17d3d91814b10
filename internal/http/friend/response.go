package friend

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/splitty/internal/money"
	"github.com/MrJamesThe3rd/splitty/internal/roster"
)

type friendResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	Balance  string          `json:"balance"`
	Standing roster.Standing `json:"standing"`
	Summary  string          `json:"summary"`
}

func toResponse(f *roster.Friend) friendResponse {
	return friendResponse{
		ID:       f.ID,
		Name:     f.Name,
		Image:    f.Image,
		Balance:  money.Format(f.Balance),
		Standing: f.Standing(),
		Summary:  f.Describe(),
	}
}

func toResponseList(friends []*roster.Friend) []friendResponse {
	resp := make([]friendResponse, len(friends))
	for i, f := range friends {
		resp[i] = toResponse(f)
	}

	return resp
}

type selectResponse struct {
	Selected *friendResponse `json:"selected"`
}
