package admin

import (
	"context"
	"strconv"

	"github.com/dmitrymomot/campkit/pkg/campapi"
)

// ParticipantQuery narrows the participant list to one camp.
type ParticipantQuery struct {
	ListQuery
	CampID int `query:"camp" json:"camp"`
}

// Participants lists registered participants matching the query by name,
// code, phone or location.
func (s *Service) Participants(ctx context.Context, q ParticipantQuery) (List[campapi.Participant], error) {
	list, err := s.backend.ListParticipants(ctx, campapi.ParticipantFilter{CampID: q.CampID})
	if err != nil {
		return List[campapi.Participant]{}, mapBackendError(err)
	}
	return paginate(list, q.ListQuery, s.pageSize, func(p campapi.Participant) []string {
		return []string{p.Code, p.FirstName, p.LastName, p.Phone, p.Country, p.City, p.Delegation, strconv.Itoa(p.CampID)}
	}), nil
}
