package mappers

import (
	"github.com/hanlinworks/zhiguan/modules/catalog/domain/position"
	"github.com/hanlinworks/zhiguan/modules/catalog/domain/relationship"
	"github.com/hanlinworks/zhiguan/modules/catalog/presentation/viewmodels"
)

func PositionToVM(p position.Position) viewmodels.Position {
	var superior *string
	if p.SuperiorID != nil {
		s := p.SuperiorID.String()
		superior = &s
	}
	return viewmodels.Position{
		ID:          p.ID.String(),
		Name:        p.Name,
		Dynasty:     p.Dynasty,
		Category:    p.Category,
		Description: p.Description,
		StartYear:   p.StartYear,
		EndYear:     p.EndYear,
		Rank:        p.Rank,
		SuperiorID:  superior,
		Image:       p.Image,
	}
}

func RelationshipToVM(r relationship.Relationship) viewmodels.Relationship {
	return viewmodels.Relationship{
		ID:          r.ID.String(),
		SourceID:    r.SourceID.String(),
		TargetID:    r.TargetID.String(),
		Type:        r.Type,
		Description: r.Description,
	}
}
