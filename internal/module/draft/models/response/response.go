package response

import "github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/models/entity"

type Draft struct {
	*entity.Draft
	TotalAmount int64 `json:"total_amount"`
}

func FromEntity(d *entity.Draft) Draft {
	return Draft{Draft: d, TotalAmount: d.TotalAmount()}
}
