package request

import "flashsale/internal/usecase/readmodel"

type UpdateShopRequest struct {
	ID       int64  `json:"id" binding:"required,min=1"`
	Name     string `json:"name" binding:"required,max=255"`
	TypeID   int64  `json:"type_id"`
	Address  string `json:"address" binding:"max=255"`
	AvgPrice int64  `json:"avg_price" binding:"min=0"`
	Score    int32  `json:"score" binding:"min=0,max=50"`
}

func (r *UpdateShopRequest) ToReadModel() *readmodel.ShopRM {
	return &readmodel.ShopRM{
		ID:       r.ID,
		Name:     r.Name,
		TypeID:   r.TypeID,
		Address:  r.Address,
		AvgPrice: r.AvgPrice,
		Score:    r.Score,
	}
}
