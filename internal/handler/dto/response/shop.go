package response

import "flashsale/internal/usecase/readmodel"

type ShopResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	TypeID   int64  `json:"type_id"`
	Address  string `json:"address"`
	AvgPrice int64  `json:"avg_price"`
	Score    int32  `json:"score"`
}

func FromShopRM(rm *readmodel.ShopRM) *ShopResponse {
	return &ShopResponse{
		ID:       rm.ID,
		Name:     rm.Name,
		TypeID:   rm.TypeID,
		Address:  rm.Address,
		AvgPrice: rm.AvgPrice,
		Score:    rm.Score,
	}
}
