package readmodel

// ShopRM is the cached read model of a shop. The JSON form is what lives in
// Redis, so field tags are part of the cache wire format.
type ShopRM struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	TypeID   int64  `json:"type_id"`
	Address  string `json:"address"`
	AvgPrice int64  `json:"avg_price"`
	Score    int32  `json:"score"`
}
