package dto

type BalanceResponseDTO struct {
	UserID     string  `json:"user_id" example:"u1"`
	Balance    float64 `json:"balance" example:"7"`
	BonusCoins float64 `json:"bonus_coins" example:"2"`
}

type GrantRequestDTO struct {
	Balance    float64 `json:"balance" example:"10"`
	BonusCoins float64 `json:"bonus_coins" example:"0"`
}
