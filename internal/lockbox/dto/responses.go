package dto

type HealthResponse struct {
	OK    bool `json:"ok"`
	Picks int  `json:"picks"`
	Games int  `json:"games"`
}

type UpsertResponse struct {
	OK    bool `json:"ok"`
	Games int  `json:"games"` // total de games após aplicar o lote
	Picks int  `json:"picks"` // total de picks após aplicar o lote
}
