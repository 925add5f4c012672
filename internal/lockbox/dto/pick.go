package dto

import (
	"encoding/json"
	"errors"
)

// Pick representa uma recomendação de aposta ligada a um Game
// game_id é referência fraca: não validamos se o Game existe
type Pick struct {
	ID        string `json:"id"`
	League    string `json:"league"`
	GameID    string `json:"game_id"`
	Market    string `json:"market"`    // ex: "spread", "total"
	Selection string `json:"selection"` // ex: "PHI -2.5"

	PostedLine *float64 `json:"posted_line"`
	PostedOdds *int     `json:"posted_odds"` // convenção americana (ex: -110)
	Tier       string   `json:"tier"`
	HitProb    float64  `json:"hit_prob"` // sem range enforcement; vem pronto do modelo
	PlayTo     *string  `json:"play_to"`

	Rationale []string `json:"rationale"`
}

// UnmarshalJSON aplica os defaults de tier e hit_prob quando os campos
// não vêm no payload; valor explícito (mesmo zero) sempre prevalece
func (p *Pick) UnmarshalJSON(b []byte) error {
	type alias Pick
	a := alias{Tier: "A", HitProb: 0.55}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if a.Rationale == nil {
		a.Rationale = []string{}
	}
	*p = Pick(a)
	return nil
}

// Validate confere os campos obrigatórios
func (p Pick) Validate() error {
	if p.ID == "" || p.League == "" || p.GameID == "" || p.Market == "" || p.Selection == "" {
		return errors.New("id, league, game_id, market and selection are required")
	}
	return nil
}
