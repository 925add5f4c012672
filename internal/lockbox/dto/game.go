package dto

import (
	"encoding/json"
	"errors"
)

// Game representa uma partida agendada, com linha de mercado e valores
// justos calculados upstream (aqui só armazenamos)
type Game struct {
	ID        string `json:"id"`
	League    string `json:"league"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	KickoffAt string `json:"kickoff_at"` // ISO-8601 recomendado; guardado como veio, sem parse

	MarketSpread *string  `json:"market_spread"`
	MarketTotal  *float64 `json:"market_total"`
	FairSpread   *float64 `json:"fair_spread"`
	FairTotal    *float64 `json:"fair_total"`
	Weather      *string  `json:"weather"`

	Notes []string `json:"notes"`
}

// UnmarshalJSON normaliza notes pra lista vazia quando o campo não vem
func (g *Game) UnmarshalJSON(b []byte) error {
	type alias Game
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if a.Notes == nil {
		a.Notes = []string{}
	}
	*g = Game(a)
	return nil
}

// Validate confere os campos obrigatórios
func (g Game) Validate() error {
	if g.ID == "" || g.League == "" || g.Home == "" || g.Away == "" || g.KickoffAt == "" {
		return errors.New("id, league, home, away and kickoff_at are required")
	}
	return nil
}
