package store

import (
	"sync"

	"github.com/MATTBOX19/lockbox-backend/internal/lockbox/dto"
)

// Store guarda os dois mapas (games e picks) em memória do processo.
// Não há persistência: restart descarta tudo. Um RWMutex único cobre os
// dois mapas; a contenção esperada é um writer (cron) contra poucos readers
type Store struct {
	mu    sync.RWMutex
	games map[string]dto.Game
	picks map[string]dto.Pick
}

func New() *Store {
	return &Store{
		games: make(map[string]dto.Game),
		picks: make(map[string]dto.Pick),
	}
}

// Upsert aplica o lote inteiro sob o mesmo lock: games primeiro, depois
// picks, na ordem do payload. Registro existente com o mesmo id é
// substituído por completo (sem merge de campos). Retorna os totais
// resultantes de cada mapa
func (s *Store) Upsert(games []dto.Game, picks []dto.Pick) (totalGames, totalPicks int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range games {
		s.games[g.ID] = g
	}
	for _, p := range picks {
		s.picks[p.ID] = p
	}

	return len(s.games), len(s.picks)
}

// ListGames retorna um snapshot de todos os games (ordem indefinida)
func (s *Store) ListGames() []dto.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]dto.Game, 0, len(s.games))
	for _, g := range s.games {
		out = append(out, g)
	}
	return out
}

// ListPicks retorna um snapshot de todos os picks (ordem indefinida)
func (s *Store) ListPicks() []dto.Pick {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]dto.Pick, 0, len(s.picks))
	for _, p := range s.picks {
		out = append(out, p)
	}
	return out
}

// Counts retorna o tamanho atual de cada mapa
func (s *Store) Counts() (games, picks int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games), len(s.picks)
}
