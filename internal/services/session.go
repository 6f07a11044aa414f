package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"trivia-backend/internal/models"
	"trivia-backend/internal/ws"

	"gorm.io/gorm"
)

// EventSink receives session events for fan-out to connected viewers.
// Satisfied by *ws.Hub.
type EventSink interface {
	Broadcast(gameID uint, event ws.Event)
}

// SessionService owns the authoritative roster and score board of every
// running game. All mutation and rank computation for a game happens under
// that game's mutex, so concurrent joins and score submissions always see a
// consistent snapshot. The store is written through inside the critical
// section; on restart sessions are rehydrated lazily from it.
type SessionService struct {
	db   *gorm.DB
	sink EventSink

	mu       sync.RWMutex
	sessions map[uint]*session
}

// session is the in-memory state of one game. players keeps join order,
// which breaks score ties deterministically.
type session struct {
	mu       sync.Mutex
	category string
	state    string
	players  []*models.Player
	byName   map[string]*models.Player
}

func NewSessionService(db *gorm.DB, sink EventSink) *SessionService {
	return &SessionService{
		db:       db,
		sink:     sink,
		sessions: make(map[uint]*session),
	}
}

type ScoreEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// Join adds a player to the game's roster with score 0 and returns the bound
// category name so the client can fetch its questions. Late joins are
// allowed while the game is in progress.
func (s *SessionService) Join(gameID uint, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("%w: username is empty", ErrBadRequest)
	}

	sess, err := s.getSession(gameID)
	if err != nil {
		return "", err
	}

	sess.mu.Lock()
	if sess.state == models.GameStateEnded {
		sess.mu.Unlock()
		return "", fmt.Errorf("%w: game %d has ended", ErrInvalidState, gameID)
	}
	if _, taken := sess.byName[username]; taken {
		sess.mu.Unlock()
		return "", fmt.Errorf("%w: username %q already taken in game %d", ErrConflict, username, gameID)
	}

	player := &models.Player{
		GameID:        gameID,
		Username:      username,
		Score:         0,
		IsFacilitator: false,
		JoinedAt:      time.Now(),
	}
	if err := s.db.Create(player).Error; err != nil {
		sess.mu.Unlock()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", fmt.Errorf("%w: username %q already taken in game %d", ErrConflict, username, gameID)
		}
		return "", err
	}
	sess.players = append(sess.players, player)
	sess.byName[username] = player
	category := sess.category
	sess.mu.Unlock()

	s.sink.Broadcast(gameID, ws.Event{Type: ws.EventNewPlayer, Data: username})
	return category, nil
}

// SubmitScore sets the player's score to the given value (last write wins,
// no accumulation) and returns the player's 1-based rank among the game's
// roster, lowest score first.
func (s *SessionService) SubmitScore(gameID uint, username string, score int) (int, error) {
	sess, err := s.getSession(gameID)
	if err != nil {
		return 0, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state == models.GameStateEnded {
		return 0, fmt.Errorf("%w: game %d has ended", ErrInvalidState, gameID)
	}

	player, ok := sess.byName[username]
	if !ok {
		return 0, fmt.Errorf("%w: player %q in game %d", ErrNotFound, username, gameID)
	}

	// Write through first; memory stays authoritative only for scores the
	// store accepted.
	if err := s.db.Model(&models.Player{}).Where("id = ?", player.ID).Update("score", score).Error; err != nil {
		return 0, err
	}
	player.Score = score

	ranked := sess.rankedLocked()
	for i, p := range ranked {
		if p == player {
			return i + 1, nil
		}
	}
	// Unreachable: the player is always in the roster at this point.
	return 0, fmt.Errorf("%w: player %q in game %d", ErrNotFound, username, gameID)
}

// Leaderboard returns the full roster sorted ascending by score, ties broken
// by join order.
func (s *SessionService) Leaderboard(gameID uint) ([]ScoreEntry, error) {
	sess, err := s.getSession(gameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	ranked := sess.rankedLocked()
	entries := make([]ScoreEntry, len(ranked))
	for i, p := range ranked {
		entries[i] = ScoreEntry{Username: p.Username, Score: p.Score}
	}
	return entries, nil
}

// AdvanceQuestion moves an open game to in_progress on its first call and
// broadcasts nextQuestion to the game's subscribers on every call. Roster
// and scores are never touched.
func (s *SessionService) AdvanceQuestion(gameID uint) error {
	sess, err := s.getSession(gameID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	if sess.state == models.GameStateEnded {
		sess.mu.Unlock()
		return fmt.Errorf("%w: game %d has ended", ErrInvalidState, gameID)
	}
	if sess.state == models.GameStateOpen {
		if err := s.setGameState(gameID, models.GameStateInProgress); err != nil {
			sess.mu.Unlock()
			return err
		}
		sess.state = models.GameStateInProgress
	}
	sess.mu.Unlock()

	s.sink.Broadcast(gameID, ws.Event{Type: ws.EventNextQuestion})
	return nil
}

// EndGame transitions the game to its terminal state. Ending an already
// ended game is a no-op.
func (s *SessionService) EndGame(gameID uint) error {
	sess, err := s.getSession(gameID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	if sess.state == models.GameStateEnded {
		sess.mu.Unlock()
		return nil
	}
	if err := s.setGameState(gameID, models.GameStateEnded); err != nil {
		sess.mu.Unlock()
		return err
	}
	sess.state = models.GameStateEnded
	sess.mu.Unlock()

	s.sink.Broadcast(gameID, ws.Event{Type: ws.EventGameEnded})
	return nil
}

func (s *SessionService) setGameState(gameID uint, state string) error {
	return s.db.Model(&models.Game{}).Where("id = ?", gameID).Update("state", state).Error
}

// rankedLocked returns the roster sorted ascending by score. Stable sort
// keeps join order on ties. Callers must hold sess.mu.
func (sess *session) rankedLocked() []*models.Player {
	ranked := make([]*models.Player, len(sess.players))
	copy(ranked, sess.players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	return ranked
}

// getSession returns the in-memory session for a game, rehydrating it from
// the store on first touch.
func (s *SessionService) getSession(gameID uint) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[gameID]
	s.mu.RUnlock()
	if ok {
		return sess, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[gameID]; ok {
		return sess, nil
	}

	var game models.Game
	if err := s.db.Preload("Category").First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: game %d", ErrNotFound, gameID)
		}
		return nil, err
	}

	var players []models.Player
	if err := s.db.Where("game_id = ?", gameID).Order("id ASC").Find(&players).Error; err != nil {
		return nil, err
	}

	sess = &session{
		category: game.Category.Name,
		state:    game.State,
		players:  make([]*models.Player, 0, len(players)),
		byName:   make(map[string]*models.Player, len(players)),
	}
	for i := range players {
		p := &players[i]
		sess.players = append(sess.players, p)
		sess.byName[p.Username] = p
	}

	s.sessions[gameID] = sess
	return sess, nil
}
