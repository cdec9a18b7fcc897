package scoreservice

import (
	scoredomain "github.com/Black-And-White-Club/trivia-bot/app/modules/score/domain"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

func (s *ScoreService) OpenSession(sessionID sharedtypes.SessionID, roster []sharedtypes.PlayerID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = scoredomain.NewSessionPoints(roster...)
}

func (s *ScoreService) session(sessionID sharedtypes.SessionID) *scoredomain.SessionPoints {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.sessions[sessionID]
	if !ok {
		sp = scoredomain.NewSessionPoints()
		s.sessions[sessionID] = sp
	}
	return sp
}

func (s *ScoreService) RecordRoundPoint(sessionID sharedtypes.SessionID, player sharedtypes.PlayerID) int {
	return s.session(sessionID).Add(player, 1)
}

func (s *ScoreService) SessionStandings(sessionID sharedtypes.SessionID) []scoredomain.PlayerPoints {
	s.mu.Lock()
	sp, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return sp.Snapshot()
}

func (s *ScoreService) DiscardSession(sessionID sharedtypes.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *ScoreService) takeSession(sessionID sharedtypes.SessionID) (*scoredomain.SessionPoints, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	return sp, ok
}
