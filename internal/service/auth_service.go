package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lamdh/gradeview/internal/dto"
	"github.com/lamdh/gradeview/internal/gateway"
	"github.com/lamdh/gradeview/internal/session"
)

type AuthService interface {
	Login(email, password string) gateway.Result[dto.Credentials]
	Logout()
}

type authService struct {
	client *gateway.Client
	sess   *session.Store
}

func NewAuthService(client *gateway.Client, sess *session.Store) AuthService {
	return &authService{client: client, sess: sess}
}

// Login exchanges credentials for a token and identity. The caller
// decides whether to establish the session with the returned pair;
// invalid credentials come back as a failure envelope, never an error.
func (s *authService) Login(email, password string) gateway.Result[dto.Credentials] {
	res := gateway.PostJSON[dto.Credentials](s.client, "/auth/login", dto.LoginRequest{
		Email:    email,
		Password: password,
	})
	if res.Success {
		if err := res.Data.User.Validate(); err != nil {
			log.Error().Err(err).Msg("Backend issued an invalid identity")
			return gateway.Fail[dto.Credentials]("Authentication failed")
		}
		if res.Data.Token == "" {
			return gateway.Fail[dto.Credentials]("Authentication failed")
		}
	}
	return res
}

// Logout clears the local session unconditionally, then notifies the
// backend in the background with the token the session held. The
// notification is best-effort with one retry; its failure is logged
// and otherwise ignored.
func (s *authService) Logout() {
	token := s.sess.Token()
	s.sess.Clear()
	if token == "" {
		return
	}
	go s.notifyLogout(token)
}

func (s *authService) notifyLogout(token string) {
	client := s.client.WithToken(token)
	for attempt := 1; attempt <= 2; attempt++ {
		res := gateway.PostJSON[map[string]any](client, "/auth/logout", struct{}{})
		if res.Success {
			return
		}
		log.Warn().Int("attempt", attempt).Str("error", res.Error).Msg("Logout notification failed")
		if attempt < 2 {
			time.Sleep(time.Second)
		}
	}
}
