package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/gapc-api/internal/application/dto"
	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/rbac"
	"github.com/jhoicas/gapc-api/pkg/jwt"
	"github.com/jhoicas/gapc-api/pkg/logger"
)

// TokenConfig configuración del token de sesión.
type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Resultados de login registrados en métricas y logs.
const (
	OutcomeSuccess           = "success"
	OutcomeUserNotFound      = "user_not_found"
	OutcomeInactiveAccount   = "inactive_account"
	OutcomeInvalidCredential = "invalid_credential"
	OutcomeStoreUnavailable  = "store_unavailable"
	OutcomeError             = "error"
)

// AuthUseCase casos de uso de sesión: login, resolución del token, logout y sesión actual.
type AuthUseCase struct {
	authn    *Authenticator
	sessions *SessionRegistry
	tokens   TokenConfig
	log      *logger.Logger
	recorder LoginRecorder
}

// NewAuthUseCase construye el caso de uso de auth. log es el logger raíz: el caso de uso
// le agrega component=auth. recorder puede ser nil.
func NewAuthUseCase(authn *Authenticator, sessions *SessionRegistry, tokens TokenConfig, log *logger.Logger, recorder LoginRecorder) *AuthUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		authn:    authn,
		sessions: sessions,
		tokens:   tokens,
		log:      log.Component("auth"),
		recorder: recorder,
	}
}

// Login autentica, abre la sesión en el registro y emite el token.
// Devuelve los errores de dominio del Authenticator sin transformar; la capa HTTP decide el mensaje visible.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	session, err := uc.authn.Authenticate(ctx, in.Login, in.Password)
	if err != nil {
		outcome := failureOutcome(err)
		uc.recorder.RecordLogin(outcome)
		if outcome == OutcomeStoreUnavailable || outcome == OutcomeError {
			uc.log.Error().Err(err).Str("reason", outcome).Msg("login fallido")
		} else {
			uc.log.Warn().Str("reason", outcome).Msg("login rechazado")
		}
		return nil, err
	}

	id := session.Identity()
	sessionID, expiresAt := uc.sessions.Open(session, uc.tokens.TTL)
	token, err := jwt.Generate(uc.tokens.Secret, sessionID, id.UserID, id.Role.String(), uc.tokens.Issuer, uc.tokens.TTL)
	if err != nil {
		uc.sessions.Close(sessionID)
		uc.recorder.RecordLogin(OutcomeError)
		uc.log.Error().Err(err).Msg("emitir token de sesión")
		return nil, err
	}
	uc.recorder.RecordLogin(OutcomeSuccess)
	uc.recorder.SetActiveSessions(uc.sessions.Len())
	uc.log.Info().
		Str("user_id", id.UserID).
		Str("role", id.Role.String()).
		Int("permissions", len(session.Permissions())).
		Msg("sesión iniciada")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Session:   *toSessionResponse(session),
	}, nil
}

// Resolve obtiene el State asociado a un token. Un token ausente, inválido, vencido o ya cerrado
// produce un State anónimo nuevo (falla cerrado) y sessionID vacío.
func (uc *AuthUseCase) Resolve(token string) (string, *rbac.State) {
	if token == "" {
		return "", rbac.NewState()
	}
	claims, err := jwt.Parse(uc.tokens.Secret, uc.tokens.Issuer, token)
	if err != nil {
		uc.log.Debug().Err(err).Msg("token de sesión inválido")
		return "", rbac.NewState()
	}
	st, ok := uc.sessions.Lookup(claims.SessionID)
	if !ok {
		return "", rbac.NewState()
	}
	return claims.SessionID, st
}

// Logout descarta la sesión. Es idempotente.
func (uc *AuthUseCase) Logout(sessionID string) {
	if sessionID == "" {
		return
	}
	if uc.sessions.Close(sessionID) {
		uc.log.Info().Str("session_id", sessionID).Msg("sesión cerrada")
	}
	uc.recorder.SetActiveSessions(uc.sessions.Len())
}

// Me devuelve la identidad y permisos de la sesión. domain.ErrNotAuthenticated si es anónima.
func (uc *AuthUseCase) Me(s *rbac.Session) (*dto.SessionResponse, error) {
	if !s.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	return toSessionResponse(s), nil
}

func failureOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return OutcomeUserNotFound
	case errors.Is(err, domain.ErrInactiveAccount):
		return OutcomeInactiveAccount
	case errors.Is(err, domain.ErrInvalidCredential):
		return OutcomeInvalidCredential
	case errors.Is(err, domain.ErrStoreUnavailable):
		return OutcomeStoreUnavailable
	default:
		return OutcomeError
	}
}

func toSessionResponse(s *rbac.Session) *dto.SessionResponse {
	id := s.Identity()
	perms := s.Permissions()
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, string(p))
	}
	return &dto.SessionResponse{
		UserID:      id.UserID,
		Name:        id.Name,
		Role:        id.Role.String(),
		DistrictID:  id.DistrictID,
		GroupID:     id.GroupID,
		Permissions: names,
	}
}
