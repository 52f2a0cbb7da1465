package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/rbac"
)

// Locals keys para el estado de sesión en Fiber.
const (
	LocalSessionState = "session_state"
	LocalSessionID    = "session_id"
)

// SessionResolver traduce el token Bearer en el State de la sesión. Lo implementa *auth.AuthUseCase.
type SessionResolver interface {
	Resolve(token string) (sessionID string, state *rbac.State)
}

// DecisionRecorder cuenta las decisiones del guard. Lo implementa *metrics.Metrics.
type DecisionRecorder interface {
	RecordDecision(result string)
}

// SessionMiddleware carga en c.Locals el State de la sesión. Sin header, con formato inválido
// o con un token desconocido la petición sigue como anónima; los guards deciden después.
func SessionMiddleware(resolver SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID, st := resolver.Resolve(bearerToken(c.Get(fiber.HeaderAuthorization)))
		c.Locals(LocalSessionState, st)
		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetSession devuelve la sesión vigente de la petición (anónima si no pasó por SessionMiddleware).
func GetSession(c *fiber.Ctx) *rbac.Session {
	st, _ := c.Locals(LocalSessionState).(*rbac.State)
	if st == nil {
		return rbac.Anonymous()
	}
	return st.Get()
}

// GetSessionID devuelve el ID de la sesión ("" si es anónima).
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}

// RequireSession exige una sesión autenticada, sin permisos concretos.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetSession(c).Authenticated() {
			return writeError(c, domain.ErrNotAuthenticated)
		}
		return c.Next()
	}
}

// RequirePermissions protege la ruta con el guard RBAC: el handler solo corre si la sesión
// está autenticada y tiene todos los permisos. Debe usarse DESPUÉS de SessionMiddleware.
//
// Comportamiento:
//   - 401 NOT_AUTHENTICATED → sesión anónima.
//   - 403 FORBIDDEN → falta al menos un permiso (la respuesta no dice cuál).
func RequirePermissions(rec DecisionRecorder, perms ...entity.Permission) fiber.Handler {
	required := append([]entity.Permission(nil), perms...)
	return func(c *fiber.Ctx) error {
		ran := false
		next := rbac.Guard(func(context.Context, *rbac.Session) (struct{}, error) {
			ran = true
			return struct{}{}, c.Next()
		}, required...)

		_, err := next(c.UserContext(), GetSession(c))
		if ran {
			record(rec, "allowed")
			return err
		}
		switch {
		case errors.Is(err, domain.ErrNotAuthenticated):
			record(rec, rbac.ReasonNotAuthenticated.String())
		default:
			record(rec, rbac.ReasonMissingPermission.String())
		}
		return writeError(c, err)
	}
}

func record(rec DecisionRecorder, result string) {
	if rec != nil {
		rec.RecordDecision(result)
	}
}
