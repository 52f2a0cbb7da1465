package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gapc-api/internal/application/auth"
	"github.com/jhoicas/gapc-api/internal/application/usecase"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DistrictUC  *usecase.DistrictUseCase
	GroupUC     *usecase.GroupUseCase
	DirectiveUC *usecase.DirectiveUseCase
	UserUC      *usecase.UserUseCase
	RoleUC      *usecase.RoleUseCase
	Decisions   DecisionRecorder
}

// Router registra las rutas de la API. Toda ruta bajo /api pasa por SessionMiddleware;
// cada operación protegida declara los permisos que exige.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.AuthUC))
	need := func(perms ...entity.Permission) fiber.Handler {
		return RequirePermissions(deps.Decisions, perms...)
	}

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", RequireSession(), authHandler.Me)

	// Districts
	districts := api.Group("/districts")
	districtHandler := NewDistrictHandler(deps.DistrictUC)
	districts.Post("/", need(entity.PermDistrictCreate), districtHandler.Create)
	districts.Get("/", need(entity.PermDistrictRead), districtHandler.List)
	districts.Get("/:id", need(entity.PermDistrictRead), districtHandler.GetByID)
	districts.Put("/:id", need(entity.PermDistrictUpdate), districtHandler.Update)
	districts.Delete("/:id", need(entity.PermDistrictDelete), districtHandler.Delete)

	// Groups y junta directiva
	groups := api.Group("/groups")
	groupHandler := NewGroupHandler(deps.GroupUC, deps.DirectiveUC)
	groups.Post("/", need(entity.PermGroupCreate), groupHandler.Create)
	groups.Get("/", need(entity.PermGroupRead), groupHandler.List)
	groups.Get("/:id", need(entity.PermGroupRead), groupHandler.GetByID)
	groups.Put("/:id", need(entity.PermGroupUpdate), groupHandler.Update)
	groups.Delete("/:id", need(entity.PermGroupDelete), groupHandler.Delete)
	groups.Get("/:id/directive", need(entity.PermDirectiveRead), groupHandler.ListDirective)
	groups.Post("/:id/directive", need(entity.PermDirectiveCreate), groupHandler.AddDirective)

	directive := api.Group("/directive")
	directive.Put("/:id", need(entity.PermDirectiveUpdate), groupHandler.UpdateDirective)
	directive.Delete("/:id", need(entity.PermDirectiveDelete), groupHandler.RemoveDirective)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", need(entity.PermUserCreate), userHandler.Create)
	users.Get("/", need(entity.PermUserRead), userHandler.List)
	users.Get("/:id", need(entity.PermUserRead), userHandler.GetByID)
	users.Put("/:id", need(entity.PermUserUpdate), userHandler.Update)
	users.Delete("/:id", need(entity.PermUserDelete), userHandler.Delete)

	// Roles
	roles := api.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", need(entity.PermRoleRead), roleHandler.List)
	roles.Put("/:role/permissions", need(entity.PermRoleUpdate), roleHandler.ReplacePermissions)
}
