package usecase

import (
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/rbac"
)

// groupVisible informa si el grupo cae dentro del alcance de la identidad.
// Los roles sin alcance ven todo; el permiso ya lo decidió el guard.
func groupVisible(scope rbac.Identity, g *entity.Group) bool {
	switch scope.Role.Scope() {
	case entity.ScopeDistrict:
		return g.DistrictID == scope.DistrictID
	case entity.ScopeGroup:
		return g.ID == scope.GroupID
	}
	return true
}
