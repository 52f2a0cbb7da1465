package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gapc-api/internal/application/dto"
	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/rbac"
	"github.com/jhoicas/gapc-api/internal/domain/repository"
	"github.com/jhoicas/gapc-api/pkg/docid"
	"github.com/jhoicas/gapc-api/pkg/textnorm"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher PasswordHasher
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el hasher de contraseñas.
func NewUserUseCase(repo repository.UserRepository, hasher PasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher}
}

// Create registra un usuario. Email y documento deben ser únicos; el alcance debe coincidir con el rol.
// Una sesión con alcance solo crea usuarios de su mismo tipo de alcance y dentro de él
// (domain.ErrMissingPermission en otro caso).
func (uc *UserUseCase) Create(ctx context.Context, scope rbac.Identity, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	email := docid.NormalizeEmail(in.Email)
	nationalID := docid.NormalizeNationalID(in.NationalID)
	if email == "" && nationalID == "" {
		return nil, fmt.Errorf("%w: se requiere email o national_id", domain.ErrInvalidInput)
	}
	if in.NationalID != "" {
		if err := docid.ValidateNationalID(in.NationalID); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	now := time.Now()
	user := &entity.User{
		ID:         uuid.New().String(),
		Name:       textnorm.Clean(in.Name),
		Email:      email,
		NationalID: nationalID,
		Role:       role,
		DistrictID: nonEmpty(in.DistrictID),
		GroupID:    nonEmpty(in.GroupID),
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := user.ValidateScope(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !assignable(scope, user) {
		return nil, domain.ErrMissingPermission
	}
	if err := uc.checkUnique(ctx, user); err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	user.PasswordHash = hash
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe o está fuera del alcance de la sesión.
func (uc *UserUseCase) GetByID(ctx context.Context, scope rbac.Identity, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || !userVisible(scope, user) {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// List lista usuarios. Roles con alcance solo ven usuarios de su distrito o grupo.
func (uc *UserUseCase) List(ctx context.Context, scope rbac.Identity, filter repository.UserFilter, limit, offset int) (*dto.UserListResponse, error) {
	limit, offset = dto.ClampPage(limit, offset)
	switch scope.Role.Scope() {
	case entity.ScopeDistrict:
		filter.DistrictID = scope.DistrictID
		filter.GroupID = ""
	case entity.ScopeGroup:
		filter.GroupID = scope.GroupID
		filter.DistrictID = ""
	}
	list, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Count: len(items)},
	}, nil
}

// Update modifica nombre, rol y alcance, estado o contraseña. (nil, nil) si no existe o está fuera
// del alcance de la sesión; domain.ErrMissingPermission si el resultado quedaría fuera de él.
// Los cambios de rol o permisos se reflejan en la siguiente sesión; las sesiones abiertas no cambian.
func (uc *UserUseCase) Update(ctx context.Context, scope rbac.Identity, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || !userVisible(scope, user) {
		return nil, nil
	}
	if in.Name != nil {
		name := textnorm.Clean(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		user.Name = name
	}
	if in.Role != nil {
		role, err := entity.ParseRole(*in.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		user.Role = role
		// Un cambio de rol reemplaza las referencias de alcance.
		user.DistrictID = nonEmpty(in.DistrictID)
		user.GroupID = nonEmpty(in.GroupID)
	} else {
		if in.DistrictID != nil {
			user.DistrictID = nonEmpty(in.DistrictID)
		}
		if in.GroupID != nil {
			user.GroupID = nonEmpty(in.GroupID)
		}
	}
	if err := user.ValidateScope(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !assignable(scope, user) {
		return nil, domain.ErrMissingPermission
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if in.Password != nil {
		hash, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Delete elimina un usuario por ID. domain.ErrNotFound si no existe o está fuera del alcance.
func (uc *UserUseCase) Delete(ctx context.Context, scope rbac.Identity, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil || !userVisible(scope, user) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *UserUseCase) checkUnique(ctx context.Context, user *entity.User) error {
	if user.Email != "" {
		other, err := uc.repo.GetByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		if other != nil {
			return fmt.Errorf("%w: email ya registrado", domain.ErrDuplicate)
		}
	}
	if user.NationalID != "" {
		other, err := uc.repo.GetByNationalID(ctx, user.NationalID)
		if err != nil {
			return err
		}
		if other != nil {
			return fmt.Errorf("%w: documento ya registrado", domain.ErrDuplicate)
		}
	}
	return nil
}

func userVisible(scope rbac.Identity, u *entity.User) bool {
	switch scope.Role.Scope() {
	case entity.ScopeDistrict:
		return u.DistrictID != nil && *u.DistrictID == scope.DistrictID
	case entity.ScopeGroup:
		return u.GroupID != nil && *u.GroupID == scope.GroupID
	}
	return true
}

// assignable informa si la sesión puede dejar al usuario en ese estado: sin alcance puede todo;
// con alcance, solo roles de su mismo tipo de alcance y referencias dentro de su distrito o grupo.
func assignable(scope rbac.Identity, u *entity.User) bool {
	kind := scope.Role.Scope()
	if kind == entity.ScopeNone {
		return true
	}
	return u.Role.Scope() == kind && userVisible(scope, u)
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		NationalID: u.NationalID,
		Role:       u.Role.String(),
		DistrictID: u.DistrictID,
		GroupID:    u.GroupID,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
