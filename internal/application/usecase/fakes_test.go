package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/gapc-api/internal/domain"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/repository"
)

// memStore repositorios en memoria compartidos por los tests del paquete.
type memStore struct {
	mu        sync.Mutex
	districts map[string]*entity.District
	groups    map[string]*entity.Group
	members   map[string]*entity.DirectiveMember
	users     map[string]*entity.User
	rolePerms map[entity.Role][]entity.Permission
	failTx    error
}

func newMemStore() *memStore {
	return &memStore{
		districts: map[string]*entity.District{},
		groups:    map[string]*entity.Group{},
		members:   map[string]*entity.DirectiveMember{},
		users:     map[string]*entity.User{},
		rolePerms: map[entity.Role][]entity.Permission{},
	}
}

type districtRepo struct{ s *memStore }
type groupRepo struct{ s *memStore }
type directiveRepo struct{ s *memStore }
type userRepo struct{ s *memStore }
type rolePermRepo struct{ s *memStore }

var (
	_ repository.DistrictRepository       = districtRepo{}
	_ repository.GroupRepository          = groupRepo{}
	_ repository.DirectiveRepository      = directiveRepo{}
	_ repository.UserRepository           = userRepo{}
	_ repository.RolePermissionRepository = rolePermRepo{}
)

func (r districtRepo) Create(_ context.Context, d *entity.District) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *d
	r.s.districts[d.ID] = &c
	return nil
}

func (r districtRepo) GetByID(_ context.Context, id string) (*entity.District, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.districts[id]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (r districtRepo) GetByNameKey(_ context.Context, key string) (*entity.District, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range r.s.districts {
		if d.NameKey == key {
			c := *d
			return &c, nil
		}
	}
	return nil, nil
}

func (r districtRepo) Update(ctx context.Context, d *entity.District) error { return r.Create(ctx, d) }

func (r districtRepo) List(_ context.Context, limit, offset int) ([]*entity.District, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.District, 0, len(r.s.districts))
	for _, d := range r.s.districts {
		c := *d
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r districtRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.districts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.districts, id)
	return nil
}

func (r groupRepo) Create(_ context.Context, g *entity.Group) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *g
	r.s.groups[g.ID] = &c
	return nil
}

func (r groupRepo) GetByID(_ context.Context, id string) (*entity.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.groups[id]
	if !ok {
		return nil, nil
	}
	c := *g
	return &c, nil
}

func (r groupRepo) Update(ctx context.Context, g *entity.Group) error { return r.Create(ctx, g) }

func (r groupRepo) List(_ context.Context, districtID string, limit, offset int) ([]*entity.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Group, 0, len(r.s.groups))
	for _, g := range r.s.groups {
		if districtID != "" && g.DistrictID != districtID {
			continue
		}
		c := *g
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r groupRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.groups[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.groups, id)
	return nil
}

func (r directiveRepo) Create(_ context.Context, m *entity.DirectiveMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *m
	r.s.members[m.ID] = &c
	return nil
}

func (r directiveRepo) GetByID(_ context.Context, id string) (*entity.DirectiveMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.members[id]
	if !ok {
		return nil, nil
	}
	c := *m
	return &c, nil
}

func (r directiveRepo) Update(ctx context.Context, m *entity.DirectiveMember) error {
	return r.Create(ctx, m)
}

func (r directiveRepo) ListByGroup(_ context.Context, groupID string) ([]*entity.DirectiveMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.DirectiveMember
	for _, m := range r.s.members {
		if m.GroupID == groupID {
			c := *m
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (r directiveRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.members[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.members, id)
	return nil
}

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *u
	r.s.users[u.ID] = &c
	return nil
}

func (r userRepo) find(match func(*entity.User) bool) *entity.User {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			c := *u
			return &c
		}
	}
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id }), nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email != "" && u.Email == email }), nil
}

func (r userRepo) GetByNationalID(_ context.Context, nid string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.NationalID != "" && u.NationalID == nid }), nil
}

func (r userRepo) Update(ctx context.Context, u *entity.User) error { return r.Create(ctx, u) }

func (r userRepo) List(_ context.Context, f repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.DistrictID != "" && (u.DistrictID == nil || *u.DistrictID != f.DistrictID) {
			continue
		}
		if f.GroupID != "" && (u.GroupID == nil || *u.GroupID != f.GroupID) {
			continue
		}
		c := *u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r userRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

func (r rolePermRepo) PermissionsForRole(_ context.Context, role entity.Role) ([]entity.Permission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]entity.Permission(nil), r.s.rolePerms[role]...), nil
}

func (r rolePermRepo) ReplacePermissions(_ context.Context, role entity.Role, perms []entity.Permission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.rolePerms[role] = append([]entity.Permission(nil), perms...)
	return nil
}

// RunGroup simula la transacción: si fn o failTx fallan, se restaura el estado previo.
func (s *memStore) RunGroup(_ context.Context, fn func(repository.GroupRepository, repository.DirectiveRepository) error) error {
	s.mu.Lock()
	groups := make(map[string]*entity.Group, len(s.groups))
	for k, v := range s.groups {
		groups[k] = v
	}
	members := make(map[string]*entity.DirectiveMember, len(s.members))
	for k, v := range s.members {
		members[k] = v
	}
	s.mu.Unlock()

	err := fn(groupRepo{s}, directiveRepo{s})
	if err == nil {
		err = s.failTx
	}
	if err != nil {
		s.mu.Lock()
		s.groups, s.members = groups, members
		s.mu.Unlock()
	}
	return err
}

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) {
	if p == "" {
		return "", errors.New("vacía")
	}
	return "hash:" + p, nil
}

func page[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return nil
	}
	end := offset + limit
	if end > len(in) {
		end = len(in)
	}
	return in[offset:end]
}
