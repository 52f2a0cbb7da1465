// seed_rbac genera el script SQL con el catálogo de permisos, el mapeo por defecto rol→permisos
// y, opcionalmente, un administrador inicial con contraseña bcrypt.
//
// Uso: go run ./cmd/seed_rbac [-admin-email admin@gapc.org -admin-password secreto]
// Escribe: internal/infrastructure/postgres/migrations/002_seed_rbac.sql
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gapc-api/internal/domain/entity"
	"github.com/jhoicas/gapc-api/internal/domain/rbac"
	"github.com/jhoicas/gapc-api/pkg/docid"
	"github.com/jhoicas/gapc-api/pkg/password"
)

// defaultMapping permisos iniciales de cada rol. Después se editan con PUT /api/roles/:role/permissions.
var defaultMapping = map[entity.Role][]entity.Permission{
	entity.RoleAdmin: entity.Catalog(),
	entity.RolePromoter: {
		entity.PermDistrictRead,
		entity.PermGroupCreate, entity.PermGroupRead, entity.PermGroupUpdate,
		entity.PermDirectiveCreate, entity.PermDirectiveRead, entity.PermDirectiveUpdate, entity.PermDirectiveDelete,
		entity.PermUserRead,
	},
	entity.RoleDirective: {
		entity.PermGroupRead,
		entity.PermDirectiveRead, entity.PermDirectiveUpdate,
	},
}

type admin struct {
	email    string
	name     string
	password string
	cost     int
}

func main() {
	var a admin
	flag.StringVar(&a.email, "admin-email", "", "email del administrador inicial (opcional)")
	flag.StringVar(&a.name, "admin-name", "Administrador", "nombre del administrador inicial")
	flag.StringVar(&a.password, "admin-password", "", "contraseña del administrador inicial")
	flag.IntVar(&a.cost, "bcrypt-cost", 12, "costo bcrypt")
	flag.Parse()

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_rbac.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSeed(out, a); err != nil {
		fmt.Fprintf(os.Stderr, "Generar seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d permisos, %d roles\n", outPath, len(entity.Catalog()), len(entity.Roles()))
}

func writeSeed(w io.Writer, a admin) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de permisos y mapeo por defecto rol→permisos\n")
	b.WriteString("-- Generado por cmd/seed_rbac\n\n")

	b.WriteString("-- 1. Permisos\n")
	b.WriteString("INSERT INTO permissions (name) VALUES\n")
	catalog := entity.Catalog()
	for i, p := range catalog {
		sep := ","
		if i == len(catalog)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  ('%s')%s\n", escapeSQL(string(p)), sep)
	}
	b.WriteString("ON CONFLICT (name) DO NOTHING;\n\n")

	b.WriteString("-- 2. Rol → permisos\n")
	for _, role := range entity.Roles() {
		perms := rbac.NewPermissionSet(defaultMapping[role]...).Sorted()
		if len(perms) == 0 {
			continue
		}
		b.WriteString("INSERT INTO role_permissions (role, permission) VALUES\n")
		for i, p := range perms {
			sep := ","
			if i == len(perms)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "  ('%s', '%s')%s\n", role, escapeSQL(string(p)), sep)
		}
		b.WriteString("ON CONFLICT (role, permission) DO NOTHING;\n\n")
	}

	if a.email != "" {
		if a.password == "" {
			return fmt.Errorf("-admin-password es requerido junto con -admin-email")
		}
		hash, err := password.NewBcrypt(a.cost).Hash(a.password)
		if err != nil {
			return err
		}
		now := time.Now().UTC().Format(time.RFC3339)
		b.WriteString("-- 3. Administrador inicial\n")
		fmt.Fprintf(&b, "INSERT INTO users (id, name, email, password_hash, role, active, created_at, updated_at)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', '%s', '%s', TRUE, '%s', '%s')\n",
			uuid.New().String(), escapeSQL(a.name), escapeSQL(docid.NormalizeEmail(a.email)), hash, entity.RoleAdmin, now, now)
		b.WriteString("ON CONFLICT (email) DO NOTHING;\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
