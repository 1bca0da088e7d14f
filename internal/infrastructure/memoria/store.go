// Package memoria implementa los repositorios en memoria del proceso.
// Se usa con STORAGE_DRIVER=memoria y en los tests de casos de uso y HTTP.
// Cada lectura devuelve copias: el llamador nunca comparte punteros con el almacén.
package memoria

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// Store agrupa todas las tablas. Los repositorios son vistas sobre él,
// así las comprobaciones de integridad ven las mismas filas que las escrituras.
type Store struct {
	areas       *tabla[entity.AreaProduccion]
	grupos      *tabla[entity.Grupo]
	subgrupos   *tabla[entity.Subgrupo]
	metodos     *tabla[entity.MetodoPago]
	tipos       *tabla[entity.TipoCliente]
	unidades    *tabla[entity.Unidad]
	clientes    *tabla[entity.Cliente]
	usuarios    *tabla[entity.Usuario]
	ordenes     *tabla[entity.OrdenCocina]
	insumos     *tabla[entity.Insumo]
	movimientos *tabla[entity.MovimientoInventario]

	syncMu       sync.RWMutex
	unidadesSync []entity.UnidadSync

	// txMu serializa las transacciones de inventario.
	txMu sync.Mutex
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		areas:       nuevaTabla(accesoCatalogo[entity.AreaProduccion](func(a *entity.AreaProduccion) *entity.Catalogo { return &a.Catalogo }), nil),
		grupos:      nuevaTabla(accesoCatalogo[entity.Grupo](func(g *entity.Grupo) *entity.Catalogo { return &g.Catalogo }), nil),
		subgrupos:   nuevaTabla(accesoCatalogo[entity.Subgrupo](func(s *entity.Subgrupo) *entity.Catalogo { return &s.Catalogo }), nil),
		metodos:     nuevaTabla(accesoCatalogo[entity.MetodoPago](func(m *entity.MetodoPago) *entity.Catalogo { return &m.Catalogo }), nil),
		tipos:       nuevaTabla(accesoCatalogo[entity.TipoCliente](func(t *entity.TipoCliente) *entity.Catalogo { return &t.Catalogo }), nil),
		unidades:    nuevaTabla(accesoCatalogo[entity.Unidad](func(u *entity.Unidad) *entity.Catalogo { return &u.Catalogo }), nil),
		clientes:    nuevaTabla(accesoCliente(), nil),
		usuarios:    nuevaTabla(accesoUsuario(), nil),
		ordenes:     nuevaTabla(accesoOrden(), clonarOrden),
		insumos:     nuevaTabla(accesoInsumo(), nil),
		movimientos: nuevaTabla(accesoMovimiento(), nil),
	}
}

// acceso describe cómo leer los campos comunes de una fila.
type acceso[T any] struct {
	id          func(*T) string
	estado      func(*T) *entity.Estado // nil si la entidad no tiene ciclo de vida
	actualizado func(*T) *time.Time
	orden       func(a, b *T) int
}

func accesoCatalogo[T any](base func(*T) *entity.Catalogo) acceso[T] {
	return acceso[T]{
		id:          func(t *T) string { return base(t).ID },
		estado:      func(t *T) *entity.Estado { return &base(t).Estado },
		actualizado: func(t *T) *time.Time { return &base(t).UpdatedAt },
		orden: func(a, b *T) int {
			return cmp.Or(
				cmp.Compare(entity.ClaveNombre(base(a).Nombre), entity.ClaveNombre(base(b).Nombre)),
				cmp.Compare(base(a).ID, base(b).ID),
			)
		},
	}
}

func accesoCliente() acceso[entity.Cliente] {
	return acceso[entity.Cliente]{
		id:          func(c *entity.Cliente) string { return c.ID },
		estado:      func(c *entity.Cliente) *entity.Estado { return &c.Estado },
		actualizado: func(c *entity.Cliente) *time.Time { return &c.UpdatedAt },
		orden: func(a, b *entity.Cliente) int {
			return cmp.Or(cmp.Compare(entity.ClaveNombre(a.Nombre), entity.ClaveNombre(b.Nombre)), cmp.Compare(a.ID, b.ID))
		},
	}
}

func accesoUsuario() acceso[entity.Usuario] {
	return acceso[entity.Usuario]{
		id:          func(u *entity.Usuario) string { return u.ID },
		estado:      func(u *entity.Usuario) *entity.Estado { return &u.Estado },
		actualizado: func(u *entity.Usuario) *time.Time { return &u.UpdatedAt },
		orden:       func(a, b *entity.Usuario) int { return cmp.Compare(a.Usuario, b.Usuario) },
	}
}

func accesoOrden() acceso[entity.OrdenCocina] {
	return acceso[entity.OrdenCocina]{
		id:          func(o *entity.OrdenCocina) string { return o.ID },
		actualizado: func(o *entity.OrdenCocina) *time.Time { return &o.UpdatedAt },
		orden: func(a, b *entity.OrdenCocina) int {
			return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
		},
	}
}

func accesoInsumo() acceso[entity.Insumo] {
	return acceso[entity.Insumo]{
		id:          func(i *entity.Insumo) string { return i.ID },
		estado:      func(i *entity.Insumo) *entity.Estado { return &i.Estado },
		actualizado: func(i *entity.Insumo) *time.Time { return &i.UpdatedAt },
		orden: func(a, b *entity.Insumo) int {
			return cmp.Or(cmp.Compare(entity.ClaveNombre(a.Nombre), entity.ClaveNombre(b.Nombre)), cmp.Compare(a.ID, b.ID))
		},
	}
}

func accesoMovimiento() acceso[entity.MovimientoInventario] {
	return acceso[entity.MovimientoInventario]{
		id:          func(m *entity.MovimientoInventario) string { return m.ID },
		actualizado: func(m *entity.MovimientoInventario) *time.Time { return &m.CreatedAt },
		// más reciente primero
		orden: func(a, b *entity.MovimientoInventario) int {
			return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
		},
	}
}

func clonarOrden(o entity.OrdenCocina) entity.OrdenCocina {
	o.Items = slices.Clone(o.Items)
	return o
}

// tabla es un mapa protegido por mutex que guarda copias de las filas.
type tabla[T any] struct {
	mu     sync.RWMutex
	filas  map[string]T
	acceso acceso[T]
	clonar func(T) T
}

func nuevaTabla[T any](a acceso[T], clonar func(T) T) *tabla[T] {
	if clonar == nil {
		clonar = func(t T) T { return t }
	}
	return &tabla[T]{filas: make(map[string]T), acceso: a, clonar: clonar}
}

// Los métodos con sufijo "L" asumen que el llamador ya tiene el lock.

func (t *tabla[T]) getL(id string) *T {
	f, ok := t.filas[id]
	if !ok {
		return nil
	}
	c := t.clonar(f)
	return &c
}

func (t *tabla[T]) listL(incluye func(*T) bool) []*T {
	out := make([]*T, 0, len(t.filas))
	for _, f := range t.filas {
		c := t.clonar(f)
		if incluye == nil || incluye(&c) {
			out = append(out, &c)
		}
	}
	slices.SortStableFunc(out, t.acceso.orden)
	return out
}

func (t *tabla[T]) putL(item *T) {
	t.filas[t.acceso.id(item)] = t.clonar(*item)
}

func (t *tabla[T]) existeL(id string) bool {
	_, ok := t.filas[id]
	return ok
}

// activa informa si la fila existe y está activa.
func (t *tabla[T]) activa(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, ok := t.filas[id]
	if !ok {
		return false
	}
	if t.acceso.estado == nil {
		return true
	}
	return t.acceso.estado(&f).Activo()
}

func (t *tabla[T]) existe(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.existeL(id)
}

func (t *tabla[T]) get(ctx context.Context, id string) (*T, error) {
	if err := vivo(ctx, "get"); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.getL(id), nil
}

func (t *tabla[T]) list(ctx context.Context, filtro repository.Filtro, extra func(*T) bool) ([]*T, error) {
	if err := vivo(ctx, "list"); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.listL(func(f *T) bool {
		if !filtro.IncluirInactivos && t.acceso.estado != nil && !t.acceso.estado(f).Activo() {
			return false
		}
		return extra == nil || extra(f)
	}), nil
}

// create y update escriben bajo lock exclusivo; check se evalúa antes de guardar
// y puede devolver ErrDuplicate o ErrIntegrity.
func (t *tabla[T]) create(ctx context.Context, item *T, check func(*T) error) error {
	if err := vivo(ctx, "create"); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.existeL(t.acceso.id(item)) {
		return fmt.Errorf("%w: id %s", domain.ErrDuplicate, t.acceso.id(item))
	}
	if check != nil {
		if err := check(item); err != nil {
			return err
		}
	}
	t.putL(item)
	return nil
}

func (t *tabla[T]) update(ctx context.Context, item *T, check func(*T) error) error {
	if err := vivo(ctx, "update"); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.existeL(t.acceso.id(item)) {
		return domain.ErrNotFound
	}
	if check != nil {
		if err := check(item); err != nil {
			return err
		}
	}
	t.putL(item)
	return nil
}

func (t *tabla[T]) setEstado(ctx context.Context, id string, estado entity.Estado, at time.Time, check func(*T) error) (*T, error) {
	if err := vivo(ctx, "set_estado"); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	f := t.getL(id)
	if f == nil {
		return nil, domain.ErrNotFound
	}
	*t.acceso.estado(f) = estado
	*t.acceso.actualizado(f) = at
	if check != nil {
		if err := check(f); err != nil {
			return nil, err
		}
	}
	t.putL(f)
	return t.getL(id), nil
}

// unicoL devuelve ErrDuplicate si otra fila (id distinto) cumple mismo.
func (t *tabla[T]) unicoL(item *T, campo string, mismo func(otro *T) bool) error {
	id := t.acceso.id(item)
	for k, f := range t.filas {
		if k == id {
			continue
		}
		if mismo(&f) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, campo)
		}
	}
	return nil
}

// vivo respeta la cancelación del llamador (propagación best-effort).
func vivo(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: memoria %s: %w", domain.ErrStorage, op, err)
	}
	return nil
}
