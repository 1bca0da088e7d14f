package memoria

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/inventario"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// InsumoRepository implementa repository.InsumoRepository.
type InsumoRepository struct{ s *Store }

func (s *Store) Insumos() *InsumoRepository { return &InsumoRepository{s: s} }

func (r *InsumoRepository) integridad(i *entity.Insumo) error {
	if !r.s.unidades.existe(i.UnidadID) {
		return fmt.Errorf("%w: unidad %s", domain.ErrIntegrity, i.UnidadID)
	}
	if i.GrupoID != "" && !r.s.grupos.existe(i.GrupoID) {
		return fmt.Errorf("%w: grupo %s", domain.ErrIntegrity, i.GrupoID)
	}
	return nil
}

func (r *InsumoRepository) List(ctx context.Context, f repository.Filtro) ([]*entity.Insumo, error) {
	return r.s.insumos.list(ctx, f, nil)
}

func (r *InsumoRepository) GetByID(ctx context.Context, id string) (*entity.Insumo, error) {
	return r.s.insumos.get(ctx, id)
}

// GetForUpdate en memoria equivale a GetByID; el aislamiento lo da TxRunner.
func (r *InsumoRepository) GetForUpdate(ctx context.Context, id string) (*entity.Insumo, error) {
	return r.s.insumos.get(ctx, id)
}

func (r *InsumoRepository) Create(ctx context.Context, i *entity.Insumo) error {
	return r.s.insumos.create(ctx, i, r.integridad)
}

// Update reemplaza los datos maestros; existencia y costo se conservan.
func (r *InsumoRepository) Update(ctx context.Context, i *entity.Insumo) error {
	return r.s.insumos.update(ctx, i, func(i *entity.Insumo) error {
		if prev := r.s.insumos.getL(i.ID); prev != nil {
			i.Estado = prev.Estado
			i.Existencia = prev.Existencia
			i.CostoPromedio = prev.CostoPromedio
			i.CreatedAt = prev.CreatedAt
		}
		return r.integridad(i)
	})
}

func (r *InsumoRepository) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.Insumo, error) {
	return r.s.insumos.setEstado(ctx, id, e, at, nil)
}

func (r *InsumoRepository) UpdateExistencia(ctx context.Context, id string, existencia, costo decimal.Decimal) error {
	if err := vivo(ctx, "update_existencia"); err != nil {
		return err
	}
	t := r.s.insumos
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.getL(id)
	if i == nil {
		return domain.ErrNotFound
	}
	i.Existencia = existencia
	i.CostoPromedio = costo
	t.putL(i)
	return nil
}

func (r *InsumoRepository) Estadisticas(ctx context.Context) (*entity.EstadisticasInventario, error) {
	activos, err := r.List(ctx, repository.Filtro{})
	if err != nil {
		return nil, err
	}
	est := &entity.EstadisticasInventario{TotalInsumos: len(activos), ValorTotal: decimal.Zero}
	for _, i := range activos {
		if i.BajoMinimo() {
			est.BajoMinimo++
		}
		est.ValorTotal = est.ValorTotal.Add(inventario.Valorizar(i.Existencia, i.CostoPromedio))
	}
	return est, nil
}

func (r *InsumoRepository) ListBajoMinimo(ctx context.Context) ([]*entity.Insumo, error) {
	return r.s.insumos.list(ctx, repository.Filtro{}, func(i *entity.Insumo) bool { return i.BajoMinimo() })
}

// MovimientoRepository implementa repository.MovimientoRepository.
type MovimientoRepository struct{ s *Store }

func (s *Store) Movimientos() *MovimientoRepository { return &MovimientoRepository{s: s} }

func (r *MovimientoRepository) Create(ctx context.Context, m *entity.MovimientoInventario) error {
	return r.s.movimientos.create(ctx, m, func(m *entity.MovimientoInventario) error {
		if !r.s.insumos.existe(m.InsumoID) {
			return fmt.Errorf("%w: insumo %s", domain.ErrIntegrity, m.InsumoID)
		}
		return nil
	})
}

func (r *MovimientoRepository) ListByInsumo(ctx context.Context, insumoID string, limit int) ([]*entity.MovimientoInventario, error) {
	if err := vivo(ctx, "movimientos"); err != nil {
		return nil, err
	}
	r.s.movimientos.mu.RLock()
	defer r.s.movimientos.mu.RUnlock()
	l := r.s.movimientos.listL(func(m *entity.MovimientoInventario) bool { return m.InsumoID == insumoID })
	if limit > 0 && len(l) > limit {
		l = l[:limit]
	}
	return l, nil
}

// TxRunner serializa las transacciones de inventario y aplica sus escrituras
// solo si fn termina sin error.
type TxRunner struct{ s *Store }

func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

func (t *TxRunner) Run(ctx context.Context, fn func(insumos repository.InsumoRepository, movimientos repository.MovimientoRepository) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	tx := &txInventario{InsumoRepository: t.s.Insumos(), existencias: map[string][2]decimal.Decimal{}}
	movs := &txMovimientos{MovimientoRepository: t.s.Movimientos(), tx: tx}
	if err := fn(tx, movs); err != nil {
		return err
	}
	for _, m := range tx.movimientos {
		if err := t.s.Movimientos().Create(ctx, m); err != nil {
			return err
		}
	}
	for id, ec := range tx.existencias {
		if err := t.s.Insumos().UpdateExistencia(ctx, id, ec[0], ec[1]); err != nil {
			return err
		}
	}
	return nil
}

// txInventario retiene las escrituras hasta el commit.
type txInventario struct {
	*InsumoRepository
	existencias map[string][2]decimal.Decimal
	movimientos []*entity.MovimientoInventario
}

func (tx *txInventario) GetForUpdate(ctx context.Context, id string) (*entity.Insumo, error) {
	i, err := tx.InsumoRepository.GetForUpdate(ctx, id)
	if err != nil || i == nil {
		return i, err
	}
	if ec, ok := tx.existencias[id]; ok {
		i.Existencia, i.CostoPromedio = ec[0], ec[1]
	}
	return i, nil
}

func (tx *txInventario) UpdateExistencia(_ context.Context, id string, existencia, costo decimal.Decimal) error {
	tx.existencias[id] = [2]decimal.Decimal{existencia, costo}
	return nil
}

type txMovimientos struct {
	*MovimientoRepository
	tx *txInventario
}

func (m *txMovimientos) Create(_ context.Context, mov *entity.MovimientoInventario) error {
	c := *mov
	m.tx.movimientos = append(m.tx.movimientos, &c)
	return nil
}

var (
	_ repository.InsumoRepository     = (*InsumoRepository)(nil)
	_ repository.MovimientoRepository = (*MovimientoRepository)(nil)
)
