package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// Semilla catálogos iniciales y usuarios leídos de un YAML.
type Semilla struct {
	AreasProduccion []SemillaCatalogo    `yaml:"areas_produccion"`
	Grupos          []SemillaGrupo       `yaml:"grupos"`
	MetodosPago     []SemillaMetodoPago  `yaml:"metodos_pago"`
	TiposCliente    []SemillaTipoCliente `yaml:"tipos_cliente"`
	Unidades        []SemillaUnidad      `yaml:"unidades"`
	Usuarios        []SemillaUsuario     `yaml:"usuarios"`
}

type SemillaCatalogo struct {
	Nombre      string `yaml:"nombre"`
	Descripcion string `yaml:"descripcion"`
}

type SemillaGrupo struct {
	SemillaCatalogo `yaml:",inline"`
	Subgrupos       []SemillaCatalogo `yaml:"subgrupos"`
}

type SemillaMetodoPago struct {
	SemillaCatalogo    `yaml:",inline"`
	RequiereReferencia bool `yaml:"requiere_referencia"`
}

type SemillaTipoCliente struct {
	SemillaCatalogo     `yaml:",inline"`
	DescuentoPorcentaje string `yaml:"descuento_porcentaje"`
}

type SemillaUnidad struct {
	SemillaCatalogo `yaml:",inline"`
	Clave           string `yaml:"clave"`
	Abreviacion     string `yaml:"abreviacion"`
}

type SemillaUsuario struct {
	Usuario  string `yaml:"usuario"`
	Nombre   string `yaml:"nombre"`
	Password string `yaml:"password"`
	Pin      string `yaml:"pin"`
	Role     string `yaml:"role"`
}

// ResumenSemilla cuenta lo creado y lo que ya existía.
type ResumenSemilla struct {
	Creados  int
	Omitidos int
}

// LeerSemilla decodifica el YAML; campos desconocidos son error.
func LeerSemilla(r io.Reader) (*Semilla, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Semilla
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("semilla: %w", err)
	}
	return &s, nil
}

// Sembrar crea cada registro con su caso de uso. Los duplicados se omiten,
// así que aplicar la misma semilla dos veces no cambia nada.
func (c *Contenedor) Sembrar(ctx context.Context, s *Semilla, log *logger.Logger) (ResumenSemilla, error) {
	if log == nil {
		log = logger.Nop()
	}
	var res ResumenSemilla
	contar := func(tipo, nombre string, err error) error {
		switch {
		case err == nil:
			res.Creados++
			return nil
		case errors.Is(err, domain.ErrDuplicate):
			res.Omitidos++
			log.Debug().Str("tipo", tipo).Str("nombre", nombre).Msg("semilla: ya existe")
			return nil
		default:
			return fmt.Errorf("semilla %s %q: %w", tipo, nombre, err)
		}
	}

	// Subgrupos, métodos de pago y tipos de cliente no tienen restricción de unicidad:
	// se comparan por nombre normalizado con lo que ya existe.
	todos := repository.Filtro{IncluirInactivos: true}
	subs, err := c.Subgrupos.List(ctx, todos)
	if err != nil {
		return res, err
	}
	subsVistos := claves(subs, func(x dto.SubgrupoVista) string { return x.GrupoID + "|" + entity.ClaveNombre(x.Nombre) })
	metodos, err := c.MetodosPago.List(ctx, todos)
	if err != nil {
		return res, err
	}
	metodosVistos := claves(metodos, func(x dto.MetodoPagoResponse) string { return entity.ClaveNombre(x.Nombre) })
	tipos, err := c.TiposCliente.List(ctx, todos)
	if err != nil {
		return res, err
	}
	tiposVistos := claves(tipos, func(x dto.TipoClienteResponse) string { return entity.ClaveNombre(x.Nombre) })

	for _, a := range s.AreasProduccion {
		_, err := c.AreasProduccion.Create(ctx, dto.CreateAreaProduccionRequest{Nombre: a.Nombre, Descripcion: a.Descripcion})
		if err := contar("area_produccion", a.Nombre, err); err != nil {
			return res, err
		}
	}
	for _, g := range s.Grupos {
		grupoID, err := c.grupoSemilla(ctx, g.SemillaCatalogo)
		if err := contar("grupo", g.Nombre, err); err != nil {
			return res, err
		}
		for _, sg := range g.Subgrupos {
			if k := grupoID + "|" + entity.ClaveNombre(sg.Nombre); subsVistos[k] {
				res.Omitidos++
				continue
			}
			_, err := c.Subgrupos.Create(ctx, dto.CreateSubgrupoRequest{Nombre: sg.Nombre, Descripcion: sg.Descripcion, GrupoID: grupoID})
			if err := contar("subgrupo", sg.Nombre, err); err != nil {
				return res, err
			}
		}
	}
	for _, m := range s.MetodosPago {
		if metodosVistos[entity.ClaveNombre(m.Nombre)] {
			res.Omitidos++
			continue
		}
		_, err := c.MetodosPago.Create(ctx, dto.CreateMetodoPagoRequest{
			Nombre: m.Nombre, Descripcion: m.Descripcion, RequiereReferencia: m.RequiereReferencia,
		})
		if err := contar("metodo_pago", m.Nombre, err); err != nil {
			return res, err
		}
	}
	for _, t := range s.TiposCliente {
		if tiposVistos[entity.ClaveNombre(t.Nombre)] {
			res.Omitidos++
			continue
		}
		desc := decimal.Zero
		if t.DescuentoPorcentaje != "" {
			d, err := decimal.NewFromString(t.DescuentoPorcentaje)
			if err != nil {
				return res, fmt.Errorf("semilla tipo_cliente %q: descuento_porcentaje: %w", t.Nombre, err)
			}
			desc = d
		}
		_, err := c.TiposCliente.Create(ctx, dto.CreateTipoClienteRequest{
			Nombre: t.Nombre, Descripcion: t.Descripcion, DescuentoPorcentaje: desc,
		})
		if err := contar("tipo_cliente", t.Nombre, err); err != nil {
			return res, err
		}
	}
	for _, u := range s.Unidades {
		_, err := c.Unidades.Create(ctx, dto.CreateUnidadRequest{
			Nombre: u.Nombre, Descripcion: u.Descripcion, Clave: u.Clave, Abreviacion: u.Abreviacion,
		})
		if err := contar("unidad", u.Clave, err); err != nil {
			return res, err
		}
	}
	for _, u := range s.Usuarios {
		_, err := c.Auth.RegisterUser(ctx, dto.CreateUsuarioRequest{
			Usuario: u.Usuario, Nombre: u.Nombre, Password: u.Password, Pin: u.Pin, Role: u.Role,
		})
		if err := contar("usuario", u.Usuario, err); err != nil {
			return res, err
		}
	}
	return res, nil
}

// grupoSemilla crea el grupo o, si ya existe, devuelve el id del existente para
// colgarle los subgrupos. El error de duplicado se conserva para el conteo.
func (c *Contenedor) grupoSemilla(ctx context.Context, g SemillaCatalogo) (string, error) {
	creado, err := c.Grupos.Create(ctx, dto.CreateGrupoRequest{Nombre: g.Nombre, Descripcion: g.Descripcion})
	if err == nil {
		return creado.ID, nil
	}
	if !errors.Is(err, domain.ErrDuplicate) {
		return "", err
	}
	grupos, lerr := c.Grupos.List(ctx, repository.Filtro{IncluirInactivos: true})
	if lerr != nil {
		return "", lerr
	}
	for _, x := range grupos {
		if entity.ClaveNombre(x.Nombre) == entity.ClaveNombre(g.Nombre) {
			return x.ID, err
		}
	}
	return "", err
}

func claves[R any](list []R, clave func(R) string) map[string]bool {
	out := make(map[string]bool, len(list))
	for _, x := range list {
		out[clave(x)] = true
	}
	return out
}
