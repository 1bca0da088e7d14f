// Package validation aplica las reglas de campo de los DTOs antes de que una
// escritura llegue al almacenamiento. Se revisan todos los campos; por campo
// solo se informa la primera regla (en orden de declaración) que falla.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/oklog/ulid"
	"github.com/shopspring/decimal"
)

var (
	reDigitos = regexp.MustCompile(`^\d+$`)
	reClave   = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	once     sync.Once
	validate *validator.Validate
)

func instancia() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(nombreJSON)
		// decimal.Decimal se valida como número (gte/lte).
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			d, ok := field.Interface().(decimal.Decimal)
			if !ok {
				return nil
			}
			f, _ := d.Float64()
			return f
		}, decimal.Decimal{})
		mustRegister(v, "digitos", func(fl validator.FieldLevel) bool {
			return reDigitos.MatchString(fl.Field().String())
		})
		mustRegister(v, "clave", func(fl validator.FieldLevel) bool {
			return reClave.MatchString(fl.Field().String())
		})
		mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		// decimales=N: como máximo N cifras decimales (NUMERIC(p,N) redondearía en silencio).
		mustRegister(v, "decimales", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			switch fl.Field().Kind() {
			case reflect.Float32, reflect.Float64:
				d := decimal.NewFromFloat(fl.Field().Float())
				return -d.Exponent() <= int32(n)
			}
			return true
		})
		mustRegister(v, "ulid", func(fl validator.FieldLevel) bool {
			_, err := ulid.ParseStrict(fl.Field().String())
			return err == nil
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: registrando %q: %v", tag, err))
	}
}

func nombreJSON(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Validate revisa s (struct o puntero a struct) y devuelve *domain.ValidationError
// con un CampoError por cada campo inválido, o nil.
func Validate(s any) error {
	err := instancia().Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		// InvalidValidationError: uso incorrecto (nil, no-struct).
		return domain.NewValidationError("", "invalido", err.Error())
	}
	out := &domain.ValidationError{Campos: make([]domain.CampoError, 0, len(ves))}
	for _, fe := range ves {
		campo := rutaCampo(fe)
		out.Campos = append(out.Campos, domain.CampoError{
			Campo:   campo,
			Regla:   fe.Tag(),
			Mensaje: mensaje(campo, fe),
		})
	}
	return out
}

// rutaCampo quita el nombre del struct raíz: "CrearOrdenRequest.items[0].cantidad" -> "items[0].cantidad".
func rutaCampo(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func mensaje(campo string, fe validator.FieldError) string {
	p := fe.Param()
	switch fe.Tag() {
	case "required", "required_without":
		return campo + " es obligatorio"
	case "notblank":
		return campo + " no puede estar vacío"
	case "min":
		if esTexto(fe.Kind()) {
			return fmt.Sprintf("%s debe tener al menos %s caracteres", campo, p)
		}
		if esLista(fe.Kind()) {
			return fmt.Sprintf("%s debe tener al menos %s elementos", campo, p)
		}
		return fmt.Sprintf("%s debe ser mayor o igual a %s", campo, p)
	case "max":
		if esTexto(fe.Kind()) {
			return fmt.Sprintf("%s debe tener como máximo %s caracteres", campo, p)
		}
		if esLista(fe.Kind()) {
			return fmt.Sprintf("%s debe tener como máximo %s elementos", campo, p)
		}
		return fmt.Sprintf("%s debe ser menor o igual a %s", campo, p)
	case "len":
		return fmt.Sprintf("%s debe tener exactamente %s caracteres", campo, p)
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", campo, p)
	case "lte":
		return fmt.Sprintf("%s debe ser menor o igual a %s", campo, p)
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", campo, p)
	case "digitos":
		return campo + " solo puede contener dígitos"
	case "clave":
		return campo + " solo admite letras, números, guion y guion bajo"
	case "ulid":
		return campo + " debe ser un ULID válido"
	case "decimales":
		return fmt.Sprintf("%s admite como máximo %s decimales", campo, p)
	case "uuid", "uuid4":
		return campo + " debe ser un identificador válido"
	case "email":
		return campo + " debe ser un correo electrónico válido"
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", campo, strings.Join(strings.Fields(p), ", "))
	default:
		return fmt.Sprintf("%s no es válido (%s)", campo, fe.Tag())
	}
}

func esTexto(k reflect.Kind) bool { return k == reflect.String }

func esLista(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array || k == reflect.Map
}
