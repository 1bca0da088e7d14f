// seed_unidades genera una migración goose que carga la tabla unidades_sync
// a partir del CSV exportado por el sistema anterior (ISO-8859-1, separado por ';').
//
// Uso: go run ./cmd/seed_unidades [ruta/unidades.csv]
// Por defecto busca unidades.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/00003_seed_unidades_sync.sql
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Columnas esperadas en el encabezado del CSV.
var columnas = []string{"id", "clave", "nombre", "abreviacion", "usuario_ulid", "empresa_ulid", "fecha_sync"}

type fila struct {
	id, clave, nombre, abreviacion, usuario, empresa string
	fecha                                            time.Time
}

type resumen struct {
	filas          int
	ulidsInvalidos int
}

func main() {
	csvPath := "unidades.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "00003_seed_unidades_sync.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	res, err := generar(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()), out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar SQL: %v\n", err)
		os.Exit(1)
	}
	if res.ulidsInvalidos > 0 {
		fmt.Fprintf(os.Stderr, "Aviso: %d filas con ULID inválido; aparecerán en /api/catalogos/unidades/conciliacion\n", res.ulidsInvalidos)
	}
	fmt.Printf("Generado %s: %d unidades\n", outPath, res.filas)
}

// generar lee el CSV (ya en UTF-8) y escribe la migración.
func generar(in io.Reader, out io.Writer) (resumen, error) {
	var res resumen
	r := csv.NewReader(in)
	r.Comma = ';'
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return res, fmt.Errorf("leer encabezado: %w", err)
	}
	idx, err := indices(header)
	if err != nil {
		return res, err
	}

	var filas []fila
	for n := 2; ; n++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("línea %d: %w", n, err)
		}
		fl := fila{
			id:          strings.TrimSpace(rec[idx["id"]]),
			clave:       strings.ToUpper(strings.TrimSpace(rec[idx["clave"]])),
			nombre:      strings.TrimSpace(rec[idx["nombre"]]),
			abreviacion: strings.TrimSpace(rec[idx["abreviacion"]]),
			usuario:     strings.TrimSpace(rec[idx["usuario_ulid"]]),
			empresa:     strings.TrimSpace(rec[idx["empresa_ulid"]]),
		}
		if fl.id == "" || fl.clave == "" || fl.nombre == "" {
			continue
		}
		if raw := strings.TrimSpace(rec[idx["fecha_sync"]]); raw != "" {
			t, err := parseFecha(raw)
			if err != nil {
				return res, fmt.Errorf("línea %d: fecha_sync %q: %w", n, raw, err)
			}
			fl.fecha = t
		}
		if !ulidValido(fl.id) || !ulidValido(fl.usuario) || !ulidValido(fl.empresa) {
			res.ulidsInvalidos++
		}
		filas = append(filas, fl)
	}
	res.filas = len(filas)

	var b strings.Builder
	b.WriteString("-- Unidades del contrato de sincronización\n")
	b.WriteString("-- Generado por cmd/seed_unidades desde el CSV del sistema anterior\n\n")
	b.WriteString("-- +goose Up\n")
	for _, fl := range filas {
		fecha := "now()"
		if !fl.fecha.IsZero() {
			fecha = "'" + fl.fecha.UTC().Format(time.RFC3339) + "'"
		}
		fmt.Fprintf(&b, "INSERT INTO unidades_sync (id, clave, nombre, abreviacion, usuario_ulid, empresa_ulid, fecha_sync)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', '%s', '%s', '%s', %s)\n",
			escapeSQL(fl.id), escapeSQL(fl.clave), escapeSQL(fl.nombre), escapeSQL(fl.abreviacion),
			escapeSQL(fl.usuario), escapeSQL(fl.empresa), fecha)
		b.WriteString("ON CONFLICT (id) DO UPDATE SET clave = EXCLUDED.clave, nombre = EXCLUDED.nombre, abreviacion = EXCLUDED.abreviacion;\n")
	}
	b.WriteString("\n-- +goose Down\n")
	if len(filas) > 0 {
		ids := make([]string, 0, len(filas))
		for _, fl := range filas {
			ids = append(ids, "'"+escapeSQL(fl.id)+"'")
		}
		fmt.Fprintf(&b, "DELETE FROM unidades_sync WHERE id IN (%s);\n", strings.Join(ids, ", "))
	}
	_, err = io.WriteString(out, b.String())
	return res, err
}

func indices(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))] = i
	}
	for _, c := range columnas {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("falta la columna %q en el encabezado", c)
		}
	}
	return idx, nil
}

// parseFecha acepta RFC3339 o el formato dd/mm/aaaa hh:mm del sistema anterior (hora local de Bogotá).
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("02/01/2006 15:04", s, bogota)
}

var bogota = time.FixedZone("COT", -5*60*60)

func ulidValido(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
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
