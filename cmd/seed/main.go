// seed crea el esquema y carga datos de demostración: tres operarios (admin,
// almacenero y operario de planta) y un puñado de materiales en distintos
// puntos del ciclo de vida.
//
// Uso: go run ./cmd/seed [ruta/materiales.csv]
// Si se indica un CSV (codigo;caducidad[;ean[;descripcion]]), se importa
// después de los datos de demostración pasando por el alta normal.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/materiales-api/internal/application/dto"
	"github.com/jhoicas/materiales-api/internal/application/importer"
	appmaterial "github.com/jhoicas/materiales-api/internal/application/material"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
	"github.com/jhoicas/materiales-api/internal/domain/material"
	"github.com/jhoicas/materiales-api/internal/infrastructure/postgres"
	"github.com/jhoicas/materiales-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fail("crear esquema: %v", err)
	}

	opRepo := postgres.NewOperarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	resolver := material.NewResolver(cfg.Alert.AvisoDias)
	lifecycle := appmaterial.NewLifecycleUseCase(txRunner, opRepo, resolver)

	// Operarios de demostración. El PIN del admin es "1234".
	adminPin, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear PIN: %v", err)
	}
	operarios := []*entity.Operario{
		{Numero: "1001", Nombre: "Administración", Rol: entity.RolAdmin, Activo: true, PinHash: string(adminPin)},
		{Numero: "2001", Nombre: "Luis Almacén", Rol: entity.RolAlmacenero, Activo: true},
		{Numero: "3001", Nombre: "Marta Planta", Rol: entity.RolOperario, Activo: true},
	}
	for _, o := range operarios {
		if err := opRepo.Upsert(ctx, o); err != nil {
			fail("upsert operario %s: %v", o.Numero, err)
		}
	}
	fmt.Printf("Operarios: %d\n", len(operarios))

	// Materiales de demostración con caducidades relativas a hoy.
	hoy := time.Now()
	fecha := func(dias int) string {
		return hoy.AddDate(0, 0, dias).Format(material.ISODate)
	}
	materiales := []dto.RegisterMaterialRequest{
		{Codigo: "1000001", Caducidad: fecha(365), Ean: "8412345678905", Descripcion: "Sellante de juntas 310ml"},
		{Codigo: "1000002", Caducidad: fecha(365), Ean: "8412345678905"}, // descripción desde catálogo
		{Codigo: "1000003", Caducidad: fecha(5), Ean: "8498765432102", Descripcion: "Adhesivo estructural 50ml"},
		{Codigo: "1000004", Caducidad: fecha(0), Descripcion: "Imprimación anticorrosiva 1L"},
		{Codigo: "1000005", Caducidad: fecha(90), Ean: "8400000011116", Descripcion: "Masilla bicomponente 250g"},
	}
	creados := 0
	for _, req := range materiales {
		if err := lifecycle.Register(ctx, req); err != nil {
			fmt.Fprintf(os.Stderr, "material %s: %v\n", req.Codigo, err)
			continue
		}
		creados++
	}

	// Uno asignado y uno gastado, para que el panel y la cola tengan contenido
	if err := lifecycle.Assign(ctx, "1000001", dto.AssignMaterialRequest{OperarioNumero: "3001"}); err != nil {
		fmt.Fprintf(os.Stderr, "asignar 1000001: %v\n", err)
	}
	if err := lifecycle.Gastar(ctx, "1000005"); err != nil {
		fmt.Fprintf(os.Stderr, "gastar 1000005: %v\n", err)
	}
	fmt.Printf("Materiales: %d\n", creados)

	// CSV opcional de materiales reales
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fail("abrir CSV: %v", err)
		}
		defer f.Close()
		imp := importer.NewImportUseCase(opRepo, lifecycle)
		res, err := imp.ImportMateriales(ctx, f)
		if err != nil {
			fail("importar CSV: %v", err)
		}
		fmt.Printf("CSV: %d importados, %d errores\n", res.Importados, len(res.Errores))
		for _, e := range res.Errores {
			fmt.Fprintln(os.Stderr, "  "+e)
		}
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
