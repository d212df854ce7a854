package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/materiales-api/internal/application/analytics"
	"github.com/jhoicas/materiales-api/internal/application/auth"
	"github.com/jhoicas/materiales-api/internal/application/importer"
	appmaterial "github.com/jhoicas/materiales-api/internal/application/material"
	"github.com/jhoicas/materiales-api/internal/application/usecase"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LifecycleUC *appmaterial.LifecycleUseCase
	QueryUC     *appmaterial.QueryUseCase
	AdminUC     *appmaterial.AdminUseCase
	QueueUC     *appmaterial.ScanQueueUseCase
	DashboardUC *analytics.DashboardUseCase
	OperarioUC  *usecase.OperarioUseCase
	AuthUC      *auth.AuthUseCase
	ImportUC    *importer.ImportUseCase
	ExportUC    *importer.ExportUseCase
	Labels      LabelGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Autorización por rol: operario consulta; almacenero opera el ciclo de vida,
// la cola de escaneo y las importaciones; admin además gestiona operarios y
// ejecuta borrados y purgas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	almacen := RequireRole(entity.RolAlmacenero, entity.RolAdmin)
	admin := RequireRole(entity.RolAdmin)

	// Materiales
	materiales := protected.Group("/materiales")
	materialHandler := NewMaterialHandler(deps.LifecycleUC, deps.QueryUC, deps.AdminUC, deps.ExportUC, deps.Labels)
	materiales.Get("/", materialHandler.List)
	materiales.Post("/", almacen, materialHandler.Register)
	materiales.Get("/export", almacen, materialHandler.Export)
	materiales.Get("/export/terminales", almacen, materialHandler.ExportTerminales)
	materiales.Get("/etiquetas", almacen, materialHandler.Etiquetas)
	materiales.Get("/informe", almacen, materialHandler.Informe)
	materiales.Get("/ean/:ean/descripcion", materialHandler.DescripcionPorEan)
	materiales.Post("/purga", admin, materialHandler.Purge)
	materiales.Get("/:codigo/disponible", materialHandler.CheckCodigo)
	materiales.Put("/:codigo", almacen, materialHandler.Update)
	materiales.Delete("/:codigo", admin, materialHandler.Delete)
	materiales.Post("/:codigo/asignar", almacen, materialHandler.Assign)
	materiales.Post("/:codigo/devolver", almacen, materialHandler.Devolver)
	materiales.Post("/:codigo/gastar", almacen, materialHandler.Gastar)
	materiales.Post("/:codigo/retirar", almacen, materialHandler.Retirar)

	// Cola de escaneo de bajas
	escaneo := protected.Group("/escaneo")
	scanHandler := NewScanHandler(deps.QueueUC)
	escaneo.Get("/siguiente", almacen, scanHandler.Next)
	escaneo.Get("/pendientes", scanHandler.Pendientes)
	escaneo.Post("/:codigo", almacen, scanHandler.Confirmar)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/contadores", dashboardHandler.Contadores)

	// Operarios (solo admin salvo lectura)
	operarios := protected.Group("/operarios")
	operarioHandler := NewOperarioHandler(deps.OperarioUC)
	operarios.Get("/", operarioHandler.List)
	operarios.Post("/", admin, operarioHandler.Create)
	operarios.Get("/:numero", operarioHandler.Get)
	operarios.Put("/:numero", admin, operarioHandler.Update)
	operarios.Delete("/:numero", admin, operarioHandler.Delete)
	operarios.Post("/:numero/activo", admin, operarioHandler.ToggleActivo)
	operarios.Get("/:numero/estadisticas", operarioHandler.Estadisticas)

	// Importaciones CSV
	importar := protected.Group("/importar", almacen)
	importHandler := NewImportHandler(deps.ImportUC)
	importar.Post("/operarios", importHandler.ImportOperarios)
	importar.Post("/materiales", importHandler.ImportMateriales)
}
