package routes

import (
	"github.com/gofiber/fiber/v2"

	"onboard_panel/internal/aiform"
	"onboard_panel/internal/handlers"
	mid "onboard_panel/internal/middleware"
	"onboard_panel/services"
)

// Deps bundles everything the route tree needs. All of it is constructed
// in cmd/server and injected here; nothing is looked up from globals.
type Deps struct {
	Lifecycle *services.LifecycleService
	Company   *services.CompanyService
	Workflow  *services.WorkflowService
	Admin     *services.AdminService
	Blobs     services.BlobStore
	AIForm    *aiform.Client
	JWTSecret string
}

func RegisterRoutes(app *fiber.App, d Deps) {
	// Public surface: application submission, active-application resolution,
	// file retrieval, login.
	app.Post("/application", handlers.SubmitApplicationHandler(d.Lifecycle))
	app.Get("/application/active", handlers.ActiveApplicationHandler(d.Company))
	app.Get("/employees/:employeeId/file/:fileKey", handlers.GetFileHandler(d.Blobs))
	app.Post("/auth/login", handlers.LoginHandler(d.Admin))

	auth := mid.RequireAuth(d.JWTSecret)

	// Candidate pipeline.
	candidates := app.Group("/candidates", auth)
	candidates.Get("/phase/:phase", handlers.ListCandidatesHandler(d.Lifecycle))
	candidates.Get("/expiring-documentation", handlers.ExpiringDocumentationHandler(d.Lifecycle))
	candidates.Post("/legacy", handlers.ImportLegacyEmployeeHandler(d.Lifecycle))
	candidates.Get("/:id", handlers.GetCandidateHandler(d.Lifecycle))
	candidates.Delete("/:id", handlers.RejectHandler(d.Lifecycle))
	candidates.Post("/:id/advance-to-interview", handlers.AdvanceToInterviewHandler(d.Lifecycle))
	candidates.Post("/:id/approve-for-hire", handlers.ApproveForHireHandler(d.Lifecycle))
	candidates.Post("/:id/mark-as-employee", handlers.MarkAsEmployeeHandler(d.Lifecycle))
	candidates.Post("/:id/deactivate", handlers.DeactivateHandler(d.Lifecycle))
	candidates.Post("/:id/review", handlers.AttachReviewHandler(d.Lifecycle))
	candidates.Post("/:id/documents", handlers.UploadDocumentHandler(d.Lifecycle))
	candidates.Delete("/:id/documents", handlers.DeleteDocumentHandler(d.Lifecycle))
	candidates.Post("/:id/license", handlers.UpdateLicenseHandler(d.Lifecycle))

	// Company settings and onboarding workflows.
	companies := app.Group("/companies", auth)
	companies.Post("/", handlers.SaveCompanyHandler(d.Company))
	companies.Get("/", handlers.ListCompaniesHandler(d.Company))
	companies.Get("/:id", handlers.GetCompanyHandler(d.Company))
	companies.Delete("/:id", handlers.DeleteCompanyHandler(d.Company))
	companies.Post("/:id/logo", handlers.UploadLogoHandler(d.Company))
	companies.Delete("/:id/logo", handlers.DeleteLogoHandler(d.Company))
	companies.Post("/:companyId/processes", handlers.AddProcessHandler(d.Workflow))
	companies.Post("/:companyId/processes/generated", handlers.AddGeneratedProcessHandler(d.Workflow))
	companies.Delete("/:companyId/processes/:processId", handlers.RemoveProcessHandler(d.Workflow))
	companies.Put("/:companyId/processes/:processId/application-form", handlers.SetApplicationFormHandler(d.Workflow))
	companies.Put("/:companyId/processes/:processId/interview-screen", handlers.SetInterviewScreenHandler(d.Workflow))
	companies.Post("/:companyId/processes/:processId/required-docs", handlers.AddRequiredDocHandler(d.Workflow))
	companies.Delete("/:companyId/processes/:processId/required-docs/:docId", handlers.RemoveRequiredDocHandler(d.Workflow))

	// AI form generation.
	app.Post("/ai/generate-form", auth, handlers.GenerateFormHandler(d.AIForm))

	// Superuser tenant management.
	su := app.Group("/superuser", auth, mid.RequireSuperuser())
	su.Post("/admins", handlers.CreateAdminHandler(d.Admin))
	su.Get("/admins", handlers.ListAdminsHandler(d.Admin))
	su.Delete("/admins/:uid", handlers.DeleteAdminHandler(d.Admin))
	su.Post("/admins/:uid/elevate", handlers.ElevateHandler(d.Admin))
	su.Post("/reset-demo-data", handlers.ResetDemoDataHandler(d.Lifecycle))
	su.Delete("/companies", handlers.DeleteAllCompaniesHandler(d.Company))
}
