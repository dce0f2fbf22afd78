package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/ptcportal/personnel-backend-go/internal/config"
	"github.com/ptcportal/personnel-backend-go/internal/handler/http/middleware"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Person     PersonHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Approval   ApprovalHandler
	Archive    ArchiveHandler
	Export     ExportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ptc-personnel"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Everything requires authentication; tokens come from the
		// portal's identity provider.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/persons/{personType}", func(r chi.Router) {
				r.Get("/", h.Person.List)
				r.Post("/", h.Person.Create)
				r.Get("/pno/{pno}", h.Person.GetByPNO)

				r.Route("/{personID}", func(r chi.Router) {
					r.Get("/", h.Person.Get)
					r.Put("/", h.Person.Update)
					r.Delete("/", h.Person.Delete)
				})
			})

			r.Route("/attendance/{personType}", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/absence", h.Attendance.SubmitAbsence)

				r.Route("/{recordID}", func(r chi.Router) {
					r.Get("/", h.Attendance.Get)
					r.Put("/", h.Attendance.Update)
					r.Delete("/", h.Attendance.Delete)
				})
			})

			r.Route("/leaves/{personType}", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Submit)

				r.Route("/{recordID}", func(r chi.Router) {
					r.Get("/", h.Leave.Get)
					r.Put("/", h.Leave.Update)
					r.Delete("/", h.Leave.Delete)
				})
			})

			r.Post("/approvals/decide", h.Approval.Decide)

			r.Route("/archive", func(r chi.Router) {
				r.Route("/folders", func(r chi.Router) {
					r.Get("/", h.Archive.ListFolders)
					r.Post("/", h.Archive.CreateFolder)
					r.Delete("/{folderID}", h.Archive.DeleteFolder)
					r.Get("/{folderID}/records", h.Archive.ListFolderContents)
				})

				r.Route("/{personType}", func(r chi.Router) {
					r.Post("/", h.Archive.ArchivePerson)
					r.Post("/{archivedID}/restore", h.Archive.UnarchivePerson)
				})
			})

			r.Route("/export", func(r chi.Router) {
				r.Get("/persons", h.Export.ExportPersons)
				r.Get("/attendance", h.Export.ExportAttendance)
			})
			r.Get("/print/record", h.Export.PrintRecord)
		})
	})
	return r
}
