package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/leewillemse/portfolio-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Liveness + store diagnostic
	r.Get("/", handlers.Root)
	r.Get("/test", handlers.TestDatabase)

	// Profile (singleton: GET serves the most recent one)
	r.Get("/profile", handlers.GetProfile)
	r.Post("/profile", handlers.CreateProfile)
	r.Patch("/profile/{id}", handlers.UpdateProfile)

	// Projects
	r.Get("/projects", handlers.GetProjects)
	r.Post("/projects", handlers.CreateProject)
	r.Patch("/projects/{id}", handlers.UpdateProject)
	r.Delete("/projects/{id}", handlers.DeleteProject)

	// Certificates
	r.Get("/certificates", handlers.GetCertificates)
	r.Post("/certificates", handlers.CreateCertificate)
	r.Patch("/certificates/{id}", handlers.UpdateCertificate)
	r.Delete("/certificates/{id}", handlers.DeleteCertificate)

	// Learning journal
	r.Get("/journal", handlers.GetJournal)
	r.Post("/journal", handlers.CreateJournalEntry)
	r.Patch("/journal/{id}", handlers.UpdateJournalEntry)
	r.Delete("/journal/{id}", handlers.DeleteJournalEntry)

	// Skill snapshots
	r.Get("/skills/snapshots", handlers.GetSkillSnapshots)
	r.Post("/skills/snapshots", handlers.CreateSkillSnapshot)

	// Milestones
	r.Get("/milestones", handlers.GetMilestones)
	r.Post("/milestones", handlers.CreateMilestone)

	// Stats for recruiter mode
	r.Get("/stats", handlers.GetStats)

	// Keyword-ranking Q&A
	r.Post("/ai/query", handlers.AIQuery)

	// Asset uploads (Cloudinary)
	r.Post("/upload", handlers.UploadFile)
}
