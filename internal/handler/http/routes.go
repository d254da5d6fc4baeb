// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/auth/refresh", h.refresh)
		r.Post("/auth/logout", h.logout)
		r.Get("/version/", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/profile", h.getProfile)
			r.Put("/auth/profile", h.updateProfile)

			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", h.getProfile)
				r.Get("/stats", h.getStats)
				r.Get("/interests", h.getInterests)

				r.Get("/notes", h.listNotes)
				r.Post("/notes", h.createNote)
				r.Put("/notes/{noteID}", h.updateNote)
				r.Delete("/notes/{noteID}", h.deleteNote)

				r.Get("/resources", h.listResources)
				r.Post("/resources", h.createResource)
				r.Put("/resources/{resourceID}", h.updateResource)
				r.Delete("/resources/{resourceID}", h.deleteResource)
			})

			r.Route("/roadmaps", func(r chi.Router) {
				r.Get("/", h.listRoadmaps)
				r.Post("/", h.createRoadmap)
				r.Get("/{roadmapID}", h.getRoadmap)
				r.Put("/{roadmapID}", h.updateRoadmap)
				r.Delete("/{roadmapID}", h.deleteRoadmap)
				r.Post("/{roadmapID}/enroll", h.enroll)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.listTasks)
				r.Get("/progress", h.getProgress)
				r.Get("/{taskID}", h.getTask)
				r.Post("/{taskID}/complete", h.completeTask)
				r.Delete("/{taskID}/complete", h.uncompleteTask)
				r.Post("/{taskID}/start", h.startTask)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
