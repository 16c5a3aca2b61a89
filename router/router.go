// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"ballotbox/cliparse"
	"ballotbox/election"
	"ballotbox/handlers"
	"ballotbox/middleware"
)

func NewRouter(board *election.Board, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(board, cfg)
	sessionHandler := handlers.NewSessionHandler(board, cfg)
	votingHandler := handlers.NewVotingHandler(board, cfg)
	resultsHandler := handlers.NewResultsHandler(board, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))

	// Session lifecycle (admin and guarantor operations)
	mux.HandleFunc("GET /session", middleware.WithLogging(sessionHandler.Status))
	mux.HandleFunc("POST /session", middleware.WithLogging(sessionHandler.Initialize))
	mux.HandleFunc("POST /session/ready", middleware.WithLogging(sessionHandler.SetReady))
	mux.HandleFunc("POST /session/approve", middleware.WithLogging(sessionHandler.Approve))
	mux.HandleFunc("POST /session/close", middleware.WithLogging(sessionHandler.Close))
	mux.HandleFunc("GET /session/roles", middleware.WithLogging(sessionHandler.Roles))

	// Voting and results
	mux.HandleFunc("GET /papers", middleware.WithLogging(resultsHandler.GetPapers))
	mux.HandleFunc("POST /papers/{index}/votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /papers/{index}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotbox API v1"))
	})

	return mux
}
