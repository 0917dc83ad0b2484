package handlers

import (
	"dateme/auth"
	"dateme/repository"
)

// Collaborators shared across all handler files, wired once from main.
var userRepo repository.Users
var tokens *auth.TokenManager

// SetUserRepository sets the user repository used by all handlers.
func SetUserRepository(repo repository.Users) {
	userRepo = repo
}

// SetTokenManager sets the session token manager used by all handlers.
func SetTokenManager(tm *auth.TokenManager) {
	tokens = tm
}
