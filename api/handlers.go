package api

import (
	"github.com/rajraunak/portfolio-site-backend/auth"
	"github.com/rajraunak/portfolio-site-backend/database"
	"github.com/rajraunak/portfolio-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, gate *auth.Gate, chatService *services.ChatService, uploader *services.ImageUploader) *routeHandlers {
	return &routeHandlers{
		blogPostHandler: newBlogPostHandler(database.BlogPosts()),
		contactHandler:  newContactHandler(database.ContactMessages()),
		chatHandler:     newChatHandler(chatService),
		authHandler:     newAuthHandler(gate),
		uploadHandler:   newUploadHandler(uploader),
	}
}
