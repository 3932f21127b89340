package http

import (
	"net/http"

	"github.com/akosyrev/snapthread/internal/utils"
	"github.com/akosyrev/snapthread/models"
)

// writeMessage writes a JSON body carrying only a human-readable message.
// Used for error responses and plain acknowledgements.
func writeMessage(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
