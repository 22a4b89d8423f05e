package http

import (
	"net/http"

	domcontact "example.com/farm-retreat/app/internal/domain/contact"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func (a *API) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondInvalid(w, "Invalid contact data", err)
		return
	}

	m, err := a.contactSvc.Submit(r.Context(), &domcontact.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		a.handleDomainError(w, r, err, "Error processing contact form")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Contact message received successfully",
		"id":      m.ID,
	})
}
