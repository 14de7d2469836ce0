package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/errors"
	"github.com/johnquangdev/insight-stream/internal/adapter/dto/contact"
	"github.com/johnquangdev/insight-stream/internal/adapter/presenter"
	contactUsecase "github.com/johnquangdev/insight-stream/internal/usecase/contact"
)

// Contact handles contact profile requests
type Contact struct {
	contactService contactUsecase.Service
	logger         *zap.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService contactUsecase.Service, logger *zap.Logger) *Contact {
	return &Contact{contactService: contactService, logger: logger}
}

// ListContacts handles GET /contacts
// @Summary      List contacts
// @Tags         Contacts
// @Produce      json
// @Success      200  {array}  contact.ContactResponse
// @Router       /contacts [get]
func (h *Contact) ListContacts(c echo.Context) error {
	contacts, err := h.contactService.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list contacts", err))
	}
	return HandleSuccess(h.logger, c, presenter.ToContactListResponse(contacts))
}

// GetContact handles GET /contacts/:id
// @Summary      Get a contact
// @Tags         Contacts
// @Produce      json
// @Param        id   path      string  true  "Contact ID (UUID)"
// @Success      200  {object}  contact.ContactResponse
// @Failure      404  {object}  map[string]interface{}  "Contact not found"
// @Router       /contacts/{id} [get]
func (h *Contact) GetContact(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid contact id"))
	}

	found, err := h.contactService.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToContactResponse(found))
}

// UpdateContact handles PUT /contacts/:id
// @Summary      Update a contact
// @Description  Replaces the provided fields; topics and timeline are replaced whole
// @Tags         Contacts
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true  "Contact ID (UUID)"
// @Param        request  body  contact.UpdateContactRequest  true  "Fields to replace"
// @Success      200  {object}  contact.ContactResponse
// @Failure      404  {object}  map[string]interface{}  "Contact not found"
// @Router       /contacts/{id} [put]
func (h *Contact) UpdateContact(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid contact id"))
	}

	var req contact.UpdateContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	updated, err := h.contactService.Update(c.Request().Context(), id, req.Patch())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToContactResponse(updated))
}
