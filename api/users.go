package api

import (
	"net/http"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/auth"
	"influencer-crm-service/services"
)

// login godoc
// @Summary Exchange credentials for an access token
// @Description The token is returned in the body and set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Credentials"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	result, err := h.svc.Users.Login(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, result)
}

// logout godoc
// @Summary Clear the auth cookie
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	p := auth.PrincipalFrom(r.Context())
	if p == nil {
		h.writeError(w, r, apperrors.Unauthenticated("authentication required"))
		return
	}
	user, err := h.svc.Users.Get(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// createUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateUserInput true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /users [post]
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var in services.CreateUserInput
	if err := h.decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	user, err := h.svc.Users.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PageResponse[models.User]
// @Router /users [get]
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, map[string]string{"role": "role", "firmId": "firm_id", "storeId": "store_id"})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.Users.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writePage(w, page)
}

// getUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	user, err := h.svc.Users.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
