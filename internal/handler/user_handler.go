package handlers

import (
	"net/http"
)

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) error {
	payload, err := readPayload(r)
	if err != nil {
		return err
	}

	user, err := h.UserService.Create(r.Context(), payload)
	if err != nil {
		return err
	}

	WriteSuccess(w, user, http.StatusOK)
	return nil
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) error {
	userID, err := pathID(r, "user_id")
	if err != nil {
		return err
	}

	user, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		return err
	}

	WriteSuccess(w, user, http.StatusOK)
	return nil
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) error {
	userID, err := pathID(r, "user_id")
	if err != nil {
		return err
	}

	payload, err := readPayload(r)
	if err != nil {
		return err
	}

	user, err := h.UserService.Update(r.Context(), userID, payload)
	if err != nil {
		return err
	}

	WriteSuccess(w, user, http.StatusOK)
	return nil
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) error {
	userID, err := pathID(r, "user_id")
	if err != nil {
		return err
	}

	if err := h.UserService.Delete(r.Context(), userID); err != nil {
		return err
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
	return nil
}
