package handlers

import (
	"net/http"
)

func (h *Handlers) CreateAdvertisement(w http.ResponseWriter, r *http.Request) error {
	payload, err := readPayload(r)
	if err != nil {
		return err
	}

	adv, err := h.AdvService.Create(r.Context(), payload)
	if err != nil {
		return err
	}

	WriteSuccess(w, adv, http.StatusOK)
	return nil
}

func (h *Handlers) GetAdvertisement(w http.ResponseWriter, r *http.Request) error {
	advID, err := pathID(r, "adv_id")
	if err != nil {
		return err
	}

	adv, err := h.AdvService.GetByID(r.Context(), advID)
	if err != nil {
		return err
	}

	WriteSuccess(w, adv, http.StatusOK)
	return nil
}

func (h *Handlers) UpdateAdvertisement(w http.ResponseWriter, r *http.Request) error {
	advID, err := pathID(r, "adv_id")
	if err != nil {
		return err
	}

	payload, err := readPayload(r)
	if err != nil {
		return err
	}

	adv, err := h.AdvService.Update(r.Context(), advID, payload)
	if err != nil {
		return err
	}

	WriteSuccess(w, adv, http.StatusOK)
	return nil
}

func (h *Handlers) DeleteAdvertisement(w http.ResponseWriter, r *http.Request) error {
	advID, err := pathID(r, "adv_id")
	if err != nil {
		return err
	}

	if err := h.AdvService.Delete(r.Context(), advID); err != nil {
		return err
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
	return nil
}
