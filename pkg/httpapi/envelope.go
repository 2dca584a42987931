package httpapi

import (
	"encoding/json"
	"net/http"
)

// ListEnvelope is the wire shape for paginated list endpoints.
type ListEnvelope struct {
	Items       any   `json:"items"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// MutationEnvelope is the wire shape for create/update/action endpoints.
type MutationEnvelope struct {
	IsSuccess    bool              `json:"isSuccess"`
	Data         any               `json:"data,omitempty"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	Code         string            `json:"code,omitempty"`
	Errors       map[string]string `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteList(w http.ResponseWriter, items any, total int64, totalPages, currentPage int) error {
	return WriteJSON(w, http.StatusOK, &ListEnvelope{
		Items:       items,
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
	})
}

func WriteSuccess(w http.ResponseWriter, status int, data any) error {
	return WriteJSON(w, status, &MutationEnvelope{
		IsSuccess: true,
		Data:      data,
	})
}

func WriteError(w http.ResponseWriter, status int, code, message string) error {
	return WriteJSON(w, status, &MutationEnvelope{
		IsSuccess:    false,
		Code:         code,
		ErrorMessage: message,
	})
}

// WriteValidationError reports field-level failures alongside the aggregate
// message so the client can render both inline errors and a summary list.
func WriteValidationError(w http.ResponseWriter, code, message string, fieldErrors map[string]string) error {
	return WriteJSON(w, http.StatusUnprocessableEntity, &MutationEnvelope{
		IsSuccess:    false,
		Code:         code,
		ErrorMessage: message,
		Errors:       fieldErrors,
	})
}
