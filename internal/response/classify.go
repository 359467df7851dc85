package response

import (
	"errors"
	"net/http"

	"github.com/stemsi/curriculum-backend/internal/repository"
)

func classify(err error) (int, ErrCode) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, ErrNotFound
	case errors.Is(err, repository.ErrUnknownReference):
		return http.StatusUnprocessableEntity, ErrUnknownReference
	case errors.Is(err, repository.ErrDuplicateEmail):
		return http.StatusConflict, ErrConflict
	default:
		return http.StatusInternalServerError, ErrInternal
	}
}
