package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/adrienb/vocabflash/internal/errors"
	"github.com/adrienb/vocabflash/internal/logger"
)

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON decodes and validates a request body into dst. dst must be a
// pointer to a struct with validator tags.
func (s *Server) decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.NewBadRequestError(fmt.Sprintf("invalid request body: %v", err))
	}
	if err := s.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if ok := asValidationErrors(err, &fieldErrs); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errors.NewValidationError(strings.ToLower(fe.Field()), fmt.Sprintf("failed %s validation", fe.Tag()))
		}
		return errors.NewBadRequestError("invalid request body")
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		*target = fieldErrs
		return true
	}
	return false
}
