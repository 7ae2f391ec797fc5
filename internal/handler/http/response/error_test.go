package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerhq/timeclock-backend-go/internal/domain/employee"
	"github.com/makerhq/timeclock-backend-go/internal/domain/user"
	"github.com/makerhq/timeclock-backend-go/internal/pkg/validator"
)

func TestHandleErrorValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "employee_code", Message: "employee_code is required"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "employee_code is required", body.Error.Details["employee_code"])
}

func TestHandleErrorDomainMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown biometric id", employee.ErrUnknownBiometricID, http.StatusNotFound},
		{"inactive employee", employee.ErrEmployeeNotActive, http.StatusForbidden},
		{"duplicate employee code", employee.ErrEmployeeCodeExists, http.StatusConflict},
		{"own role change", user.ErrCannotChangeOwnRole, http.StatusForbidden},
		{"unmapped error", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)
			assert.Equal(t, c.want, rec.Code)
		})
	}
}

func TestHandleErrorHidesUnmappedMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: connection reset"))

	body := decodeBody(t, rec)
	require.NotNil(t, body.Error)
	assert.NotContains(t, body.Error.Message, "connection reset")
}
