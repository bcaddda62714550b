package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/businessapp"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func approvedApplication(t *testing.T) *businessapp.Application {
	t.Helper()

	info, err := businessapp.NewBusinessInfo(
		"Green Basket", "owner@greenbasket.example", "+15550100", "12 Market Street", "")
	require.NoError(t, err)

	docs, err := businessapp.NewDocuments(
		"doc://license", "doc://tax", "doc://owner-id", "doc://address", "",
		[]string{"doc://storefront-1", "doc://storefront-2"})
	require.NoError(t, err)

	app, err := businessapp.NewApplication(
		kernel.NewUUID(), kernel.NewUUID(), info, docs, time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, app.Approve(
		kernel.NewUUID(), kernel.NewUUID(), "looks good", time.Now().UTC()))

	return app
}

func TestWriteError_StatusMapping(t *testing.T) {
	t.Run("should map not found to 404", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		err := writeError(ctx, errs.NewObjectNotFoundError("applicationId", kernel.NewUUID()))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should map a repeated review to 409", func(t *testing.T) {
		app := approvedApplication(t)

		reviewErr := app.Approve(
			kernel.NewUUID(), kernel.NewUUID(), "second look", time.Now().UTC())
		require.Error(t, reviewErr)
		require.ErrorIs(t, reviewErr, errs.ErrStateIsInvalid)

		ctx, rec := newTestContext(t)
		err := writeError(ctx, reviewErr)

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)

		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, http.StatusConflict, resp.Code)
		assert.Contains(t, resp.Message, "Approved is not a valid status to approve")
	})

	t.Run("should map a blocked order transition to 409", func(t *testing.T) {
		_, transitionErr := order.Pending.TransitionTo(order.Delivered)
		require.Error(t, transitionErr)

		ctx, rec := newTestContext(t)
		err := writeError(ctx, transitionErr)

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should map version conflicts to 409", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		err := writeError(ctx, errs.NewVersionIsInvalidErrorWithCause("order"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should map duplicate checkout requests to 409", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		err := writeError(ctx, commands.ErrDuplicateOrderRequest)

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should map validation failures to 422", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		err := writeError(ctx, errs.NewValueIsInvalidError("email"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("should map unknown errors to 500", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		err := writeError(ctx, errors.New("connection reset"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
