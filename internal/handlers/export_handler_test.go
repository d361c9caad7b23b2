package handlers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/goalfield/field-scheduler/internal/models"
)

func TestExportBookings(t *testing.T) {
	e := newEnv(t)
	user := e.createUser(t, "Alice", "alice@example.com", models.RoleUser)
	admin := e.createUser(t, "Root", "root@example.com", models.RoleAdmin)
	svc := e.createService(t, "Field 1", 120, 60)
	seedBooking(t, e, user, svc)

	t.Run("NonAdminForbidden", func(t *testing.T) {
		w := e.doJSON(t, http.MethodGet, "/api/bookings/export", tokenFor(t, user), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("AdminDownloadsWorkbook", func(t *testing.T) {
		w := e.doJSON(t, http.MethodGet, "/api/bookings/export", tokenFor(t, admin), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

		f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Bookings")
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "ID", rows[0][0])
		assert.Equal(t, "Alice", rows[1][1])
		assert.Equal(t, "Field 1", rows[1][3])
		assert.Equal(t, "pending", rows[1][5])
	})
}
