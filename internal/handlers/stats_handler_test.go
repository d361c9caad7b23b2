package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalfield/field-scheduler/internal/models"
)

func TestStats(t *testing.T) {
	e := newEnv(t)
	user := e.createUser(t, "Alice", "alice@example.com", models.RoleUser)
	admin := e.createUser(t, "Root", "root@example.com", models.RoleAdmin)
	svc := e.createService(t, "Field 1", 120, 60)

	seedBooking(t, e, user, svc)
	confirmed := seedBooking(t, e, user, svc)
	confirmed.Status = "confirmed"
	require.NoError(t, e.db.Save(confirmed).Error)

	t.Run("NonAdminForbidden", func(t *testing.T) {
		w := e.doJSON(t, http.MethodGet, "/api/stats", tokenFor(t, user), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("AdminGetsCounters", func(t *testing.T) {
		w := e.doJSON(t, http.MethodGet, "/api/stats", tokenFor(t, admin), nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.EqualValues(t, 2, body["users"])
		assert.EqualValues(t, 1, body["services"])
		assert.EqualValues(t, 2, body["bookings"])

		byStatus, ok := body["byStatus"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 1, byStatus["pending"])
		assert.EqualValues(t, 1, byStatus["confirmed"])
		assert.EqualValues(t, 0, byStatus["cancelled"])
	})
}
