package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/goalfield/field-scheduler/internal/config"
	"github.com/goalfield/field-scheduler/internal/models"
	"github.com/goalfield/field-scheduler/internal/policy"
)

const testSecret = "test-secret"

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.Config{JWTSecret: testSecret}

	gin.SetMode(gin.TestMode)
	r := gin.New()

	secured := r.Group("/")
	secured.Use(AuthMiddleware(db, cfg))
	{
		secured.GET("/whoami", func(c *gin.Context) {
			c.JSON(http.StatusOK, CurrentUser(c))
		})
		secured.GET("/admin", Require(policy.ListUsers), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	}

	return r, db
}

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func do(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r, db := newRouter(t)

	user := &models.User{Name: "Alice", Email: "alice@example.com", Role: models.RoleUser}
	require.NoError(t, db.Create(user).Error)

	validClaims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}

	t.Run("ValidToken", func(t *testing.T) {
		w := do(r, "/whoami", "Bearer "+mintToken(t, validClaims))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice@example.com")
	})

	t.Run("MissingHeader", func(t *testing.T) {
		w := do(r, "/whoami", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		w := do(r, "/whoami", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		w := do(r, "/whoami", "Bearer not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		expired := jwt.MapClaims{
			"sub": user.ID,
			"iat": time.Now().Add(-2 * time.Hour).Unix(),
			"exp": time.Now().Add(-time.Hour).Unix(),
		}
		w := do(r, "/whoami", "Bearer "+mintToken(t, expired))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("TokenForMissingUser", func(t *testing.T) {
		ghost := jwt.MapClaims{
			"sub": uint(9999),
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(time.Hour).Unix(),
		}
		w := do(r, "/whoami", "Bearer "+mintToken(t, ghost))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("TamperedRoleClaimDoesNotEscalate", func(t *testing.T) {
		// A forged admin claim signed with the real secret still only
		// grants what the persisted row allows.
		forged := jwt.MapClaims{
			"sub":  user.ID,
			"role": models.RoleAdmin,
			"iat":  time.Now().Unix(),
			"exp":  time.Now().Add(time.Hour).Unix(),
		}
		w := do(r, "/admin", "Bearer "+mintToken(t, forged))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("RealAdminPasses", func(t *testing.T) {
		admin := &models.User{Name: "Root", Email: "root@example.com", Role: models.RoleAdmin}
		require.NoError(t, db.Create(admin).Error)

		claims := jwt.MapClaims{
			"sub": admin.ID,
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(time.Hour).Unix(),
		}
		w := do(r, "/admin", "Bearer "+mintToken(t, claims))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
