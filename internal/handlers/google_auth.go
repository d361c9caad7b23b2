package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/goalfield/field-scheduler/internal/config"
	"github.com/goalfield/field-scheduler/internal/httperr"
	"github.com/goalfield/field-scheduler/internal/models"
)

const stateCookie = "oauth_state"

type GoogleAuthHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	oauth *oauth2.Config
	log   zerolog.Logger
}

func NewGoogleAuthHandler(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *GoogleAuthHandler {
	return &GoogleAuthHandler{
		db:  db,
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
		log: log.With().Str("component", "google_auth").Logger(),
	}
}

// Login redirects to the Google consent screen.
func (h *GoogleAuthHandler) Login(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie(stateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauth.AuthCodeURL(state))
}

// Callback exchanges the code, creates the account on first login and
// hands the SPA a token via redirect.
func (h *GoogleAuthHandler) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		httperr.BadRequest(c, "invalid_oauth_state", "OAuth state mismatch.")
		return
	}

	code := c.Query("code")
	if code == "" {
		httperr.BadRequest(c, "missing_code", "Missing authorization code.")
		return
	}

	tok, err := h.oauth.Exchange(c.Request.Context(), code)
	if err != nil {
		h.log.Warn().Err(err).Msg("oauth code exchange failed")
		httperr.Unauthorized(c, "oauth_exchange_failed", "Google sign-in failed.")
		return
	}

	svc, err := oauth2api.NewService(
		c.Request.Context(),
		option.WithTokenSource(h.oauth.TokenSource(c.Request.Context(), tok)),
	)
	if err != nil {
		httperr.Internal(c, "oauth_userinfo_failed", "Google sign-in failed.")
		return
	}

	info, err := svc.Userinfo.Get().Do()
	if err != nil || info.Email == "" {
		httperr.Internal(c, "oauth_userinfo_failed", "Google sign-in failed.")
		return
	}

	user, err := h.findOrCreateUser(info)
	if err != nil {
		httperr.Internal(c, "failed_to_create_user", "Failed to create user.")
		return
	}

	token, err := signToken(h.cfg.JWTSecret, user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Failed to generate token.")
		return
	}

	c.Redirect(http.StatusFound, h.cfg.FrontendURL+"/auth/success?token="+token)
}

func (h *GoogleAuthHandler) findOrCreateUser(info *oauth2api.Userinfo) (*models.User, error) {
	var user models.User

	if err := h.db.Where("google_id = ?", info.Id).First(&user).Error; err == nil {
		return &user, nil
	}

	email := strings.ToLower(info.Email)

	// Existing password account with the same email gets linked.
	if err := h.db.Where("email = ?", email).First(&user).Error; err == nil {
		user.GoogleID = info.Id
		if err := h.db.Save(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	user = models.User{
		Name:     info.Name,
		Email:    email,
		GoogleID: info.Id,
		Role:     models.RoleUser,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return nil, err
	}

	h.log.Info().Str("email", email).Msg("user created via google sign-in")
	return &user, nil
}
