package middleware

import (
	"errors"
	"net/http"
	"strings"

	"lightning-talks-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Identity validates bearer tokens issued by the external identity provider
// and maps the token's opaque subject to a local users row. Admin rights come
// from an email allowlist; the provider itself knows nothing about roles.
type Identity struct {
	db     *gorm.DB
	secret []byte
	admins map[string]bool
}

func NewIdentity(db *gorm.DB, secret string, adminEmails string) *Identity {
	admins := make(map[string]bool)
	for _, e := range strings.Split(adminEmails, ",") {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			admins[e] = true
		}
	}
	return &Identity{db: db, secret: []byte(secret), admins: admins}
}

func (m *Identity) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.authenticate(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		m.setContext(c, user)
		c.Next()
	}
}

// Optional resolves the caller when a token is present but lets anonymous
// requests through; the unauthenticated submission path depends on this.
func (m *Identity) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		user, err := m.authenticate(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		m.setContext(c, user)
		c.Next()
	}
}

func (m *Identity) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "administrator access required"})
			return
		}
		c.Next()
	}
}

func (m *Identity) authenticate(c *gin.Context) (*models.User, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, errors.New("authorization header required")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("token has no subject")
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	var user models.User
	err = m.db.
		Attrs(models.User{Name: name, Email: email}).
		FirstOrCreate(&user, models.User{ExternalID: sub}).Error
	if err != nil {
		return nil, errors.New("could not resolve user")
	}
	return &user, nil
}

func (m *Identity) setContext(c *gin.Context, user *models.User) {
	c.Set("user_id", user.ID)
	c.Set("email", user.Email)
	c.Set("is_admin", m.admins[strings.ToLower(user.Email)])
}
