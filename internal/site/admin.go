package site

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

// AdminCredentials are the dashboard login. An empty password disables the dashboard.
type AdminCredentials struct {
	Username string
	Password string
}

type adminAuth struct {
	creds AdminCredentials
	token string
}

func newAdminAuth(creds AdminCredentials) (*adminAuth, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate admin token: %w", err)
	}
	return &adminAuth{creds: creds, token: hex.EncodeToString(b)}, nil
}

func (a *adminAuth) check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.creds.Password)) == 1
	return userOK && passOK
}

// requireAdmin redirects to the login page unless the session cookie matches.
func (a *adminAuth) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// clientHash identifies a client in logs without writing its address.
func (s *Server) clientHash(c *gin.Context) string {
	if s.hasher == nil {
		return "unknown"
	}
	return s.hasher.Hash(c.ClientIP())
}

// setupAdminRoutes mounts the dashboard when it is enabled.
func (s *Server) setupAdminRoutes(r *gin.Engine) {
	if s.admin == nil {
		return
	}

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		log := requestLog(c, s.log).WithField("client", s.clientHash(c))
		if !s.admin.check(c.PostForm("username"), c.PostForm("password")) {
			log.Warn("failed admin login attempt")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"Error": "Invalid credentials",
			})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.admin.token, 3600*24, "/admin", "", c.Request.TLS != nil, true)
		log.Info("admin login successful")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
		requestLog(c, s.log).WithField("client", s.clientHash(c)).Info("admin logout")
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.admin.requireAdmin())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			requestLog(c, s.log).WithError(err).Error("load admin stats")
			s.renderError(c, http.StatusInternalServerError, "Failed to load statistics")
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"Stats": stats,
			"Cards": s.catalog.Cards(),
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		requestLog(c, s.log).WithField("client", s.clientHash(c)).Info("admin stats exported")
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/purge", func(c *gin.Context) {
		removed, err := s.store.Purge(c.Request.Context(), s.now().Add(-s.retention))
		if err != nil {
			requestLog(c, s.log).WithError(err).Error("purge visitor data")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purge visitor data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": removed})
	})
}
