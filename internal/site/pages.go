package site

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogu-code/portfolio/internal/contact"
	"github.com/yogu-code/portfolio/internal/portfolio"
)

type pageData struct {
	Site  portfolio.Site
	Cards []portfolio.Card
}

// page resolves the cards for this render; nothing is carried between requests.
func (s *Server) page() pageData {
	return pageData{Site: s.catalog.Site, Cards: s.catalog.Cards()}
}

// index handles GET /
func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page())
}

// projectsFragment handles GET /projects and returns only the project section.
func (s *Server) projectsFragment(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", s.page())
}

// privacy handles GET /privacy
func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"RetentionDays": int(s.retention.Hours() / 24),
	})
}

// contactForm handles GET /contact-form
func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{"Title": "Contact Me"})
}

// submitContact handles POST /contact and answers with a result fragment.
func (s *Server) submitContact(c *gin.Context) {
	msg := contact.Message{
		Name:  c.PostForm("fullName"),
		Email: c.PostForm("email"),
		Body:  c.PostForm("message"),
	}
	if err := msg.Validate(); err != nil {
		c.HTML(http.StatusBadRequest, "contact-result.html", gin.H{
			"Error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}

	log := requestLog(c, s.log)
	if s.mailer == nil {
		log.Warn("contact form submitted but no mailer is configured")
		c.HTML(http.StatusServiceUnavailable, "contact-result.html", gin.H{
			"Error": "Sorry, the contact form is not available right now.",
		})
		return
	}
	if err := s.mailer.Send(msg); err != nil {
		entry := log.WithError(err)
		if errors.Is(err, contact.ErrNotConfigured) {
			entry.Warn("contact email not sent")
		} else {
			entry.Error("contact email not sent")
		}
		c.HTML(http.StatusOK, "contact-result.html", gin.H{
			"Error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	log.Info("contact email sent")
	c.HTML(http.StatusOK, "contact-result.html", gin.H{
		"Success": "Thank you for your message! I'll get back to you soon.",
	})
}
