package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/Zachkp/portfolio/internal/csrf"
	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/validation"
)

const recaptchaField = "recaptcha_response"

const (
	msgValidationFailed   = "Validation failed. Please try again."
	msgRecaptchaFailed    = "reCAPTCHA verification failed! Please re-submit."
	msgRecaptchaMissing   = "reCAPTCHA token missing. Please re-submit."
	msgMailFailed         = "Sorry, there was an error sending your message. Please try again later."
	msgContactSent        = "Your message has been sent successfully!"
	msgCVRequestInitiated = "CV generation initiated successfully!"
)

// renderForm renders a form page carrying a fresh CSRF token.
func (s *Server) renderForm(c *gin.Context, tmpl, title string) {
	token, err := s.csrf.Token(c.Writer, c.Request)
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, tmpl, s.page(title, gin.H{"csrfToken": token}))
}

func (s *Server) contactForm(c *gin.Context) {
	s.renderForm(c, "contact.html", "Contact")
}

func (s *Server) cvRequestForm(c *gin.Context) {
	s.renderForm(c, "cv_generator.html", "CV Generator")
}

func formResult(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": status == http.StatusOK, "message": message})
}

// checkForm merges the CSRF verdict into errs and answers 400 when anything
// failed.
func (s *Server) checkForm(c *gin.Context, errs validation.Errors) bool {
	if reason := s.csrf.Check(c.Request, c.PostForm(csrf.FieldName)); reason != "" {
		errs = errs.Add(csrf.FieldName, reason)
	}
	if errs == nil {
		return true
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"errors":  errs,
		"message": msgValidationFailed,
	})
	return false
}

// human verifies the reCAPTCHA token, answering 400 with missingMsg or the
// failure message itself.
func (s *Server) human(c *gin.Context, missingMsg string) bool {
	token := c.PostForm(recaptchaField)
	if token == "" {
		formResult(c, http.StatusBadRequest, missingMsg)
		return false
	}
	if s.verifier == nil || !s.verifier.Verify(c.Request.Context(), token) {
		formResult(c, http.StatusBadRequest, msgRecaptchaFailed)
		return false
	}
	return true
}

func (s *Server) submitContact(c *gin.Context) {
	var form validation.ContactForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		formResult(c, http.StatusBadRequest, msgValidationFailed)
		return
	}
	if !s.checkForm(c, form.Validate()) {
		return
	}
	if !s.human(c, msgRecaptchaFailed) {
		return
	}

	msg := mailer.Message{
		From:    s.cfg.MailUsername,
		To:      []string{s.cfg.MailUsername},
		ReplyTo: form.Email,
		Subject: "New Contact Form Submission: " + form.Name,
		Body:    fmt.Sprintf("Name: %s\n\nEmail: %s\n\nMessage:\n\n%s", form.Name, form.Email, form.Message),
	}
	if s.mailer == nil {
		s.log.Error("contact mail not sent", "error", mailer.ErrNotConfigured)
		formResult(c, http.StatusInternalServerError, msgMailFailed)
		return
	}
	if err := s.mailer.Send(c.Request.Context(), msg); err != nil {
		s.log.Error("contact mail not sent", "error", err)
		formResult(c, http.StatusInternalServerError, msgMailFailed)
		return
	}

	s.log.Info("contact message delivered", "reply_to", form.Email)
	formResult(c, http.StatusOK, msgContactSent)
}

func (s *Server) submitCVRequest(c *gin.Context) {
	var form validation.CVRequestForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		formResult(c, http.StatusBadRequest, msgValidationFailed)
		return
	}
	if !s.checkForm(c, form.Validate()) {
		return
	}
	if !s.human(c, msgRecaptchaMissing) {
		return
	}

	s.log.Info("cv request accepted", "length", len(form.Message))
	formResult(c, http.StatusOK, msgCVRequestInitiated)
}
