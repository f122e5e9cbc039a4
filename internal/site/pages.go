package site

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pranama13/portfolio/internal/contact"
	"github.com/pranama13/portfolio/internal/content"
	"github.com/pranama13/portfolio/internal/titles"
)

// pageData is what index.html renders.
type pageData struct {
	*content.Content
	Title   titles.Tick
	Contact contactView
	Year    int
}

// contactView is what contact.html renders.
type contactView struct {
	Form   contact.Form
	Errors map[string]string
	Sent   bool
}

// contactRequest mirrors the required inputs of the form.
type contactRequest struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required"`
}

func (s *Server) index(c *gin.Context) {
	s.renderPage(c, http.StatusOK, contactView{})
}

// renderPage renders the full page with the given contact form state.
func (s *Server) renderPage(c *gin.Context, status int, form contactView) {
	cycle, err := titles.New(s.content.Profile.Titles)
	if err != nil {
		s.logger(c).Error("build title cycle", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(status, "index.html", pageData{
		Content: s.content,
		Title:   cycle.Current(),
		Contact: form,
		Year:    s.now().Year(),
	})
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", contactView{})
}

func (s *Server) submitContact(c *gin.Context) {
	log := s.logger(c)

	var req contactRequest
	bindErr := c.ShouldBind(&req)

	var form contact.Form
	for field, value := range map[contact.Field]string{
		contact.FieldName:    req.Name,
		contact.FieldEmail:   req.Email,
		contact.FieldMessage: req.Message,
	} {
		if err := form.SetField(field, value); err != nil {
			log.Error("set contact field", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
	}

	if bindErr != nil {
		log.Debug("contact form rejected", zap.Error(bindErr))
		view := contactView{Form: form, Errors: fieldErrors(bindErr)}
		if isHTMX(c) {
			// htmx only swaps 2xx responses.
			c.HTML(http.StatusOK, "contact.html", view)
			return
		}
		s.renderPage(c, http.StatusBadRequest, view)
		return
	}

	uri, err := s.encoder.Submit(c.Request.Context(), &form, browserOpener{c: c})
	if err != nil {
		// The form is already cleared; nothing to retry.
		log.Warn("open mailto link", zap.Error(err))
	}
	log.Info("contact link issued",
		zap.Int("uri_len", len(uri)),
		zap.Bool("htmx", isHTMX(c)),
	)

	if isHTMX(c) {
		c.HTML(http.StatusOK, "contact.html", contactView{Form: form, Sent: true})
	}
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// browserOpener asks the visitor's browser to navigate to the link. HTMX
// requests get an HX-Redirect header; plain form posts get a 303.
type browserOpener struct {
	c *gin.Context
}

func (o browserOpener) Open(_ context.Context, uri string) error {
	if isHTMX(o.c) {
		o.c.Header("HX-Redirect", uri)
		return nil
	}
	o.c.Redirect(http.StatusSeeOther, uri)
	return nil
}

func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["message"] = "Could not read the form. Please try again."
		return out
	}
	for _, fe := range verrs {
		name := formName(fe.Field())
		switch fe.Tag() {
		case "required":
			out[name] = "Please fill out this field."
		case "email":
			out[name] = "Please enter a valid email address."
		default:
			out[name] = "Invalid value."
		}
	}
	return out
}

// formName maps a contactRequest field to its input name.
func formName(structField string) string {
	field, err := contact.ParseField(strings.ToLower(structField))
	if err != nil {
		return string(contact.FieldMessage)
	}
	return string(field)
}
