package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

// Home paths per role; the root page dispatches here after login.
var roleHomes = map[users.Role]string{
	users.RoleAdmin:     "/admin",
	users.RoleDoctor:    "/doctor",
	users.RoleFrontDesk: "/front-desk",
	users.RolePatient:   "/patient",
}

type Controller struct {
	codec *tokens.Codec
}

func NewController(codec *tokens.Codec) *Controller {
	return &Controller{codec: codec}
}

// Root dispatches by role: a valid session lands on its dashboard, anything
// else goes to login.
func (ctrl *Controller) Root(c *gin.Context) {
	claims := middleware.CurrentUser(c, ctrl.codec)
	if claims == nil {
		c.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}
	home, ok := roleHomes[claims.Role]
	if !ok {
		c.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}
	c.Redirect(http.StatusFound, home)
}

// Login renders the sign-in form. The dispatch filter already bounced
// visitors who have a session cookie.
func (ctrl *Controller) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{
		"From": c.Query("from"),
	})
}

// Dashboard renders the role-titled shell; the page gate ran before it.
func (ctrl *Controller) Dashboard(title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ""
		if claims, ok := middleware.ClaimsFromContext(c); ok {
			role = string(claims.Role)
		}
		c.HTML(http.StatusOK, "dashboard", gin.H{
			"Title": title,
			"Role":  role,
		})
	}
}
