// internal/controller/principal_controller.go
package controller

import (
	"errors"
	"net/http"

	"principal-lookup/internal/model"
	"principal-lookup/internal/service"
	"principal-lookup/internal/utils"
	"principal-lookup/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var ErrValidationFail = errors.New("invalid lookup parameter")

type usernameURI struct {
	Username string `uri:"username" binding:"required,principalname"`
}

type emailURI struct {
	Email string `uri:"email" binding:"required,email"`
}

type PrincipalController struct {
	lookupService service.LookupService
	logger        logger.Logger
}

func NewPrincipalController(
	lookupService service.LookupService,
	logger logger.Logger,
) *PrincipalController {
	return &PrincipalController{
		lookupService: lookupService,
		logger:        logger.With(zap.String("module", "principal_controller")),
	}
}

func (c *PrincipalController) GetByUsername(ctx *gin.Context) {
	var uri usernameURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		utils.Error(ctx, http.StatusBadRequest, ErrValidationFail.Error())
		return
	}

	principal, err := c.lookupService.LookupByUsername(uri.Username)
	c.respond(ctx, principal, err)
}

func (c *PrincipalController) GetByEmail(ctx *gin.Context) {
	var uri emailURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		utils.Error(ctx, http.StatusBadRequest, ErrValidationFail.Error())
		return
	}

	principal, err := c.lookupService.LookupByEmail(uri.Email)
	c.respond(ctx, principal, err)
}

// respond maps lookup errors onto HTTP statuses: missing user is 404,
// a non-unique user row is 409, everything else is a plain 500. The password
// is blanked on the wire; in-process callers get it through the Principal.
func (c *PrincipalController) respond(ctx *gin.Context, principal model.Principal, err error) {
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUserNotFound):
		utils.Error(ctx, http.StatusNotFound, "user not found")
		return
	case errors.Is(err, service.ErrAmbiguousUser):
		c.logger.Error("ambiguous user row", zap.Error(err))
		utils.Error(ctx, http.StatusConflict, "user lookup is ambiguous")
		return
	default:
		c.logger.Error("principal lookup failed", zap.Error(err))
		utils.Error(ctx, http.StatusInternalServerError, "lookup failed")
		return
	}

	user, ok := principal.(*model.User)
	if !ok {
		user = &model.User{
			Username:    principal.GetUsername(),
			Enabled:     principal.IsEnabled(),
			Authorities: principal.GetAuthorities(),
		}
	} else {
		copied := *user
		user = &copied
	}
	user.Password = ""
	utils.Success(ctx, user)
}
