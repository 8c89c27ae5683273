package devgateway

import (
	"github.com/gin-gonic/gin"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/auth"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/response"
)

func (h *Handler) Login(c *gin.Context) {
	h.login(c, false)
}

// ClientLogin serves the client-company login endpoint; it only matches
// client accounts.
func (h *Handler) ClientLogin(c *gin.Context) {
	h.login(c, true)
}

func (h *Handler) login(c *gin.Context, clientOnly bool) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	role := req.Role
	if clientOnly {
		role = model.RoleClient
	}
	u := h.Store.Authenticate(req.Email, req.Password, role)
	if u == nil {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	h.issueToken(c, u, false)
}

func (h *Handler) Register(c *gin.Context) {
	h.register(c, false)
}

func (h *Handler) ClientRegister(c *gin.Context) {
	h.register(c, true)
}

func (h *Handler) register(c *gin.Context, clientOnly bool) {
	var req model.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	role := req.Role
	if clientOnly {
		role = model.RoleClient
	}
	if role == "" {
		role = model.RoleCandidate
	}
	u, ok := h.Store.AddUser(req.Name, req.Email, req.Password, role, req.CompanyName)
	if !ok {
		response.Conflict(c, "email already registered")
		return
	}

	h.issueToken(c, u, true)
}

func (h *Handler) issueToken(c *gin.Context, u *User, created bool) {
	authUser := model.AuthUser{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		CompanyName: u.CompanyName,
	}
	token, err := auth.GenerateToken(h.JWTSecret, authUser, h.JWTTTL)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to sign token", "err", err)
		response.InternalError(c, "")
		return
	}
	res := model.AuthRes{Token: token, User: authUser}
	if created {
		response.Created(c, res)
		return
	}
	response.OK(c, res)
}
