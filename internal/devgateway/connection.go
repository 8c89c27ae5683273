package devgateway

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/connection"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/response"
)

func (h *Handler) ClientByConnectionID(c *gin.Context) {
	id := c.Param("id")
	if !connection.ValidID(id) {
		response.BadRequest(c, "connection id must be 24 hexadecimal characters")
		return
	}
	p := h.Store.PairingByConnectionID(id)
	if p == nil {
		response.NotFound(c, "no client for connection id")
		return
	}
	response.OK(c, model.ClientCompany{ClientID: p.ClientID, CompanyName: p.CompanyName})
}

func (h *Handler) ConfirmConnection(c *gin.Context) {
	var req model.ConfirmConnectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	claims := h.GetClaimsFromContext(c)
	if claims == nil || claims.Role != model.RoleRecruiter {
		response.Unauthorized(c, "recruiter account required")
		return
	}
	recruiter := h.Store.UserByID(claims.UserID)
	if recruiter == nil {
		response.Unauthorized(c, "")
		return
	}

	p := h.Store.Connect(req.ConnectionID, recruiter)
	if p == nil {
		response.NotFound(c, "no client for connection id")
		return
	}

	count := h.Store.ConnectedCount()
	h.Hub.Broadcast(model.ConnectionEvent{
		Event:          model.EventConnected,
		CompanyName:    &p.CompanyName,
		RecruiterName:  &p.RecruiterName,
		ConnectedCount: &count,
	})
	response.OK(c, model.ConfirmConnectionRes{ClientID: p.ClientID, CompanyName: p.CompanyName})
}

func (h *Handler) Disconnect(c *gin.Context) {
	if !h.Store.Disconnect() {
		response.Message(c, "not connected")
		return
	}
	h.Hub.Broadcast(model.ConnectionEvent{Event: model.EventDisconnected})
	response.Message(c, "disconnected")
}

func (h *Handler) ConnectedRecruiter(c *gin.Context) {
	count := h.Store.ConnectedCount()
	status := model.ConnectionNone
	if count > 0 {
		status = model.ConnectionConnected
	}
	response.OK(c, model.ConnectedRecruiter{ConnectedCount: count, Status: status})
}

func (h *Handler) ClientStats(c *gin.Context) {
	response.OK(c, h.Store.Stats())
}

// ConnectionEvents serves the event stream: one data: frame per event,
// comment heartbeats in between so proxies keep the stream alive.
func (h *Handler) ConnectionEvents(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	events, cancel := h.Hub.Subscribe()
	defer cancel()

	heartbeat := h.Heartbeat
	if heartbeat <= 0 {
		heartbeat = 15 * time.Second
	}
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(c, ev); err != nil {
				return
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(c.Writer, ": ping\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

func writeEvent(c *gin.Context, ev model.ConnectionEvent) error {
	c.SSEvent("message", ev)
	c.Writer.Flush()
	return nil
}
