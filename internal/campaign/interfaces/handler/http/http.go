package http

import (
	"encoding/json"
	nethttp "net/http"
	"strings"

	"Stronghold/internal/campaign/interfaces/handler"
	"Stronghold/internal/campaign/interfaces/handler/dto"
	"Stronghold/internal/shared/actor/messages"
	"Stronghold/internal/shared/reasoncode"
	"Stronghold/internal/shared/security"
	"Stronghold/internal/shared/transport"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sysBusyMsg = "系统繁忙，请稍后重试"

// HttpHandler 承接不走长连接的旁路能力：存档导出/导入、编辑解锁。
type HttpHandler struct {
	campaign *handler.Campaign
}

func NewHttpHandler(g *handler.Campaign) *HttpHandler {
	return &HttpHandler{campaign: g}
}

func (h *HttpHandler) RegisterRoutes(group *gin.RouterGroup) {
	campaignGroup := group.Group("/campaign")
	campaignGroup.GET("/:id/export", h.Export)
	campaignGroup.POST("/:id/import", h.Import)
	campaignGroup.POST("/:id/unlock", h.Unlock)
}

// Export 导出完整战役 JSON，直接以附件形式返回。
func (h *HttpHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	campaignID := c.Param("id")
	if campaignID == "" {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	reply, err := h.campaign.Command(campaignID, &messages.ExportState{})
	if err != nil {
		h.campaign.Logger().Error("campaign export failed",
			zap.String("campaign_id", campaignID), zap.Error(err))
		h.fail(c, transport.SystemError, sysBusyMsg)
		return
	}
	if code, msg := handler.HandleReply(ctx, reply); code != transport.OK {
		h.fail(c, code, msg)
		return
	}

	raw, ok := reply.Data.(json.RawMessage)
	if !ok {
		h.fail(c, transport.SystemError, sysBusyMsg)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+campaignID+`.json"`)
	c.Data(nethttp.StatusOK, "application/json", raw)
}

// Import 用整份 JSON 覆盖战役状态，要求携带该战役的编辑 token。
func (h *HttpHandler) Import(c *gin.Context) {
	ctx := c.Request.Context()
	campaignID := c.Param("id")
	if campaignID == "" {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	if !h.authorized(c, campaignID) {
		transport.SetErrorReason(ctx, reasoncode.CampaignEditLocked)
		h.fail(c, transport.Unauthorized, "缺少有效的编辑 token")
		return
	}

	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	reply, err := h.campaign.Command(campaignID, &messages.ImportState{Raw: raw})
	if err != nil {
		h.campaign.Logger().Error("campaign import failed",
			zap.String("campaign_id", campaignID), zap.Error(err))
		h.fail(c, transport.SystemError, sysBusyMsg)
		return
	}
	if code, msg := handler.HandleReply(ctx, reply); code != transport.OK {
		h.fail(c, code, msg)
		return
	}
	h.ok(c, reply.Data)
}

// Unlock 校验编辑口令并换发编辑 token。
func (h *HttpHandler) Unlock(c *gin.Context) {
	ctx := c.Request.Context()
	campaignID := c.Param("id")
	if campaignID == "" {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	var req dto.UnlockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	if !h.campaign.CheckEditSecret(req.Secret) {
		transport.SetErrorReason(ctx, reasoncode.CampaignEditLocked)
		h.fail(c, transport.Unauthorized, "口令不正确")
		return
	}

	token, err := security.Award(campaignID)
	if err != nil {
		h.campaign.Logger().Error("award edit token failed",
			zap.String("campaign_id", campaignID), zap.Error(err))
		h.fail(c, transport.SystemError, sysBusyMsg)
		return
	}
	h.ok(c, dto.UnlockResp{Token: token, CanEdit: true})
}

func (h *HttpHandler) authorized(c *gin.Context, campaignID string) bool {
	auth := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return false
	}
	_, claims, err := security.ParseToken(token)
	return err == nil && claims.CampaignID == campaignID
}

func (h *HttpHandler) ok(c *gin.Context, data any) {
	c.JSON(nethttp.StatusOK, dto.Success(transport.OK, data))
}

func (h *HttpHandler) fail(c *gin.Context, code int, msg string) {
	c.JSON(nethttp.StatusOK, dto.Error(code, msg))
}
