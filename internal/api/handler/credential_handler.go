package handler

import (
	"github.com/gin-gonic/gin"

	"user-vault/internal/dto"
	"user-vault/internal/model"
	"user-vault/internal/service"
	"user-vault/pkg/constants"
	"user-vault/pkg/responses"
	"user-vault/pkg/utils"
)

type CredentialHandler struct {
	svc service.CredentialService
}

func NewCredentialHandler(svc service.CredentialService) *CredentialHandler {
	return &CredentialHandler{svc: svc}
}

// List 凭据列表
// @Summary 当前用户的凭据列表（createdAt 倒序）
// @Tags UserCredential
// @Produce json
// @Security BearerAuth
// @Param offset query int false "偏移量 0-100" default(0)
// @Param limit query int false "每页数量 1-100" default(25)
// @Success 200 {object} responses.Response{data=dto.CredentialListResponse}
// @Router /api/v1/user-credentials [get]
func (h *CredentialHandler) List(c *gin.Context) {
	var q dto.CredentialListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), actorFromContext(c), q.Offset, q.Limit)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// Create 创建凭据
// @Summary 创建凭据
// @Tags UserCredential
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CredentialRequest true "凭据内容"
// @Success 200 {object} responses.Response{data=dto.IDResponse}
// @Router /api/v1/user-credentials [post]
func (h *CredentialHandler) Create(c *gin.Context) {
	var req dto.CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}
	secret, err := req.ToSecret()
	if err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "请求参数错误", err.Error())
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), actorFromContext(c), req.Name, secret)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// Get 凭据详情
// @Summary 获取凭据详情（含明文）
// @Tags UserCredential
// @Produce json
// @Security BearerAuth
// @Param credentialId path string true "凭据ID (UUIDv4)"
// @Success 200 {object} responses.Response{data=dto.CredentialResponse}
// @Router /api/v1/user-credentials/{credentialId} [get]
func (h *CredentialHandler) Get(c *gin.Context) {
	var p dto.CredentialIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "无效的凭据ID", utils.FormatValidationError(err))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), actorFromContext(c), p.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// Update 更新凭据（整体替换）
// @Summary 更新凭据
// @Tags UserCredential
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param credentialId path string true "凭据ID (UUIDv4)"
// @Param request body dto.CredentialRequest true "凭据内容"
// @Success 200 {object} responses.Response{data=dto.IDResponse}
// @Router /api/v1/user-credentials/{credentialId} [patch]
func (h *CredentialHandler) Update(c *gin.Context) {
	var p dto.CredentialIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "无效的凭据ID", utils.FormatValidationError(err))
		return
	}
	var req dto.CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}
	secret, err := req.ToSecret()
	if err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "请求参数错误", err.Error())
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), actorFromContext(c), p.ID, req.Name, secret)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// Delete 删除凭据
// @Summary 删除凭据
// @Tags UserCredential
// @Produce json
// @Security BearerAuth
// @Param credentialId path string true "凭据ID (UUIDv4)"
// @Success 200 {object} responses.Response{data=dto.IDResponse}
// @Router /api/v1/user-credentials/{credentialId} [delete]
func (h *CredentialHandler) Delete(c *gin.Context) {
	var p dto.CredentialIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "无效的凭据ID", utils.FormatValidationError(err))
		return
	}
	resp, err := h.svc.Delete(c.Request.Context(), actorFromContext(c), p.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// actorFromContext 读取 AuthMiddleware 写入的身份，缺失时为空（由服务层拒绝）
func actorFromContext(c *gin.Context) model.Actor {
	return model.Actor{
		ID:    c.GetString(constants.ContextKeyUID),
		OrgID: c.GetString(constants.ContextKeyOrgID),
	}
}
