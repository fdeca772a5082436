package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dujiao-next/gift-message/internal/admintable"
	handlershared "github.com/dujiao-next/gift-message/internal/http/handlers/shared"
	"github.com/dujiao-next/gift-message/internal/http/response"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/repository"
	"github.com/dujiao-next/gift-message/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminOrderTable 订单表格返回
type AdminOrderTable struct {
	admintable.Table
	Pagination response.Pagination `json:"pagination"`
}

// AdminOrderDetail 管理端订单详情返回
type AdminOrderDetail struct {
	*models.Order
	GiftMessages []string `json:"gift_messages"`
}

func (h *Handler) listOrders(c *gin.Context) ([]models.Order, response.Pagination, bool) {
	page, pageSize := handlershared.PageQuery(c)

	createdFrom, err := parseTimeNullable(strings.TrimSpace(c.Query("created_from")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return nil, response.Pagination{}, false
	}
	createdTo, err := parseTimeNullable(strings.TrimSpace(c.Query("created_to")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return nil, response.Pagination{}, false
	}

	orders, total, err := h.OrderService.ListAdmin(repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		Status:      strings.TrimSpace(c.Query("status")),
		OrderNo:     strings.TrimSpace(c.Query("order_no")),
		Keyword:     strings.TrimSpace(c.Query("keyword")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return nil, response.Pagination{}, false
	}
	return orders, response.NewPagination(page, pageSize, total), true
}

// GetLegacyOrderTable 旧版订单列表
func (h *Handler) GetLegacyOrderTable(c *gin.Context) {
	orders, pagination, ok := h.listOrders(c)
	if !ok {
		return
	}
	table := h.OrderTables.Legacy(c.Request.Context(), orders, h.viewer(c), i18n.ResolveLocale(c))
	response.Success(c, AdminOrderTable{Table: table, Pagination: pagination})
}

// GetHPOSOrderTable 新版订单列表
func (h *Handler) GetHPOSOrderTable(c *gin.Context) {
	orders, pagination, ok := h.listOrders(c)
	if !ok {
		return
	}
	table := h.OrderTables.HPOS(orders, h.viewer(c), i18n.ResolveLocale(c))
	response.Success(c, AdminOrderTable{Table: table, Pagination: pagination})
}

// GetAdminOrder 订单详情，附带全部礼品留言
func (h *Handler) GetAdminOrder(c *gin.Context) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	detail := AdminOrderDetail{Order: order, GiftMessages: []string{}}
	if h.GiftMessage != nil && h.GiftMessage.Loaded() {
		detail.GiftMessages = append(detail.GiftMessages, h.GiftMessage.OrderMessages(order)...)
	}
	response.Success(c, detail)
}
