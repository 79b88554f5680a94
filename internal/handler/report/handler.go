package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Valeria-CPaz/app-agendamento/internal/email"
	"github.com/Valeria-CPaz/app-agendamento/internal/handler"
	"github.com/Valeria-CPaz/app-agendamento/internal/model"
	"github.com/Valeria-CPaz/app-agendamento/internal/service/report"
)

type Handler struct {
	service *report.Service
	emailer email.Service
}

func NewHandler(service *report.Service, emailer email.Service) *Handler {
	return &Handler{
		service: service,
		emailer: emailer,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.POST("/generate", h.GenerateReport)
		reports.POST("/share", h.ShareReport)
	}
}

type generateRequest struct {
	Start               model.CalendarDate `json:"start" binding:"required"`
	End                 model.CalendarDate `json:"end" binding:"required"`
	IncludeTotals       bool               `json:"include_totals"`
	IncludeSocialVsFull bool               `json:"include_social_vs_full"`
}

type shareRequest struct {
	generateRequest
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject"`
}

func (h *Handler) GenerateReport(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.Generate(c.Request.Context(), periodOf(req), model.ReportOptions{
		IncludeTotals:       req.IncludeTotals,
		IncludeSocialVsFull: req.IncludeSocialVsFull,
	})
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

// ShareReport generates the report and delivers its text rendering by
// email, the server-side counterpart of the mobile share sheet.
func (h *Handler) ShareReport(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.Generate(c.Request.Context(), periodOf(req.generateRequest), model.ReportOptions{
		IncludeTotals:       req.IncludeTotals,
		IncludeSocialVsFull: req.IncludeSocialVsFull,
	})
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "Relatório de agendamentos"
	}
	if err := h.emailer.SendReport(c.Request.Context(), req.To, subject, result.Text); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"sent_to": req.To}))
}

func periodOf(req generateRequest) model.Period {
	return model.Period{
		Start: req.Start.Time(model.ClockTime{}),
		End:   req.End.Time(model.ClockTime{}),
	}
}
