package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sjsage522/courseadvisor/internal/advisor"
	"sjsage522/courseadvisor/internal/recommend"
	"sjsage522/courseadvisor/logger"
)

// Handler serves the chat and recommendation endpoints
type Handler struct {
	Advisor       *advisor.Advisor
	Conversations *advisor.ConversationManager
}

type chatRequest struct {
	Messages       []advisor.Message `json:"messages"`
	ConversationID string            `json:"conversationId"`
}

type clearRequest struct {
	ConversationID string `json:"conversationId"`
}

type recommendRequest struct {
	Interests          []string `json:"interests"`
	WorkloadPreference string   `json:"workloadPreference"`
}

// NewRouter wires the handler into a gin engine
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Next()
	})

	r.POST("/chat", h.HandleChat)
	r.POST("/clear-conversation", h.HandleClearConversation)
	r.POST("/recommend", h.HandleRecommend)
	return r
}

// HandleChat forwards the stored history plus the new messages to the
// completer and records both sides of the exchange
func (h *Handler) HandleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Messages == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid messages format"})
		return
	}
	if req.ConversationID == "" {
		req.ConversationID = advisor.DefaultConversationID
	}

	history := h.Conversations.GetConversation(req.ConversationID)
	fullContext := append(history, req.Messages...)

	reply, err := h.Advisor.Completer.Complete(c.Request.Context(), fullContext)
	if err != nil {
		logger.ForServer().Error().Err(err).Str("conversation", req.ConversationID).Msg("Chat completion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	for _, msg := range req.Messages {
		h.Conversations.AddMessage(req.ConversationID, msg)
	}
	h.Conversations.AddMessage(req.ConversationID, reply)

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        reply,
		"conversationId": req.ConversationID,
	})
}

// HandleClearConversation drops a conversation's history
func (h *Handler) HandleClearConversation(c *gin.Context) {
	var req clearRequest
	// an empty body clears the default conversation
	_ = c.ShouldBindJSON(&req)
	if req.ConversationID == "" {
		req.ConversationID = advisor.DefaultConversationID
	}

	h.Conversations.ClearConversation(req.ConversationID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Conversation cleared"})
}

// HandleRecommend ranks courses for the given interests and asks the
// completer for advice on the ranked list
func (h *Handler) HandleRecommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid recommendation request"})
		return
	}

	advice, err := h.Advisor.Advise(c.Request.Context(), req.Interests, recommend.WorkloadPreference(req.WorkloadPreference))
	if err != nil {
		logger.ForServer().Error().Err(err).Strs("interests", req.Interests).Msg("Recommendation completion failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":         false,
			"error":           err.Error(),
			"recommendations": advice.Recommendations,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"recommendations": advice.Recommendations,
		"message":         advice.Reply,
	})
}
