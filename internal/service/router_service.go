package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"devlabs-intake-be/internal/channel"
	"devlabs-intake-be/internal/dto"
	"devlabs-intake-be/internal/pkg/logger"
)

// NotificationKind tags a routed request so each gets its fixed template.
type NotificationKind string

const (
	KindQuestion       NotificationKind = "QUESTION"
	KindSupportRequest NotificationKind = "SUPPORT_REQUEST"
	KindServiceRequest NotificationKind = "SERVICE_REQUEST"
)

// RoutePayload carries the kind-specific content of a routed request.
// Text is used by questions and support messages; ProjectId tags support
// requests; ServiceType and Messages belong to service requests.
type RoutePayload struct {
	Text        string
	ProjectId   string
	ServiceType string
	Messages    []string
}

type IRouterService interface {
	// RouteToAdmins fans a formatted notification out to every configured
	// admin and reports whether at least one was reached. Per-recipient
	// failures are logged and never abort sibling sends.
	RouteToAdmins(ctx context.Context, kind NotificationKind, user dto.UserMeta, payload RoutePayload) bool

	// RouteToClient sends one formatted message to one user.
	RouteToClient(ctx context.Context, clientID int64, text string) bool
}

type routerService struct {
	gateway  channel.DeliveryGateway
	adminIDs []int64
	logger   logger.ILogger
}

func NewRouterService(gateway channel.DeliveryGateway, adminIDs []int64, log logger.ILogger) IRouterService {
	return &routerService{
		gateway:  gateway,
		adminIDs: adminIDs,
		logger:   log,
	}
}

func (s *routerService) RouteToAdmins(ctx context.Context, kind NotificationKind, user dto.UserMeta, payload RoutePayload) bool {
	text := s.formatAdminNotification(kind, user, payload)

	var delivered int32
	var wg sync.WaitGroup
	for _, adminID := range s.adminIDs {
		wg.Add(1)
		go func(adminID int64) {
			defer wg.Done()
			if err := s.gateway.SendText(ctx, adminID, text); err != nil {
				s.logger.Error("RouterService", "Failed to deliver to admin", map[string]interface{}{
					"admin_id": adminID,
					"kind":     string(kind),
					"error":    err.Error(),
				})
				return
			}
			atomic.AddInt32(&delivered, 1)
		}(adminID)
	}
	wg.Wait()

	s.logger.Info("RouterService", "Admin fan-out complete", map[string]interface{}{
		"kind":      string(kind),
		"user_id":   user.ID,
		"delivered": atomic.LoadInt32(&delivered),
		"total":     len(s.adminIDs),
	})

	return atomic.LoadInt32(&delivered) > 0
}

func (s *routerService) RouteToClient(ctx context.Context, clientID int64, text string) bool {
	if err := s.gateway.SendText(ctx, clientID, text); err != nil {
		s.logger.Error("RouterService", "Failed to deliver to client", map[string]interface{}{
			"client_id": clientID,
			"error":     err.Error(),
		})
		return false
	}
	return true
}

func (s *routerService) formatAdminNotification(kind NotificationKind, user dto.UserMeta, payload RoutePayload) string {
	username := user.Username
	if username == "" {
		username = "No username"
	}
	firstName := user.FirstName
	if firstName == "" {
		firstName = "Unknown"
	}

	var b strings.Builder
	switch kind {
	case KindQuestion:
		b.WriteString("❓ NEW QUESTION\n")
	case KindSupportRequest:
		b.WriteString("🛠️ SUPPORT REQUEST\n")
	case KindServiceRequest:
		b.WriteString("🆕 NEW SERVICE REQUEST\n")
	}

	fmt.Fprintf(&b, "👤 User: %s (@%s)\n", firstName, username)
	fmt.Fprintf(&b, "🆔 User ID: %d\n", user.ID)

	switch kind {
	case KindQuestion:
		fmt.Fprintf(&b, "💬 Question:\n%s\n", payload.Text)
	case KindSupportRequest:
		fmt.Fprintf(&b, "📋 Project ID: %s\n", payload.ProjectId)
		fmt.Fprintf(&b, "💬 Message:\n%s\n", payload.Text)
	case KindServiceRequest:
		fmt.Fprintf(&b, "🔧 Service: %s\n", payload.ServiceType)
		b.WriteString("📝 Messages:\n")
		for _, msg := range payload.Messages {
			fmt.Fprintf(&b, "• %s\n", msg)
		}
	}

	fmt.Fprintf(&b, "\nReply with: /reply %d your_message", user.ID)
	return b.String()
}
