package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"devlabs-intake-be/internal/dto"
	"devlabs-intake-be/internal/entity"
	"devlabs-intake-be/internal/pkg/logger"
	"devlabs-intake-be/internal/pkg/serverutils"
	"devlabs-intake-be/internal/repository/contract"
	"devlabs-intake-be/internal/repository/specification"

	"github.com/google/uuid"
)

const recentProjectsLimit = 10

// IAdminService executes privileged slash commands. Non-admin callers are
// dropped silently: no reply, no side effect.
type IAdminService interface {
	Execute(ctx context.Context, callerID int64, text string) error
}

type adminService struct {
	projects    contract.ProjectRepository
	preferences contract.PreferenceRepository
	router      IRouterService
	logger      logger.ILogger
	adminSet    map[int64]bool
}

func NewAdminService(
	projects contract.ProjectRepository,
	preferences contract.PreferenceRepository,
	router IRouterService,
	log logger.ILogger,
	adminIDs []int64,
) IAdminService {
	adminSet := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		adminSet[id] = true
	}
	return &adminService{
		projects:    projects,
		preferences: preferences,
		router:      router,
		logger:      log,
		adminSet:    adminSet,
	}
}

func (s *adminService) Execute(ctx context.Context, callerID int64, text string) error {
	if !s.adminSet[callerID] {
		s.logger.Warn("AdminService", "Dropping privileged command from non-admin", map[string]interface{}{
			"caller_id": callerID,
		})
		return nil
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	command := strings.TrimPrefix(fields[0], "/")
	args := fields[1:]

	switch command {
	case "create_project":
		return s.createProject(ctx, callerID, args)
	case "update_status":
		return s.updateStatus(ctx, callerID, args)
	case "send_update":
		return s.sendUpdate(ctx, callerID, args)
	case "list_projects":
		return s.listProjects(ctx, callerID)
	case "broadcast":
		return s.broadcast(ctx, callerID, args)
	case "reply":
		return s.reply(ctx, callerID, args)
	case "admin_help":
		s.router.RouteToClient(ctx, callerID, adminHelpText)
		return nil
	}

	// Unknown commands are ignored, like any other unmapped input.
	return nil
}

func (s *adminService) createProject(ctx context.Context, callerID int64, args []string) error {
	if len(args) < 3 {
		s.router.RouteToClient(ctx, callerID, "Usage: /create_project <client_id> <service_type> <description>")
		return nil
	}

	clientID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		s.router.RouteToClient(ctx, callerID, "❌ Invalid client ID. Must be a number.")
		return nil
	}

	cmd := dto.CreateProjectCommand{
		ClientID:    clientID,
		ServiceType: args[1],
		Description: strings.Join(args[2:], " "),
	}
	if err := serverutils.ValidateRequest(cmd); err != nil {
		s.router.RouteToClient(ctx, callerID, "Usage: /create_project <client_id> <service_type> <description>")
		return nil
	}

	project := entity.Project{
		Id:          uuid.NewString()[:8],
		ClientId:    cmd.ClientID,
		ServiceType: cmd.ServiceType,
		Description: cmd.Description,
		Status:      "pending",
		CreatedAt:   time.Now(),
	}
	if err := s.projects.Create(ctx, &project); err != nil {
		s.logger.Error("AdminService", "Failed to create project", map[string]interface{}{"error": err.Error()})
		s.router.RouteToClient(ctx, callerID, "❌ Error creating project.")
		return err
	}

	s.router.RouteToClient(ctx, callerID, fmt.Sprintf(
		"✅ Project created!\n🆔 Project ID: %s\n👤 Client ID: %d\n🔧 Service: %s",
		project.Id, project.ClientId, project.ServiceType,
	))

	s.router.RouteToClient(ctx, project.ClientId, fmt.Sprintf(
		"🎉 Your project has been created!\n🆔 Project ID: %s\n🔧 Service: %s\n📝 Description: %s\n📊 Status: Pending",
		project.Id, project.ServiceType, project.Description,
	))

	return nil
}

func (s *adminService) updateStatus(ctx context.Context, callerID int64, args []string) error {
	if len(args) < 2 {
		s.router.RouteToClient(ctx, callerID, "Usage: /update_status <project_id> <new_status> [message]")
		return nil
	}

	cmd := dto.UpdateStatusCommand{
		ProjectID: args[0],
		NewStatus: args[1],
	}
	if len(args) > 2 {
		cmd.Note = strings.Join(args[2:], " ")
	}
	if err := serverutils.ValidateRequest(cmd); err != nil {
		s.router.RouteToClient(ctx, callerID, "Usage: /update_status <project_id> <new_status> [message]")
		return nil
	}

	project, err := s.projects.FindOne(ctx, specification.ByID{ID: cmd.ProjectID})
	if err != nil {
		return err
	}
	if project == nil {
		s.router.RouteToClient(ctx, callerID, "❌ Project not found.")
		return nil
	}

	project.Status = cmd.NewStatus
	project.UpdatedAt = time.Now()
	if err := s.projects.Update(ctx, project); err != nil {
		s.logger.Error("AdminService", "Failed to update project status", map[string]interface{}{
			"project_id": project.Id,
			"error":      err.Error(),
		})
		return err
	}

	s.router.RouteToClient(ctx, callerID, fmt.Sprintf("✅ Project %s status updated to: %s", project.Id, project.Status))

	notification := fmt.Sprintf("📢 Project Update!\n🆔 Project ID: %s\n📊 New Status: %s", project.Id, project.Status)
	if cmd.Note != "" {
		notification += fmt.Sprintf("\n💬 Message: %s", cmd.Note)
	}
	s.router.RouteToClient(ctx, project.ClientId, notification)

	return nil
}

func (s *adminService) sendUpdate(ctx context.Context, callerID int64, args []string) error {
	if len(args) < 2 {
		s.router.RouteToClient(ctx, callerID, "Usage: /send_update <project_id> <message>")
		return nil
	}

	cmd := dto.SendUpdateCommand{
		ProjectID: args[0],
		Message:   strings.Join(args[1:], " "),
	}
	if err := serverutils.ValidateRequest(cmd); err != nil {
		s.router.RouteToClient(ctx, callerID, "Usage: /send_update <project_id> <message>")
		return nil
	}

	project, err := s.projects.FindOne(ctx, specification.ByID{ID: cmd.ProjectID})
	if err != nil {
		return err
	}
	if project == nil {
		s.router.RouteToClient(ctx, callerID, "❌ Project not found.")
		return nil
	}

	notification := fmt.Sprintf("📢 Project Update!\n🆔 Project ID: %s\n💬 %s", project.Id, cmd.Message)
	if s.router.RouteToClient(ctx, project.ClientId, notification) {
		s.router.RouteToClient(ctx, callerID, fmt.Sprintf("✅ Update sent to client %d", project.ClientId))
	} else {
		s.router.RouteToClient(ctx, callerID, "❌ Failed to send update to client.")
	}

	return nil
}

func (s *adminService) listProjects(ctx context.Context, callerID int64) error {
	projects, err := s.projects.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: recentProjectsLimit},
	)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		s.router.RouteToClient(ctx, callerID, "📭 No projects found.")
		return nil
	}

	var b strings.Builder
	b.WriteString("📋 Recent Projects:\n\n")
	for _, p := range projects {
		fmt.Fprintf(&b, "🆔 %s | 👤 %d | 🔧 %s | 📊 %s\n", p.Id, p.ClientId, p.ServiceType, p.Status)
	}
	s.router.RouteToClient(ctx, callerID, b.String())

	return nil
}

func (s *adminService) broadcast(ctx context.Context, callerID int64, args []string) error {
	if len(args) == 0 {
		s.router.RouteToClient(ctx, callerID, "Usage: /broadcast <message>")
		return nil
	}

	cmd := dto.BroadcastCommand{Message: strings.Join(args, " ")}
	if err := serverutils.ValidateRequest(cmd); err != nil {
		s.router.RouteToClient(ctx, callerID, "Usage: /broadcast <message>")
		return nil
	}
	text := fmt.Sprintf("📢 Broadcast from XV Dev Labs:\n\n%s", cmd.Message)

	userIDs, err := s.preferences.ListUserIds(ctx)
	if err != nil {
		return err
	}

	successCount := 0
	for _, userID := range userIDs {
		if s.router.RouteToClient(ctx, userID, text) {
			successCount++
		}
	}

	s.router.RouteToClient(ctx, callerID, fmt.Sprintf("✅ Broadcast sent to %d/%d users", successCount, len(userIDs)))
	return nil
}

func (s *adminService) reply(ctx context.Context, callerID int64, args []string) error {
	if len(args) < 2 {
		s.router.RouteToClient(ctx, callerID, "Usage: /reply <user_id> <message>")
		return nil
	}

	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		s.router.RouteToClient(ctx, callerID, "❌ Invalid user ID")
		return nil
	}

	cmd := dto.ReplyCommand{
		UserID:  userID,
		Message: strings.Join(args[1:], " "),
	}
	if err := serverutils.ValidateRequest(cmd); err != nil {
		s.router.RouteToClient(ctx, callerID, "Usage: /reply <user_id> <message>")
		return nil
	}

	text := fmt.Sprintf("💬 Response from XV Dev Labs Team:\n\n%s", cmd.Message)
	if s.router.RouteToClient(ctx, cmd.UserID, text) {
		s.router.RouteToClient(ctx, callerID, fmt.Sprintf("✅ Reply sent to user %d", cmd.UserID))
	} else {
		s.router.RouteToClient(ctx, callerID, "❌ Failed to send reply")
	}

	return nil
}

const adminHelpText = `🔧 Admin Commands:

/create_project <client_id> <service_type> <description>
- Create a new project

/update_status <project_id> <new_status> [message]
- Update project status and notify client

/send_update <project_id> <message>
- Send update message to client

/list_projects
- Show recent projects

/broadcast <message>
- Broadcast message to all users

/reply <user_id> <message>
- Reply to a specific user

/admin_help
- Show this help message`
