package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devlabs-intake-be/internal/dto"
	"devlabs-intake-be/internal/i18n"
	"devlabs-intake-be/internal/pkg/logger"
	"devlabs-intake-be/internal/repository/contract"
	"devlabs-intake-be/internal/repository/memory"
	"devlabs-intake-be/internal/repository/specification"
	"devlabs-intake-be/pkg/store"
)

// Menu selection keys emitted by the transport.
const (
	SelectAskQuestion    = "ask_question"
	SelectSupport        = "support"
	SelectServices       = "services"
	SelectProjectStatus  = "project_status"
	SelectChangeLanguage = "change_language"
	SelectBack           = "back_to_main"
	SelectFinishService  = "finish_service"

	langPrefix    = "lang_"
	servicePrefix = "service_"
)

// serviceCatalog maps a service selection suffix to its catalog label key.
var serviceCatalog = map[string]string{
	"vyper":    "vyper_contract",
	"solidity": "solidity_contract",
	"unittest": "unit_test",
	"fuzztest": "fuzz_test",
	"audit":    "security_audit",
	"website":  "create_website",
	"bot":      "create_bot",
}

// IDialogService drives the per-user conversational state machine. Every
// flow starts from idle (no session) and returns to it; callers must hold
// the per-user lock while invoking any of these.
type IDialogService interface {
	Start(ctx context.Context, user dto.UserMeta) error
	HandleSelection(ctx context.Context, user dto.UserMeta, selection string) error
	HandleMessage(ctx context.Context, user dto.UserMeta, text string) error
}

type dialogService struct {
	sessions      *memory.SessionRepository
	projects      contract.ProjectRepository
	preferences   contract.PreferenceRepository
	router        IRouterService
	logger        logger.ILogger
	defaultLocale string
}

func NewDialogService(
	sessions *memory.SessionRepository,
	projects contract.ProjectRepository,
	preferences contract.PreferenceRepository,
	router IRouterService,
	log logger.ILogger,
	defaultLocale string,
) IDialogService {
	return &dialogService{
		sessions:      sessions,
		projects:      projects,
		preferences:   preferences,
		router:        router,
		logger:        log,
		defaultLocale: defaultLocale,
	}
}

func (s *dialogService) locale(ctx context.Context, userID int64) string {
	lang, err := s.preferences.GetLanguage(ctx, userID, s.defaultLocale)
	if err != nil {
		s.logger.Warn("DialogService", "Failed to load language preference", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return s.defaultLocale
	}
	return lang
}

func (s *dialogService) Start(ctx context.Context, user dto.UserMeta) error {
	s.sessions.Delete(user.ID)
	s.router.RouteToClient(ctx, user.ID, i18n.Text(s.locale(ctx, user.ID), "welcome"))
	return nil
}

func (s *dialogService) HandleSelection(ctx context.Context, user dto.UserMeta, selection string) error {
	lang := s.locale(ctx, user.ID)

	switch {
	case selection == SelectBack:
		// Back always returns fully to idle, discarding any collected input.
		s.sessions.Delete(user.ID)
		if err := s.preferences.ClearMessages(ctx, user.ID); err != nil {
			return err
		}
		s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "welcome"))
		return nil

	case selection == SelectAskQuestion:
		s.sessions.Save(&store.Session{UserID: user.ID, Kind: store.StateAskingQuestion})
		s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "what_question"))
		return nil

	case selection == SelectSupport:
		s.sessions.Save(&store.Session{UserID: user.ID, Kind: store.StateSupportEnterID})
		s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "send_project_id"))
		return nil

	case selection == SelectServices:
		s.sessions.Save(&store.Session{UserID: user.ID, Kind: store.StateChoosingService})
		s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "choose_service"))
		return nil

	case selection == SelectProjectStatus:
		s.sessions.Save(&store.Session{UserID: user.ID, Kind: store.StateCheckingStatus})
		s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "enter_project_id"))
		return nil

	case selection == SelectChangeLanguage:
		s.sessions.Save(&store.Session{UserID: user.ID, Kind: store.StateSelectingLanguage})
		s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "select_language"))
		return nil

	case strings.HasPrefix(selection, langPrefix):
		return s.selectLanguage(ctx, user, strings.TrimPrefix(selection, langPrefix))

	case strings.HasPrefix(selection, servicePrefix):
		return s.selectService(ctx, user, lang, strings.TrimPrefix(selection, servicePrefix))

	case selection == SelectFinishService:
		return s.finishService(ctx, user, lang)
	}

	// Unmapped selections are ignored.
	return nil
}

func (s *dialogService) selectLanguage(ctx context.Context, user dto.UserMeta, locale string) error {
	session, found := s.sessions.Get(user.ID)
	if !found || session.Kind != store.StateSelectingLanguage {
		return nil
	}
	if !i18n.IsSupported(locale) {
		return nil
	}

	if err := s.preferences.SetLanguage(ctx, user.ID, locale); err != nil {
		return err
	}
	s.sessions.Delete(user.ID)
	s.router.RouteToClient(ctx, user.ID, i18n.Text(locale, "language_changed"))
	return nil
}

func (s *dialogService) selectService(ctx context.Context, user dto.UserMeta, lang, serviceType string) error {
	session, found := s.sessions.Get(user.ID)
	if !found || session.Kind != store.StateChoosingService {
		return nil
	}
	labelKey, known := serviceCatalog[serviceType]
	if !known {
		return nil
	}

	// A fresh collection starts with an empty buffer.
	if err := s.preferences.ClearMessages(ctx, user.ID); err != nil {
		return err
	}
	s.sessions.Save(&store.Session{
		UserID:      user.ID,
		Kind:        store.StateCollectingService,
		ServiceType: serviceType,
	})

	text := i18n.Textf(lang, "describe_needs", i18n.Text(lang, labelKey))
	text += "\n\n" + i18n.Text(lang, "collecting_msgs")
	s.router.RouteToClient(ctx, user.ID, text)
	return nil
}

func (s *dialogService) finishService(ctx context.Context, user dto.UserMeta, lang string) error {
	session, found := s.sessions.Get(user.ID)
	if !found || session.Kind != store.StateCollectingService {
		return nil
	}

	messages, err := s.preferences.GetMessages(ctx, user.ID)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		// Nothing collected yet; the user stays in the collecting state.
		return nil
	}

	s.router.RouteToAdmins(ctx, KindServiceRequest, user, RoutePayload{
		ServiceType: session.ServiceType,
		Messages:    messages,
	})

	if err := s.preferences.ClearMessages(ctx, user.ID); err != nil {
		return err
	}
	s.sessions.Delete(user.ID)
	s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "thanks_contact"))
	return nil
}

func (s *dialogService) HandleMessage(ctx context.Context, user dto.UserMeta, text string) error {
	session, found := s.sessions.Get(user.ID)
	if !found {
		// Idle users get no reaction to free text.
		return nil
	}

	lang := s.locale(ctx, user.ID)

	switch session.Kind {
	case store.StateAskingQuestion:
		sent := s.router.RouteToAdmins(ctx, KindQuestion, user, RoutePayload{Text: text})
		s.sessions.Delete(user.ID)
		if sent {
			s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "question_sent"))
		} else {
			s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "question_failed"))
		}
		return nil

	case store.StateSupportEnterID:
		return s.checkSupportProject(ctx, user, lang, strings.TrimSpace(text))

	case store.StateSupportActive:
		sent := s.router.RouteToAdmins(ctx, KindSupportRequest, user, RoutePayload{
			Text:      text,
			ProjectId: session.ProjectId,
		})
		s.sessions.Delete(user.ID)
		if sent {
			s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "support_sent"))
		} else {
			s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "support_failed"))
		}
		return nil

	case store.StateCheckingStatus:
		return s.reportProjectStatus(ctx, user, lang, strings.TrimSpace(text))

	case store.StateCollectingService:
		if err := s.preferences.AppendMessage(ctx, user.ID, text); err != nil {
			return err
		}
		messages, err := s.preferences.GetMessages(ctx, user.ID)
		if err != nil {
			return err
		}
		s.router.RouteToClient(ctx, user.ID, i18n.Textf(lang, "message_added", fmt.Sprintf("%d", len(messages))))
		return nil
	}

	// Free text in any other state is ignored.
	return nil
}

func (s *dialogService) checkSupportProject(ctx context.Context, user dto.UserMeta, lang, projectID string) error {
	project, err := s.projects.FindOne(ctx, specification.ByID{ID: projectID})
	if err != nil {
		return err
	}
	if project == nil {
		// Unknown id: the user stays prompted for a valid one.
		s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "invalid_id"))
		return nil
	}

	s.sessions.Save(&store.Session{
		UserID:    user.ID,
		Kind:      store.StateSupportActive,
		ProjectId: project.Id,
	})
	s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "how_help"))
	return nil
}

func (s *dialogService) reportProjectStatus(ctx context.Context, user dto.UserMeta, lang, projectID string) error {
	project, err := s.projects.FindOne(ctx, specification.ByID{ID: projectID})
	if err != nil {
		return err
	}

	s.sessions.Delete(user.ID)

	if project == nil {
		s.router.RouteToClient(ctx, user.ID, i18n.Text(lang, "project_not_found"))
		return nil
	}

	var b strings.Builder
	b.WriteString("📋 Project Status:\n")
	fmt.Fprintf(&b, "🆔 ID: %s\n", project.Id)
	fmt.Fprintf(&b, "🔧 Service: %s\n", project.ServiceType)
	fmt.Fprintf(&b, "📊 Status: %s\n", project.Status)
	fmt.Fprintf(&b, "📅 Created: %s\n", project.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "🔄 Updated: %s\n", project.UpdatedAt.Format(time.RFC3339))
	if project.Description != "" {
		desc := project.Description
		if len(desc) > 100 {
			desc = desc[:100] + "..."
		}
		fmt.Fprintf(&b, "📝 Description: %s", desc)
	}

	s.router.RouteToClient(ctx, user.ID, b.String())
	return nil
}
