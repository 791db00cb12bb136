package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"devlabs-intake-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminID    = int64(100)
	clientID   = int64(42)
	strangerID = int64(666)
)

type adminFixture struct {
	gw       *fakeGateway
	projects *fakeProjectRepo
	prefs    *fakePreferenceRepo
	admin    IAdminService
}

func newAdminFixture() *adminFixture {
	gw := newFakeGateway()
	projects := newFakeProjectRepo()
	prefs := newFakePreferenceRepo()
	router := NewRouterService(gw, []int64{adminID}, nopLogger{})
	admin := NewAdminService(projects, prefs, router, nopLogger{}, []int64{adminID})
	return &adminFixture{gw: gw, projects: projects, prefs: prefs, admin: admin}
}

func TestNonAdminDroppedSilently(t *testing.T) {
	f := newAdminFixture()

	require.NoError(t, f.admin.Execute(context.Background(), strangerID, "/create_project 42 solidity token"))

	assert.Empty(t, f.gw.sent, "no reply and no side effect for non-admins")
	count, err := f.projects.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateProject(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	require.NoError(t, f.admin.Execute(ctx, adminID, "/create_project 42 solidity ERC20 token with vesting"))

	projects, err := f.projects.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	p := projects[0]
	assert.Len(t, p.Id, 8)
	assert.Equal(t, clientID, p.ClientId)
	assert.Equal(t, "solidity", p.ServiceType)
	assert.Equal(t, "ERC20 token with vesting", p.Description)
	assert.Equal(t, "pending", p.Status)

	confirmation := f.gw.messagesTo(adminID)
	require.Len(t, confirmation, 1)
	assert.Contains(t, confirmation[0], "✅ Project created!")
	assert.Contains(t, confirmation[0], p.Id)

	notice := f.gw.lastTo(clientID)
	assert.Contains(t, notice, "🎉 Your project has been created!")
	assert.Contains(t, notice, p.Id)
	assert.Contains(t, notice, "📊 Status: Pending")
}

func TestCreateProjectBadInput(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{
			name:    "too few arguments",
			command: "/create_project 42 solidity",
			want:    "Usage: /create_project <client_id> <service_type> <description>",
		},
		{
			name:    "client id not numeric",
			command: "/create_project forty-two solidity token",
			want:    "❌ Invalid client ID. Must be a number.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAdminFixture()
			require.NoError(t, f.admin.Execute(context.Background(), adminID, tt.command))

			assert.Equal(t, tt.want, f.gw.lastTo(adminID))
			count, err := f.projects.Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, f.projects.Create(ctx, &entity.Project{
		Id: "ab12cd34", ClientId: clientID, ServiceType: "solidity", Status: "pending",
		CreatedAt: created, UpdatedAt: created,
	}))

	require.NoError(t, f.admin.Execute(ctx, adminID, "/update_status ab12cd34 active kickoff call done"))

	stored, err := f.projects.FindOne(ctx, byIDSpec("ab12cd34"))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "active", stored.Status)
	assert.True(t, stored.UpdatedAt.After(created), "status mutation must advance updated_at")
	assert.Equal(t, created, stored.CreatedAt)

	assert.Equal(t, "✅ Project ab12cd34 status updated to: active", f.gw.lastTo(adminID))
	notice := f.gw.lastTo(clientID)
	assert.Contains(t, notice, "📢 Project Update!")
	assert.Contains(t, notice, "📊 New Status: active")
	assert.Contains(t, notice, "💬 Message: kickoff call done")
}

func TestUpdateStatusNotFound(t *testing.T) {
	f := newAdminFixture()

	require.NoError(t, f.admin.Execute(context.Background(), adminID, "/update_status nope1234 active"))

	assert.Equal(t, "❌ Project not found.", f.gw.lastTo(adminID))
}

func TestSendUpdate(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()
	require.NoError(t, f.projects.Create(ctx, &entity.Project{
		Id: "ab12cd34", ClientId: clientID, Status: "active",
	}))

	t.Run("delivered", func(t *testing.T) {
		require.NoError(t, f.admin.Execute(ctx, adminID, "/send_update ab12cd34 milestone one shipped"))

		assert.Contains(t, f.gw.lastTo(clientID), "💬 milestone one shipped")
		assert.Equal(t, fmt.Sprintf("✅ Update sent to client %d", clientID), f.gw.lastTo(adminID))
	})

	t.Run("client unreachable", func(t *testing.T) {
		f.gw.failFor[clientID] = true
		require.NoError(t, f.admin.Execute(ctx, adminID, "/send_update ab12cd34 hello"))

		assert.Equal(t, "❌ Failed to send update to client.", f.gw.lastTo(adminID))
	})
}

func TestListProjects(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		require.NoError(t, f.admin.Execute(ctx, adminID, "/list_projects"))
		assert.Equal(t, "📭 No projects found.", f.gw.lastTo(adminID))
	})

	t.Run("listed", func(t *testing.T) {
		require.NoError(t, f.projects.Create(ctx, &entity.Project{
			Id: "ab12cd34", ClientId: clientID, ServiceType: "solidity", Status: "pending",
		}))
		require.NoError(t, f.admin.Execute(ctx, adminID, "/list_projects"))

		listing := f.gw.lastTo(adminID)
		assert.Contains(t, listing, "📋 Recent Projects:")
		assert.Contains(t, listing, "🆔 ab12cd34 | 👤 42 | 🔧 solidity | 📊 pending")
	})
}

func TestListProjectsCappedAtTen(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		require.NoError(t, f.projects.Create(ctx, &entity.Project{
			Id: fmt.Sprintf("proj%04d", i), ClientId: clientID, ServiceType: "solidity", Status: "pending",
		}))
	}

	require.NoError(t, f.admin.Execute(ctx, adminID, "/list_projects"))

	listing := f.gw.lastTo(adminID)
	assert.Equal(t, 10, strings.Count(listing, "🆔 "))
	assert.Contains(t, listing, "proj0011", "newest project listed")
	assert.NotContains(t, listing, "proj0001", "older projects beyond the cap omitted")
	assert.NotContains(t, listing, "proj0000")
}

func TestBroadcast(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()
	f.prefs.userIds = []int64{1, 2, 3}
	f.gw.failFor[2] = true

	require.NoError(t, f.admin.Execute(ctx, adminID, "/broadcast scheduled maintenance tonight"))

	assert.Contains(t, f.gw.lastTo(1), "📢 Broadcast from XV Dev Labs:")
	assert.Contains(t, f.gw.lastTo(1), "scheduled maintenance tonight")
	assert.Contains(t, f.gw.lastTo(3), "scheduled maintenance tonight")
	assert.Equal(t, "✅ Broadcast sent to 2/3 users", f.gw.lastTo(adminID))
}

func TestReply(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	require.NoError(t, f.admin.Execute(ctx, adminID, "/reply 42 we are on it"))

	assert.Equal(t, "💬 Response from XV Dev Labs Team:\n\nwe are on it", f.gw.lastTo(clientID))
	assert.Equal(t, fmt.Sprintf("✅ Reply sent to user %d", clientID), f.gw.lastTo(adminID))

	require.NoError(t, f.admin.Execute(ctx, adminID, "/reply not-a-number hello"))
	assert.Equal(t, "❌ Invalid user ID", f.gw.lastTo(adminID))

	// Non-positive ids fail command validation before any send.
	require.NoError(t, f.admin.Execute(ctx, adminID, "/reply -5 hello"))
	assert.Equal(t, "Usage: /reply <user_id> <message>", f.gw.lastTo(adminID))
	assert.Empty(t, f.gw.messagesTo(-5))
}

func TestAdminHelpAndUnknownCommand(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	require.NoError(t, f.admin.Execute(ctx, adminID, "/admin_help"))
	assert.Contains(t, f.gw.lastTo(adminID), "🔧 Admin Commands:")

	sentBefore := len(f.gw.sent)
	require.NoError(t, f.admin.Execute(ctx, adminID, "/frobnicate"))
	assert.Len(t, f.gw.sent, sentBefore, "unknown commands are ignored")
}
