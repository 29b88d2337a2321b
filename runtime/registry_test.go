package runtime

import (
	"car-chat/domain"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register_Resolve(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	userID := uuid.NewString()
	conn := newConn(userID)

	// Given no user is connected
	_, ok := registry.Resolve(userID)
	req.False(ok)
	req.Zero(registry.OnlineCount())

	// When a user registers
	_, replaced := registry.Register(userID, conn, domain.RoleRenter)

	// Then the connection resolves
	req.False(replaced)
	resolved, ok := registry.Resolve(userID)
	req.True(ok)
	req.Equal(conn.ID(), resolved.ID())
	req.True(registry.IsLive(conn))
	req.Equal(1, registry.OnlineCount())
}

func TestRegistry_Reconnect_LastConnectionWins(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	userID := uuid.NewString()
	first := newConn(userID)
	second := newConn(userID)

	registry.Register(userID, first, domain.RoleRenter)

	// When the same user connects again
	previous, replaced := registry.Register(userID, second, domain.RoleRenter)

	// Then the newer connection wins
	req.True(replaced)
	req.Equal(first.ID(), previous.ID())
	req.False(registry.IsLive(first))
	req.True(registry.IsLive(second))

	// And a late disconnect of the old connection keeps the new one
	registry.Unregister(userID, first, domain.RoleRenter)
	resolved, ok := registry.Resolve(userID)
	req.True(ok)
	req.Equal(second.ID(), resolved.ID())
}

func TestRegistry_Unregister_UnknownUserIsSafe(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.NotPanics(func() {
		registry.Unregister("ghost", newConn("ghost"), domain.RoleAdmin)
		registry.Unregister("ghost", nil, domain.RoleAdmin)
	})
	req.Empty(registry.GroupMembers(domain.AdminsGroup))
}

func TestRegistry_AdminGroupMembership(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	admin := newConn("admin-1")
	renter := newConn("renter-1")

	// When an admin and a renter connect
	registry.Register(admin.UserID(), admin, domain.RoleAdmin)
	registry.Register(renter.UserID(), renter, domain.RoleRenter)

	// Then only the admin is in the admins group
	members := registry.GroupMembers(domain.AdminsGroup)
	req.Len(members, 1)
	req.Equal(admin.ID(), members[0].ID())

	// When the admin disconnects
	registry.Unregister(admin.UserID(), admin, domain.RoleAdmin)

	// Then the group is empty
	req.Empty(registry.GroupMembers(domain.AdminsGroup))
	_, ok := registry.Resolve(admin.UserID())
	req.False(ok)
}

func TestRegistry_AdminReconnect_ReplacesGroupMember(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	first := newConn("admin-1")
	second := newConn("admin-1")

	registry.Register("admin-1", first, domain.RoleAdmin)
	registry.Register("admin-1", second, domain.RoleAdmin)

	members := registry.GroupMembers(domain.AdminsGroup)
	req.Len(members, 1)
	req.Equal(second.ID(), members[0].ID())
}

func TestRegistry_ConcurrentConnects(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := newConn(uuid.NewString())
			registry.Register(conn.UserID(), conn, domain.RoleAdmin)
			if !registry.IsLive(conn) {
				t.Error("connection should be live right after registering")
			}
			registry.Unregister(conn.UserID(), conn, domain.RoleAdmin)
		}()
	}
	wg.Wait()

	req.Zero(registry.OnlineCount())
	req.Empty(registry.GroupMembers(domain.AdminsGroup))
}
