package runtime

import (
	"car-chat/contract"
	"car-chat/domain"
)

type connSet map[string]contract.Connection

// Registry tracks which users are online and which connections belong to a
// broadcast group. One user maps to at most one connection; the last connect wins.
type Registry struct {
	sessions *Shards[string, contract.Connection] // user -> connection
	groups   *Shards[string, connSet]             // group -> connections
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: NewShards[string, contract.Connection](defaultShardCount),
		groups:   NewShards[string, connSet](defaultShardCount),
	}
}

// Register records conn as the live connection of userID and adds it to the
// group of its role. The connection it replaced, if any, is returned.
func (r *Registry) Register(userID string, conn contract.Connection, role domain.Role) (contract.Connection, bool) {
	var previous contract.Connection
	var replaced bool
	r.sessions.Compute(userID, func(current contract.Connection, exists bool) (contract.Connection, bool) {
		if exists && current.ID() != conn.ID() {
			previous, replaced = current, true
		}
		return conn, true
	})

	if group, ok := domain.GroupFor(role); ok {
		r.groups.Compute(group, func(members connSet, exists bool) (connSet, bool) {
			if !exists {
				members = make(connSet)
			}
			if replaced {
				delete(members, previous.ID())
			}
			members[conn.ID()] = conn
			return members, true
		})
	}
	return previous, replaced
}

// Unregister forgets conn. The user mapping is only removed while it still
// points at conn, so a late disconnect never evicts a newer connection.
// Unknown users and connections are ignored.
func (r *Registry) Unregister(userID string, conn contract.Connection, role domain.Role) {
	if conn == nil {
		return
	}
	r.sessions.Compute(userID, func(current contract.Connection, exists bool) (contract.Connection, bool) {
		if !exists || current.ID() == conn.ID() {
			return nil, false
		}
		return current, true
	})

	if group, ok := domain.GroupFor(role); ok {
		r.groups.Compute(group, func(members connSet, exists bool) (connSet, bool) {
			if !exists {
				return nil, false
			}
			delete(members, conn.ID())
			return members, len(members) > 0
		})
	}
}

func (r *Registry) Resolve(userID string) (contract.Connection, bool) {
	if userID == "" {
		return nil, false
	}
	return r.sessions.Load(userID)
}

// IsLive reports whether conn is still the registered connection of its user.
func (r *Registry) IsLive(conn contract.Connection) bool {
	current, ok := r.Resolve(conn.UserID())
	return ok && current.ID() == conn.ID()
}

// GroupMembers returns a snapshot of the connections in group.
func (r *Registry) GroupMembers(group string) []contract.Connection {
	var out []contract.Connection
	r.groups.View(group, func(members connSet, exists bool) {
		if !exists {
			return
		}
		out = make([]contract.Connection, 0, len(members))
		for _, c := range members {
			out = append(out, c)
		}
	})
	return out
}

func (r *Registry) OnlineCount() int {
	return r.sessions.Len()
}
