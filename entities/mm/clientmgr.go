package mm

// ClientInfo is the per-subscriber state MmBs tracks once a client has
// registered via a location update.
type ClientInfo struct {
	Ssi        uint32
	Registered bool
}

// ClientMgr is a minimal registered-subscriber table keyed by SSI.
type ClientMgr struct {
	clients map[uint32]ClientInfo
}

// NewClientMgr returns an empty client table.
func NewClientMgr() *ClientMgr {
	return &ClientMgr{clients: make(map[uint32]ClientInfo)}
}

// Register adds or updates a client's registration state.
func (m *ClientMgr) Register(ssi uint32, registered bool) {
	m.clients[ssi] = ClientInfo{Ssi: ssi, Registered: registered}
}

// Remove deletes a client and reports whether one was present.
func (m *ClientMgr) Remove(ssi uint32) (ClientInfo, bool) {
	c, ok := m.clients[ssi]
	if ok {
		delete(m.clients, ssi)
	}
	return c, ok
}

// Get looks up a client without mutating the table.
func (m *ClientMgr) Get(ssi uint32) (ClientInfo, bool) {
	c, ok := m.clients[ssi]
	return c, ok
}
