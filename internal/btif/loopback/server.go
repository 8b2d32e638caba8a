package loopback

import "gattshim/internal/btif"

type serverIface struct{ s *Stack }

var _ btif.ServerInterface = serverIface{}

func (v serverIface) RegisterServer(appUUID *btif.RawUUID, eattSupport bool) int32 {
	u := *appUUID
	rc := v.s.record("RegisterServer", u, eattSupport)
	if rc != btif.StatusSuccess {
		return rc
	}
	id := v.s.allocIf()
	v.s.server(func(cb *btif.ServerCallbacks) bool {
		if cb.RegisterServer == nil {
			return false
		}
		uu := u
		cb.RegisterServer(0, id, &uu)
		uu = btif.RawUUID{}
		return true
	})
	return rc
}

func (v serverIface) UnregisterServer(serverIf int32) int32 {
	return v.s.record("UnregisterServer", serverIf)
}

func (v serverIface) connection(serverIf int32, addr btif.RawAddress, connID, connected int32) {
	v.s.server(func(cb *btif.ServerCallbacks) bool {
		if cb.Connection == nil {
			return false
		}
		a := addr
		cb.Connection(connID, serverIf, connected, &a)
		return true
	})
}

func (v serverIface) Connect(serverIf int32, bda *btif.RawAddress, isDirect bool, transport int32) int32 {
	addr := *bda
	rc := v.s.record("ServerConnect", serverIf, addr, isDirect, transport)
	if rc != btif.StatusSuccess {
		return rc
	}
	v.connection(serverIf, addr, v.s.connFor(addr), 1)
	return rc
}

func (v serverIface) Disconnect(serverIf int32, bda *btif.RawAddress, connID int32) int32 {
	addr := *bda
	rc := v.s.record("ServerDisconnect", serverIf, addr, connID)
	if rc != btif.StatusSuccess {
		return rc
	}
	v.s.dropConn(addr)
	v.connection(serverIf, addr, connID, 0)
	return rc
}

// AddService assigns consecutive attribute handles to the elements and
// echoes them back through ServiceAdded.
func (v serverIface) AddService(serverIf int32, service *btif.DbElement, count uintptr) int32 {
	var elems []btif.DbElement
	if service != nil && count > 0 {
		elems = append(elems, unsafeElements(service, count)...)
	}
	rc := v.s.record("AddService", serverIf, append([]btif.DbElement(nil), elems...))
	if rc != btif.StatusSuccess {
		return rc
	}
	v.s.mu.Lock()
	for i := range elems {
		elems[i].AttributeHandle = v.s.nextHandle
		v.s.nextHandle++
	}
	if len(elems) > 0 {
		elems[0].StartHandle = elems[0].AttributeHandle
		elems[0].EndHandle = elems[len(elems)-1].AttributeHandle
	}
	v.s.mu.Unlock()
	v.s.server(func(cb *btif.ServerCallbacks) bool {
		if cb.ServiceAdded == nil {
			return false
		}
		var first *btif.DbElement
		if len(elems) > 0 {
			first = &elems[0]
		}
		cb.ServiceAdded(0, serverIf, first, uintptr(len(elems)))
		for i := range elems {
			elems[i] = btif.DbElement{}
		}
		return true
	})
	return rc
}

func (v serverIface) StopService(serverIf, serviceHandle int32) int32 {
	rc := v.s.record("StopService", serverIf, serviceHandle)
	if rc != btif.StatusSuccess {
		return rc
	}
	v.s.server(func(cb *btif.ServerCallbacks) bool {
		if cb.ServiceStopped == nil {
			return false
		}
		cb.ServiceStopped(0, serverIf, serviceHandle)
		return true
	})
	return rc
}

func (v serverIface) DeleteService(serverIf, serviceHandle int32) int32 {
	rc := v.s.record("DeleteService", serverIf, serviceHandle)
	if rc != btif.StatusSuccess {
		return rc
	}
	v.s.server(func(cb *btif.ServerCallbacks) bool {
		if cb.ServiceDeleted == nil {
			return false
		}
		cb.ServiceDeleted(0, serverIf, serviceHandle)
		return true
	})
	return rc
}

func (v serverIface) SendIndication(serverIf, attributeHandle, connID, confirm int32, value *byte, length uintptr) int32 {
	rc := v.s.record("SendIndication", serverIf, attributeHandle, connID, confirm, copyIn(value, length))
	if rc != btif.StatusSuccess {
		return rc
	}
	v.s.server(func(cb *btif.ServerCallbacks) bool {
		if cb.IndicationSent == nil {
			return false
		}
		cb.IndicationSent(connID, 0)
		return true
	})
	return rc
}

func (v serverIface) SendResponse(connID, transID, status int32, response *btif.Response) int32 {
	var r btif.Response
	if response != nil {
		r = *response
	}
	rc := v.s.record("SendResponse", connID, transID, status, r)
	if rc != btif.StatusSuccess {
		return rc
	}
	v.s.server(func(cb *btif.ServerCallbacks) bool {
		if cb.ResponseConfirmation == nil {
			return false
		}
		cb.ResponseConfirmation(0, int32(r.Handle))
		return true
	})
	return rc
}

func (v serverIface) SetPreferredPhy(bda *btif.RawAddress, txPhy, rxPhy uint8, phyOptions uint16) int32 {
	addr := *bda
	rc := v.s.record("ServerSetPreferredPhy", addr, txPhy, rxPhy, phyOptions)
	if rc != btif.StatusSuccess {
		return rc
	}
	connID := v.s.connFor(addr)
	v.s.server(func(cb *btif.ServerCallbacks) bool {
		if cb.PhyUpdated == nil {
			return false
		}
		cb.PhyUpdated(connID, txPhy, rxPhy, 0)
		return true
	})
	return rc
}

// Remote-side requests. These model a peer acting on the local server.

// RequestRead delivers a peer read of attrHandle to the server table.
func (s *Stack) RequestRead(connID, transID int32, peer btif.RawAddress, attrHandle int32, descriptor bool) {
	s.server(func(cb *btif.ServerCallbacks) bool {
		fn := cb.RequestReadCharacteristic
		if descriptor {
			fn = cb.RequestReadDescriptor
		}
		if fn == nil {
			return false
		}
		a := peer
		fn(connID, transID, &a, attrHandle, 0, false)
		return true
	})
}

// RequestWrite delivers a peer write of value to the server table.
func (s *Stack) RequestWrite(connID, transID int32, peer btif.RawAddress, attrHandle int32, descriptor, needRsp bool, value []byte) {
	value = append([]byte(nil), value...)
	s.server(func(cb *btif.ServerCallbacks) bool {
		fn := cb.RequestWriteCharacteristic
		if descriptor {
			fn = cb.RequestWriteDescriptor
		}
		if fn == nil {
			return false
		}
		a := peer
		lend(value, func(p *byte, n uintptr) {
			fn(connID, transID, &a, attrHandle, 0, needRsp, false, p, n)
		})
		return true
	})
}
